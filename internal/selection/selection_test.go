package selection

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/questionbank"
)

func makeBank(n int) []questionbank.Question {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i] = questionbank.Question{
			Prompt: fmt.Sprintf("q%02d", i),
			Answer: fmt.Sprintf("a%02d", i),
		}
	}
	return qs
}

func prompts(qs []questionbank.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.Prompt
	}
	return out
}

func TestSlice_Daywise(t *testing.T) {
	bank := makeBank(12)

	tests := []struct {
		day       int
		wantFirst string
		wantLen   int
	}{
		{1, "q00", 5},
		{2, "q05", 5},
		{3, "q10", 2},
	}

	for _, tc := range tests {
		got, err := Slice(bank, tc.day, mode.Daywise, 5)
		if err != nil {
			t.Fatalf("Slice(day=%d) error: %v", tc.day, err)
		}
		if len(got) != tc.wantLen {
			t.Errorf("Slice(day=%d) len = %d, want %d", tc.day, len(got), tc.wantLen)
		}
		if got[0].Prompt != tc.wantFirst {
			t.Errorf("Slice(day=%d)[0] = %s, want %s", tc.day, got[0].Prompt, tc.wantFirst)
		}
	}
}

func TestSlice_DayBeyondBank(t *testing.T) {
	bank := makeBank(12)
	for _, m := range []mode.Mode{mode.Daywise, mode.Cloze, mode.Flashcard} {
		for _, day := range []int{5, 1<<61 + 1, math.MaxInt / 2, math.MaxInt} {
			_, err := Slice(bank, day, m, 5)
			if !errors.Is(err, ErrSelectionEmpty) {
				t.Errorf("%s day %d: err = %v, want ErrSelectionEmpty", m, day, err)
			}
		}
	}
}

func TestSlice_AccumulativeHugeDay(t *testing.T) {
	bank := makeBank(12)
	for _, day := range []int{4, math.MaxInt / 2, math.MaxInt} {
		got, err := Slice(bank, day, mode.Accumulative, 5)
		if err != nil {
			t.Fatalf("day %d: unexpected error: %v", day, err)
		}
		if len(got) != len(bank) {
			t.Errorf("day %d: len = %d, want %d", day, len(got), len(bank))
		}
	}
}

func TestWindow_HugeDay(t *testing.T) {
	start, end := Window(12, math.MaxInt, mode.Daywise, 5)
	if start != 12 || end != 12 {
		t.Errorf("Window(daywise) = (%d, %d), want (12, 12)", start, end)
	}
	start, end = Window(12, math.MaxInt, mode.Accumulative, 5)
	if start != 0 || end != 12 {
		t.Errorf("Window(accumulative) = (%d, %d), want (0, 12)", start, end)
	}
}

func TestSlice_InvalidDay(t *testing.T) {
	bank := makeBank(12)
	for _, day := range []int{0, -1} {
		_, err := Slice(bank, day, mode.Daywise, 5)
		if !errors.Is(err, ErrInvalidDay) {
			t.Errorf("day %d: err = %v, want ErrInvalidDay", day, err)
		}
	}
}

func TestSlice_Accumulative(t *testing.T) {
	bank := makeBank(12)

	tests := []struct {
		day     int
		wantLen int
	}{
		{1, 5},
		{2, 10},
		{3, 12},
		{7, 12},
	}

	for _, tc := range tests {
		got, err := Slice(bank, tc.day, mode.Accumulative, 5)
		if err != nil {
			t.Fatalf("day %d: %v", tc.day, err)
		}
		if len(got) != tc.wantLen {
			t.Errorf("day %d: len = %d, want %d", tc.day, len(got), tc.wantLen)
		}
		if got[0].Prompt != "q00" {
			t.Errorf("day %d: accumulative slice must start at q00, got %s", tc.day, got[0].Prompt)
		}
	}
}

func TestSlice_AccumulativePrefixGrowth(t *testing.T) {
	bank := makeBank(23)
	for day := 1; day < 6; day++ {
		cur, err := Slice(bank, day, mode.Accumulative, 5)
		if err != nil {
			t.Fatal(err)
		}
		next, err := Slice(bank, day+1, mode.Accumulative, 5)
		if err != nil {
			t.Fatal(err)
		}
		for i := range cur {
			if cur[i].Prompt != next[i].Prompt {
				t.Fatalf("day %d is not a prefix of day %d at %d", day, day+1, i)
			}
		}
	}
}

func TestSlice_DoesNotAliasBank(t *testing.T) {
	bank := makeBank(6)
	got, err := Slice(bank, 1, mode.Daywise, 5)
	if err != nil {
		t.Fatal(err)
	}
	got[0].Prompt = "changed"
	if bank[0].Prompt != "q00" {
		t.Error("Slice must return a copy")
	}
}

func TestSelectQuestions_IsPermutation(t *testing.T) {
	bank := makeBank(12)
	r := rand.New(rand.NewPCG(7, 11))

	want, _ := Slice(bank, 2, mode.Daywise, 5)
	got, err := SelectQuestions(bank, 2, mode.Daywise, 5, r)
	if err != nil {
		t.Fatal(err)
	}

	a, b := prompts(want), prompts(got)
	sort.Strings(a)
	sort.Strings(b)
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Errorf("shuffled set %v differs from selected %v", b, a)
	}
}

func TestShuffle_LeavesInputIntact(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	out := Shuffle(in, rand.New(rand.NewPCG(1, 2)))

	for i, v := range in {
		if v != i+1 {
			t.Fatalf("input modified at %d", i)
		}
	}
	sorted := append([]int(nil), out...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffle dropped or duplicated elements: %v", out)
		}
	}
}

func TestShuffle_Empty(t *testing.T) {
	if got := Shuffle([]int{}, nil); len(got) != 0 {
		t.Errorf("Shuffle(empty) = %v", got)
	}
}
