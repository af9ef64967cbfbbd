package session

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/selection"
)

type fakeLoader struct {
	questions []questionbank.Question
	err       error
}

func (f fakeLoader) Load(ctx context.Context, theme string) ([]questionbank.Question, error) {
	return f.questions, f.err
}

func testBank(n int, withChoices bool) []questionbank.Question {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i] = questionbank.Question{
			Prompt: fmt.Sprintf("q%d", i),
			Answer: fmt.Sprintf("a%d", i),
		}
		if withChoices {
			qs[i].Choices = []string{fmt.Sprintf("a%d", i), "x", "y", "z"}
		}
	}
	return qs
}

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestController(t *testing.T, m mode.Mode, day int, bank []questionbank.Question) (*Controller, *testClock) {
	t.Helper()
	clk := &testClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	c := New(Config{Theme: "test", Day: day, Mode: m, QuestionsPerDay: 5},
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithClock(clk.Now),
	)
	if err := c.Load(context.Background(), fakeLoader{questions: bank}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return c, clk
}

func answerCurrent(t *testing.T, c *Controller, correct bool) Feedback {
	t.Helper()
	p, ok := c.Current()
	if !ok {
		t.Fatal("no current question")
	}
	input := "wrong"
	if correct {
		input = p.Question.Answer
	} else if !p.FreeText {
		for _, o := range p.Options {
			if o != p.Question.Answer {
				input = o
				break
			}
		}
	}
	fb, err := c.SubmitAnswer(input)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	return fb
}

func TestController_DaywiseAllCorrect(t *testing.T) {
	c, clk := newTestController(t, mode.Daywise, 2, testBank(12, true))

	if c.Phase() != PhaseInProgress {
		t.Fatalf("Phase = %s, want in_progress", c.Phase())
	}
	if c.Total() != 5 {
		t.Fatalf("Total = %d, want 5", c.Total())
	}

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		p, _ := c.Current()
		seen[p.Question.Prompt] = true
		answerCurrent(t, c, true)
		clk.Advance(10 * time.Second)
		if err := c.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	for i := 5; i < 10; i++ {
		if !seen[fmt.Sprintf("q%d", i)] {
			t.Errorf("day 2 should include q%d", i)
		}
	}

	if c.Phase() != PhaseCompleted {
		t.Fatalf("Phase = %s, want completed", c.Phase())
	}
	sum, ok := c.Summary()
	if !ok {
		t.Fatal("expected summary")
	}
	if sum.Score != 5 || sum.Total != 5 || sum.AccuracyPercent != 100 {
		t.Errorf("summary = %d/%d %d%%, want 5/5 100%%", sum.Score, sum.Total, sum.AccuracyPercent)
	}
	if sum.Elapsed != "00:50" || sum.ElapsedSeconds != 50 {
		t.Errorf("elapsed = %s (%ds), want 00:50", sum.Elapsed, sum.ElapsedSeconds)
	}
	if len(sum.WrongAnswers) != 0 {
		t.Errorf("WrongAnswers = %d, want 0", len(sum.WrongAnswers))
	}
}

func TestController_AccumulativeDayThree(t *testing.T) {
	c, _ := newTestController(t, mode.Accumulative, 3, testBank(12, true))
	if c.Total() != 12 {
		t.Errorf("Total = %d, want 12", c.Total())
	}
}

func TestController_DayBeyondBank(t *testing.T) {
	for _, day := range []int{5, math.MaxInt / 2} {
		t.Run(fmt.Sprintf("day_%d", day), func(t *testing.T) {
			c := New(Config{Theme: "test", Day: day, Mode: mode.Daywise, QuestionsPerDay: 5})

			var failed []Event
			c.Subscribe(func(ev Event) {
				if ev.Kind == EventFailed {
					failed = append(failed, ev)
				}
			})

			err := c.Load(context.Background(), fakeLoader{questions: testBank(12, true)})
			if !errors.Is(err, selection.ErrSelectionEmpty) {
				t.Fatalf("Load err = %v, want ErrSelectionEmpty", err)
			}
			if c.Phase() != PhaseError {
				t.Errorf("Phase = %s, want error", c.Phase())
			}
			if !errors.Is(c.Err(), selection.ErrSelectionEmpty) {
				t.Errorf("Err() = %v", c.Err())
			}
			if len(failed) != 1 {
				t.Errorf("failed events = %d, want 1", len(failed))
			}
			if _, ok := c.Current(); ok {
				t.Error("Current should be unavailable in error phase")
			}
		})
	}
}

func TestController_LoadError(t *testing.T) {
	loadErr := &questionbank.LoadError{Theme: "test", Err: questionbank.ErrNotFound}
	c := New(Config{Theme: "test", Day: 1, Mode: mode.Cloze})

	err := c.Load(context.Background(), fakeLoader{err: loadErr})
	var le *questionbank.LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Load err = %v, want *LoadError", err)
	}
	if c.Phase() != PhaseError {
		t.Errorf("Phase = %s, want error", c.Phase())
	}

	if err := c.Load(context.Background(), fakeLoader{questions: testBank(3, false)}); !errors.Is(err, ErrNotLoading) {
		t.Errorf("second Load err = %v, want ErrNotLoading", err)
	}
}

func TestController_PreconditionMissing(t *testing.T) {
	tests := []Config{
		{Theme: "", Day: 1, Mode: mode.Daywise},
		{Theme: "t", Day: 0, Mode: mode.Daywise},
		{Theme: "t", Day: 1, Mode: mode.Mode("")},
	}
	for _, cfg := range tests {
		c := New(cfg)
		err := c.Load(context.Background(), fakeLoader{questions: testBank(5, true)})
		if !errors.Is(err, ErrPreconditionMissing) {
			t.Errorf("Load(%+v) err = %v, want ErrPreconditionMissing", cfg, err)
		}
	}
}

func TestController_EmptyAnswerRejected(t *testing.T) {
	c, _ := newTestController(t, mode.Cloze, 1, testBank(5, false))

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := c.SubmitAnswer(in); !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("SubmitAnswer(%q) err = %v, want ErrEmptyAnswer", in, err)
		}
	}
	p, _ := c.Current()
	if p.Answered || c.Score() != 0 || c.Index() != 0 {
		t.Error("empty answer must not change state")
	}
}

func TestController_AdvanceRequiresAnswer(t *testing.T) {
	c, _ := newTestController(t, mode.Daywise, 1, testBank(5, true))

	if err := c.Advance(); !errors.Is(err, ErrAnswerRequired) {
		t.Errorf("Advance err = %v, want ErrAnswerRequired", err)
	}
	if c.Index() != 0 {
		t.Errorf("Index = %d, want 0", c.Index())
	}
}

func TestController_DoubleSubmit(t *testing.T) {
	c, _ := newTestController(t, mode.Daywise, 1, testBank(5, true))
	answerCurrent(t, c, true)

	if _, err := c.SubmitAnswer("a0"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Errorf("second submit err = %v, want ErrAlreadyAnswered", err)
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d, want 1", c.Score())
	}
}

func TestController_ClozeNormalizesAndRecordsWrong(t *testing.T) {
	bank := []questionbank.Question{
		{Prompt: "Founder of the Mughal empire?", Answer: "Babur", Explanation: "Battle of Panipat, 1526."},
		{Prompt: "Year of the first war of independence?", Answer: "1857 AD"},
	}
	c, _ := newTestController(t, mode.Cloze, 1, bank)

	for i := 0; i < 2; i++ {
		p, _ := c.Current()
		if !p.FreeText || len(p.Options) != 0 {
			t.Fatal("cloze prompts must be free text")
		}
		var in string
		switch p.Question.Answer {
		case "Babur":
			in = "  BABUR "
		default:
			in = "1858ad"
		}
		if _, err := c.SubmitAnswer(in); err != nil {
			t.Fatal(err)
		}
		if err := c.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	sum, _ := c.Summary()
	if sum.Score != 1 || sum.AccuracyPercent != 50 {
		t.Errorf("summary = %d (%d%%), want 1 (50%%)", sum.Score, sum.AccuracyPercent)
	}
	if len(sum.WrongAnswers) != 1 {
		t.Fatalf("WrongAnswers = %d, want 1", len(sum.WrongAnswers))
	}
	w := sum.WrongAnswers[0]
	if w.UserAnswer != "1858ad" || w.CorrectAnswer != "1857 AD" {
		t.Errorf("wrong answer = %+v", w)
	}
	if w.Explanation != questionbank.DefaultExplanation {
		t.Errorf("Explanation = %q, want default", w.Explanation)
	}
}

func TestController_ChoiceMatchIsExact(t *testing.T) {
	bank := []questionbank.Question{
		{Prompt: "Pick", Answer: "Lord Canning", Choices: []string{"Lord Canning", "Lord Curzon"}},
	}
	c, _ := newTestController(t, mode.Daywise, 1, bank)

	fb, err := c.SubmitAnswer("lord canning")
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct {
		t.Error("choice comparison must be exact")
	}
}

func TestController_OptionsArePermutation(t *testing.T) {
	c, _ := newTestController(t, mode.Daywise, 1, testBank(5, true))
	p, _ := c.Current()

	if len(p.Options) != 4 {
		t.Fatalf("Options = %v", p.Options)
	}
	want := map[string]bool{p.Question.Answer: true, "x": true, "y": true, "z": true}
	for _, o := range p.Options {
		if !want[o] {
			t.Errorf("unexpected option %q", o)
		}
		delete(want, o)
	}
	if len(want) != 0 {
		t.Errorf("missing options %v", want)
	}
}

func TestController_ScoreInvariant(t *testing.T) {
	c, _ := newTestController(t, mode.Accumulative, 2, testBank(10, true))

	for k := 1; k <= c.Total(); k++ {
		answerCurrent(t, c, k%3 != 0)
		if c.Score() < 0 || c.Score() > k || k > c.Total() {
			t.Fatalf("after %d answers score = %d", k, c.Score())
		}
		if err := c.Advance(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestController_AdvanceAfterCompletedIsNoop(t *testing.T) {
	c, clk := newTestController(t, mode.Daywise, 1, testBank(2, true))
	for i := 0; i < 2; i++ {
		answerCurrent(t, c, i == 0)
		if err := c.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	before, _ := c.Summary()
	clk.Advance(time.Minute)

	for i := 0; i < 3; i++ {
		if err := c.Advance(); err != nil {
			t.Errorf("Advance after completion err = %v", err)
		}
	}
	after, _ := c.Summary()

	if c.Score() != 1 || c.Index() != 2 {
		t.Errorf("score/index = %d/%d, want 1/2", c.Score(), c.Index())
	}
	if before.Elapsed != after.Elapsed || c.ElapsedTime() != before.Elapsed {
		t.Error("timer must be stopped after completion")
	}
	if _, err := c.SubmitAnswer("a0"); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("submit after completion err = %v", err)
	}
}

func TestController_Events(t *testing.T) {
	c := New(Config{Theme: "test", Day: 1, Mode: mode.Daywise},
		WithRand(rand.New(rand.NewPCG(3, 4))))

	var kinds []EventKind
	unsub := c.Subscribe(func(ev Event) { kinds = append(kinds, ev.Kind) })

	if err := c.Load(context.Background(), fakeLoader{questions: testBank(2, true)}); err != nil {
		t.Fatal(err)
	}
	answerCurrent(t, c, true)
	_ = c.Advance()
	answerCurrent(t, c, false)
	_ = c.Advance()

	want := []EventKind{EventStarted, EventFeedback, EventAdvanced, EventFeedback, EventCompleted}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Errorf("events = %v, want %v", kinds, want)
	}

	unsub()
	c.Close()
	if len(kinds) != len(want) {
		t.Error("unsubscribed listener received events")
	}
}

func TestController_FlashcardHasNoScoringOrTimer(t *testing.T) {
	c, clk := newTestController(t, mode.Flashcard, 1, testBank(5, true))

	if _, err := c.SubmitAnswer("a0"); !errors.Is(err, ErrScoringDisabled) {
		t.Errorf("SubmitAnswer err = %v, want ErrScoringDisabled", err)
	}
	clk.Advance(time.Minute)
	if c.ElapsedTime() != "00:00" {
		t.Errorf("flashcard timer = %s, want 00:00", c.ElapsedTime())
	}
	if err := c.Advance(); err != nil {
		t.Errorf("flashcard Advance err = %v", err)
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 0, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{0, 4, 0},
	}
	for _, tc := range tests {
		if got := Accuracy(tc.score, tc.total); got != tc.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}
