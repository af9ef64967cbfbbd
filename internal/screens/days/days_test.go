package days

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/router"
	"github.com/abhisek/quizday/internal/screen/screentest"
)

func loadedScreen(t *testing.T, m mode.Mode, n int) *DaysScreen {
	t.Helper()
	env := screentest.NewEnv(t, map[string][]questionbank.Question{
		"vocabulary": screentest.Bank(n),
	})
	s := New(env, "vocabulary", m)
	s.Update(s.Init()())
	return s
}

func TestDaysScreen_ListsDays(t *testing.T) {
	s := loadedScreen(t, mode.Daywise, 12)
	view := s.View(80, 24)
	for _, want := range []string{"Day 1 (5 questions)", "Day 2 (5 questions)", "Day 3 (2 questions)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestDaysScreen_AccumulativeCounts(t *testing.T) {
	s := loadedScreen(t, mode.Accumulative, 12)
	if !strings.Contains(s.View(80, 24), "Day 3 (12 questions)") {
		t.Error("accumulative day 3 should include all questions")
	}
}

func TestDaysScreen_FlashcardNoun(t *testing.T) {
	s := loadedScreen(t, mode.Flashcard, 6)
	if !strings.Contains(s.View(80, 24), "Day 2 (1 flashcards)") {
		t.Error("flashcard mode should label items as flashcards")
	}
}

func TestDaysScreen_LoadError(t *testing.T) {
	env := screentest.NewEnv(t, nil)
	s := New(env, "vocabulary", mode.Daywise)
	s.Update(s.Init()())
	if !strings.Contains(s.View(80, 24), "Could not load questions") {
		t.Error("expected load error view")
	}
}

func TestDaysScreen_ChoosePushesSession(t *testing.T) {
	tests := []struct {
		mode  mode.Mode
		title string
	}{
		{mode.Daywise, "Quiz"},
		{mode.Cloze, "Quiz"},
		{mode.Flashcard, "Flashcards"},
	}
	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			s := loadedScreen(t, tc.mode, 12)
			_, cmd := s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
			if cmd == nil {
				t.Fatal("expected push command")
			}
			msg, ok := cmd().(router.PushScreenMsg)
			if !ok {
				t.Fatal("expected PushScreenMsg")
			}
			if msg.Screen.Title() != tc.title {
				t.Errorf("pushed %q, want %q", msg.Screen.Title(), tc.title)
			}
			if got := s.env.Prefs.Day(context.Background()); got != 2 {
				t.Errorf("saved day = %d, want 2", got)
			}
		})
	}
}
