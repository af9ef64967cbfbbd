// Package screentest builds screen environments backed by in-memory
// question banks for screen tests.
package screentest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/abhisek/quizday/internal/catalog"
	"github.com/abhisek/quizday/internal/prefs"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/screen"
)

// Bank returns n multiple-choice questions "q0".."q<n-1>" whose answers
// are "a0".."a<n-1>".
func Bank(n int) []questionbank.Question {
	qs := make([]questionbank.Question, n)
	for i := range qs {
		qs[i] = questionbank.Question{
			Prompt:      fmt.Sprintf("q%d", i),
			Answer:      fmt.Sprintf("a%d", i),
			Choices:     []string{fmt.Sprintf("a%d", i), "wrong one", "wrong two"},
			Explanation: fmt.Sprintf("because %d", i),
		}
	}
	return qs
}

// NewEnv returns an Env whose loader serves banks keyed by theme ID.
func NewEnv(t *testing.T, banks map[string][]questionbank.Question) *screen.Env {
	t.Helper()

	fsys := fstest.MapFS{}
	for theme, qs := range banks {
		raw, err := json.Marshal(qs)
		if err != nil {
			t.Fatalf("marshal bank %s: %v", theme, err)
		}
		fsys[questionbank.ThemePath(theme)] = &fstest.MapFile{Data: raw}
	}

	logger := slog.New(slog.DiscardHandler)
	return &screen.Env{
		Loader:    questionbank.NewLoader(questionbank.NewFSSource(fsys), logger),
		Catalog:   catalog.Builtin(),
		Prefs:     prefs.New(prefs.NewMemoryStore()),
		PerDay:    5,
		ExportDir: t.TempDir(),
		Logger:    logger,
	}
}
