package questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Loader fetches and validates themed question banks.
type Loader struct {
	src    Source
	logger *slog.Logger
}

// NewLoader creates a Loader reading from src. A nil logger discards logs.
func NewLoader(src Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{src: src, logger: logger}
}

// Source returns the underlying bank source.
func (l *Loader) Source() Source {
	return l.src
}

// Load fetches the bank for theme and returns its records in file order.
// Every failure is reported as a *LoadError.
func (l *Loader) Load(ctx context.Context, theme string) ([]Question, error) {
	raw, err := l.src.Fetch(ctx, ThemePath(theme))
	if err != nil {
		l.logger.Warn("fetch question bank", "theme", theme, "error", err)
		return nil, &LoadError{Theme: theme, Err: err}
	}

	questions, err := Parse(raw)
	if err != nil {
		l.logger.Warn("parse question bank", "theme", theme, "error", err)
		return nil, &LoadError{Theme: theme, Err: err}
	}

	l.logger.Debug("question bank loaded", "theme", theme, "count", len(questions))
	return questions, nil
}

// Parse decodes and validates a raw bank file. A payload that is not a
// JSON array, or an array with no records, is rejected.
func Parse(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	arr, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid question bank: expected a JSON array")
	}
	if len(arr) == 0 {
		return nil, ErrEmptyBank
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(raw, &questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return questions, nil
}
