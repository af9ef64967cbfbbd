package questionbank

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a Source when the requested file does not exist.
	ErrNotFound = errors.New("question bank not found")

	// ErrEmptyBank is returned when a bank parses but holds no questions.
	ErrEmptyBank = errors.New("question bank is empty")
)

// LoadError is returned when a theme's question bank cannot be fetched,
// parsed or validated. A LoadError is terminal for the session.
type LoadError struct {
	Theme string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load questions for %q: %v", e.Theme, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
