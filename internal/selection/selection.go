// Package selection derives the question sequence for a (day, mode) pair.
package selection

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/questionbank"
)

// DefaultQuestionsPerDay is the batch size of one practice day.
const DefaultQuestionsPerDay = 5

var (
	// ErrInvalidDay is returned for day numbers below 1.
	ErrInvalidDay = errors.New("day must be 1 or greater")

	// ErrSelectionEmpty is returned when the day lies beyond the bank.
	ErrSelectionEmpty = errors.New("no questions available for selected day")
)

// Window returns the half-open index range [start, end) of the bank that
// the given day covers. The range is clipped to bankLen and may be empty.
func Window(bankLen, day int, m mode.Mode, perDay int) (start, end int) {
	if perDay <= 0 {
		perDay = DefaultQuestionsPerDay
	}
	if day < 1 {
		return 0, 0
	}
	// Days past the bank are clipped before multiplying so huge values
	// cannot overflow.
	if day > bankLen/perDay+1 {
		if m.Capabilities().Accumulative {
			return 0, bankLen
		}
		return bankLen, bankLen
	}
	if m.Capabilities().Accumulative {
		return 0, min(day*perDay, bankLen)
	}
	start = min((day-1)*perDay, bankLen)
	end = min(start+perDay, bankLen)
	return start, end
}

// Slice returns the unshuffled records for day. It fails with
// ErrInvalidDay for day < 1 and ErrSelectionEmpty when nothing is left.
func Slice(all []questionbank.Question, day int, m mode.Mode, perDay int) ([]questionbank.Question, error) {
	if day < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDay, day)
	}
	start, end := Window(len(all), day, m, perDay)
	if start >= end {
		return nil, fmt.Errorf("%w (day %d)", ErrSelectionEmpty, day)
	}
	out := make([]questionbank.Question, end-start)
	copy(out, all[start:end])
	return out, nil
}

// SelectQuestions returns the records for day in a uniformly shuffled
// order. r may be nil to use the global source.
func SelectQuestions(all []questionbank.Question, day int, m mode.Mode, perDay int, r *rand.Rand) ([]questionbank.Question, error) {
	qs, err := Slice(all, day, m, perDay)
	if err != nil {
		return nil, err
	}
	return Shuffle(qs, r), nil
}

// Shuffle returns a shuffled copy of items. The input is not modified.
func Shuffle[T any](items []T, r *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)
	swap := func(i, j int) { out[i], out[j] = out[j], out[i] }
	if r != nil {
		r.Shuffle(len(out), swap)
	} else {
		rand.Shuffle(len(out), swap)
	}
	return out
}
