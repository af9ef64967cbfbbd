package mode

import (
	"errors"
	"fmt"
	"strings"
)

// Mode identifies a practice style.
type Mode string

const (
	Daywise      Mode = "daywise"
	Accumulative Mode = "accumulative"
	Flashcard    Mode = "flashcard"
	Cloze        Mode = "cloze"
)

// ErrUnknownMode is returned by Parse for identifiers outside the known set.
var ErrUnknownMode = errors.New("unknown mode")

// Capabilities is the set of behaviors a mode turns on. Callers check
// these flags explicitly instead of relying on per-mode overrides.
type Capabilities struct {
	// Scoring enables answer submission, score and accuracy.
	Scoring bool
	// Timing starts the session timer.
	Timing bool
	// FreeText validates typed answers with normalization instead of
	// matching a selected choice verbatim.
	FreeText bool
	// Accumulative selects every question up to and including the day.
	Accumulative bool
}

// Info is the user-facing description of a mode.
type Info struct {
	Mode        Mode
	Name        string
	Description string
}

var capabilities = map[Mode]Capabilities{
	Daywise:      {Scoring: true, Timing: true},
	Accumulative: {Scoring: true, Timing: true, Accumulative: true},
	Flashcard:    {},
	Cloze:        {Scoring: true, Timing: true, FreeText: true},
}

var infos = []Info{
	{Mode: Daywise, Name: "Day-wise Target", Description: "5 new questions each day"},
	{Mode: Accumulative, Name: "Accumulative", Description: "Questions accumulate each day"},
	{Mode: Flashcard, Name: "Flashcard Mode", Description: "Tap to reveal answers"},
	{Mode: Cloze, Name: "Cloze Test Mode", Description: "Type the answers"},
}

// All returns the display info for every mode in menu order.
func All() []Info {
	out := make([]Info, len(infos))
	copy(out, infos)
	return out
}

// Parse converts a string identifier into a Mode.
func Parse(s string) (Mode, error) {
	m := Mode(strings.TrimSpace(s))
	if _, ok := capabilities[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	_, ok := capabilities[m]
	return ok
}

// Capabilities returns the behavior flags for m. Unknown modes have none.
func (m Mode) Capabilities() Capabilities {
	return capabilities[m]
}

// Info returns the display info for m.
func (m Mode) Info() Info {
	for _, in := range infos {
		if in.Mode == m {
			return in
		}
	}
	return Info{Mode: m, Name: string(m)}
}

// ItemNoun is the plural noun used in day labels.
func (m Mode) ItemNoun() string {
	if m == Flashcard {
		return "flashcards"
	}
	return "questions"
}

func (m Mode) String() string {
	return string(m)
}
