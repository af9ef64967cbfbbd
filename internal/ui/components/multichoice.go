package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizday/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It only tracks the cursor and
// the chosen option; grading is left to the caller.
type MultiChoice struct {
	Options   []string
	Selected  int
	Submitted bool
	Chosen    int
	Correct   string
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
	}
}

// Update moves the cursor with arrows or j/k. Enter, or a number key for
// the first nine options, chooses an option; the returned bool reports
// whether a choice was made by this message.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	if m.Submitted {
		return m, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		if len(m.Options) > 0 {
			return m, true
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(m.Options) && n <= 9 {
			m.Selected = n - 1
			return m, true
		}
	}

	return m, false
}

// Value returns the option under the cursor.
func (m MultiChoice) Value() string {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return ""
	}
	return m.Options[m.Selected]
}

// Submit freezes the selector and records the correct option for display.
func (m *MultiChoice) Submit(correct string) {
	m.Submitted = true
	m.Chosen = m.Selected
	m.Correct = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)

		switch {
		case m.Submitted && opt == m.Correct:
			b.WriteString(theme.Correct.Render(line))
		case m.Submitted && i == m.Chosen:
			b.WriteString(theme.Incorrect.Render(line))
		case m.Submitted:
			b.WriteString(theme.Subtitle.Render(line))
		case i == m.Selected:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
