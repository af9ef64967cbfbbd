package screen

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizday/internal/catalog"
	"github.com/abhisek/quizday/internal/prefs"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// ContextProvider is implemented by screens that show the active theme,
// mode or day on the right of the header.
type ContextProvider interface {
	HeaderContext() string
}

// EscapeInterceptor is implemented by screens that handle Esc themselves
// (for example to ask for confirmation) instead of being popped.
type EscapeInterceptor interface {
	InterceptsEscape() bool
}

// Closer is implemented by screens holding resources that must be
// released when they leave the stack.
type Closer interface {
	Close()
}

// Env carries the dependencies shared by every screen.
type Env struct {
	Loader    *questionbank.Loader
	Catalog   *catalog.Catalog
	Prefs     *prefs.Prefs
	PerDay    int
	ExportDir string
	Logger    *slog.Logger
}
