package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abhisek/quizday/internal/app"
	"github.com/abhisek/quizday/internal/catalog"
	"github.com/abhisek/quizday/internal/config"
	"github.com/abhisek/quizday/internal/logging"
	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/prefs"
	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/screen"
	"github.com/abhisek/quizday/internal/store"
	"github.com/spf13/cobra"
)

// deps holds what every subcommand builds from config and flags.
type deps struct {
	cfg     *config.Config
	logger  *slog.Logger
	source  questionbank.Source
	loader  *questionbank.Loader
	closers []io.Closer
}

func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i].Close()
	}
}

// newDeps resolves configuration (flags over environment over defaults)
// and builds the logger and question bank source. Interactive commands
// log to QUIZDAY_LOG_FILE, or nowhere, so the alternate screen stays clean;
// the rest log to stderr.
func newDeps(cmd *cobra.Command, interactive bool) (*deps, error) {
	cfg := config.Load()
	if v, _ := cmd.Flags().GetString("bank-url"); v != "" {
		cfg.BankURL = v
	}
	if v, _ := cmd.Flags().GetString("bank-dir"); v != "" {
		cfg.BankDir = v
	}
	if v, _ := cmd.Flags().GetInt("per-day"); v > 0 {
		cfg.QuestionsPerDay = v
	}

	d := &deps{cfg: cfg}
	switch {
	case cfg.LogFile != "":
		logger, closer, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		d.logger = logger
		d.closers = append(d.closers, closer)
	case interactive:
		d.logger = slog.New(slog.DiscardHandler)
	default:
		d.logger = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	}

	if cfg.BankURL != "" {
		d.source = questionbank.NewHTTPSource(cfg.BankURL, cfg.FetchTimeout)
	} else {
		d.source = questionbank.NewDirSource(cfg.BankDir)
	}
	d.loader = questionbank.NewLoader(d.source, d.logger)

	d.logger.Debug("configuration resolved",
		"bank_url", cfg.BankURL,
		"bank_dir", cfg.BankDir,
		"per_day", cfg.QuestionsPerDay,
	)
	return d, nil
}

// catalog loads the theme manifest, falling back to the built-in list.
func (d *deps) catalog(ctx context.Context) *catalog.Catalog {
	cat, err := catalog.Load(ctx, d.source, d.logger)
	if err != nil {
		d.logger.Warn("theme catalog unavailable, using built-in", "error", err)
		return catalog.Builtin()
	}
	return cat
}

// openPrefs opens the preference store at the resolved database path.
func (d *deps) openPrefs(cmd *cobra.Command) (*prefs.Prefs, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	d.closers = append(d.closers, st)
	return prefs.New(st), nil
}

// appSelection is the part of the theme/mode/day choice given on the
// command line.
type appSelection struct {
	Theme string
	Mode  mode.Mode
	Day   int
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, sel appSelection) error {
	ctx := cmd.Context()

	d, err := newDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	p, err := d.openPrefs(cmd)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	env := &screen.Env{
		Loader:    d.loader,
		Catalog:   d.catalog(ctx),
		Prefs:     p,
		PerDay:    d.cfg.QuestionsPerDay,
		ExportDir: cwd,
		Logger:    d.logger,
	}
	if sel.Theme != "" {
		if _, err := env.Catalog.Lookup(sel.Theme); err != nil {
			return err
		}
	}

	return app.Run(app.Options{
		Env:   env,
		Theme: sel.Theme,
		Mode:  sel.Mode,
		Day:   sel.Day,
	})
}
