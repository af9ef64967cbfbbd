package cmd

import (
	"github.com/abhisek/quizday/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizday",
	Short: "Daily quiz and flashcard practice",
	Long:  "QuizDay: terminal practice sessions over themed question banks, a few questions a day.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, appSelection{})
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDAY_DB env var)")
	rootCmd.PersistentFlags().String("bank-url", "", "Base URL serving themes/<theme>.json (overrides QUIZDAY_BANK_URL)")
	rootCmd.PersistentFlags().String("bank-dir", "", "Directory holding themes/<theme>.json (overrides QUIZDAY_BANK_DIR)")
	rootCmd.PersistentFlags().Int("per-day", 0, "Questions per day (overrides QUIZDAY_QUESTIONS_PER_DAY)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(daysCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDAY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
