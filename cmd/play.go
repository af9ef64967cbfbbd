package cmd

import (
	"fmt"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	Long: `Open the practice app. Flags skip the matching selection screens;
with --theme, --mode and --day all set the session starts immediately.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		themeID, _ := cmd.Flags().GetString("theme")
		modeVal, _ := cmd.Flags().GetString("mode")
		day, _ := cmd.Flags().GetInt("day")

		sel := appSelection{Theme: themeID, Day: day}
		if modeVal != "" {
			m, err := mode.Parse(modeVal)
			if err != nil {
				return err
			}
			sel.Mode = m
		}
		if day < 0 {
			return fmt.Errorf("invalid day %d: days start at 1", day)
		}
		if (sel.Mode != "" || day > 0) && themeID == "" {
			return fmt.Errorf("--mode and --day need --theme")
		}
		if day > 0 && sel.Mode == "" {
			return fmt.Errorf("--day needs --mode")
		}

		return runApp(cmd, sel)
	},
}

func init() {
	playCmd.Flags().String("theme", "", "Theme ID (see `quizday themes`)")
	playCmd.Flags().String("mode", "", "Practice mode: daywise, accumulative, flashcard or cloze")
	playCmd.Flags().Int("day", 0, "Day number, starting at 1")
}
