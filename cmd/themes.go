package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/selection"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List themes with their question and day counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		cat := d.catalog(ctx)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-24s  %-32s  %9s  %4s\n", "ID", "Name", "Questions", "Days")
		fmt.Fprintln(out, strings.Repeat("─", 75))

		for _, t := range cat.Themes {
			qs, err := d.loader.Load(ctx, t.ID)
			if err != nil {
				d.logger.Debug("theme unavailable", "theme", t.ID, "error", err)
				fmt.Fprintf(out, "%-24s  %-32s  %9s  %4s\n", t.ID, t.Name, "-", "-")
				continue
			}
			fmt.Fprintf(out, "%-24s  %-32s  %9d  %4d\n",
				t.ID, t.Name, len(qs), selection.DayCount(len(qs), d.cfg.QuestionsPerDay))
		}

		fmt.Fprintf(out, "\n%d themes (catalog %s)\n", len(cat.Themes), cat.Version)
		return nil
	},
}

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List the days available for a theme and mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		themeID, _ := cmd.Flags().GetString("theme")
		modeVal, _ := cmd.Flags().GetString("mode")

		m, err := mode.Parse(modeVal)
		if err != nil {
			return err
		}

		d, err := newDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		ctx := cmd.Context()
		qs, err := d.loader.Load(ctx, themeID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, day := range selection.Days(len(qs), m, d.cfg.QuestionsPerDay) {
			fmt.Fprintln(out, day.Label)
		}
		return nil
	},
}

func init() {
	daysCmd.Flags().String("theme", "", "Theme ID (required)")
	daysCmd.Flags().String("mode", string(mode.Daywise), "Practice mode")
	_ = daysCmd.MarkFlagRequired("theme")
}
