package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved theme, mode and day",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		p, err := d.openPrefs(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if err := p.Clear(ctx); err != nil {
			return fmt.Errorf("clear preferences: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved selections cleared.")
		return nil
	},
}
