package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/quizday/internal/questionbank"
	"github.com/abhisek/quizday/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve question banks over HTTP",
	Long: `Serve themes/<theme>.json and catalog.json from a directory in the
layout the HTTP bank source reads, plus a /health endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := newDeps(cmd, false)
		if err != nil {
			return err
		}
		defer d.Close()

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = d.cfg.BankDir
		}
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = d.cfg.ServeAddr
		}

		ctx := cmd.Context()
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		handler := server.New(questionbank.NewDirSource(dir), d.cfg.QuestionsPerDay, d.logger)
		return server.ListenAndServe(ctx, addr, handler, d.logger)
	},
}

func init() {
	serveCmd.Flags().String("dir", "", "Directory to serve (defaults to QUIZDAY_BANK_DIR)")
	serveCmd.Flags().String("addr", "", "Listen address (defaults to QUIZDAY_SERVE_ADDR)")
}
