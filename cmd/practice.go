package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/abhisek/quizday/internal/answer"
	"github.com/abhisek/quizday/internal/export"
	"github.com/abhisek/quizday/internal/mode"
	"github.com/abhisek/quizday/internal/session"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run a session in plain line mode (no TUI)",
	Long: `Ask one day's questions on stdin/stdout.

Multiple-choice questions accept the option number or its text. Flashcard
mode shows each card and reveals the answer on Enter.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("theme", "", "Theme ID (required)")
	practiceCmd.Flags().String("mode", string(mode.Daywise), "Practice mode: daywise, accumulative, flashcard or cloze")
	practiceCmd.Flags().Int("day", 1, "Day number, starting at 1")
	practiceCmd.Flags().String("export", "", "Write the result to this .md or .json file")
	_ = practiceCmd.MarkFlagRequired("theme")
}

func runPractice(cmd *cobra.Command, args []string) error {
	themeID, _ := cmd.Flags().GetString("theme")
	modeVal, _ := cmd.Flags().GetString("mode")
	day, _ := cmd.Flags().GetInt("day")
	exportPath, _ := cmd.Flags().GetString("export")

	m, err := mode.Parse(modeVal)
	if err != nil {
		return err
	}

	var format export.Format
	if exportPath != "" {
		if format, err = export.ParseFormat(filepath.Ext(exportPath)); err != nil {
			return err
		}
	}

	d, err := newDeps(cmd, false)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()
	cat := d.catalog(ctx)

	cfg := session.Config{Theme: themeID, Day: day, Mode: m, QuestionsPerDay: d.cfg.QuestionsPerDay}
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintf(out, "%s · %s · Day %d\n\n", cat.Name(themeID), m.Info().Name, day)

	if !m.Capabilities().Scoring {
		cards, err := session.Prepare(ctx, d.loader, cfg, nil)
		if err != nil {
			return err
		}
		reviewDeck(out, in, session.NewDeck(cards, true))
		return nil
	}

	ctrl := session.New(cfg, session.WithLogger(d.logger))
	defer ctrl.Close()
	if err := ctrl.Load(ctx, d.loader); err != nil {
		return err
	}

	if !askAll(out, in, ctrl) {
		fmt.Fprintln(out, "\n(input closed)")
		return nil
	}

	sum, _ := ctrl.Summary()
	printSummary(out, sum)

	if exportPath != "" {
		report := export.Report{
			ThemeName: cat.Name(themeID),
			ModeName:  m.Info().Name,
			Summary:   sum,
		}
		if err := export.WriteFile(exportPath, report, format); err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved to %s\n", exportPath)
	}
	return nil
}

// askAll runs the controller to completion. It returns false when input
// ends first.
func askAll(out io.Writer, in *bufio.Scanner, ctrl *session.Controller) bool {
	for ctrl.Phase() == session.PhaseInProgress {
		p, _ := ctrl.Current()

		fmt.Fprintf(out, "── Question %d/%d ──\n", p.Index+1, p.Total)
		fmt.Fprintln(out, p.Question.Prompt)
		for j, c := range p.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, c)
		}

		var fb session.Feedback
		for {
			fmt.Fprint(out, "\nYour answer: ")
			if !in.Scan() {
				return false
			}
			raw := in.Text()
			if !p.FreeText && strings.TrimSpace(raw) != "" {
				choice, ok := answer.ResolveChoice(raw, p.Options)
				if !ok {
					fmt.Fprintf(out, "(pick one of the options, 1-%d)\n", len(p.Options))
					continue
				}
				raw = choice
			}

			var err error
			fb, err = ctrl.SubmitAnswer(raw)
			if errors.Is(err, session.ErrEmptyAnswer) {
				fmt.Fprintln(out, "(an answer is required)")
				continue
			}
			if err != nil {
				fmt.Fprintf(out, "(%v)\n", err)
				continue
			}
			break
		}

		if fb.Correct {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s\n", fb.CorrectAnswer)
		}
		fmt.Fprintf(out, "Explanation: %s\n\n", fb.Explanation)

		_ = ctrl.Advance()
	}
	return true
}

func printSummary(out io.Writer, sum session.Summary) {
	fmt.Fprintf(out, "── Summary: %d/%d correct (%d%%) in %s ──\n",
		sum.Score, sum.Total, sum.AccuracyPercent, sum.Elapsed)
	for i, w := range sum.WrongAnswers {
		fmt.Fprintf(out, "%d. %s\n   You said: %s\n   Answer:   %s\n",
			i+1, w.Question, w.UserAnswer, w.CorrectAnswer)
	}
}

func reviewDeck(out io.Writer, in *bufio.Scanner, deck *session.Deck) {
	for !deck.Completed() {
		card, ok := deck.Current()
		if !ok {
			fmt.Fprintln(out, "No flashcards for this day.")
			return
		}
		fmt.Fprintf(out, "── Card %d/%d ──\n%s\n", deck.Index()+1, deck.Len(), card.Prompt)
		fmt.Fprint(out, "(Enter to flip) ")
		if !in.Scan() {
			return
		}
		deck.Flip()
		fmt.Fprintf(out, "→ %s\n", card.Answer)
		if card.Explanation != "" {
			fmt.Fprintln(out, "  "+card.Explanation)
		}
		fmt.Fprintln(out)
		deck.Next()
	}
	fmt.Fprintf(out, "You reviewed all %d flashcards.\n", deck.Len())
}
