package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/simpletype/internal/reading"
	"github.com/abhisek/simpletype/internal/session"
	"github.com/abhisek/simpletype/internal/ui/components"
	"github.com/abhisek/simpletype/internal/ui/theme"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Practice typing a paragraph",
	Long: `Type a short paragraph, one or more lines at a time, from stdin.

Letters are compared without case and spaces and punctuation can be skipped
unless switched on with the flags below. A wrong key keeps the cursor where
it is.`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().Int("paragraph", -1, "Paragraph ID, -1 picks one at random")
	readCmd.Flags().Bool("capitals", false, "Require matching case (overrides SIMPLETYPE_CAPITALS)")
	readCmd.Flags().Bool("spaces", false, "Require typing spaces (overrides SIMPLETYPE_SPACES)")
	readCmd.Flags().Bool("punctuation", false, "Require typing punctuation (overrides SIMPLETYPE_PUNCTUATION)")
}

func runRead(cmd *cobra.Command, args []string) error {
	id, _ := cmd.Flags().GetInt("paragraph")

	match := cfg.Match
	for name, dst := range map[string]*bool{
		"capitals":    &match.CapitalLetters,
		"spaces":      &match.Spaces,
		"punctuation": &match.Punctuation,
	} {
		if cmd.Flags().Changed(name) {
			*dst, _ = cmd.Flags().GetBool(name)
		}
	}

	var p reading.Paragraph
	if id < 0 {
		p = reading.NewDeck(newRand()).Next()
	} else {
		var err error
		if p, err = reading.Get(id); err != nil {
			return err
		}
	}

	sess := session.NewReadingSession(p, match, logger)
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("── Paragraph %d ──", p.ID)))
	fmt.Fprintln(out, p.Text)
	fmt.Fprintln(out)

	for !sess.Done() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		for _, r := range scanner.Text() {
			if _, err := sess.Type(r); err != nil {
				if errors.Is(err, session.ErrComplete) {
					break
				}
				return err
			}
		}
		bar := components.NewProgressBar("", sess.Progress(), true, 40)
		fmt.Fprintf(out, "%s  %s %d  %s %d\n",
			bar.View(), theme.Mark(true), sess.Correct, theme.Mark(false), sess.Incorrect)
	}

	sum := sess.Summary()
	status := "Stopped"
	if sess.Done() {
		status = "Complete"
	}
	fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("── %s: %d correct, %d mistakes, %.0f%% accuracy ──",
		status, sum.Correct, sum.Incorrect, sum.Accuracy*100)))
	fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Time: %s", sum.Duration.Round(100*time.Millisecond))))
	return nil
}
