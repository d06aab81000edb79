package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/simpletype/internal/problemgen"
	"github.com/abhisek/simpletype/internal/session"
	"github.com/abhisek/simpletype/internal/ui/components"
	"github.com/abhisek/simpletype/internal/ui/theme"
)

var mathCmd = &cobra.Command{
	Use:   "math",
	Short: "Practice arithmetic problems",
	Long: `Answer arithmetic problems read from stdin.

Difficulty follows the score: new learners start with single digit addition,
subtraction unlocks at 10 and larger numbers at 20, 35, 50 and 70. In tiles
mode pick an answer by its letter (A-D), its position (1-4) or its value.`,
	RunE: runMath,
}

func init() {
	mathCmd.Flags().Int("score", 0, "Starting score")
	mathCmd.Flags().Int("count", 10, "Number of problems")
	mathCmd.Flags().Bool("tiles", false, "Multiple choice tiles instead of typed answers (overrides SIMPLETYPE_MODE)")
	mathCmd.Flags().StringSlice("ops", nil, "Restrict operations, e.g. --ops mul,div")
}

func runMath(cmd *cobra.Command, args []string) error {
	score, _ := cmd.Flags().GetInt("score")
	count, _ := cmd.Flags().GetInt("count")
	opNames, _ := cmd.Flags().GetStringSlice("ops")

	if score < 0 {
		return fmt.Errorf("invalid score %d: must not be negative", score)
	}

	format := cfg.Format
	if cmd.Flags().Changed("tiles") {
		format = problemgen.FormatNumeric
		if tiles, _ := cmd.Flags().GetBool("tiles"); tiles {
			format = problemgen.FormatMultipleChoice
		}
	}

	var ops []problemgen.Operation
	for _, name := range opNames {
		op, err := problemgen.ParseOperation(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		ops = append(ops, op)
	}

	gen := problemgen.New(newRand(), problemgen.DefaultConfig())
	sess := session.NewMathSession(gen, format, logger)
	sess.Progress.Score = score
	sess.SetOperations(ops)

	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	labels := make([]string, problemgen.ChoiceCount)
	for i := range labels {
		labels[i] = problemgen.TileLabel(i)
	}

	for i := 1; i <= count; i++ {
		q, err := sess.Next()
		if err != nil {
			return fmt.Errorf("problem %d: %w", i, err)
		}

		fmt.Fprintf(out, "── Problem %d/%d ──\n", i, count)
		fmt.Fprintln(out, theme.Prompt.Render(q.Problem.String()+" = ?"))
		if q.Format == problemgen.FormatMultipleChoice {
			fmt.Fprintln(out, components.Tiles(labels, q.Choices))
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out, "\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Fprint(out, "(skipped)\n\n")
			continue
		}

		res, err := sess.Answer(answer)
		if err != nil {
			return err
		}
		if res.Correct {
			fmt.Fprintf(out, "%s Correct! Score: %d\n\n", theme.Mark(true), res.Score)
		} else {
			fmt.Fprintf(out, "%s Not quite. Answer: %d\n\n", theme.Mark(false), res.Expected)
		}
	}

	p := sess.Progress
	correct := p.Score - score
	fmt.Fprintln(out, theme.Title.Render(
		fmt.Sprintf("── Summary: %d/%d correct, score %d ──", correct, p.Attempts(), p.Score)))
	return nil
}
