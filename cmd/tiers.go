package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/simpletype/internal/problemgen"
	"github.com/abhisek/simpletype/internal/ui/theme"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show the difficulty tiers and which ones a score unlocks",
	Long: `List the difficulty tiers and the problems a learner would get.

History is a string of recent outcomes, oldest first, with 1 for a correct
answer and 0 for a wrong one, e.g. --history 1101100110.`,
	RunE: runTiers,
}

func init() {
	tiersCmd.Flags().Int("score", 0, "Learner score")
	tiersCmd.Flags().String("history", "", "Recent outcomes as 1s and 0s, oldest first")
}

func runTiers(cmd *cobra.Command, args []string) error {
	score, _ := cmd.Flags().GetInt("score")
	historyVal, _ := cmd.Flags().GetString("history")

	history, err := parseHistory(historyVal)
	if err != nil {
		return err
	}

	dc, err := problemgen.SelectDifficulty(score, history)
	if err != nil {
		return err
	}

	available := make(map[string]bool, len(dc.Tiers))
	for _, t := range dc.Tiers {
		available[t.ID] = true
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-15s %-9s %-9s %s\n", "TIER", "NUM1", "NUM2", "DESCRIPTION")
	for _, t := range problemgen.AllTiers() {
		mark := " "
		if available[t.ID] {
			mark = theme.Mark(true)
		}
		fmt.Fprintf(out, "%s %-13s %-9s %-9s %s\n", mark, t.ID,
			formatRange(t.Num1Range), formatRange(t.Num2Range), t.Description)
	}

	ops := make([]string, len(dc.Operations))
	for i, op := range dc.Operations {
		ops[i] = string(op)
	}
	rate, window := problemgen.RecentSuccessRate(history)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Score:       %d\n", score)
	fmt.Fprintf(out, "Recent:      %.0f%% over %d answers\n", rate*100, window)
	fmt.Fprintf(out, "Operations:  %s\n", strings.Join(ops, ", "))
	fmt.Fprintf(out, "Tiers:       %d of %d\n", len(dc.Tiers), len(problemgen.AllTiers()))
	return nil
}

// parseHistory converts a string like "1101" into answer outcomes.
func parseHistory(s string) ([]bool, error) {
	history := make([]bool, 0, len(s))
	for i, c := range s {
		switch c {
		case '1':
			history = append(history, true)
		case '0':
			history = append(history, false)
		default:
			return nil, fmt.Errorf("invalid history %q: character %d is %q, want 0 or 1", s, i, c)
		}
	}
	return history, nil
}

func formatRange(r problemgen.NumberRange) string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}
