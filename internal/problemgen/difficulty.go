package problemgen

import "fmt"

const (
	// HistoryWindow is the number of trailing outcomes that influence difficulty.
	HistoryWindow = 10

	// MinWindowForAdjustment is the smallest window that can trigger narrowing.
	MinWindowForAdjustment = 5

	// StrugglingThreshold is the success rate below which the hardest tier is dropped.
	StrugglingThreshold = 0.6
)

// DifficultyConfig is the set of tiers and operations a problem may be drawn from.
// It is derived fresh for every problem and never persisted.
type DifficultyConfig struct {
	Tiers      []Tier
	Operations []Operation
}

// level is one step of the score ladder.
type level struct {
	minScore   int
	tierCount  int
	operations []Operation
}

// levels is ordered by descending minScore so the first match wins.
var levels = []level{
	{minScore: 70, tierCount: 6, operations: []Operation{OpAddition, OpSubtraction}},
	{minScore: 50, tierCount: 5, operations: []Operation{OpAddition, OpSubtraction}},
	{minScore: 35, tierCount: 4, operations: []Operation{OpAddition, OpSubtraction}},
	{minScore: 20, tierCount: 3, operations: []Operation{OpAddition, OpSubtraction}},
	{minScore: 10, tierCount: 1, operations: []Operation{OpAddition, OpSubtraction}},
	{minScore: 0, tierCount: 1, operations: []Operation{OpAddition}},
}

// SelectDifficulty derives the DifficultyConfig for a score and outcome history.
//
// The score picks a prefix of AllTiers and the allowed operations. If at least
// MinWindowForAdjustment of the last HistoryWindow outcomes are present and
// their success rate is below StrugglingThreshold, the hardest available tier
// is dropped, never going below one tier.
func SelectDifficulty(score int, history []bool) (DifficultyConfig, error) {
	if score < 0 {
		return DifficultyConfig{}, fmt.Errorf("%w: score %d is negative", ErrInvalidArgument, score)
	}

	var lv level
	for _, l := range levels {
		if score >= l.minScore {
			lv = l
			break
		}
	}

	available := AllTiers()[:lv.tierCount]

	rate, window := RecentSuccessRate(history)
	if window >= MinWindowForAdjustment && rate < StrugglingThreshold && len(available) > 1 {
		available = available[:len(available)-1]
	}

	ops := make([]Operation, len(lv.operations))
	copy(ops, lv.operations)

	return DifficultyConfig{Tiers: available, Operations: ops}, nil
}

// RecentSuccessRate returns the fraction of correct outcomes among the last
// HistoryWindow entries of history, together with the window length used.
// An empty history yields a rate of 0.5 and a window of 0.
func RecentSuccessRate(history []bool) (float64, int) {
	if len(history) > HistoryWindow {
		history = history[len(history)-HistoryWindow:]
	}
	if len(history) == 0 {
		return 0.5, 0
	}
	correct := 0
	for _, ok := range history {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(history)), len(history)
}
