package problemgen

import "fmt"

const (
	// ChoiceCount is the number of tiles offered in multiple choice.
	ChoiceCount = 4

	// DistractorSpread bounds how far a wrong option may be from the answer.
	DistractorSpread = 10
)

// GenerateDistractors returns ChoiceCount distinct options in random order:
// correct plus wrong answers drawn from correct±DistractorSpread. Wrong
// answers are always positive.
func GenerateDistractors(r Rand, correct int) ([]int, error) {
	if correct < 0 {
		return nil, fmt.Errorf("%w: correct answer %d is negative", ErrInvalidArgument, correct)
	}

	options := make([]int, 0, ChoiceCount)
	options = append(options, correct)
	seen := map[int]bool{correct: true}

	// correct+1 .. correct+10 are always eligible, so this terminates.
	for len(options) < ChoiceCount {
		offset := r.IntN(2*DistractorSpread+1) - DistractorSpread
		candidate := correct + offset
		if candidate <= 0 || seen[candidate] {
			continue
		}
		seen[candidate] = true
		options = append(options, candidate)
	}

	r.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options, nil
}
