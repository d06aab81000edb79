package problemgen

import (
	"strconv"
	"strings"
)

// tileLabels names the multiple choice tiles in display order.
var tileLabels = [ChoiceCount]string{"A", "B", "C", "D"}

// TileLabel returns the display label for the i-th choice (0-based).
func TileLabel(i int) string {
	if i < 0 || i >= len(tileLabels) {
		return "?"
	}
	return tileLabels[i]
}

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - Leading zeros are ignored (e.g., "007" matches "7")
// - For multiple choice: matches against the choice value, its 1-based
//   index (1-4) or its tile label (A-D, case-insensitive)
func CheckAnswer(learnerAnswer string, question *Question) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}

	if question.Format == FormatMultipleChoice {
		return checkMultipleChoice(learnerAnswer, question)
	}

	n, ok := parseInteger(learnerAnswer)
	return ok && n == question.Answer
}

// checkMultipleChoice checks the learner's answer against MC choices.
func checkMultipleChoice(learnerAnswer string, question *Question) bool {
	// Match by tile label.
	for i, label := range tileLabels {
		if i < len(question.Choices) && strings.EqualFold(learnerAnswer, label) {
			return question.Choices[i] == question.Answer
		}
	}

	n, ok := parseInteger(learnerAnswer)
	if !ok {
		return false
	}

	// A value that is one of the choices is taken literally.
	for _, c := range question.Choices {
		if c == n {
			return n == question.Answer
		}
	}

	// Otherwise try matching by index (1-4).
	if n >= 1 && n <= len(question.Choices) {
		return question.Choices[n-1] == question.Answer
	}
	return false
}

// parseInteger parses a base-10 integer, ignoring surrounding whitespace.
func parseInteger(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
