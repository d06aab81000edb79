package problemgen

import "fmt"

// ChoicesValidator checks multiple choice constraints: exactly ChoiceCount
// distinct options, the answer present exactly once, and every wrong option
// positive and within DistractorSpread of the answer. Numeric questions must
// carry no choices.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(q *Question) *ValidationError {
	if q.Format == FormatNumeric {
		if len(q.Choices) > 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "numeric format must have empty choices",
			}
		}
		return nil
	}

	if len(q.Choices) != ChoiceCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("multiple choice must have exactly %d choices, got %d", ChoiceCount, len(q.Choices)),
		}
	}

	seen := make(map[int]bool, ChoiceCount)
	found := 0
	for _, c := range q.Choices {
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice %d", c),
			}
		}
		seen[c] = true

		if c == q.Answer {
			found++
			continue
		}
		if c <= 0 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("choice %d is not positive", c),
			}
		}
		if c < q.Answer-DistractorSpread || c > q.Answer+DistractorSpread {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("choice %d is more than %d away from answer %d", c, DistractorSpread, q.Answer),
			}
		}
	}
	if found != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %d not found in choices", q.Answer),
		}
	}
	return nil
}
