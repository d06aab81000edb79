package problemgen

import "fmt"

// StructuralValidator checks that enum fields are valid and operands are
// non-negative.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if !q.Operation.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("unknown operation %q", q.Operation),
		}
	}
	if q.Format != FormatNumeric && q.Format != FormatMultipleChoice {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "format must be \"numeric\" or \"multiple_choice\"",
		}
	}
	if q.Num1 < 0 || q.Num2 < 0 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("operands must be non-negative, got %d and %d", q.Num1, q.Num2),
		}
	}
	return nil
}
