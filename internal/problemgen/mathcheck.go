package problemgen

import "fmt"

// MathCheckValidator independently recomputes the answer from the operands
// and enforces the per-operation constraints young learners rely on:
// non-negative differences, small factors and exact division.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	computed, err := computeAnswer(q.Problem)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if computed != q.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but problem claims %d for %s", computed, q.Answer, q.Problem),
		}
	}
	return nil
}

// computeAnswer evaluates p and checks the operation's constraints.
func computeAnswer(p Problem) (int, error) {
	switch p.Operation {
	case OpAddition:
		return p.Num1 + p.Num2, nil
	case OpSubtraction:
		if p.Num1 < p.Num2 {
			return 0, fmt.Errorf("subtraction %s has a negative result", p)
		}
		return p.Num1 - p.Num2, nil
	case OpMultiplication:
		if p.Num1 > MaxFactor || p.Num2 > MaxFactor {
			return 0, fmt.Errorf("multiplication %s exceeds factor limit %d", p, MaxFactor)
		}
		return p.Num1 * p.Num2, nil
	case OpDivision:
		if p.Num2 < MinDivisor || p.Num2 > MaxFactor {
			return 0, fmt.Errorf("division %s has divisor outside [%d, %d]", p, MinDivisor, MaxFactor)
		}
		if p.Num1%p.Num2 != 0 {
			return 0, fmt.Errorf("division %s leaves a remainder", p)
		}
		return p.Num1 / p.Num2, nil
	default:
		return 0, fmt.Errorf("unsupported operation %q", p.Operation)
	}
}
