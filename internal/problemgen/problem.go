package problemgen

import "fmt"

const (
	// MaxFactor caps multiplication operands and division divisors and quotients.
	MaxFactor = 12

	// MinDivisor keeps division problems from dividing by 0 or 1.
	MinDivisor = 2
)

// GenerateProblem draws one problem from cfg using r.
//
// Draws happen in a fixed order: tier, operation, num1, num2 and, for
// division, the quotient. Given the same sequence of draws the result is
// fully determined.
func GenerateProblem(r Rand, cfg DifficultyConfig) (Problem, error) {
	if len(cfg.Tiers) == 0 {
		return Problem{}, fmt.Errorf("%w: no tiers available", ErrInvalidArgument)
	}
	if len(cfg.Operations) == 0 {
		return Problem{}, fmt.Errorf("%w: no operations available", ErrInvalidArgument)
	}

	tier := cfg.Tiers[r.IntN(len(cfg.Tiers))]
	op := cfg.Operations[r.IntN(len(cfg.Operations))]
	if !op.Valid() {
		return Problem{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, op)
	}

	num1, err := drawNumber(r, tier.Num1Range)
	if err != nil {
		return Problem{}, fmt.Errorf("tier %s num1: %w", tier.ID, err)
	}
	num2, err := drawNumber(r, tier.Num2Range)
	if err != nil {
		return Problem{}, fmt.Errorf("tier %s num2: %w", tier.ID, err)
	}

	var answer int
	switch op {
	case OpAddition:
		answer = num1 + num2
	case OpSubtraction:
		// Keep results non-negative.
		if num1 < num2 {
			num1, num2 = num2, num1
		}
		answer = num1 - num2
	case OpMultiplication:
		num1 = min(num1, MaxFactor)
		num2 = min(num2, MaxFactor)
		answer = num1 * num2
	case OpDivision:
		// Build the dividend from the quotient so the division is exact.
		num2 = max(MinDivisor, min(num2, MaxFactor))
		answer, _ = drawNumber(r, NumberRange{Min: 1, Max: MaxFactor})
		num1 = num2 * answer
	}

	return Problem{Num1: num1, Num2: num2, Operation: op, Answer: answer}, nil
}

// drawNumber returns a uniform integer in the closed range.
func drawNumber(r Rand, nr NumberRange) (int, error) {
	if nr.Max < nr.Min {
		return 0, fmt.Errorf("%w: range [%d, %d] is empty", ErrInvalidArgument, nr.Min, nr.Max)
	}
	return nr.Min + r.IntN(nr.Max-nr.Min+1), nil
}
