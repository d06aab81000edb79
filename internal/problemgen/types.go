package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// Operation identifies the arithmetic operation of a problem.
type Operation string

const (
	OpAddition       Operation = "addition"
	OpSubtraction    Operation = "subtraction"
	OpMultiplication Operation = "multiplication"
	OpDivision       Operation = "division"
)

// AllOperations returns every supported operation in display order.
func AllOperations() []Operation {
	return []Operation{OpAddition, OpSubtraction, OpMultiplication, OpDivision}
}

// Valid reports whether op is one of the supported operations.
func (op Operation) Valid() bool {
	switch op {
	case OpAddition, OpSubtraction, OpMultiplication, OpDivision:
		return true
	default:
		return false
	}
}

// Symbol returns the operator shown to the learner.
func (op Operation) Symbol() string {
	switch op {
	case OpAddition:
		return "+"
	case OpSubtraction:
		return "-"
	case OpMultiplication:
		return "×"
	case OpDivision:
		return "÷"
	default:
		return "?"
	}
}

// ParseOperation accepts an operation name or its symbol.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "addition", "add", "+":
		return OpAddition, nil
	case "subtraction", "sub", "-":
		return OpSubtraction, nil
	case "multiplication", "mul", "*", "×", "x":
		return OpMultiplication, nil
	case "division", "div", "/", "÷":
		return OpDivision, nil
	default:
		return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, s)
	}
}

// Problem is a generated arithmetic exercise. Num1 and Num2 are the operands
// as displayed, after any swap or clamp applied for the operation.
type Problem struct {
	Num1      int
	Num2      int
	Operation Operation
	Answer    int
}

// String renders the problem as "num1 op num2", e.g. "7 + 5".
func (p Problem) String() string {
	return fmt.Sprintf("%d %s %d", p.Num1, p.Operation.Symbol(), p.Num2)
}

// AnswerFormat describes how the learner provides their answer.
type AnswerFormat string

const (
	// FormatNumeric means the learner types the answer.
	FormatNumeric AnswerFormat = "numeric"

	// FormatMultipleChoice means the learner picks one of 4 tiles.
	FormatMultipleChoice AnswerFormat = "multiple_choice"
)

// Question is a Problem ready for display in a given answer format.
type Question struct {
	Problem

	// Format indicates how the learner answers this question.
	Format AnswerFormat

	// Choices is populated only when Format is FormatMultipleChoice.
	// Contains exactly 4 options, one of which is Answer.
	Choices []int
}

// Rand is the random source used for generation. *rand.Rand satisfies it;
// tests substitute scripted sources to make draws reproducible.
type Rand interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Shuffle pseudo-randomizes the order of n elements.
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a PCG-backed source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
