package problemgen

import "fmt"

// Generator produces validated questions from a DifficultyConfig.
// A Generator is not safe for concurrent use because its Rand is not.
type Generator struct {
	rand Rand
	cfg  Config
}

// New returns a Generator drawing from r.
func New(r Rand, cfg Config) *Generator {
	return &Generator{rand: r, cfg: cfg}
}

// Generate draws a problem from dc and wraps it for the requested format.
// Multiple choice questions get shuffled distractors. All configured
// validators are run before returning.
func (g *Generator) Generate(dc DifficultyConfig, format AnswerFormat) (*Question, error) {
	p, err := GenerateProblem(g.rand, dc)
	if err != nil {
		return nil, fmt.Errorf("generate problem: %w", err)
	}

	q := &Question{Problem: p, Format: format}
	if format == FormatMultipleChoice {
		choices, err := GenerateDistractors(g.rand, p.Answer)
		if err != nil {
			return nil, fmt.Errorf("generate choices: %w", err)
		}
		q.Choices = choices
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}
