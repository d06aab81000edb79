package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/simpletype/internal/problemgen"
)

// ErrNoQuestion is returned by Answer when no question is pending.
var ErrNoQuestion = errors.New("no question pending")

// AnswerResult describes how one answer was scored.
type AnswerResult struct {
	Correct bool

	// Expected is the correct answer of the question that was answered.
	Expected int

	// Score is the score after recording this answer.
	Score int
}

// MathSession drives arithmetic practice: it picks the difficulty from the
// learner's progress, serves one question at a time and scores answers.
type MathSession struct {
	ID       string
	Progress Progress

	// Current is the pending question, nil between questions.
	Current *problemgen.Question

	gen       *problemgen.Generator
	format    problemgen.AnswerFormat
	ops       []problemgen.Operation
	tierCount int
	logger    *zap.Logger
}

// NewMathSession returns a session with an empty progress. A nil logger
// disables logging.
func NewMathSession(gen *problemgen.Generator, format problemgen.AnswerFormat, logger *zap.Logger) *MathSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &MathSession{
		ID:     id,
		gen:    gen,
		format: format,
		logger: logger.With(zap.String("session", id), zap.String("mode", "math")),
	}
}

// SetOperations overrides the operations chosen by the score policy.
// Passing nil restores the policy.
func (s *MathSession) SetOperations(ops []problemgen.Operation) {
	s.ops = ops
}

// Difficulty returns the difficulty the next question will be drawn from.
func (s *MathSession) Difficulty() (problemgen.DifficultyConfig, error) {
	dc, err := problemgen.SelectDifficulty(s.Progress.Score, s.Progress.History)
	if err != nil {
		return problemgen.DifficultyConfig{}, err
	}
	if len(s.ops) > 0 {
		dc.Operations = append([]problemgen.Operation(nil), s.ops...)
	}
	return dc, nil
}

// Next generates a new pending question, replacing any unanswered one.
func (s *MathSession) Next() (*problemgen.Question, error) {
	dc, err := s.Difficulty()
	if err != nil {
		return nil, fmt.Errorf("select difficulty: %w", err)
	}

	if n := len(dc.Tiers); n != s.tierCount {
		if s.tierCount != 0 {
			s.logger.Info("difficulty changed",
				zap.Int("from_tiers", s.tierCount),
				zap.Int("to_tiers", n),
				zap.Int("score", s.Progress.Score))
		}
		s.tierCount = n
	}

	q, err := s.gen.Generate(dc, s.format)
	if err != nil {
		return nil, err
	}
	s.Current = q
	s.logger.Debug("question", zap.Stringer("problem", q.Problem), zap.Ints("choices", q.Choices))
	return q, nil
}

// Answer scores input against the pending question and records the outcome.
func (s *MathSession) Answer(input string) (AnswerResult, error) {
	if s.Current == nil {
		return AnswerResult{}, ErrNoQuestion
	}
	q := s.Current
	s.Current = nil

	correct := problemgen.CheckAnswer(input, q)
	s.Progress.Record(correct)
	s.logger.Debug("answer",
		zap.String("input", input),
		zap.Bool("correct", correct),
		zap.Int("score", s.Progress.Score))

	return AnswerResult{Correct: correct, Expected: q.Answer, Score: s.Progress.Score}, nil
}

// Reset clears progress and drops the pending question.
func (s *MathSession) Reset() {
	s.Progress.Reset()
	s.Current = nil
	s.tierCount = 0
	s.logger.Info("progress reset")
}
