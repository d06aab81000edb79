package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/simpletype/internal/reading"
	"github.com/abhisek/simpletype/internal/typing"
)

// ErrComplete is returned by Type once the paragraph has been finished.
var ErrComplete = errors.New("paragraph complete")

// ReadingSession tracks one pass of typing a paragraph.
type ReadingSession struct {
	ID        string
	Paragraph reading.Paragraph
	Config    typing.Config

	// Index is the rune position of the next expected character.
	Index int

	Correct   int
	Incorrect int

	total     int
	runes     int
	startedAt time.Time
	endedAt   time.Time
	now       func() time.Time
	logger    *zap.Logger
}

// NewReadingSession starts a session at the first position that needs typing.
// A nil logger disables logging.
func NewReadingSession(p reading.Paragraph, cfg typing.Config, logger *zap.Logger) *ReadingSession {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	s := &ReadingSession{
		ID:        id,
		Paragraph: p,
		Config:    cfg,
		Index:     typing.FirstPosition(p.Text, cfg),
		total:     typing.ActiveCount(p.Text, cfg),
		runes:     typing.Len(p.Text),
		now:       time.Now,
		logger:    logger.With(zap.String("session", id), zap.String("mode", "reading"), zap.Int("paragraph", p.ID)),
	}
	s.startedAt = s.now()
	return s
}

// Type feeds one keystroke to the session.
func (s *ReadingSession) Type(r rune) (typing.Result, error) {
	if s.Done() {
		return typing.Result{}, ErrComplete
	}

	res, err := typing.ProcessInput(r, s.Index, s.Paragraph.Text, s.Config)
	if err != nil {
		return typing.Result{}, err
	}

	if res.Matched {
		s.Correct++
	} else {
		s.Incorrect++
	}
	s.Index = res.NextIndex

	if s.Done() {
		s.endedAt = s.now()
		s.logger.Debug("paragraph complete",
			zap.Int("correct", s.Correct),
			zap.Int("incorrect", s.Incorrect),
			zap.Duration("duration", s.endedAt.Sub(s.startedAt)))
	}
	return res, nil
}

// Done reports whether the cursor has moved past the end of the paragraph.
func (s *ReadingSession) Done() bool {
	return s.Index >= s.runes
}

// Progress returns the fraction of typeable positions already consumed.
func (s *ReadingSession) Progress() float64 {
	if s.Done() || s.total == 0 {
		return 1
	}
	remaining := typing.ActiveCount(string([]rune(s.Paragraph.Text)[s.Index:]), s.Config)
	return float64(s.total-remaining) / float64(s.total)
}

// ReadingSummary is the result shown when a paragraph is finished.
type ReadingSummary struct {
	ParagraphID int
	Correct     int
	Incorrect   int
	Accuracy    float64
	Duration    time.Duration
}

// Summary reports the session's score so far.
func (s *ReadingSession) Summary() ReadingSummary {
	end := s.endedAt
	if end.IsZero() {
		end = s.now()
	}
	var acc float64
	if n := s.Correct + s.Incorrect; n > 0 {
		acc = float64(s.Correct) / float64(n)
	}
	return ReadingSummary{
		ParagraphID: s.Paragraph.ID,
		Correct:     s.Correct,
		Incorrect:   s.Incorrect,
		Accuracy:    acc,
		Duration:    end.Sub(s.startedAt),
	}
}
