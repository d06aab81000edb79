package session

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/simpletype/internal/problemgen"
)

func newMathSession(t *testing.T, format problemgen.AnswerFormat) (*MathSession, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	gen := problemgen.New(problemgen.NewRand(42), problemgen.DefaultConfig())
	return NewMathSession(gen, format, zap.New(core)), logs
}

func TestMathSession_AnswerWithoutQuestion(t *testing.T) {
	s, _ := newMathSession(t, problemgen.FormatNumeric)
	_, err := s.Answer("3")
	assert.ErrorIs(t, err, ErrNoQuestion)
}

func TestMathSession_ScoresAnswers(t *testing.T) {
	s, _ := newMathSession(t, problemgen.FormatNumeric)
	require.NotEmpty(t, s.ID)

	q, err := s.Next()
	require.NoError(t, err)
	require.Same(t, q, s.Current)

	res, err := s.Answer(" " + strconv.Itoa(q.Answer) + " ")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, q.Answer, res.Expected)
	assert.Equal(t, 1, res.Score)
	assert.Nil(t, s.Current)

	q, err = s.Next()
	require.NoError(t, err)
	res, err = s.Answer(strconv.Itoa(q.Answer + 1))
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, []bool{true, false}, s.Progress.History)

	_, err = s.Answer("1")
	assert.ErrorIs(t, err, ErrNoQuestion)
}

func TestMathSession_BeginnerGetsSingleDigitAddition(t *testing.T) {
	s, _ := newMathSession(t, problemgen.FormatNumeric)
	tier, _ := problemgen.TierByID(problemgen.TierSingleSingle)

	for i := 0; i < 50; i++ {
		q, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, problemgen.OpAddition, q.Operation)
		assert.True(t, tier.Num1Range.Contains(q.Num1))
		assert.True(t, tier.Num2Range.Contains(q.Num2))
	}
}

func TestMathSession_MultipleChoice(t *testing.T) {
	s, _ := newMathSession(t, problemgen.FormatMultipleChoice)

	q, err := s.Next()
	require.NoError(t, err)
	require.Len(t, q.Choices, problemgen.ChoiceCount)

	idx := -1
	for i, c := range q.Choices {
		if c == q.Answer {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)

	res, err := s.Answer(problemgen.TileLabel(idx))
	require.NoError(t, err)
	assert.True(t, res.Correct)
}

func TestMathSession_SetOperations(t *testing.T) {
	s, _ := newMathSession(t, problemgen.FormatNumeric)
	s.SetOperations([]problemgen.Operation{problemgen.OpMultiplication})

	q, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, problemgen.OpMultiplication, q.Operation)

	s.SetOperations(nil)
	dc, err := s.Difficulty()
	require.NoError(t, err)
	assert.Equal(t, []problemgen.Operation{problemgen.OpAddition}, dc.Operations)
}

func TestMathSession_LogsDifficultyChange(t *testing.T) {
	s, logs := newMathSession(t, problemgen.FormatNumeric)

	_, err := s.Next()
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("difficulty changed").Len())

	s.Progress.Score = 20
	_, err = s.Next()
	require.NoError(t, err)

	changed := logs.FilterMessage("difficulty changed").All()
	require.Len(t, changed, 1)
	fields := changed[0].ContextMap()
	assert.EqualValues(t, 1, fields["from_tiers"])
	assert.EqualValues(t, 3, fields["to_tiers"])
}

func TestMathSession_Reset(t *testing.T) {
	s, _ := newMathSession(t, problemgen.FormatNumeric)
	s.Progress.Record(true)
	_, err := s.Next()
	require.NoError(t, err)

	s.Reset()
	assert.Zero(t, s.Progress.Score)
	assert.Empty(t, s.Progress.History)
	assert.Nil(t, s.Current)
}

func TestNewMathSession_NilLogger(t *testing.T) {
	gen := problemgen.New(problemgen.NewRand(1), problemgen.DefaultConfig())
	s := NewMathSession(gen, problemgen.FormatNumeric, nil)
	_, err := s.Next()
	assert.NoError(t, err)
}
