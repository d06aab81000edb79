package problemgen

import "testing"

// scriptedRand replays fixed IntN results and leaves Shuffle as identity.
type scriptedRand struct {
	t      *testing.T
	values []int
}

func script(t *testing.T, values ...int) *scriptedRand {
	return &scriptedRand{t: t, values: values}
}

func (s *scriptedRand) IntN(n int) int {
	s.t.Helper()
	if len(s.values) == 0 {
		s.t.Fatalf("scriptedRand: no values left for IntN(%d)", n)
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scriptedRand: value %d out of range for IntN(%d)", v, n)
	}
	return v
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}
