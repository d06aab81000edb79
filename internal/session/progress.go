package session

// Progress is the score and answer history of one learner. It lives only as
// long as the caller keeps it.
type Progress struct {
	// Score counts correct answers.
	Score int

	// History holds every outcome in answer order, oldest first.
	History []bool
}

// Record adds an answer outcome.
func (p *Progress) Record(correct bool) {
	p.History = append(p.History, correct)
	if correct {
		p.Score++
	}
}

// Reset clears score and history.
func (p *Progress) Reset() {
	p.Score = 0
	p.History = nil
}

// Attempts returns the number of recorded answers.
func (p *Progress) Attempts() int {
	return len(p.History)
}

// Accuracy returns the fraction of correct answers, or 0 with no history.
func (p *Progress) Accuracy() float64 {
	if len(p.History) == 0 {
		return 0
	}
	correct := 0
	for _, ok := range p.History {
		if ok {
			correct++
		}
	}
	return float64(correct) / float64(len(p.History))
}
