package model

// Feedback is the bulls/cows answer to one guess
type Feedback struct {
	Bulls int `json:"bulls"`
	Cows  int `json:"cows"`
}

// Solved reports whether the feedback means the whole code was found
func (f Feedback) Solved(length int) bool {
	return f.Bulls == length
}

// NoMatches reports whether the guess shared nothing with the secret
func (f Feedback) NoMatches() bool {
	return f.Bulls == 0 && f.Cows == 0
}
