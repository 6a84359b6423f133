package bot

import (
	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/services/feedback"
)

// RandomStrategy guesses any valid code, ignoring feedback
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

func (s *RandomStrategy) NextGuess(mode model.Mode, length int, turns []model.Turn) (model.Code, error) {
	return feedback.Generate(s.random, mode, length)
}
