package bot

import "github.com/mcoot/bullscows/internal/model"

// Strategy defines how a bot chooses its next guess
type Strategy interface {
	// NextGuess proposes a code given the turns played so far
	NextGuess(mode model.Mode, length int, turns []model.Turn) (model.Code, error)
}
