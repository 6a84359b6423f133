package bot

import (
	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/services/feedback"
)

// MaxEnumerableLength bounds the candidate space the consistent strategy will walk
const MaxEnumerableLength = 6

// ConsistentStrategy picks uniformly among the codes that would have
// produced every feedback seen so far
type ConsistentStrategy struct {
	random random.Random
}

// NewConsistentStrategy creates a new ConsistentStrategy
func NewConsistentStrategy(rnd random.Random) *ConsistentStrategy {
	return &ConsistentStrategy{random: rnd}
}

func (s *ConsistentStrategy) NextGuess(mode model.Mode, length int, turns []model.Turn) (model.Code, error) {
	candidates, err := Candidates(mode, length, turns)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, model.ErrNoCandidates
	}
	return candidates[s.random.Intn(len(candidates))], nil
}

// Candidates lists, in ascending order, every code valid for mode that is
// consistent with turns
func Candidates(mode model.Mode, length int, turns []model.Turn) ([]model.Code, error) {
	if !mode.Valid() {
		return nil, model.ErrInvalidMode
	}
	if !mode.SupportsLength(length) || length > MaxEnumerableLength {
		return nil, model.ErrCodeLengthUnsupported
	}

	var out []model.Code
	code := make(model.Code, length)

	var walk func(pos int)
	walk = func(pos int) {
		if pos == length {
			if consistent(code, turns) {
				out = append(out, append(model.Code(nil), code...))
			}
			return
		}
		for d := 0; d <= 9; d++ {
			if mode == model.ModeUnique && code[:pos].Contains(d) {
				continue
			}
			code[pos] = d
			walk(pos + 1)
		}
	}
	walk(0)

	return out, nil
}

func consistent(candidate model.Code, turns []model.Turn) bool {
	for _, t := range turns {
		fb, err := feedback.Compute(candidate, t.Guess)
		if err != nil || fb != t.Feedback {
			return false
		}
	}
	return true
}
