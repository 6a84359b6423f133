package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/services/feedback"
)

// MaxSolveTurns is a safety limit for the Solve loop
const MaxSolveTurns = 1000

// Service lets a bot play against a known secret or suggest a guess
type Service struct {
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[string]Strategy, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies returns every built-in strategy sharing rnd
func DefaultStrategies(rnd random.Random) map[string]Strategy {
	return map[string]Strategy{
		model.BotStrategyConsistent: NewConsistentStrategy(rnd),
		model.BotStrategyRandom:     NewRandomStrategy(rnd),
	}
}

func (s *Service) strategy(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return st, nil
}

// Solve plays guesses until the secret is found or MaxSolveTurns is reached
func (s *Service) Solve(ctx context.Context, strategyName string, mode model.Mode, secret model.Code) ([]model.Turn, error) {
	st, err := s.strategy(strategyName)
	if err != nil {
		return nil, err
	}

	var turns []model.Turn
	for i := 0; i < MaxSolveTurns; i++ {
		if err := ctx.Err(); err != nil {
			return turns, err
		}

		guess, err := st.NextGuess(mode, len(secret), turns)
		if err != nil {
			return turns, err
		}

		fb, err := feedback.Compute(secret, guess)
		if err != nil {
			return turns, err
		}

		turns = append(turns, model.Turn{Number: i + 1, Guess: guess, Feedback: fb})

		if fb.Solved(len(secret)) {
			s.logger.Info("bot solved code",
				slog.String("strategy", strategyName),
				slog.Int("guesses", len(turns)),
			)
			return turns, nil
		}
	}

	s.logger.Warn("bot hit solve limit",
		slog.String("strategy", strategyName),
		slog.Int("limit", MaxSolveTurns),
	)
	return turns, model.ErrSolveLimit
}

// Hint suggests the next guess for a game in progress
func (s *Service) Hint(ctx context.Context, strategyName string, game *model.Game) (model.Code, error) {
	st, err := s.strategy(strategyName)
	if err != nil {
		return nil, err
	}
	return st.NextGuess(game.Variant.Mode, game.CodeLength(), game.Turns)
}

// Interface for dependency injection
type ServiceInterface interface {
	Solve(ctx context.Context, strategyName string, mode model.Mode, secret model.Code) ([]model.Turn, error)
	Hint(ctx context.Context, strategyName string, game *model.Game) (model.Code, error)
}

var _ ServiceInterface = (*Service)(nil)
