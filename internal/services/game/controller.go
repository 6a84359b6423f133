package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/bullscows/internal/dependencies/clock"
	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/services/feedback"
	"github.com/mcoot/bullscows/internal/services/ledger"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Controller manages the game state machine and turn flow
type Controller struct {
	feedback feedback.ServiceInterface
	ledger   ledger.ServiceInterface
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	feedbackService feedback.ServiceInterface,
	ledgerService ledger.ServiceInterface,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		feedback: feedbackService,
		ledger:   ledgerService,
		clock:    clk,
		random:   rnd,
		logger:   logger.With(slog.String("component", "game-controller")),
	}
}

// NewGame draws a secret for variant and starts the clock
func (c *Controller) NewGame(ctx context.Context, player string, variant model.Variant, practice bool) (*model.Game, error) {
	if err := scorelog.ValidateUsername(player); err != nil {
		return nil, err
	}

	secret, err := c.feedback.GenerateSecretCode(variant.Mode)
	if err != nil {
		return nil, err
	}

	game := &model.Game{
		ID:        model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		Player:    player,
		Variant:   variant,
		Secret:    secret,
		Practice:  practice,
		State:     model.GameStatePlaying,
		StartedAt: c.clock.Now(),
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("player", player),
		slog.String("variant", variant.Name),
		slog.Bool("practice", practice),
	)

	return game, nil
}

// SubmitGuess scores one guess. Invalid input is rejected without using up a turn.
// The guess that solves the game records the result unless the game is practice.
func (c *Controller) SubmitGuess(ctx context.Context, game *model.Game, input string) (model.Turn, error) {
	if err := checkPlaying(game); err != nil {
		return model.Turn{}, err
	}

	guess, err := c.feedback.ParseGuess(game.Variant.Mode, input)
	if err != nil {
		return model.Turn{}, err
	}

	fb, err := c.feedback.ComputeFeedback(game.Secret, guess)
	if err != nil {
		return model.Turn{}, err
	}

	turn := model.Turn{
		Number:   len(game.Turns) + 1,
		Guess:    guess,
		Feedback: fb,
	}
	game.Turns = append(game.Turns, turn)

	c.logger.Debug("guess scored",
		slog.String("game_id", string(game.ID)),
		slog.Int("turn", turn.Number),
		slog.Int("bulls", fb.Bulls),
		slog.Int("cows", fb.Cows),
	)

	if !fb.Solved(game.CodeLength()) {
		return turn, nil
	}

	game.State = model.GameStateSolved
	game.FinishedAt = c.clock.Now()

	c.logger.Info("game solved",
		slog.String("game_id", string(game.ID)),
		slog.String("player", game.Player),
		slog.Int("guesses", game.GuessCount()),
	)

	if game.Practice {
		return turn, nil
	}

	result, err := game.Result()
	if err != nil {
		return turn, err
	}
	if err := c.ledger.Record(ctx, result.Username, result.Guesses); err != nil {
		return turn, err
	}
	return turn, nil
}

// Abandon ends a game without recording it
func (c *Controller) Abandon(ctx context.Context, game *model.Game) error {
	if err := checkPlaying(game); err != nil {
		return err
	}

	game.State = model.GameStateAbandoned
	game.FinishedAt = c.clock.Now()

	c.logger.Info("game abandoned",
		slog.String("game_id", string(game.ID)),
		slog.Int("guesses", game.GuessCount()),
	)
	return nil
}

func checkPlaying(game *model.Game) error {
	switch game.State {
	case model.GameStateSolved:
		return model.ErrGameComplete
	case model.GameStateAbandoned:
		return model.ErrGameAbandoned
	}
	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	NewGame(ctx context.Context, player string, variant model.Variant, practice bool) (*model.Game, error)
	SubmitGuess(ctx context.Context, game *model.Game, input string) (model.Turn, error)
	Abandon(ctx context.Context, game *model.Game) error
}

var _ ControllerInterface = (*Controller)(nil)
