package ledger

import (
	"context"
	"log/slog"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/storage"
)

// Service records game results and builds the leaderboard from a result log
type Service struct {
	store  storage.ResultLog
	logger *slog.Logger
}

// New creates a new ledger Service
func New(store storage.ResultLog, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With(slog.String("component", "ledger")),
	}
}

// Record appends one completed game to the log
func (s *Service) Record(ctx context.Context, username string, guesses int) error {
	if err := scorelog.ValidateGuesses(guesses); err != nil {
		return err
	}
	if err := scorelog.ValidateUsername(username); err != nil {
		return err
	}

	if err := s.store.AppendResult(ctx, model.GameResult{Username: username, Guesses: guesses}); err != nil {
		s.logger.Error("failed to record result",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.logger.Info("result recorded",
		slog.String("username", username),
		slog.Int("guesses", guesses),
	)
	return nil
}

// Records loads the log and folds it into per-player aggregates
func (s *Service) Records(ctx context.Context) ([]model.PlayerRecord, error) {
	results, err := s.store.LoadResults(ctx)
	if err != nil {
		s.logger.Error("failed to load results", slog.String("error", err.Error()))
		return nil, err
	}

	records, err := Fold(results)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("results loaded",
		slog.Int("results", len(results)),
		slog.Int("players", len(records)),
	)
	return records, nil
}

// Leaderboard returns the ranked view, highlighting currentUser
func (s *Service) Leaderboard(ctx context.Context, currentUser string, limit int) ([]model.LeaderboardEntry, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return Leaderboard(records, currentUser, limit), nil
}

// Player returns the aggregate for one username, matched case-insensitively
func (s *Service) Player(ctx context.Context, username string) (model.PlayerRecord, bool, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return model.PlayerRecord{}, false, err
	}
	rec, ok := Find(records, username)
	return rec, ok, nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Record(ctx context.Context, username string, guesses int) error
	Records(ctx context.Context) ([]model.PlayerRecord, error)
	Leaderboard(ctx context.Context, currentUser string, limit int) ([]model.LeaderboardEntry, error)
	Player(ctx context.Context, username string) (model.PlayerRecord, bool, error)
}

var _ ServiceInterface = (*Service)(nil)
