package storage

import (
	"context"

	"github.com/mcoot/bullscows/internal/model"
)

// ResultLog is the append-only log of completed games.
// Results come back in the order they were appended.
type ResultLog interface {
	AppendResult(ctx context.Context, result model.GameResult) error
	LoadResults(ctx context.Context) ([]model.GameResult, error)
	Close() error
}
