package memory

import (
	"context"
	"sync"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/storage"
)

// Storage is an in-memory result log
type Storage struct {
	mu      sync.RWMutex
	results []model.GameResult
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.ResultLog = (*Storage)(nil)

// AppendResult accepts only results that could be written to the flat log
func (s *Storage) AppendResult(ctx context.Context, result model.GameResult) error {
	if _, err := scorelog.EncodeLine(result); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
	return nil
}

func (s *Storage) LoadResults(ctx context.Context) ([]model.GameResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.GameResult, len(s.results))
	copy(out, s.results)
	return out, nil
}

func (s *Storage) Close() error {
	return nil
}
