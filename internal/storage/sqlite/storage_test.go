package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/bullscows/internal/dependencies/mocks"
	"github.com/mcoot/bullscows/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	clock   *mocks.MockClock
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "bullscows.db")

	s.clock = mocks.NewMockClock(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	st, err := New(s.path, s.clock)
	s.Require().NoError(err)

	s.storage = st
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
}

func (s *StorageSuite) TestLoadEmpty() {
	results, err := s.storage.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *StorageSuite) TestRoundTripKeepsInsertionOrder() {
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "zed", Guesses: 9}))
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5}))
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "alice", Guesses: 0}))

	results, err := s.storage.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameResult{
		{Username: "zed", Guesses: 9},
		{Username: "Alice", Guesses: 5},
		{Username: "alice", Guesses: 0},
	}, results)
}

func (s *StorageSuite) TestRecordedAtIsStored() {
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5}))

	var recordedAt string
	err := s.storage.db.QueryRowContext(s.ctx, `SELECT recorded_at FROM game_results`).Scan(&recordedAt)
	s.Require().NoError(err)
	s.Equal("2026-01-02T03:04:05Z", recordedAt)
}

func (s *StorageSuite) TestAppendRejectsInvalidResult() {
	err := s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: -3})
	s.ErrorIs(err, model.ErrNegativeGuessCount)

	err = s.storage.AppendResult(s.ctx, model.GameResult{Username: " ", Guesses: 3})
	s.ErrorIs(err, model.ErrInvalidUsername)

	results, err := s.storage.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *StorageSuite) TestReopenKeepsResults() {
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5}))
	s.Require().NoError(s.storage.Close())

	reopened, err := New(s.path, s.clock)
	s.Require().NoError(err)
	s.storage = reopened

	results, err := reopened.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameResult{{Username: "Alice", Guesses: 5}}, results)
}

func (s *StorageSuite) TestClosedDatabaseIsUnavailable() {
	s.Require().NoError(s.storage.Close())

	_, err := s.storage.LoadResults(s.ctx)
	s.ErrorIs(err, model.ErrStorageUnavailable)
}

func (s *StorageSuite) TestOpenInMissingDirectory() {
	_, err := New(filepath.Join(s.T().TempDir(), "missing", "bullscows.db"), s.clock)
	s.ErrorIs(err, model.ErrStorageUnavailable)
}
