package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/bullscows/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestLoadEmpty() {
	results, err := s.storage.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *StorageSuite) TestAppendPushesEncodedLine() {
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5}))
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "bob", Guesses: 3}))

	list, err := s.mini.List("bullscows:results")
	s.Require().NoError(err)
	s.Equal([]string{"Alice#&#5", "bob#&#3"}, list)
}

func (s *StorageSuite) TestRoundTripKeepsOrder() {
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5}))
	s.Require().NoError(s.storage.AppendResult(s.ctx, model.GameResult{Username: "alice", Guesses: 7}))

	results, err := s.storage.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameResult{
		{Username: "Alice", Guesses: 5},
		{Username: "alice", Guesses: 7},
	}, results)
}

func (s *StorageSuite) TestCustomKey() {
	cfg := DefaultConfig()
	cfg.Key = "custom:scores"
	st := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer st.Close()

	s.Require().NoError(st.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5}))

	s.True(s.mini.Exists("custom:scores"))
	s.False(s.mini.Exists("bullscows:results"))
}

func (s *StorageSuite) TestAppendRejectsInvalidResult() {
	err := s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: -1})
	s.ErrorIs(err, model.ErrNegativeGuessCount)
	s.False(s.mini.Exists("bullscows:results"))
}

func (s *StorageSuite) TestLoadMalformedEntry() {
	_, err := s.mini.Push("bullscows:results", "Alice#&#5", "Bob#&#x")
	s.Require().NoError(err)

	_, err = s.storage.LoadResults(s.ctx)
	s.ErrorIs(err, model.ErrMalformedRecord)

	var malformed *model.MalformedRecordError
	s.Require().ErrorAs(err, &malformed)
	s.Equal(2, malformed.Line)
}

func (s *StorageSuite) TestLoadSkipsEmptyEntries() {
	_, err := s.mini.Push("bullscows:results", "Alice#&#5", "", "bob#&#3")
	s.Require().NoError(err)

	results, err := s.storage.LoadResults(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.GameResult{
		{Username: "Alice", Guesses: 5},
		{Username: "bob", Guesses: 3},
	}, results)
}

func (s *StorageSuite) TestServerDown() {
	s.mini.Close()

	err := s.storage.AppendResult(s.ctx, model.GameResult{Username: "Alice", Guesses: 5})
	s.ErrorIs(err, model.ErrStorageUnavailable)

	_, err = s.storage.LoadResults(s.ctx)
	s.ErrorIs(err, model.ErrStorageUnavailable)
}

func (s *StorageSuite) TestNewFailsWithoutServer() {
	cfg := DefaultConfig()
	cfg.URL = "not-a-url"

	_, err := New(cfg)
	s.ErrorIs(err, model.ErrStorageUnavailable)
}
