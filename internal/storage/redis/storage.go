package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/storage"
)

const backendName = "redis"

// Storage keeps the result log in a Redis list, one encoded line per element
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, model.NewStorageError(backendName, "parse url", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, model.NewStorageError(backendName, "connect", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.ResultLog = (*Storage)(nil)

func (s *Storage) AppendResult(ctx context.Context, result model.GameResult) error {
	line, err := scorelog.EncodeLine(result)
	if err != nil {
		return err
	}
	return model.NewStorageError(backendName, "rpush", s.client.RPush(ctx, s.cfg.key(), line).Err())
}

// LoadResults decodes every list element with the flat-file line codec
func (s *Storage) LoadResults(ctx context.Context) ([]model.GameResult, error) {
	lines, err := s.client.LRange(ctx, s.cfg.key(), 0, -1).Result()
	if err != nil {
		return nil, model.NewStorageError(backendName, "lrange", err)
	}

	results := make([]model.GameResult, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		r, err := scorelog.DecodeLine(i+1, line)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
