package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/bullscows/internal/dependencies/clock"
	"github.com/mcoot/bullscows/internal/dependencies/random"
	"github.com/mcoot/bullscows/internal/services/bot"
	"github.com/mcoot/bullscows/internal/services/feedback"
	"github.com/mcoot/bullscows/internal/services/game"
	"github.com/mcoot/bullscows/internal/services/ledger"
	"github.com/mcoot/bullscows/internal/storage"
	filestorage "github.com/mcoot/bullscows/internal/storage/file"
	"github.com/mcoot/bullscows/internal/storage/memory"
	redisstorage "github.com/mcoot/bullscows/internal/storage/redis"
	sqlitestorage "github.com/mcoot/bullscows/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeFile   = "file"
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// StorageTypes lists every supported backend
func StorageTypes() []string {
	return []string{StorageTypeFile, StorageTypeMemory, StorageTypeRedis, StorageTypeSQLite}
}

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.ResultLog

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	FeedbackService *feedback.Service
	LedgerService   *ledger.Service
	GameController  *game.Controller
	BotService      *bot.Service

	Logger *slog.Logger
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend
	// If empty, defaults to "file"
	StorageType string
	// ScoresPath is the flat result file (file backend)
	ScoresPath string
	// SQLitePath is the database file (sqlite backend)
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// CodeLength is the number of digits per secret; defaults to 4
	CodeLength int
	// Seed makes secrets and bot choices reproducible when non-zero
	Seed uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := clock.New()

	store, err := newStorage(cfg, clk)
	if err != nil {
		return nil, err
	}

	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	logger.Debug("application wired",
		slog.String("storage", storageTypeOrDefault(cfg.StorageType)),
		slog.Int("code_length", cfg.CodeLength),
	)

	return newWithDependencies(store, clk, rnd, cfg.CodeLength, logger), nil
}

func storageTypeOrDefault(t string) string {
	if t == "" {
		return StorageTypeFile
	}
	return t
}

func newStorage(cfg Config, clk clock.Clock) (storage.ResultLog, error) {
	switch storageTypeOrDefault(cfg.StorageType) {
	case StorageTypeFile:
		path := cfg.ScoresPath
		if path == "" {
			path = "scores.txt"
		}
		return filestorage.New(path), nil
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("RedisConfig required when StorageType is %s", StorageTypeRedis)
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return store, nil
	case StorageTypeSQLite:
		path := cfg.SQLitePath
		if path == "" {
			path = "bullscows.db"
		}
		store, err := sqlitestorage.New(path, clk)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be one of %v", cfg.StorageType, StorageTypes())
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.ResultLog, clk clock.Clock, rnd random.Random, codeLength int, logger *slog.Logger) *App {
	feedbackService := feedback.New(rnd, codeLength)
	ledgerService := ledger.New(store, logger)
	gameController := game.NewController(feedbackService, ledgerService, clk, rnd, logger)
	botService := bot.NewService(bot.DefaultStrategies(rnd), logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		FeedbackService: feedbackService,
		LedgerService:   ledgerService,
		GameController:  gameController,
		BotService:      botService,
		Logger:          logger,
	}
}
