package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mcoot/bullscows/internal/factory"
	"github.com/mcoot/bullscows/internal/model"
	redisstorage "github.com/mcoot/bullscows/internal/storage/redis"
)

// EnvPrefix is prepended to every environment variable the CLI reads
const EnvPrefix = "BULLSCOWS"

// Config holds CLI configuration
type Config struct {
	ConfigFile string
	EnvFile    string

	Store      string
	ScoresPath string
	SQLitePath string
	RedisURL   string
	RedisKey   string

	CodeLength int
	Seed       uint64

	Output    string
	LogFormat string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	redisDefaults := redisstorage.DefaultConfig()
	return &Config{
		EnvFile:    ".env",
		Store:      factory.StorageTypeFile,
		ScoresPath: "scores.txt",
		SQLitePath: "bullscows.db",
		RedisURL:   redisDefaults.URL,
		RedisKey:   redisDefaults.Key,
		CodeLength: model.DefaultCodeLength,
		Output:     "text",
		LogFormat:  "text",
	}
}

// Load fills c from v, which has the command's flags bound.
// Precedence: explicit flag, environment (.env included), config file, default.
func (c *Config) Load(v *viper.Viper) error {
	envFile := v.GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c.ConfigFile = v.GetString("config")
	c.EnvFile = envFile
	c.Store = strings.ToLower(v.GetString("store"))
	c.ScoresPath = v.GetString("scores")
	c.SQLitePath = v.GetString("sqlite")
	c.RedisURL = v.GetString("redis-url")
	c.RedisKey = v.GetString("redis-key")
	c.CodeLength = v.GetInt("code-length")
	c.Seed = v.GetUint64("seed")
	c.Output = strings.ToLower(v.GetString("output"))
	c.LogFormat = strings.ToLower(v.GetString("log-format"))
	c.Verbose = v.GetBool("verbose")

	return c.Validate()
}

// Validate rejects settings no command can run with
func (c *Config) Validate() error {
	if !slices.Contains(factory.StorageTypes(), c.Store) {
		return fmt.Errorf("invalid store %q: must be one of %s", c.Store, strings.Join(factory.StorageTypes(), ", "))
	}
	if c.Output != "text" && c.Output != "json" {
		return fmt.Errorf("invalid output %q: must be text or json", c.Output)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	if c.CodeLength < 1 || c.CodeLength > model.MaxUniqueCodeLength {
		return fmt.Errorf("%w: code length %d must be between 1 and %d",
			model.ErrCodeLengthUnsupported, c.CodeLength, model.MaxUniqueCodeLength)
	}
	if c.Store == factory.StorageTypeFile && c.ScoresPath == "" {
		return errors.New("scores path must not be empty")
	}
	return nil
}

// FactoryConfig translates the CLI settings into application wiring
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = c.RedisURL
	redisCfg.Key = c.RedisKey

	return factory.Config{
		Logger:      logger,
		StorageType: c.Store,
		ScoresPath:  c.ScoresPath,
		SQLitePath:  c.SQLitePath,
		RedisConfig: &redisCfg,
		CodeLength:  c.CodeLength,
		Seed:        c.Seed,
	}
}

// NewLogger builds the process logger. Without --verbose only warnings are shown
// so interactive play stays readable.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
