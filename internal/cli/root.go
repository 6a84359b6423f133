package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcoot/bullscows/internal/factory"
)

var (
	cfg    *Config
	logger *slog.Logger

	// newApp wires the application; tests replace it to inject mocks
	newApp = factory.New
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "bullscows",
		Short: "Bulls and Cows and MasterMind in the terminal",
		Long: `bullscows is a number-guessing game.

The computer picks a secret code of digits and scores each guess with
bulls (right digit, right place) and cows (right digit, wrong place).
Solved games are recorded and ranked by average number of guesses.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(v); err != nil {
				return err
			}
			logger = cfg.NewLogger(cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (YAML) (env: BULLSCOWS_CONFIG)")
	flags.String("env-file", cfg.EnvFile, "Dotenv file loaded before reading the environment")
	flags.String("store", cfg.Store, "Result storage: file, memory, redis, sqlite (env: BULLSCOWS_STORE)")
	flags.String("scores", cfg.ScoresPath, "Score file for the file store (env: BULLSCOWS_SCORES)")
	flags.String("sqlite", cfg.SQLitePath, "Database file for the sqlite store (env: BULLSCOWS_SQLITE)")
	flags.String("redis-url", cfg.RedisURL, "Redis URL for the redis store (env: BULLSCOWS_REDIS_URL)")
	flags.String("redis-key", cfg.RedisKey, "Redis list holding results (env: BULLSCOWS_REDIS_KEY)")
	flags.Int("code-length", cfg.CodeLength, "Number of digits in the secret (env: BULLSCOWS_CODE_LENGTH)")
	flags.Uint64("seed", 0, "Seed for reproducible secrets and bot play; 0 uses crypto randomness")
	flags.StringP("output", "o", cfg.Output, "Output format: text, json")
	flags.String("log-format", cfg.LogFormat, "Log format: text, json")
	flags.BoolP("verbose", "v", cfg.Verbose, "Verbose logging")
	_ = v.BindPFlags(flags)

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newLeaderboardCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSolveCmd())
	rootCmd.AddCommand(newVariantsCmd())

	return rootCmd
}

// Execute runs the root command, reporting any error in the configured output format
func Execute() {
	rootCmd := NewRootCmd()
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		NewOutput(cfg.Output, rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()).PrintError(err)
		os.Exit(1)
	}
}

func openApp() (*factory.App, error) {
	return newApp(cfg.FactoryConfig(logger))
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
