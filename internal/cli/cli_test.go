package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/bullscows/internal/factory"
	"github.com/mcoot/bullscows/internal/model"
)

type CLISuite struct {
	suite.Suite
	app *factory.TestApp
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	newApp = func(factory.Config) (*factory.App, error) {
		return s.app.App, nil
	}
}

func (s *CLISuite) TearDownTest() {
	newApp = factory.New
}

func (s *CLISuite) run(input string, args ...string) (string, error) {
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) results() []model.GameResult {
	results, err := s.app.Memory.LoadResults(s.T().Context())
	s.Require().NoError(err)
	return results
}

// play

func (s *CLISuite) TestPlayAsksNameAndRecords() {
	s.app.QueueSecret("1234")

	out, err := s.run("Alice\n5678\n1234\n", "play")
	s.Require().NoError(err)

	s.Contains(out, "What is your name?")
	s.Contains(out, "You found 1234 in 2 guesses!")
	s.Equal([]model.GameResult{{Username: "Alice", Guesses: 2}}, s.results())
}

func (s *CLISuite) TestPlayPractice() {
	s.app.QueueSecret("9151")

	out, err := s.run("9151\n", "play", "--user", "Bob", "--variant", "mastermind", "--practice")
	s.Require().NoError(err)

	s.Contains(out, "=== MasterMind ===")
	s.Contains(out, "Practice mode: the secret is 9151")
	s.Empty(s.results())
}

func (s *CLISuite) TestPlayTrimsUserFlag() {
	s.app.QueueSecret("1234")

	out, err := s.run("1234\n", "play", "--user", " Bob ")
	s.Require().NoError(err)

	s.NotContains(out, "What is your name?")
	s.Equal([]model.GameResult{{Username: "Bob", Guesses: 1}}, s.results())
}

func (s *CLISuite) TestPlayBlankUserFlagAsksName() {
	s.app.QueueSecret("1234")

	out, err := s.run("Carol\n1234\n", "play", "--user", "   ")
	s.Require().NoError(err)

	s.Contains(out, "What is your name?")
	s.Equal([]model.GameResult{{Username: "Carol", Guesses: 1}}, s.results())
}

func (s *CLISuite) TestPlayUnknownVariant() {
	_, err := s.run("", "play", "--user", "Bob", "--variant", "chess")
	s.ErrorIs(err, model.ErrUnknownVariant)
}

// record and leaderboard

func (s *CLISuite) TestRecord() {
	out, err := s.run("", "record", "Alice", "5")
	s.Require().NoError(err)

	s.Equal("Recorded 5 guesses for Alice\n", out)
	s.Equal([]model.GameResult{{Username: "Alice", Guesses: 5}}, s.results())
}

func (s *CLISuite) TestRecordRejectsBadInput() {
	_, err := s.run("", "record", "--", "Alice", "-1")
	s.ErrorIs(err, model.ErrNegativeGuessCount)

	_, err = s.run("", "record", "Alice", "five")
	s.Error(err)

	_, err = s.run("", "record", "a#&#b", "3")
	s.ErrorIs(err, model.ErrInvalidUsername)

	_, err = s.run("", "record", "Alice", "9223372036854775807")
	s.ErrorIs(err, model.ErrGuessCountTooLarge)

	s.Empty(s.results())
}

func (s *CLISuite) TestLeaderboardText() {
	ctx := s.T().Context()
	s.Require().NoError(s.app.LedgerService.Record(ctx, "Alice", 5))
	s.Require().NoError(s.app.LedgerService.Record(ctx, "bob", 3))
	s.Require().NoError(s.app.LedgerService.Record(ctx, "alice", 7))

	out, err := s.run("", "leaderboard", "--user", "ALICE")
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	s.Require().Len(lines, 3)
	s.Contains(lines[0], "PLAYER")
	s.Contains(lines[1], "bob")
	s.Contains(lines[2], "Alice")
	s.Contains(lines[2], "6.00")
	s.Contains(lines[2], "<- you")
}

func (s *CLISuite) TestLeaderboardJSON() {
	ctx := s.T().Context()
	s.Require().NoError(s.app.LedgerService.Record(ctx, "Alice", 12))
	s.Require().NoError(s.app.LedgerService.Record(ctx, "bob", 3))

	out, err := s.run("", "leaderboard", "-o", "json", "--limit", "1")
	s.Require().NoError(err)

	var result LeaderboardResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Equal([]LeaderboardRow{{Position: 1, Username: "bob", GamesPlayed: 1, TotalGuesses: 3, AverageGuesses: 3}}, result.Rows)
}

func (s *CLISuite) TestLeaderboardEmpty() {
	out, err := s.run("", "leaderboard")
	s.Require().NoError(err)
	s.Equal("No games recorded yet.\n", out)
}

// check

func (s *CLISuite) TestCheck() {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"check", "1234", "4321"}, "|CCCC"},
		{[]string{"check", "1234", "1243"}, "BB|CC"},
		{[]string{"check", "5678", "1234"}, "no matches found"},
		{[]string{"check", "--variant", "mastermind", "1123", "1231"}, "X|OOO"},
		{[]string{"check", "--variant", "mastermind", "9151", "1527"}, "|OO"},
	}

	for _, tc := range cases {
		out, err := s.run("", tc.args...)
		s.Require().NoError(err, tc.args)
		s.Contains(out, tc.want+"\n", tc.args)
	}
}

func (s *CLISuite) TestCheckJSON() {
	out, err := s.run("", "check", "-o", "json", "--variant", "mastermind", "7012", "3777")
	s.Require().NoError(err)

	var result CheckResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.Equal(0, result.Bulls)
	s.Equal(1, result.Cows)
}

func (s *CLISuite) TestCheckRejectsInvalid() {
	_, err := s.run("", "check", "1123", "1234")
	s.ErrorIs(err, model.ErrRepeatedDigit)

	_, err = s.run("", "check", "1234", "123")
	s.ErrorIs(err, model.ErrInvalidGuessLength)

	_, err = s.run("", "check", "1234", "12x4")
	s.ErrorIs(err, model.ErrInvalidGuessShape)
}

// solve and variants

func (s *CLISuite) TestSolve() {
	out, err := s.run("", "solve", "-o", "json", "4821")
	s.Require().NoError(err)

	var result SolveResult
	s.Require().NoError(json.Unmarshal([]byte(out), &result))
	s.True(result.Solved)
	s.Equal(model.BotStrategyConsistent, result.Strategy)
	s.Require().NotEmpty(result.Turns)
	s.Equal("4821", result.Turns[len(result.Turns)-1].Guess)
	s.Equal("BBBB|", result.Turns[len(result.Turns)-1].Display)
}

func (s *CLISuite) TestSolveUnknownStrategy() {
	_, err := s.run("", "solve", "--strategy", "psychic", "4821")
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *CLISuite) TestVariants() {
	out, err := s.run("", "variants", "-o", "json")
	s.Require().NoError(err)

	var infos []VariantInfo
	s.Require().NoError(json.Unmarshal([]byte(out), &infos))
	s.Require().Len(infos, 2)
	s.Equal("bulls", infos[0].Name)
	s.Equal("unique", infos[0].Mode)
	s.Equal("mastermind", infos[1].Name)
	s.Equal("free", infos[1].Mode)
}

// configuration

func (s *CLISuite) TestInvalidConfig() {
	_, err := s.run("", "--store", "tape", "variants")
	s.Error(err)

	_, err = s.run("", "--code-length", "11", "variants")
	s.ErrorIs(err, model.ErrCodeLengthUnsupported)

	_, err = s.run("", "-o", "xml", "variants")
	s.Error(err)
}

func (s *CLISuite) TestEnvironmentOverridesDefault() {
	s.T().Setenv("BULLSCOWS_OUTPUT", "json")

	out, err := s.run("", "record", "Alice", "5")
	s.Require().NoError(err)
	s.JSONEq(`{"username":"Alice","guesses":5}`, out)
}

func (s *CLISuite) TestFlagOverridesEnvironment() {
	s.T().Setenv("BULLSCOWS_OUTPUT", "json")

	out, err := s.run("", "-o", "text", "record", "Alice", "5")
	s.Require().NoError(err)
	s.Equal("Recorded 5 guesses for Alice\n", out)
}

func (s *CLISuite) TestDotenvFile() {
	envFile := filepath.Join(s.T().TempDir(), "test.env")
	s.Require().NoError(os.WriteFile(envFile, []byte("BULLSCOWS_OUTPUT=json\n"), 0o644))
	// Setenv restores the variable after godotenv has set it
	s.T().Setenv("BULLSCOWS_OUTPUT", "")
	s.Require().NoError(os.Unsetenv("BULLSCOWS_OUTPUT"))

	out, err := s.run("", "--env-file", envFile, "record", "Alice", "5")
	s.Require().NoError(err)
	s.JSONEq(`{"username":"Alice","guesses":5}`, out)
}

func (s *CLISuite) TestConfigFile() {
	path := filepath.Join(s.T().TempDir(), "bullscows.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("output: json\n"), 0o644))

	out, err := s.run("", "--config", path, "record", "Alice", "5")
	s.Require().NoError(err)
	s.JSONEq(`{"username":"Alice","guesses":5}`, out)
}

func (s *CLISuite) TestFactoryConfig() {
	var got factory.Config
	newApp = func(c factory.Config) (*factory.App, error) {
		got = c
		return s.app.App, nil
	}

	_, err := s.run("", "--store", "redis", "--redis-url", "redis://cache:6379", "--redis-key", "k", "--code-length", "5", "--seed", "7", "leaderboard")
	s.Require().NoError(err)

	s.Equal(factory.StorageTypeRedis, got.StorageType)
	s.Require().NotNil(got.RedisConfig)
	s.Equal("redis://cache:6379", got.RedisConfig.URL)
	s.Equal("k", got.RedisConfig.Key)
	s.Equal(5, got.CodeLength)
	s.Equal(uint64(7), got.Seed)
}

// Full wiring against the real file store
func TestFileStoreEndToEnd(t *testing.T) {
	scores := filepath.Join(t.TempDir(), "scores.txt")

	run := func(args ...string) string {
		cmd := NewRootCmd()
		out := &bytes.Buffer{}
		cmd.SetArgs(append([]string{"--env-file", "", "--store", "file", "--scores", scores}, args...))
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
		return out.String()
	}

	run("record", "Alice", "5")
	run("record", "bob", "4")
	run("record", "alice", "7")

	data, err := os.ReadFile(scores)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Alice#&#5\nbob#&#4\nalice#&#7\n" {
		t.Fatalf("unexpected score file %q", data)
	}

	out := run("leaderboard", "-o", "json")
	var result LeaderboardResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatal(err)
	}
	if len(result.Rows) != 2 || result.Rows[0].Username != "bob" || result.Rows[1].TotalGuesses != 12 {
		t.Fatalf("unexpected leaderboard %+v", result.Rows)
	}
}

func TestPrintError(t *testing.T) {
	var text, js bytes.Buffer

	NewOutput("text", &bytes.Buffer{}, &text).PrintError(model.ErrRepeatedDigit)
	NewOutput("json", &bytes.Buffer{}, &js).PrintError(model.ErrRepeatedDigit)

	if text.String() != "Error: guess must not repeat a digit\n" {
		t.Fatalf("unexpected text error %q", text.String())
	}
	if !strings.Contains(js.String(), `"message":"guess must not repeat a digit"`) {
		t.Fatalf("unexpected json error %q", js.String())
	}
}
