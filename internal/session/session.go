// Package session runs one interactive game over a line-oriented reader and writer.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
	"github.com/mcoot/bullscows/internal/services/bot"
	"github.com/mcoot/bullscows/internal/services/game"
	"github.com/mcoot/bullscows/internal/services/ledger"
)

// DefaultLeaderboardLimit is how many rows are shown after a solved game
const DefaultLeaderboardLimit = 10

// Options describe the game to start
type Options struct {
	Player   string
	Variant  model.Variant
	Practice bool
}

// Session drives the prompt loop for a single player
type Session struct {
	games  game.ControllerInterface
	ledger ledger.ServiceInterface
	bots   bot.ServiceInterface

	in  *bufio.Scanner
	out io.Writer

	// HintStrategy names the bot strategy behind the hint command
	HintStrategy string
	// LeaderboardLimit caps the table printed after a win; 0 shows everyone
	LeaderboardLimit int

	logger *slog.Logger
}

// New creates a Session reading commands from in and writing to out
func New(
	games game.ControllerInterface,
	ledgerService ledger.ServiceInterface,
	bots bot.ServiceInterface,
	in io.Reader,
	out io.Writer,
	logger *slog.Logger,
) *Session {
	return &Session{
		games:            games,
		ledger:           ledgerService,
		bots:             bots,
		in:               bufio.NewScanner(in),
		out:              out,
		HintStrategy:     model.BotStrategyConsistent,
		LeaderboardLimit: DefaultLeaderboardLimit,
		logger:           logger.With(slog.String("component", "session")),
	}
}

// AskName prompts until a usable player name is entered
func (s *Session) AskName(ctx context.Context) (string, error) {
	for {
		s.printf("What is your name? ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(line)
		if err := scorelog.ValidateUsername(name); err != nil {
			s.printf("That name cannot be used: %v\n", err)
			continue
		}
		return name, nil
	}
}

// Play runs a game until it is solved, abandoned, or input runs out
func (s *Session) Play(ctx context.Context, opts Options) (*model.Game, error) {
	v := opts.Variant

	s.printf("=== %s ===\n%s\n", v.Title, v.Welcome)

	g, err := s.games.NewGame(ctx, opts.Player, v, opts.Practice)
	if err != nil {
		return nil, err
	}

	s.printf("Guess the %d-digit code. Type 'help' for commands.\n", g.CodeLength())
	if g.Practice {
		s.printf("Practice mode: the secret is %s\n", g.Secret)
	}

	for g.State == model.GameStatePlaying {
		if err := ctx.Err(); err != nil {
			return g, err
		}

		s.printf("Guess #%d: ", g.GuessCount()+1)
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			s.printf("\n")
			return g, s.quit(ctx, g)
		}
		if err != nil {
			return g, err
		}

		input := strings.TrimSpace(line)
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit":
			return g, s.quit(ctx, g)
		case "help":
			s.help(v)
			continue
		case "hint":
			s.hint(ctx, g)
			continue
		}

		turn, err := s.games.SubmitGuess(ctx, g, input)
		if err != nil && model.IsValidationError(err) {
			s.printf("Invalid guess: %v\n", err)
			continue
		}
		if err != nil && turn.Number == 0 {
			return g, err
		}

		s.printFeedback(v, turn.Feedback)
		if err != nil {
			// solved but the result could not be stored
			return g, err
		}
	}

	s.printf("You found %s in %d guesses! Time: %s\n", g.Secret, g.GuessCount(), formatElapsed(g.Elapsed()))
	if g.Practice {
		s.printf("Practice games are not recorded.\n")
		return g, nil
	}

	entries, err := s.ledger.Leaderboard(ctx, g.Player, s.LeaderboardLimit)
	if err != nil {
		return g, err
	}
	s.printf("\n")
	return g, WriteLeaderboard(s.out, entries)
}

func (s *Session) quit(ctx context.Context, g *model.Game) error {
	if err := s.games.Abandon(ctx, g); err != nil {
		return err
	}
	s.printf("You gave up after %d guesses. The secret was %s.\n", g.GuessCount(), g.Secret)
	return nil
}

func (s *Session) hint(ctx context.Context, g *model.Game) {
	code, err := s.bots.Hint(ctx, s.HintStrategy, g)
	if err != nil {
		s.logger.Debug("hint unavailable", slog.String("error", err.Error()))
		s.printf("No hint available: %v\n", err)
		return
	}
	s.printf("Try %s\n", code)
}

func (s *Session) help(v model.Variant) {
	m := v.Markers
	s.printf("Enter a guess of digits, or one of: hint, help, quit\n")
	s.printf("%s = right digit, right place; %s = right digit, wrong place\n", m.Bull, m.Cow)
	if v.Mode == model.ModeUnique {
		s.printf("Digits in a guess must all be different.\n")
	}
}

func (s *Session) printFeedback(v model.Variant, fb model.Feedback) {
	if fb.NoMatches() {
		s.printf("no matches found\n")
		return
	}
	s.printf("%s\n", v.Markers.Format(fb))
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func formatElapsed(d time.Duration) string {
	return d.Round(time.Second).String()
}
