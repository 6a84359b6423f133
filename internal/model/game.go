package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStatePlaying   GameState = "playing"   // Waiting for guesses
	GameStateSolved    GameState = "solved"    // Secret found
	GameStateAbandoned GameState = "abandoned" // Player quit
)

// Turn is one scored guess
type Turn struct {
	Number   int      `json:"number"`
	Guess    Code     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// Game represents a single session against one secret code
type Game struct {
	ID       GameID
	Player   string
	Variant  Variant
	Secret   Code
	Practice bool // secret shown to the player, result not recorded

	State GameState
	Turns []Turn

	StartedAt  time.Time
	FinishedAt time.Time
}

// CodeLength returns the number of digits in this game's secret
func (g *Game) CodeLength() int {
	return len(g.Secret)
}

// GuessCount returns the number of scored guesses so far
func (g *Game) GuessCount() int {
	return len(g.Turns)
}

// IsSolved returns true once a guess matched the secret
func (g *Game) IsSolved() bool {
	return g.State == GameStateSolved
}

// Elapsed returns how long the game ran, or zero while it is still in play
func (g *Game) Elapsed() time.Duration {
	if g.FinishedAt.IsZero() {
		return 0
	}
	return g.FinishedAt.Sub(g.StartedAt)
}

// Result converts a solved game into the record written to the result log
func (g *Game) Result() (GameResult, error) {
	if !g.IsSolved() {
		return GameResult{}, ErrGameNotSolved
	}
	return GameResult{Username: g.Player, Guesses: g.GuessCount()}, nil
}
