package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/session"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case LeaderboardResult:
		_ = session.WriteLeaderboard(o.out, v.toEntries())
	case CheckResult:
		o.printCheckResult(v)
	case SolveResult:
		o.printSolveResult(v)
	case []VariantInfo:
		o.printVariants(v)
	case RecordResult:
		o.printRecordResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// LeaderboardRow is one ranked player
type LeaderboardRow struct {
	Position       int     `json:"position"`
	Username       string  `json:"username"`
	GamesPlayed    int     `json:"games_played"`
	TotalGuesses   int     `json:"total_guesses"`
	AverageGuesses float64 `json:"average_guesses"`
	Current        bool    `json:"current,omitempty"`
}

// LeaderboardResult is the ranked table
type LeaderboardResult struct {
	Rows []LeaderboardRow `json:"rows"`
}

func newLeaderboardResult(entries []model.LeaderboardEntry) LeaderboardResult {
	rows := make([]LeaderboardRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, LeaderboardRow{
			Position:       e.Position,
			Username:       e.Record.Username,
			GamesPlayed:    e.Record.GamesPlayed,
			TotalGuesses:   e.Record.TotalGuesses,
			AverageGuesses: e.AverageGuesses,
			Current:        e.Current,
		})
	}
	return LeaderboardResult{Rows: rows}
}

func (l LeaderboardResult) toEntries() []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(l.Rows))
	for _, r := range l.Rows {
		entries = append(entries, model.LeaderboardEntry{
			Position: r.Position,
			Record: model.PlayerRecord{
				Username:     r.Username,
				TotalGuesses: r.TotalGuesses,
				GamesPlayed:  r.GamesPlayed,
			},
			AverageGuesses: r.AverageGuesses,
			Current:        r.Current,
		})
	}
	return entries
}

// CheckResult is the feedback for one secret/guess pair
type CheckResult struct {
	Variant string `json:"variant"`
	Secret  string `json:"secret"`
	Guess   string `json:"guess"`
	Bulls   int    `json:"bulls"`
	Cows    int    `json:"cows"`
	Display string `json:"display"`
}

// SolveTurn is one bot guess
type SolveTurn struct {
	Number  int    `json:"number"`
	Guess   string `json:"guess"`
	Bulls   int    `json:"bulls"`
	Cows    int    `json:"cows"`
	Display string `json:"display"`
}

// SolveResult is a full bot game
type SolveResult struct {
	Variant  string      `json:"variant"`
	Strategy string      `json:"strategy"`
	Secret   string      `json:"secret"`
	Solved   bool        `json:"solved"`
	Turns    []SolveTurn `json:"turns"`
}

// VariantInfo describes a playable variant
type VariantInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Mode  string `json:"mode"`
	Bull  string `json:"bull_marker"`
	Cow   string `json:"cow_marker"`
}

// RecordResult confirms an appended result
type RecordResult struct {
	Username string `json:"username"`
	Guesses  int    `json:"guesses"`
}

func displayFeedback(v model.Variant, fb model.Feedback) string {
	if fb.NoMatches() {
		return "no matches found"
	}
	return v.Markers.Format(fb)
}

func (o *Output) printCheckResult(c CheckResult) {
	fmt.Fprintf(o.out, "%s vs %s: %d bulls, %d cows\n", c.Guess, c.Secret, c.Bulls, c.Cows)
	fmt.Fprintln(o.out, c.Display)
}

func (o *Output) printSolveResult(r SolveResult) {
	fmt.Fprintf(o.out, "Bot (%s) playing %s against %s\n", model.BotStrategyDisplayName(r.Strategy), r.Variant, r.Secret)
	for _, t := range r.Turns {
		fmt.Fprintf(o.out, "%3d. %s  %s\n", t.Number, t.Guess, t.Display)
	}
	if r.Solved {
		fmt.Fprintf(o.out, "Solved in %d guesses\n", len(r.Turns))
	} else {
		fmt.Fprintf(o.out, "Gave up after %d guesses\n", len(r.Turns))
	}
}

func (o *Output) printVariants(vs []VariantInfo) {
	for _, v := range vs {
		fmt.Fprintf(o.out, "%-12s %s (%s digits, %s/%s)\n", v.Name, v.Title, v.Mode, v.Bull, v.Cow)
	}
}

func (o *Output) printRecordResult(r RecordResult) {
	fmt.Fprintf(o.out, "Recorded %d guesses for %s\n", r.Guesses, r.Username)
}
