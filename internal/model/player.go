package model

// GameResult is one completed game as written to the result log
type GameResult struct {
	Username string `json:"username"`
	Guesses  int    `json:"guesses"`
}

// PlayerRecord aggregates every result logged for one username.
// Usernames compare case-insensitively; the casing seen first is kept.
type PlayerRecord struct {
	Username     string `json:"username"`
	TotalGuesses int    `json:"total_guesses"`
	GamesPlayed  int    `json:"games_played"`
}

// AverageGuesses returns TotalGuesses / GamesPlayed.
// Stored records always have GamesPlayed >= 1; a zero record reports 0.
func (r PlayerRecord) AverageGuesses() float64 {
	if r.GamesPlayed == 0 {
		return 0
	}
	return float64(r.TotalGuesses) / float64(r.GamesPlayed)
}

// LeaderboardEntry is one ranked row of the leaderboard view
type LeaderboardEntry struct {
	Position       int          `json:"position"`
	Record         PlayerRecord `json:"record"`
	AverageGuesses float64      `json:"average_guesses"`
	Current        bool         `json:"current"` // row belongs to the player being shown the board
}
