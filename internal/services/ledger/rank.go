package ledger

import (
	"math/bits"
	"sort"
	"strings"

	"github.com/mcoot/bullscows/internal/model"
)

// Rank orders records by ascending average guesses.
// Equal averages keep their input order. The input is left untouched.
func Rank(records []model.PlayerRecord) []model.PlayerRecord {
	ranked := make([]model.PlayerRecord, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		return lowerAverage(ranked[i], ranked[j])
	})

	return ranked
}

// lowerAverage reports a.Total/a.Games < b.Total/b.Games without dividing.
// a/b < c/d  <=>  a*d < c*b for positive b, d; the products are taken at
// 128 bits. Counts are non-negative for any record built by MergeResult.
func lowerAverage(a, b model.PlayerRecord) bool {
	lhsHi, lhsLo := bits.Mul64(uint64(a.TotalGuesses), uint64(b.GamesPlayed))
	rhsHi, rhsLo := bits.Mul64(uint64(b.TotalGuesses), uint64(a.GamesPlayed))
	if lhsHi != rhsHi {
		return lhsHi < rhsHi
	}
	return lhsLo < rhsLo
}

// Leaderboard ranks records and marks the rows belonging to currentUser.
// Positions are 1-based; limit <= 0 keeps every row.
func Leaderboard(records []model.PlayerRecord, currentUser string, limit int) []model.LeaderboardEntry {
	ranked := Rank(records)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]model.LeaderboardEntry, 0, len(ranked))
	for i, r := range ranked {
		entries = append(entries, model.LeaderboardEntry{
			Position:       i + 1,
			Record:         r,
			AverageGuesses: r.AverageGuesses(),
			Current:        currentUser != "" && strings.EqualFold(r.Username, currentUser),
		})
	}
	return entries
}
