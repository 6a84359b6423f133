package ledger

import (
	"fmt"
	"math"
	"strings"

	"github.com/mcoot/bullscows/internal/model"
)

// MergeResult folds one completed game into the aggregate records.
//
// The username is matched case-insensitively. A new player is appended with
// GamesPlayed = 1; an existing one has the guesses added and GamesPlayed
// incremented, keeping the casing it was first stored with. The input slice
// is not modified. A negative count is rejected and records are returned as-is,
// as is a count that would overflow the player's total.
func MergeResult(records []model.PlayerRecord, username string, guesses int) ([]model.PlayerRecord, error) {
	if guesses < 0 {
		return records, model.ErrNegativeGuessCount
	}

	merged := make([]model.PlayerRecord, len(records), len(records)+1)
	copy(merged, records)

	if i := indexOf(merged, username); i >= 0 {
		if merged[i].TotalGuesses > math.MaxInt-guesses || merged[i].GamesPlayed == math.MaxInt {
			return records, fmt.Errorf("%w: %s", model.ErrGuessTotalOverflow, merged[i].Username)
		}
		merged[i].TotalGuesses += guesses
		merged[i].GamesPlayed++
		return merged, nil
	}

	return append(merged, model.PlayerRecord{
		Username:     username,
		TotalGuesses: guesses,
		GamesPlayed:  1,
	}), nil
}

// Fold reduces a result stream into per-player records, in first-seen order
func Fold(results []model.GameResult) ([]model.PlayerRecord, error) {
	records := []model.PlayerRecord{}
	for _, r := range results {
		var err error
		records, err = MergeResult(records, r.Username, r.Guesses)
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Find returns the record for username, matched case-insensitively
func Find(records []model.PlayerRecord, username string) (model.PlayerRecord, bool) {
	if i := indexOf(records, username); i >= 0 {
		return records[i], true
	}
	return model.PlayerRecord{}, false
}

func indexOf(records []model.PlayerRecord, username string) int {
	for i := range records {
		if strings.EqualFold(records[i].Username, username) {
			return i
		}
	}
	return -1
}
