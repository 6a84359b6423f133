package ledger

import (
	"io"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/scorelog"
)

// LoadRecords reads a result log and folds every line, in order, through MergeResult
func LoadRecords(r io.Reader) ([]model.PlayerRecord, error) {
	results, err := scorelog.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Fold(results)
}

// AppendResult writes one "username#&#guesses" line to w
func AppendResult(w io.Writer, username string, guesses int) error {
	return scorelog.Write(w, model.GameResult{Username: username, Guesses: guesses})
}
