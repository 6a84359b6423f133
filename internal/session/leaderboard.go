package session

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mcoot/bullscows/internal/model"
)

// WriteLeaderboard renders ranked entries as an aligned table.
// The current player's row is marked with an arrow.
func WriteLeaderboard(w io.Writer, entries []model.LeaderboardEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No games recorded yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPLAYER\tGAMES\tGUESSES\tAVERAGE\t")
	for _, e := range entries {
		marker := ""
		if e.Current {
			marker = "<- you"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%.2f\t%s\n",
			e.Position,
			e.Record.Username,
			e.Record.GamesPlayed,
			e.Record.TotalGuesses,
			e.AverageGuesses,
			marker,
		)
	}
	return tw.Flush()
}
