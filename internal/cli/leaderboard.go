package cli

import (
	"github.com/spf13/cobra"
)

func newLeaderboardCmd() *cobra.Command {
	var (
		user  string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show players ranked by average guesses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			entries, err := app.LedgerService.Leaderboard(cmd.Context(), user, limit)
			if err != nil {
				return err
			}

			output(cmd).Print(newLeaderboardResult(entries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&user, "user", "u", "", "Highlight this player")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows (0 for all)")

	return cmd
}
