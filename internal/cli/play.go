package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/session"
)

func newPlayCmd() *cobra.Command {
	var (
		variantName string
		user        string
		practice    bool
		limit       int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := model.VariantByName(variantName)
			if err != nil {
				return err
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sess := session.New(
				app.GameController,
				app.LedgerService,
				app.BotService,
				cmd.InOrStdin(),
				cmd.OutOrStdout(),
				logger,
			)
			sess.LeaderboardLimit = limit

			user = strings.TrimSpace(user)
			if user == "" {
				user, err = sess.AskName(cmd.Context())
				if err != nil {
					return err
				}
			}

			_, err = sess.Play(cmd.Context(), session.Options{
				Player:   user,
				Variant:  variant,
				Practice: practice,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", model.DefaultVariantName, "Game variant: bulls, mastermind")
	cmd.Flags().StringVarP(&user, "user", "u", "", "Player name (asked for when empty)")
	cmd.Flags().BoolVar(&practice, "practice", false, "Show the secret and do not record the result")
	cmd.Flags().IntVar(&limit, "limit", session.DefaultLeaderboardLimit, "Leaderboard rows shown after a win (0 for all)")

	return cmd
}
