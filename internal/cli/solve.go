package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/services/feedback"
)

func newSolveCmd() *cobra.Command {
	var (
		variantName string
		strategy    string
	)

	cmd := &cobra.Command{
		Use:   "solve <secret>",
		Short: "Watch a bot crack a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := model.VariantByName(variantName)
			if err != nil {
				return err
			}

			secret, err := feedback.ParseGuess(variant.Mode, len(strings.TrimSpace(args[0])), args[0])
			if err != nil {
				return fmt.Errorf("secret: %w", err)
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			turns, err := app.BotService.Solve(cmd.Context(), strategy, variant.Mode, secret)
			if err != nil && !errors.Is(err, model.ErrSolveLimit) {
				return err
			}

			result := SolveResult{
				Variant:  variant.Name,
				Strategy: strategy,
				Secret:   secret.String(),
				Solved:   err == nil,
				Turns:    make([]SolveTurn, 0, len(turns)),
			}
			for _, t := range turns {
				result.Turns = append(result.Turns, SolveTurn{
					Number:  t.Number,
					Guess:   t.Guess.String(),
					Bulls:   t.Feedback.Bulls,
					Cows:    t.Feedback.Cows,
					Display: displayFeedback(variant, t.Feedback),
				})
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", model.DefaultVariantName, "Game variant: bulls, mastermind")
	cmd.Flags().StringVar(&strategy, "strategy", model.BotStrategyConsistent,
		"Bot strategy: "+strings.Join(model.ValidBotStrategies(), ", "))

	return cmd
}
