package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/bullscows/internal/model"
	"github.com/mcoot/bullscows/internal/services/feedback"
)

func newCheckCmd() *cobra.Command {
	var variantName string

	cmd := &cobra.Command{
		Use:   "check <secret> <guess>",
		Short: "Score a guess against a secret",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := model.VariantByName(variantName)
			if err != nil {
				return err
			}

			length := len(strings.TrimSpace(args[0]))
			secret, err := feedback.ParseGuess(variant.Mode, length, args[0])
			if err != nil {
				return fmt.Errorf("secret: %w", err)
			}
			guess, err := feedback.ParseGuess(variant.Mode, length, args[1])
			if err != nil {
				return fmt.Errorf("guess: %w", err)
			}

			fb, err := feedback.Compute(secret, guess)
			if err != nil {
				return err
			}

			output(cmd).Print(CheckResult{
				Variant: variant.Name,
				Secret:  secret.String(),
				Guess:   guess.String(),
				Bulls:   fb.Bulls,
				Cows:    fb.Cows,
				Display: displayFeedback(variant, fb),
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", model.DefaultVariantName, "Game variant: bulls, mastermind")

	return cmd
}
