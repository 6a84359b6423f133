package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/bullscows/internal/model"
)

func newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <user> <guesses>",
		Short: "Append a finished game to the result log",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := args[0]
			guesses, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("guesses must be a whole number: %q", args[1])
			}
			if guesses < 0 {
				return model.ErrNegativeGuessCount
			}

			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.LedgerService.Record(cmd.Context(), user, guesses); err != nil {
				return err
			}

			output(cmd).Print(RecordResult{Username: user, Guesses: guesses})
			return nil
		},
	}
}
