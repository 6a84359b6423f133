package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/bullscows/internal/model"
)

func newVariantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List the game variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []VariantInfo
			for _, v := range model.Variants() {
				infos = append(infos, VariantInfo{
					Name:  v.Name,
					Title: v.Title,
					Mode:  string(v.Mode),
					Bull:  v.Markers.Bull,
					Cow:   v.Markers.Cow,
				})
			}
			output(cmd).Print(infos)
			return nil
		},
	}
}
