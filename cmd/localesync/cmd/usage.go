package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Affiche le quota de caractères du compte fournisseur",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		usage, err := a.translator.Usage(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(a.t("usage_report", map[string]any{
			"Count":     usage.CharacterCount,
			"Limit":     usage.CharacterLimit,
			"Remaining": usage.Remaining(),
		}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
