package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Affiche les chaînes en attente de traduction, sans rien modifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		report, err := a.syncer.Status(cmd.Context())
		if err != nil {
			return err
		}
		if report.Skipped {
			fmt.Println("✅ " + a.t("status_clean", nil))
			return nil
		}
		printPending(a, report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
