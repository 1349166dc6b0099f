package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Supprime des fichiers cibles les clés absentes de la source",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		report, err := a.syncer.Prune(cmd.Context())
		if err != nil {
			return err
		}
		removed := false
		for _, l := range report.Languages {
			if len(l.Orphans) == 0 {
				continue
			}
			removed = true
			fmt.Println("✅ " + a.t("prune_done", map[string]any{
				"Lang":  l.Lang,
				"Count": len(l.Orphans),
			}))
			for _, path := range l.Orphans {
				fmt.Println("    - " + path)
			}
		}
		if !removed {
			fmt.Println("✅ " + a.t("prune_clean", nil))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
