package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"localesync/internal/domain/entities"
)

var (
	syncYes    bool
	syncDryRun bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Traduit les chaînes nouvelles ou modifiées et met à jour les fichiers cibles",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		fmt.Println(a.t("sync_start", map[string]any{
			"Source":  a.cfg.SourceLang,
			"Targets": strings.Join(a.cfg.TargetLangs, ", "),
		}))

		preview, err := a.syncer.Status(ctx)
		if err != nil {
			return err
		}
		if preview.Skipped {
			fmt.Println("✅ " + a.t("sync_skipped", nil))
			return nil
		}
		printPending(a, preview)

		if syncDryRun {
			return nil
		}
		if !syncYes && !confirm(a, preview.TotalChars()) {
			fmt.Println(a.t("aborted", nil))
			return nil
		}

		report, err := a.syncer.Sync(ctx)
		if err != nil {
			return err
		}
		for _, l := range report.Languages {
			fmt.Println("✅ " + a.t("sync_lang_summary", map[string]any{
				"Lang":    l.Lang,
				"Leaves":  l.SentLeaves,
				"Chars":   l.SentChars,
				"Orphans": len(l.Orphans),
			}))
		}
		fmt.Println("✅ " + a.t("sync_done", map[string]any{
			"RunID": report.RunID,
			"Langs": len(report.Languages),
		}))
		return nil
	},
}

func printPending(a *app, report *entities.RunReport) {
	for _, l := range report.Languages {
		if l.NewLanguage {
			fmt.Println("  " + a.t("sync_lang_new", map[string]any{
				"Lang":   l.Lang,
				"Leaves": l.SentLeaves,
			}))
			continue
		}
		fmt.Println("  " + a.t("status_pending", map[string]any{
			"Lang":   l.Lang,
			"Leaves": l.SentLeaves,
			"Chars":  l.SentChars,
		}))
	}
}

// confirm asks on stdin before spending provider quota. Both the French and
// English affirmatives are accepted.
func confirm(a *app, chars int) bool {
	fmt.Print(a.t("confirm_prompt", map[string]any{"Chars": chars}))
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "oui", "y", "yes":
		return true
	}
	return false
}

func init() {
	syncCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "Ne pas demander de confirmation")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Afficher le travail en attente sans traduire")
	rootCmd.AddCommand(syncCmd)
}
