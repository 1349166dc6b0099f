package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"localesync/internal/application"
	"localesync/internal/config"
	"localesync/internal/infrastructure/i18n"
	"localesync/internal/infrastructure/store"
	"localesync/internal/ports/input"
	"localesync/internal/ports/output"

	deepladapter "localesync/internal/adapters/deepl"
)

var rootCmd = &cobra.Command{
	Use:   "localesync",
	Short: "Synchronise des fichiers de traduction JSON via DeepL",
	Long: `localesync compare l'arbre de langue source à son dernier instantané
validé, n'envoie au fournisseur de traduction que les chaînes nouvelles ou
modifiées, fusionne les réponses dans les fichiers cibles sans écraser les
traductions existantes, puis supprime les clés orphelines.

Configuration par variables d'environnement (ou fichier .env):
  LOCALESYNC_API_KEY       clé API DeepL (obligatoire)
  LOCALESYNC_SOURCE_LANG   langue source (défaut: en)
  LOCALESYNC_TARGET_LANGS  langues cibles, séparées par des virgules
  LOCALESYNC_DIR           dossier des fichiers de langue (défaut: ./locales)
  LOCALESYNC_FORMALITY     formalité DeepL: default, more ou less
  LOCALESYNC_API_URL       hôte API alternatif (tests, proxy)
  LOCALESYNC_LOCALE        langue des messages de cet outil (en, fr)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

// app regroups everything a command needs: the configured use cases behind
// their input port plus the console message translator.
type app struct {
	cfg        *config.Config
	syncer     input.Syncer
	translator output.Translator
	msg        output.T
	locale     string
}

// newApp wires ports: output adapters -> application (use cases) -> commands.
func newApp() (*app, error) {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return nil, err
	}

	client := deepladapter.NewClient(cfg.APIKey, cfg.APIURL)
	translator := deepladapter.NewTranslator(client)

	syncer := application.NewSyncService(
		translator,
		store.NewLocaleStore(cfg.LocalesDir),
		store.NewLockStore(cfg.LocalesDir),
		store.NewHistoryStore(cfg.LocalesDir),
		application.Options{
			SourceLang:  cfg.SourceLang,
			TargetLangs: cfg.TargetLangs,
			Formality:   cfg.Formality,
			CheckQuota:  true,
		},
	)

	return &app{
		cfg:        cfg,
		syncer:     syncer,
		translator: translator,
		msg:        i18n.NewTranslator("en"),
		locale:     os.Getenv("LOCALESYNC_LOCALE"),
	}, nil
}

// t renders a console message in the user's locale.
func (a *app) t(key string, data map[string]any) string {
	return a.msg.T(a.locale, key, data)
}
