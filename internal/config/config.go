package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"

	"localesync/internal/domain"
	"localesync/pkg/langcode"
)

// Formality values accepted by the translation provider.
const (
	FormalityDefault = "default"
	FormalityMore    = "more"
	FormalityLess    = "less"
)

type Config struct {
	APIKey      string
	APIURL      string // optional override; empty selects free/pro from the key
	SourceLang  string
	TargetLangs []string
	LocalesDir  string
	Formality   string
}

// Load charge la configuration depuis les variables d'environnement et la valide.
func Load(getenv func(string) string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}

	cfg := &Config{
		APIKey:      getenv("LOCALESYNC_API_KEY"),
		APIURL:      getenv("LOCALESYNC_API_URL"),
		SourceLang:  getenv("LOCALESYNC_SOURCE_LANG"),
		TargetLangs: splitLangs(getenv("LOCALESYNC_TARGET_LANGS")),
		LocalesDir:  getenv("LOCALESYNC_DIR"),
		Formality:   getenv("LOCALESYNC_FORMALITY"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitLangs(raw string) []string {
	var langs []string
	for _, part := range strings.Split(raw, ",") {
		if lang := strings.TrimSpace(part); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("config: LOCALESYNC_API_KEY est requis et ne peut pas être vide")
	}

	if strings.TrimSpace(c.SourceLang) == "" {
		c.SourceLang = "en"
	}
	if _, err := langcode.Normalize(c.SourceLang); err != nil {
		return fmt.Errorf("config: LOCALESYNC_SOURCE_LANG %q: %w", c.SourceLang, domain.ErrUnknownLanguage)
	}

	if len(c.TargetLangs) == 0 {
		return fmt.Errorf("config: LOCALESYNC_TARGET_LANGS est requis (liste de codes séparés par des virgules)")
	}
	for _, lang := range c.TargetLangs {
		if _, err := langcode.Normalize(lang); err != nil {
			return fmt.Errorf("config: langue cible %q: %w", lang, domain.ErrUnknownLanguage)
		}
		if langcode.Same(lang, c.SourceLang) {
			return fmt.Errorf("config: la langue cible %q est identique à la langue source", lang)
		}
	}

	if strings.TrimSpace(c.LocalesDir) == "" {
		c.LocalesDir = "./locales"
	}

	if strings.TrimSpace(c.Formality) == "" {
		c.Formality = FormalityDefault
	}
	switch c.Formality {
	case FormalityDefault, FormalityMore, FormalityLess:
	default:
		return fmt.Errorf("config: LOCALESYNC_FORMALITY %q: %w", c.Formality, domain.ErrUnknownFormality)
	}

	if c.APIURL != "" {
		parsed, err := url.Parse(c.APIURL)
		if err != nil {
			return fmt.Errorf("config: LOCALESYNC_API_URL invalide (%q): %w", c.APIURL, err)
		}
		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("config: LOCALESYNC_API_URL invalide (%q): scheme ou host manquant", c.APIURL)
		}
	}

	return nil
}
