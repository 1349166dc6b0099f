package config

import (
	"errors"
	"strings"
	"testing"

	"localesync/internal/domain"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_API_KEY":      "secret:fx",
		"LOCALESYNC_TARGET_LANGS": "fr, de",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SourceLang != "en" {
		t.Errorf("source lang: got %q, want en", cfg.SourceLang)
	}
	if cfg.LocalesDir != "./locales" {
		t.Errorf("locales dir: got %q, want ./locales", cfg.LocalesDir)
	}
	if cfg.Formality != FormalityDefault {
		t.Errorf("formality: got %q, want %q", cfg.Formality, FormalityDefault)
	}
	if len(cfg.TargetLangs) != 2 || cfg.TargetLangs[0] != "fr" || cfg.TargetLangs[1] != "de" {
		t.Errorf("target langs: got %v, want [fr de]", cfg.TargetLangs)
	}
}

func TestLoad_MissingAPIKey(t *testing.T) {
	_, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_TARGET_LANGS": "fr",
	}))
	if err == nil || !strings.Contains(err.Error(), "LOCALESYNC_API_KEY") {
		t.Errorf("got %v, want missing API key error", err)
	}
}

func TestLoad_MissingTargets(t *testing.T) {
	_, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_API_KEY": "secret",
	}))
	if err == nil || !strings.Contains(err.Error(), "LOCALESYNC_TARGET_LANGS") {
		t.Errorf("got %v, want missing target langs error", err)
	}
}

func TestLoad_BadLanguageCode(t *testing.T) {
	_, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_API_KEY":      "secret",
		"LOCALESYNC_TARGET_LANGS": "fr,!!",
	}))
	if !errors.Is(err, domain.ErrUnknownLanguage) {
		t.Errorf("got %v, want ErrUnknownLanguage", err)
	}
}

func TestLoad_TargetEqualsSource(t *testing.T) {
	_, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_API_KEY":      "secret",
		"LOCALESYNC_SOURCE_LANG":  "fr",
		"LOCALESYNC_TARGET_LANGS": "fr",
	}))
	if err == nil {
		t.Error("target equal to source accepted")
	}
}

func TestLoad_BadFormality(t *testing.T) {
	_, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_API_KEY":      "secret",
		"LOCALESYNC_TARGET_LANGS": "fr",
		"LOCALESYNC_FORMALITY":    "polite",
	}))
	if !errors.Is(err, domain.ErrUnknownFormality) {
		t.Errorf("got %v, want ErrUnknownFormality", err)
	}
}

func TestLoad_BadAPIURL(t *testing.T) {
	_, err := Load(fakeEnv(map[string]string{
		"LOCALESYNC_API_KEY":      "secret",
		"LOCALESYNC_TARGET_LANGS": "fr",
		"LOCALESYNC_API_URL":      "not-a-url",
	}))
	if err == nil {
		t.Error("invalid API URL accepted")
	}
}
