// Package langcode normalizes the language identifiers used for locale file
// names and provider calls.
package langcode

import (
	"strings"

	"golang.org/x/text/language"
)

// Normalize parses a BCP 47 code and returns its canonical form in lowercase
// ("PT-br" -> "pt-br"), the spelling locale files are named with.
func Normalize(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", err
	}
	return strings.ToLower(tag.String()), nil
}

// Same reports whether two codes identify the same language, ignoring case
// and region ("fr" and "FR", "pt-BR" and "pt-br").
func Same(a, b string) bool {
	na, errA := Normalize(a)
	nb, errB := Normalize(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return na == nb
}
