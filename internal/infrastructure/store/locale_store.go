package store

import (
	"fmt"
	"os"
	"path/filepath"

	"localesync/internal/domain/tree"
	"localesync/internal/ports/output"
)

// Ensure LocaleStore implements the output.LocaleStore port.
var _ output.LocaleStore = (*LocaleStore)(nil)

// LocaleStore reads and writes <lang>.json documents in the locales
// directory, preserving key order on disk.
type LocaleStore struct {
	dir string
}

func NewLocaleStore(dir string) *LocaleStore {
	return &LocaleStore{dir: dir}
}

func (s *LocaleStore) path(lang string) string {
	return filepath.Join(s.dir, lang+".json")
}

func (s *LocaleStore) Exists(lang string) bool {
	_, err := os.Stat(s.path(lang))
	return err == nil
}

func (s *LocaleStore) Read(lang string) (*tree.Branch, error) {
	data, err := os.ReadFile(s.path(lang))
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", s.path(lang), err)
	}
	b, err := tree.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path(lang), err)
	}
	return b, nil
}

func (s *LocaleStore) Write(lang string, b *tree.Branch) error {
	return writeFileAtomic(s.path(lang), tree.Encode(b))
}
