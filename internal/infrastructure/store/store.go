// Package store persists locale trees, lock snapshots and run history as
// JSON files under the locales directory.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// stateDir is the engine-owned subdirectory of the locales directory.
const stateDir = ".localesync"

// writeFileAtomic writes data via a temp file and rename, so a crash never
// leaves a half-written document behind.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("création du dossier %s: %w", filepath.Dir(path), err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("fichier temporaire pour %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("écriture de %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("écriture de %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("remplacement de %s: %w", path, err)
	}
	return nil
}
