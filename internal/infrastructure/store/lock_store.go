package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"localesync/internal/domain/tree"
	"localesync/internal/ports/output"
)

// Ensure LockStore implements the output.LockStore port.
var _ output.LockStore = (*LockStore)(nil)

// LockStore persists the last-known-good source snapshot under
// .localesync/lock.<sourceLang>.json. The snapshot is owned exclusively by
// the engine: created on the first successful run, replaced wholesale after
// every later one, never partially updated.
type LockStore struct {
	dir string
}

func NewLockStore(dir string) *LockStore {
	return &LockStore{dir: dir}
}

func (s *LockStore) path(sourceLang string) string {
	return filepath.Join(s.dir, stateDir, "lock."+sourceLang+".json")
}

// Read returns (nil, nil) when no snapshot exists: the bootstrap state.
func (s *LockStore) Read(sourceLang string) (*tree.Branch, error) {
	data, err := os.ReadFile(s.path(sourceLang))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture de %s: %w", s.path(sourceLang), err)
	}
	b, err := tree.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path(sourceLang), err)
	}
	return b, nil
}

func (s *LockStore) Write(sourceLang string, snapshot *tree.Branch) error {
	return writeFileAtomic(s.path(sourceLang), tree.Encode(snapshot))
}
