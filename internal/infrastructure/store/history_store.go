package store

import (
	"path/filepath"

	"localesync/internal/domain/tree"
	"localesync/internal/ports/output"
)

// Ensure HistoryStore implements the output.HistoryStore port.
var _ output.HistoryStore = (*HistoryStore)(nil)

// HistoryStore archives each run's raw per-language provider response under
// .localesync/history/<runID>/<lang>.json, before any merge touches it.
type HistoryStore struct {
	dir string
}

func NewHistoryStore(dir string) *HistoryStore {
	return &HistoryStore{dir: dir}
}

func (s *HistoryStore) Record(runID, lang string, payload *tree.Branch) error {
	path := filepath.Join(s.dir, stateDir, "history", runID, lang+".json")
	return writeFileAtomic(path, tree.Encode(payload))
}
