package output

import "localesync/internal/domain/tree"

// LocaleStore persists one locale tree per language (source and targets
// share the same layout).
type LocaleStore interface {
	Exists(lang string) bool
	Read(lang string) (*tree.Branch, error)
	Write(lang string, b *tree.Branch) error
}

// LockStore persists the last-known-good snapshot of the source tree, one
// per source language. Read returns (nil, nil) when no snapshot exists yet:
// a missing snapshot is the defined bootstrap state, not an error.
type LockStore interface {
	Read(sourceLang string) (*tree.Branch, error)
	Write(sourceLang string, snapshot *tree.Branch) error
}

// HistoryStore retains each run's per-language translated payload verbatim,
// pre-merge, under a run identifier, for auditability.
type HistoryStore interface {
	Record(runID, lang string, payload *tree.Branch) error
}
