package input

import (
	"context"

	"localesync/internal/domain/entities"
)

// Syncer is the application entry point the CLI drives.
type Syncer interface {
	// Sync runs the full cycle: diff against the lock snapshot, translate
	// per-language payloads, merge, prune, persist, then rewrite the lock.
	Sync(ctx context.Context) (*entities.RunReport, error)

	// Status computes the same per-language payloads without calling the
	// provider or writing anything.
	Status(ctx context.Context) (*entities.RunReport, error)

	// Prune removes orphaned keys from every existing target file, without
	// translating anything.
	Prune(ctx context.Context) (*entities.RunReport, error)
}
