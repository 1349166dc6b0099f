package output

import (
	"context"

	"localesync/internal/domain/tree"
)

// Usage is the provider-side character quota for the configured account.
type Usage struct {
	CharacterCount int64
	CharacterLimit int64
}

// Remaining returns how many characters can still be translated. A zero
// limit means the provider reported no quota at all.
func (u Usage) Remaining() int64 {
	if u.CharacterLimit <= 0 {
		return 0
	}
	return u.CharacterLimit - u.CharacterCount
}

// Translator is the boundary to the external machine-translation provider.
type Translator interface {
	// Translate returns a tree of the same shape as payload with every leaf
	// translated from sourceLang into targetLang. A response that does not
	// match the payload's shape is the provider's contract violation and is
	// reported as an error, never repaired.
	Translate(ctx context.Context, payload *tree.Branch, sourceLang, targetLang, formality string) (*tree.Branch, error)

	// Usage reports the account's character consumption and limit.
	Usage(ctx context.Context) (Usage, error)
}
