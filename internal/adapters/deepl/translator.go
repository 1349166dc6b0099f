package deepl

import (
	"context"
	"fmt"

	"localesync/internal/domain"
	"localesync/internal/domain/tree"
	"localesync/internal/ports/output"
)

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Translator adapts the DeepL client to the tree-shaped Translator port:
// leaves are flattened in document order, translated as one batch, then
// substituted back into a copy of the payload.
type Translator struct {
	client *Client
}

// NewTranslator wraps a DeepL client.
func NewTranslator(client *Client) *Translator {
	return &Translator{client: client}
}

// Translate implements output.Translator.
func (t *Translator) Translate(ctx context.Context, payload *tree.Branch, sourceLang, targetLang, formality string) (*tree.Branch, error) {
	_, values := tree.Flatten(payload)
	if len(values) == 0 {
		return tree.NewBranch(), nil
	}

	translated, err := t.client.TranslateTexts(ctx, values, sourceLang, targetLang, formality)
	if err != nil {
		return nil, err
	}

	out, ok := tree.WithLeaves(payload, translated)
	if !ok {
		return nil, fmt.Errorf("%w: %d textes envoyés, %d reçus (%s)",
			domain.ErrProviderShape, len(values), len(translated), targetLang)
	}
	return out, nil
}

// Usage implements output.Translator.
func (t *Translator) Usage(ctx context.Context) (output.Usage, error) {
	count, limit, err := t.client.AccountUsage(ctx)
	if err != nil {
		return output.Usage{}, err
	}
	return output.Usage{CharacterCount: count, CharacterLimit: limit}, nil
}
