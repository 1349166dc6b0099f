package tree

import (
	"fmt"

	"localesync/internal/domain"
)

// Validate checks a tree built in memory. Decode already rejects arrays and
// non-object roots, so this guards trees assembled programmatically: the root
// must be a branch and every node must be a Leaf or a *Branch.
func Validate(root Node) error {
	b, ok := root.(*Branch)
	if !ok || b == nil {
		return fmt.Errorf("%w: la racine doit être un objet", domain.ErrInvalidShape)
	}
	return validateBranch(b)
}

func validateBranch(b *Branch) error {
	for _, key := range b.keys {
		switch v := b.children[key].(type) {
		case Leaf:
		case *Branch:
			if v == nil {
				return fmt.Errorf("%w: sous-arbre nul sous la clé %q", domain.ErrInvalidShape, key)
			}
			if err := validateBranch(v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: valeur inattendue sous la clé %q", domain.ErrInvalidShape, key)
		}
	}
	return nil
}
