// Package tree implements the locale-tree engine: an insertion-ordered model
// of nested JSON string documents, plus the pure operations the sync workflow
// is built from (diff, merge, orphan pruning).
package tree

// Node is one position in a locale tree: either a Leaf (a translatable
// string) or a *Branch (a nested object). No other shapes exist; in
// particular arrays are rejected at decode time.
type Node interface {
	node()
}

// Leaf is a translatable string value.
type Leaf string

func (Leaf) node() {}

// Branch is a nested object of key -> Node entries. Key order follows first
// insertion so persisted files keep their document order across runs.
type Branch struct {
	keys     []string
	children map[string]Node
}

func (*Branch) node() {}

// NewBranch returns an empty branch.
func NewBranch() *Branch {
	return &Branch{children: make(map[string]Node)}
}

// Get returns the child stored under key.
func (b *Branch) Get(key string) (Node, bool) {
	if b == nil {
		return nil, false
	}
	n, ok := b.children[key]
	return n, ok
}

// Set stores n under key. An existing key keeps its position; a new key is
// appended.
func (b *Branch) Set(key string, n Node) {
	if _, ok := b.children[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.children[key] = n
}

// Delete removes key and its subtree. Missing keys are a no-op.
func (b *Branch) Delete(key string) {
	if b == nil {
		return
	}
	if _, ok := b.children[key]; !ok {
		return
	}
	delete(b.children, key)
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of direct children.
func (b *Branch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Keys returns the child keys in document order.
func (b *Branch) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Clone returns a deep copy of the branch.
func (b *Branch) Clone() *Branch {
	if b == nil {
		return NewBranch()
	}
	out := NewBranch()
	for _, key := range b.keys {
		out.Set(key, cloneNode(b.children[key]))
	}
	return out
}

func cloneNode(n Node) Node {
	switch v := n.(type) {
	case Leaf:
		return v
	case *Branch:
		return v.Clone()
	default:
		return n
	}
}

// Equal reports whether two nodes hold the same values in the same document
// order.
func Equal(a, b Node) bool {
	switch av := a.(type) {
	case Leaf:
		bv, ok := b.(Leaf)
		return ok && av == bv
	case *Branch:
		bv, ok := b.(*Branch)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, key := range av.keys {
			if bv.keys[i] != key {
				return false
			}
			if !Equal(av.children[key], bv.children[key]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}
