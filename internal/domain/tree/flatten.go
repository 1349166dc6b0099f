package tree

// Flatten returns the dotted paths and leaf values of b in document order.
// The two slices are index-aligned; this is the shape translation providers
// consume (a flat list of texts).
func Flatten(b *Branch) (paths, values []string) {
	flatten(b, "", &paths, &values)
	return paths, values
}

func flatten(b *Branch, prefix string, paths, values *[]string) {
	if b == nil {
		return
	}
	for _, key := range b.keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch v := b.children[key].(type) {
		case Leaf:
			*paths = append(*paths, full)
			*values = append(*values, string(v))
		case *Branch:
			flatten(v, full, paths, values)
		}
	}
}

// LeafCount returns the number of leaves in b.
func LeafCount(b *Branch) int {
	_, values := Flatten(b)
	return len(values)
}

// CharCount returns the total number of characters (runes) across all leaves,
// the unit translation quotas are billed in.
func CharCount(b *Branch) int {
	_, values := Flatten(b)
	total := 0
	for _, v := range values {
		total += len([]rune(v))
	}
	return total
}

// WithLeaves returns a copy of b whose leaves are replaced, in document
// order, by the given values. ok is false when the value count does not match
// the leaf count; the copy is then nil and the caller should treat the batch
// as a provider contract violation.
func WithLeaves(b *Branch, values []string) (out *Branch, ok bool) {
	if LeafCount(b) != len(values) {
		return nil, false
	}
	i := 0
	return substitute(b, values, &i), true
}

func substitute(b *Branch, values []string, i *int) *Branch {
	out := NewBranch()
	for _, key := range b.keys {
		switch v := b.children[key].(type) {
		case Leaf:
			out.Set(key, Leaf(values[*i]))
			*i++
		case *Branch:
			out.Set(key, substitute(v, values, i))
		}
	}
	return out
}
