package tree

// Diff returns the subtree of current that is new or changed relative to
// previous, preserving nested shape. Keys present only in previous are
// ignored here: removals are handled by the pruning pass against the current
// source tree, never against the snapshot.
//
// A key whose value switches between leaf and branch is emitted wholesale as
// the new value, without recursing. That asymmetry is deliberate and mirrors
// the merge policy of the latest batch winning.
//
// previous == nil means no snapshot exists yet; the diff is then the entire
// current tree (first run for a source language).
func Diff(current, previous *Branch) *Branch {
	if previous == nil {
		return current.Clone()
	}
	out := NewBranch()
	for _, key := range current.keys {
		cur := current.children[key]
		prev, ok := previous.Get(key)
		if !ok {
			out.Set(key, cloneNode(cur))
			continue
		}
		switch c := cur.(type) {
		case *Branch:
			p, isBranch := prev.(*Branch)
			if !isBranch {
				out.Set(key, c.Clone())
				continue
			}
			if sub := Diff(c, p); sub.Len() > 0 {
				out.Set(key, sub)
			}
		case Leaf:
			if p, isLeaf := prev.(Leaf); !isLeaf || p != c {
				out.Set(key, c)
			}
		}
	}
	return out
}
