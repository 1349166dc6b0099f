package tree

// Merge combines a freshly translated partial tree into an existing target
// tree and returns a new tree; neither input is mutated. Branch values merge
// recursively, a missing or non-branch existing value counting as an empty
// branch. Leaf values from translated always overwrite: the latest
// translation batch is the source of truth, never the prior on-disk state.
// Keys present only in existing survive unchanged at every depth.
func Merge(existing, translated *Branch) *Branch {
	out := existing.Clone()
	if translated == nil {
		return out
	}
	for _, key := range translated.keys {
		switch v := translated.children[key].(type) {
		case *Branch:
			base, _ := out.Get(key)
			eb, ok := base.(*Branch)
			if !ok {
				eb = NewBranch()
			}
			out.Set(key, Merge(eb, v))
		case Leaf:
			out.Set(key, v)
		}
	}
	return out
}
