package tree

import "strings"

// Orphans walks target and returns the dotted paths of keys that no longer
// exist in source at the same position. When both sides hold a branch the
// walk recurses and collects nested paths instead of flagging the parent.
//
// A key whose kind differs between the two sides (leaf on one, branch on the
// other) is not flagged: only true absence triggers removal. Type-changed
// keys are left for the next merge cycle to overwrite, which can leave a
// stale shape around for one run.
func Orphans(target, source *Branch, prefix string) []string {
	if target == nil {
		return nil
	}
	var paths []string
	for _, key := range target.keys {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		sv, ok := source.Get(key)
		if !ok {
			paths = append(paths, full)
			continue
		}
		tb, tok := target.children[key].(*Branch)
		sb, sok := sv.(*Branch)
		if tok && sok {
			paths = append(paths, Orphans(tb, sb, full)...)
		}
	}
	return paths
}

// RemoveByPaths deletes the given dotted paths from target in place.
// Deletion is best-effort and idempotent: a path whose intermediate segment
// is missing or not a branch is silently skipped.
func RemoveByPaths(target *Branch, paths []string) {
	for _, path := range paths {
		removePath(target, strings.Split(path, "."))
	}
}

func removePath(b *Branch, segments []string) {
	if b == nil || len(segments) == 0 {
		return
	}
	if len(segments) == 1 {
		b.Delete(segments[0])
		return
	}
	child, ok := b.Get(segments[0])
	if !ok {
		return
	}
	cb, ok := child.(*Branch)
	if !ok {
		return
	}
	removePath(cb, segments[1:])
}
