package tree

import "testing"

func TestDiff_IdenticalTreesYieldEmptyDelta(t *testing.T) {
	a := mustDecode(t, `{"a":"1","b":{"c":"2","d":{"e":"3"}}}`)
	if d := Diff(a, a); d.Len() != 0 {
		t.Errorf("diff(A, A): got %s, want empty", Encode(d))
	}
}

func TestDiff_NoSnapshotReturnsWholeTree(t *testing.T) {
	a := mustDecode(t, `{"a":"1","b":{"c":"2"}}`)
	if d := Diff(a, nil); !Equal(d, a) {
		t.Errorf("diff(A, nil): got %s, want %s", Encode(d), Encode(a))
	}
}

func TestDiff_EmptySnapshotReturnsWholeTree(t *testing.T) {
	a := mustDecode(t, `{"a":"1","b":{"c":"2"}}`)
	if d := Diff(a, NewBranch()); !Equal(d, a) {
		t.Errorf("diff(A, {}): got %s, want %s", Encode(d), Encode(a))
	}
}

func TestDiff_NewSubtree(t *testing.T) {
	current := mustDecode(t, `{"a":"1","b":{"c":"2"}}`)
	lock := mustDecode(t, `{"a":"1"}`)
	want := mustDecode(t, `{"b":{"c":"2"}}`)
	if d := Diff(current, lock); !Equal(d, want) {
		t.Errorf("got %s, want %s", Encode(d), Encode(want))
	}
}

func TestDiff_ChangedLeaf(t *testing.T) {
	current := mustDecode(t, `{"a":"1","b":"2"}`)
	lock := mustDecode(t, `{"a":"1","b":"9"}`)
	want := mustDecode(t, `{"b":"2"}`)
	if d := Diff(current, lock); !Equal(d, want) {
		t.Errorf("got %s, want %s", Encode(d), Encode(want))
	}
}

func TestDiff_NestedChangeKeepsShape(t *testing.T) {
	current := mustDecode(t, `{"menu":{"file":"Fichier","edit":"Modifier"},"ok":"OK"}`)
	lock := mustDecode(t, `{"menu":{"file":"Fichier","edit":"Éditer"},"ok":"OK"}`)
	want := mustDecode(t, `{"menu":{"edit":"Modifier"}}`)
	if d := Diff(current, lock); !Equal(d, want) {
		t.Errorf("got %s, want %s", Encode(d), Encode(want))
	}
}

func TestDiff_UnchangedSubtreeOmitted(t *testing.T) {
	current := mustDecode(t, `{"a":{"b":"1"},"c":"2"}`)
	lock := mustDecode(t, `{"a":{"b":"1"},"c":"9"}`)
	d := Diff(current, lock)
	if _, ok := d.Get("a"); ok {
		t.Errorf("unchanged subtree emitted: %s", Encode(d))
	}
}

func TestDiff_RemovedKeysIgnored(t *testing.T) {
	current := mustDecode(t, `{"a":"1"}`)
	lock := mustDecode(t, `{"a":"1","gone":"x"}`)
	if d := Diff(current, lock); d.Len() != 0 {
		t.Errorf("removed key leaked into diff: %s", Encode(d))
	}
}

func TestDiff_LeafBecomesBranch(t *testing.T) {
	current := mustDecode(t, `{"a":{"b":"1"}}`)
	lock := mustDecode(t, `{"a":"old"}`)
	want := mustDecode(t, `{"a":{"b":"1"}}`)
	if d := Diff(current, lock); !Equal(d, want) {
		t.Errorf("got %s, want %s", Encode(d), Encode(want))
	}
}

func TestDiff_BranchBecomesLeaf(t *testing.T) {
	current := mustDecode(t, `{"a":"now"}`)
	lock := mustDecode(t, `{"a":{"b":"1"}}`)
	want := mustDecode(t, `{"a":"now"}`)
	if d := Diff(current, lock); !Equal(d, want) {
		t.Errorf("got %s, want %s", Encode(d), Encode(want))
	}
}

func TestDiff_DoesNotMutateInputs(t *testing.T) {
	current := mustDecode(t, `{"a":"1","b":{"c":"2"}}`)
	lock := mustDecode(t, `{"a":"0"}`)
	curCopy := current.Clone()
	lockCopy := lock.Clone()
	Diff(current, lock)
	if !Equal(current, curCopy) || !Equal(lock, lockCopy) {
		t.Error("diff mutated an input tree")
	}
}
