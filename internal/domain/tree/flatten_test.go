package tree

import "testing"

func TestFlatten_DocumentOrder(t *testing.T) {
	b := mustDecode(t, `{"z":"last?","menu":{"file":"Fichier","edit":"Éditer"},"a":"1"}`)
	paths, values := Flatten(b)
	wantPaths := []string{"z", "menu.file", "menu.edit", "a"}
	wantValues := []string{"last?", "Fichier", "Éditer", "1"}
	if len(paths) != len(wantPaths) {
		t.Fatalf("paths: got %v, want %v", paths, wantPaths)
	}
	for i := range wantPaths {
		if paths[i] != wantPaths[i] {
			t.Errorf("paths[%d]: got %q, want %q", i, paths[i], wantPaths[i])
		}
		if values[i] != wantValues[i] {
			t.Errorf("values[%d]: got %q, want %q", i, values[i], wantValues[i])
		}
	}
}

func TestCharCount_CountsRunes(t *testing.T) {
	b := mustDecode(t, `{"a":"été","b":{"c":"ok"}}`)
	if got := CharCount(b); got != 5 {
		t.Errorf("char count: got %d, want 5", got)
	}
}

func TestWithLeaves_ReplacesInOrder(t *testing.T) {
	b := mustDecode(t, `{"a":"one","b":{"c":"two"}}`)
	out, ok := WithLeaves(b, []string{"un", "deux"})
	if !ok {
		t.Fatal("count mismatch reported for a matching batch")
	}
	want := mustDecode(t, `{"a":"un","b":{"c":"deux"}}`)
	if !Equal(out, want) {
		t.Errorf("got %s, want %s", Encode(out), Encode(want))
	}
	// Input stays untouched.
	orig := mustDecode(t, `{"a":"one","b":{"c":"two"}}`)
	if !Equal(b, orig) {
		t.Error("WithLeaves mutated its input")
	}
}

func TestWithLeaves_CountMismatch(t *testing.T) {
	b := mustDecode(t, `{"a":"one","b":"two"}`)
	if _, ok := WithLeaves(b, []string{"un"}); ok {
		t.Error("short batch accepted")
	}
	if _, ok := WithLeaves(b, []string{"un", "deux", "trois"}); ok {
		t.Error("long batch accepted")
	}
}
