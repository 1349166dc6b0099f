package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"localesync/internal/domain"
	"localesync/internal/domain/tree"
)

func decode(t *testing.T, src string) *tree.Branch {
	t.Helper()
	b, err := tree.Decode([]byte(src))
	if err != nil {
		t.Fatalf("decode %s: %v", src, err)
	}
	return b
}

func TestLocaleStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewLocaleStore(dir)

	if s.Exists("fr") {
		t.Error("fr exists before write")
	}
	want := decode(t, `{"b":"2","a":{"c":"1"}}`)
	if err := s.Write("fr", want); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !s.Exists("fr") {
		t.Error("fr missing after write")
	}
	got, err := s.Read("fr")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !tree.Equal(got, want) {
		t.Errorf("got %s, want %s", tree.Encode(got), tree.Encode(want))
	}
}

func TestLocaleStore_KeepsKeyOrderOnDisk(t *testing.T) {
	dir := t.TempDir()
	s := NewLocaleStore(dir)
	if err := s.Write("de", decode(t, `{"z":"1","a":"2"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "de.json"))
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	want := "{\n  \"z\": \"1\",\n  \"a\": \"2\"\n}\n"
	if string(data) != want {
		t.Errorf("on disk:\ngot  %q\nwant %q", data, want)
	}
}

func TestLocaleStore_ReadMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fr.json"), []byte(`{"a":[1]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewLocaleStore(dir).Read("fr")
	if !errors.Is(err, domain.ErrInvalidShape) {
		t.Errorf("got %v, want ErrInvalidShape", err)
	}
}

func TestLockStore_MissingSnapshotIsBootstrap(t *testing.T) {
	s := NewLockStore(t.TempDir())
	b, err := s.Read("en")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if b != nil {
		t.Errorf("got %s, want nil snapshot", tree.Encode(b))
	}
}

func TestLockStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewLockStore(dir)
	want := decode(t, `{"a":"1"}`)
	if err := s.Write("en", want); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := s.Read("en")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !tree.Equal(got, want) {
		t.Errorf("got %s, want %s", tree.Encode(got), tree.Encode(want))
	}
	if _, err := os.Stat(filepath.Join(dir, stateDir, "lock.en.json")); err != nil {
		t.Errorf("lock file location: %v", err)
	}
}

func TestHistoryStore_Record(t *testing.T) {
	dir := t.TempDir()
	s := NewHistoryStore(dir)
	payload := decode(t, `{"a":"bonjour"}`)
	if err := s.Record("run-42", "fr", payload); err != nil {
		t.Fatalf("record: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, stateDir, "history", "run-42", "fr.json"))
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	got, err := tree.Decode(data)
	if err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if !tree.Equal(got, payload) {
		t.Errorf("got %s, want %s", tree.Encode(got), tree.Encode(payload))
	}
}
