package cache

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestArtifactCache_SaveGet(t *testing.T) {
	c := &ArtifactCache{Dir: t.TempDir()}
	key := KeyFrom("html", "digest")
	data := []byte("<p>hi</p>")
	if err := c.Save(context.Background(), key, data); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := c.Get(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("get: %v ok=%v", err, ok)
	}
	if string(got) != string(data) {
		t.Fatalf("mismatch")
	}
	if _, ok, _ := c.Get(context.Background(), KeyFrom("pdf", "digest")); ok {
		t.Fatalf("format must be part of the key")
	}
}

func TestArtifactCache_Unconfigured(t *testing.T) {
	var c ArtifactCache
	if err := c.Save(context.Background(), "k", nil); err == nil {
		t.Fatalf("expected error without dir")
	}
}

func TestArtifactCache_StrictPerms(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "artifacts")
	c := &ArtifactCache{Dir: dir, StrictPerms: true}
	key := KeyFrom("text", "d")
	if err := c.Save(context.Background(), key, []byte("x")); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat dir: %v", err)
	}
	if got := info.Mode() & 0o777; got != 0o700 {
		t.Fatalf("dir mode = %o, want 0700", got)
	}
	finfo, err := os.Stat(filepath.Join(dir, key+artifactExt))
	if err != nil {
		t.Fatalf("stat file: %v", err)
	}
	if got := finfo.Mode() & 0o777; got != 0o600 {
		t.Fatalf("file mode = %o, want 0600", got)
	}
}

func TestPurgeByAge(t *testing.T) {
	dir := t.TempDir()
	c := &ArtifactCache{Dir: dir}
	oldKey, newKey := KeyFrom("text", "old"), KeyFrom("text", "new")
	for _, k := range []string{oldKey, newKey} {
		if err := c.Save(context.Background(), k, []byte(k)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	past := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, oldKey+artifactExt), past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	removed, err := PurgeByAge(dir, 24*time.Hour)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok, _ := c.Get(context.Background(), newKey); !ok {
		t.Fatalf("fresh entry should survive")
	}
	if n, _ := PurgeByAge(filepath.Join(dir, "missing"), time.Hour); n != 0 {
		t.Fatalf("missing dir purge = %d", n)
	}
}

func TestClearDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x"+artifactExt), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := ClearDir(dir); err != nil {
		t.Fatalf("clear: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Fatalf("expected empty dir, got %d entries", len(entries))
	}
	if err := ClearDir("  "); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
