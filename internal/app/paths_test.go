package app

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDeriveOutputPath(t *testing.T) {
	got := deriveOutputPath("out", "Grace & Truth: Part 2", "0123456789abcdef", ".html")
	if got != filepath.Join("out", "grace-truth-part-2-0123456789ab.html") {
		t.Fatalf("path = %q", got)
	}
	if got := deriveOutputPath("out", "", "", ".txt"); got != filepath.Join("out", "sermon.txt") {
		t.Fatalf("fallback path = %q", got)
	}
}

func TestAppendSourceFooter(t *testing.T) {
	out := appendSourceFooter("body\n", " notes.txt ", "abc", false, 2)
	if !strings.HasPrefix(out, "body\n\n---\n") {
		t.Fatalf("footer placement: %q", out)
	}
	if !strings.Contains(out, "Source: notes.txt; blake3=abc; header=false; comparisons=2") {
		t.Fatalf("footer = %q", out)
	}
}
