package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperifyio/sermonnotes/internal/notes"
	"github.com/hyperifyio/sermonnotes/internal/scan"
)

const sampleNotes = "\nTwo Ways\nby Elder Jo\n\n::Narrow//Wide\n:few//many\n\n:hard//easy\nAnd so we choose.\n"

func writeNotes(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write notes: %v", err)
	}
	return p
}

func TestRun_TextToStdout(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "sermon.txt", sampleNotes)
	a, err := New(context.Background(), Config{InputPath: in})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var out bytes.Buffer
	a.stdout = &out
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Two Ways\nby Elder Jo\n\n*Narrow* vs. *Wide*\nfew vs. many\nhard vs. easy\n"
	if out.String() != want {
		t.Fatalf("stdout =\n%q\nwant\n%q", out.String(), want)
	}
}

func TestRun_DerivedOutputPathAndCache(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "sermon.txt", sampleNotes)
	outDir := filepath.Join(dir, "out")
	cacheDir := filepath.Join(dir, "cache")
	cfg := Config{InputPath: in, OutputDir: outDir, Format: "html", CacheDir: cacheDir}

	for i := 0; i < 2; i++ {
		a, err := New(context.Background(), cfg)
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		if err := a.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	entries, err := os.ReadDir(outDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one output file, got %v err=%v", entries, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "two-ways-") || !strings.HasSuffix(name, ".html") {
		t.Fatalf("unexpected output name %q", name)
	}
	b, _ := os.ReadFile(filepath.Join(outDir, name))
	if !strings.Contains(string(b), "<th>Narrow</th>") {
		t.Fatalf("html output missing comparison: %s", b)
	}
	cached, _ := os.ReadDir(cacheDir)
	if len(cached) != 1 {
		t.Fatalf("expected one cached artifact, got %d", len(cached))
	}
}

func TestRun_FooterOnText(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "sermon.txt", sampleNotes)
	out := filepath.Join(dir, "result.txt")
	a, err := New(context.Background(), Config{InputPath: in, OutputPath: out, Footer: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, _ := os.ReadFile(out)
	if !strings.Contains(string(b), "header=true; comparisons=1") || !strings.Contains(string(b), "blake3=") {
		t.Fatalf("missing footer: %s", b)
	}
}

func TestRun_MissingHeader(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "blank.txt", "\n\n\n")

	a, err := New(context.Background(), Config{InputPath: in})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var out bytes.Buffer
	a.stdout = &out
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("missing header should only warn: %v", err)
	}

	a, err = New(context.Background(), Config{InputPath: in, RequireHeader: true})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.stdout = &out
	if err := a.Run(context.Background()); !errors.Is(err, scan.ErrHeaderNotFound) {
		t.Fatalf("expected ErrHeaderNotFound, got %v", err)
	}
}

func TestRun_MalformedComparison(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "bad.txt", "Title\nby Me\n::NoDivider\n")
	a, err := New(context.Background(), Config{InputPath: in, Format: "json"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.stdout = &bytes.Buffer{}
	if err := a.Run(context.Background()); !errors.Is(err, scan.ErrMalformedHeading) {
		t.Fatalf("expected ErrMalformedHeading, got %v", err)
	}
}

func TestRun_WrongExtension(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "sermon.md", sampleNotes)
	a, err := New(context.Background(), Config{InputPath: in})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Run(context.Background()); !errors.Is(err, notes.ErrUnsupportedExtension) {
		t.Fatalf("expected ErrUnsupportedExtension, got %v", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	in := writeNotes(t, dir, "sermon.txt", sampleNotes)
	a, err := New(context.Background(), Config{InputPath: in})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.stdout = &bytes.Buffer{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExtract_HeaderSpeakerLineStaysForComparisons(t *testing.T) {
	doc := notes.Document{Path: "x.txt", Lines: []string{"Title", "::A//B", ":a//b"}}
	rd, err := Extract(doc, false)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if rd.Header == nil || rd.Header.Speaker != "(no speaker)" {
		t.Fatalf("header = %+v", rd.Header)
	}
	if len(rd.Comparisons) != 1 || rd.Comparisons[0].LeftContent[0] != "a" {
		t.Fatalf("comparisons = %+v", rd.Comparisons)
	}
}
