package tokens

import (
	"errors"
	"testing"
)

func TestParseLocator(t *testing.T) {
	tests := []struct {
		in   string
		want Locator
	}{
		{"John", Locator{Book: "John"}},
		{"John 3", Locator{Book: "John", Chapter: 3}},
		{"John 3:16", Locator{Book: "John", Chapter: 3, Verse: 16}},
		{"1 John 3:16-18", Locator{Book: "1 John", Chapter: 3, Verse: 16, VerseEnd: 18}},
		{"  Song of Songs 2:4 ", Locator{Book: "Song of Songs", Chapter: 2, Verse: 4}},
	}
	for _, tt := range tests {
		got, err := ParseLocator(tt.in)
		if err != nil {
			t.Fatalf("ParseLocator(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLocator(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseLocator_Invalid(t *testing.T) {
	for _, in := range []string{"", "3:16", "John 3:16-2", "John 0", "John 3:16:1", "John #3"} {
		if _, err := ParseLocator(in); !errors.Is(err, ErrInvalidLocator) {
			t.Fatalf("ParseLocator(%q): expected ErrInvalidLocator, got %v", in, err)
		}
	}
}

func TestLocator_StringAndRange(t *testing.T) {
	l := Locator{Book: "1 John", Chapter: 3, Verse: 16, VerseEnd: 18}
	if l.String() != "1 John 3:16-18" {
		t.Fatalf("String() = %q", l.String())
	}
	if !l.IsRange() {
		t.Fatalf("expected range")
	}
}

func TestNewScriptureRef(t *testing.T) {
	r, err := NewScriptureRef(" Romans 8:28 ", "ESV")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if r.Verse != "Romans 8:28" || !r.HasVersion() {
		t.Fatalf("unexpected ref %+v", r)
	}
	r, err = NewScriptureRef("Psalm 23", "")
	if err != nil || r.HasVersion() {
		t.Fatalf("expected versionless ref, got %+v err=%v", r, err)
	}
	if _, err := NewScriptureRef("not a verse!", ""); !errors.Is(err, ErrInvalidLocator) {
		t.Fatalf("expected ErrInvalidLocator, got %v", err)
	}
}
