package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrInvalidLocator is returned for verse locators that cannot be parsed.
var ErrInvalidLocator = errors.New("invalid scripture locator")

// ScriptureRef points at a passage. It carries no text of its own.
type ScriptureRef struct {
	// Verse is the locator as written, e.g. "John 3:16".
	Verse string `json:"verse"`
	// Version is the translation, empty when unspecified.
	Version string `json:"version,omitempty"`
}

// NewScriptureRef validates verse and returns a reference.
func NewScriptureRef(verse, version string) (ScriptureRef, error) {
	if _, err := ParseLocator(verse); err != nil {
		return ScriptureRef{}, err
	}
	return ScriptureRef{Verse: strings.TrimSpace(verse), Version: strings.TrimSpace(version)}, nil
}

func (ScriptureRef) Kind() Kind { return KindScripture }
func (ScriptureRef) isToken()   {}

// HasVersion reports whether a translation was given.
func (r ScriptureRef) HasVersion() bool { return r.Version != "" }

// Locator is a parsed verse locator. Zero Chapter means the whole book, zero
// Verse the whole chapter.
type Locator struct {
	Book     string `json:"book"`
	Chapter  int    `json:"chapter,omitempty"`
	Verse    int    `json:"verse,omitempty"`
	VerseEnd int    `json:"verse_end,omitempty"`
}

func (l Locator) String() string {
	var sb strings.Builder
	sb.WriteString(l.Book)
	if l.Chapter > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(l.Chapter))
		if l.Verse > 0 {
			sb.WriteString(":")
			sb.WriteString(strconv.Itoa(l.Verse))
			if l.VerseEnd > 0 {
				sb.WriteString("-")
				sb.WriteString(strconv.Itoa(l.VerseEnd))
			}
		}
	}
	return sb.String()
}

// IsRange reports whether the locator spans more than one verse.
func (l Locator) IsRange() bool { return l.VerseEnd > l.Verse }

// Examples: "John", "John 3", "John 3:16", "1 John 3:16-18", "Song of Songs 2:4"
//
//nolint:govet // participle grammar tags are not standard struct tags
type locatorGrammar struct {
	Number  *int            `parser:"@Int?"`
	Words   []string        `parser:"@Ident+"`
	Chapter *chapterGrammar `parser:"@@?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterGrammar struct {
	Chapter int           `parser:"@Int"`
	Verse   *verseGrammar `parser:"( \":\" @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type verseGrammar struct {
	Verse int  `parser:"@Int"`
	End   *int `parser:"( \"-\" @Int )?"`
}

var locatorLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var locatorParser = participle.MustBuild[locatorGrammar](
	participle.Lexer(locatorLexer),
	participle.Elide("Whitespace"),
)

// ParseLocator parses a human-written verse locator.
func ParseLocator(s string) (Locator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Locator{}, fmt.Errorf("%w: empty", ErrInvalidLocator)
	}
	parsed, err := locatorParser.ParseString("", s)
	if err != nil {
		return Locator{}, fmt.Errorf("%w: %q: %v", ErrInvalidLocator, s, err)
	}

	book := strings.Join(parsed.Words, " ")
	if parsed.Number != nil {
		book = strconv.Itoa(*parsed.Number) + " " + book
	}
	loc := Locator{Book: book}
	if c := parsed.Chapter; c != nil {
		if c.Chapter < 1 {
			return Locator{}, fmt.Errorf("%w: %q: chapter must be positive", ErrInvalidLocator, s)
		}
		loc.Chapter = c.Chapter
		if v := c.Verse; v != nil {
			if v.Verse < 1 {
				return Locator{}, fmt.Errorf("%w: %q: verse must be positive", ErrInvalidLocator, s)
			}
			loc.Verse = v.Verse
			if v.End != nil {
				if *v.End < v.Verse {
					return Locator{}, fmt.Errorf("%w: %q: range ends before it starts", ErrInvalidLocator, s)
				}
				loc.VerseEnd = *v.End
			}
		}
	}
	return loc, nil
}
