// Package tokens defines the structural tokens produced from sermon notes.
//
// Token is a closed set: only the types in this package implement it, so a
// type switch over Header, Comparison, Content, BulletList, NumberList, Quote
// and ScriptureRef covers every kind.
package tokens

import (
	"unicode/utf8"
)

// Kind identifies a token kind. Kinds are declared in priority order, the
// order a full tokenizer would try them in.
type Kind int

const (
	KindHeader Kind = iota + 1
	KindComparison
	KindNumberList
	KindBulletList
	KindScripture
	KindQuote
	KindContent
)

var kindNames = map[Kind]string{
	KindHeader:     "header",
	KindComparison: "comparison",
	KindNumberList: "number_list",
	KindBulletList: "bullet_list",
	KindScripture:  "scripture",
	KindQuote:      "quote",
	KindContent:    "content",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Priority returns the dispatch rank of the kind, 1 being tried first.
func (k Kind) Priority() int { return int(k) }

// Kinds lists every kind in priority order.
func Kinds() []Kind {
	return []Kind{KindHeader, KindComparison, KindNumberList, KindBulletList, KindScripture, KindQuote, KindContent}
}

// Token is implemented by every token type in this package.
type Token interface {
	Kind() Kind
	isToken()
}

// Header is the title block of a sermon.
type Header struct {
	Title   string `json:"title"`
	Speaker string `json:"speaker"`
}

// NoSpeaker is the speaker recorded when the line after the title does not
// name one.
const NoSpeaker = "(no speaker)"

func (Header) Kind() Kind { return KindHeader }
func (Header) isToken()   {}

func (h Header) String() string {
	return "Text=" + h.Title + "\nSpeaker=" + h.Speaker
}

// Content is a plain span of text.
type Content struct {
	Text string `json:"text"`
}

func (Content) Kind() Kind { return KindContent }
func (Content) isToken()   {}

// Len returns the number of code points in the text.
func (c Content) Len() int { return utf8.RuneCountInString(c.Text) }

func (c Content) String() string { return c.Text }

// Quote is quoted text with its author.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

func (Quote) Kind() Kind { return KindQuote }
func (Quote) isToken()   {}

// Len returns the number of code points in the quoted text.
func (q Quote) Len() int { return utf8.RuneCountInString(q.Text) }
