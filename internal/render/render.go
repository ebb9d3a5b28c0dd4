// Package render writes extracted sermon tokens in the supported output
// formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hyperifyio/sermonnotes/internal/tokens"
)

// ErrUnknownFormat is returned by ForFormat for unsupported format names.
var ErrUnknownFormat = errors.New("unknown output format")

// Document is everything extracted from one notes file.
type Document struct {
	Source      string              `json:"source,omitempty"`
	Digest      string              `json:"digest,omitempty"`
	Header      *tokens.Header      `json:"header,omitempty"`
	Comparisons []tokens.Comparison `json:"comparisons"`
}

// Validate checks every comparison before anything is written.
func (d Document) Validate() error {
	for i, c := range d.Comparisons {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("comparison %d: %w", i+1, err)
		}
	}
	return nil
}

// Title returns the header title, or "" when there is no header.
func (d Document) Title() string {
	if d.Header == nil {
		return ""
	}
	return d.Header.Title
}

// Renderer writes a Document in one output format.
type Renderer interface {
	Render(w io.Writer, doc Document) error
	// Extension is the file extension for the format, including the dot.
	Extension() string
}

// Options tune renderers that have layout choices.
type Options struct {
	// PDFPageSize is a gofpdf size name such as "A4" or "Letter".
	PDFPageSize string
	// TermWidth caps a terminal column; zero picks a default.
	TermWidth int
	// TermOutput is probed for color support; nil probes the render target.
	TermOutput io.Writer
}

var constructors = map[string]func(Options) Renderer{
	"text": func(Options) Renderer { return Text{} },
	"html": func(Options) Renderer { return HTML{} },
	"json": func(Options) Renderer { return JSON{Indent: "  "} },
	"pdf":  func(o Options) Renderer { return PDF{PageSize: o.PDFPageSize} },
	"term": func(o Options) Renderer { return Terminal{Width: o.TermWidth, Output: o.TermOutput} },
}

// ForFormat returns the renderer registered under name.
func ForFormat(name string, opts Options) (Renderer, error) {
	mk, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return mk(opts), nil
}

// Formats lists the supported format names.
func Formats() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// speakerLine returns the speaker to print, or "" for the placeholder.
func speakerLine(h *tokens.Header) string {
	if h == nil || h.Speaker == tokens.NoSpeaker {
		return ""
	}
	return h.Speaker
}
