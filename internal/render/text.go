package render

import (
	"io"
	"strings"
)

// Text writes plain text: the title and speaker, then each comparison as
// "*Left* vs. *Right*" followed by one "a vs. b" line per pair.
type Text struct{}

func (Text) Extension() string { return ".txt" }

func (Text) Render(w io.Writer, doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	var blocks []string
	if doc.Header != nil {
		head := doc.Header.Title
		if s := speakerLine(doc.Header); s != "" {
			head += "\n" + s
		}
		blocks = append(blocks, head)
	}
	for _, c := range doc.Comparisons {
		s, err := c.Render()
		if err != nil {
			return err
		}
		blocks = append(blocks, s)
	}
	if len(blocks) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}
