package render

import (
	"encoding/json"
	"io"

	"github.com/hyperifyio/sermonnotes/internal/tokens"
)

// JSON writes the document as a JSON object.
type JSON struct {
	Indent string
}

func (JSON) Extension() string { return ".json" }

func (j JSON) Render(w io.Writer, doc Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if doc.Comparisons == nil {
		doc.Comparisons = []tokens.Comparison{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	return enc.Encode(doc)
}
