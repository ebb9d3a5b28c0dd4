package render

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestPDF_ReadBack(t *testing.T) {
	var buf bytes.Buffer
	if err := (PDF{}).Render(&buf, sampleDoc()); err != nil {
		t.Fatalf("render: %v", err)
	}
	r, err := pdf.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if n := r.NumPage(); n != 1 {
		t.Fatalf("pages = %d, want 1", n)
	}
}
