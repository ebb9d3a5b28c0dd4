// Package notes loads sermon-note files into lines ready for scanning.
package notes

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Extension is the only file extension Load accepts.
const Extension = ".txt"

var (
	// ErrNotFound is returned when the path is not a regular file.
	ErrNotFound = errors.New("notes file not found")
	// ErrUnsupportedExtension is returned for files not ending in .txt.
	ErrUnsupportedExtension = errors.New("unsupported notes file extension")
	// ErrInvalidEncoding is returned for UTF-8 input containing invalid bytes.
	ErrInvalidEncoding = errors.New("invalid utf-8 in notes file")
)

// Document is a loaded notes file.
type Document struct {
	Path string
	// Lines holds one entry per line with line endings removed. Blank lines
	// are kept as empty strings.
	Lines []string
	// Digest is the hex BLAKE3 hash of the raw file bytes.
	Digest string
}

// Load reads the notes file at path.
func Load(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if ext := filepath.Ext(path); ext != Extension {
		return Document{}, fmt.Errorf("%w: expected a %s file but got %q", ErrUnsupportedExtension, Extension, ext)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read notes: %w", err)
	}
	lines, err := Decode(raw)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return Document{Path: path, Lines: lines, Digest: Digest(raw)}, nil
}

// Decode converts raw file bytes into lines. A byte order mark selects the
// encoding (UTF-8 otherwise) and is dropped; text is NFC-normalized. UTF-8
// input must be valid; bad bytes fail with ErrInvalidEncoding rather than
// being replaced.
func Decode(raw []byte) ([]string, error) {
	if !hasUTF16BOM(raw) && !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidEncoding, firstInvalid(raw))
	}
	t := transform.Chain(unicode.BOMOverride(unicode.UTF8.NewDecoder()), norm.NFC)
	b, _, err := transform.Bytes(t, raw)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(b)), nil
}

func hasUTF16BOM(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xFF, 0xFE}) || bytes.HasPrefix(raw, []byte{0xFE, 0xFF})
}

// firstInvalid returns the offset of the first byte that is not valid UTF-8.
func firstInvalid(raw []byte) int {
	for i := 0; i < len(raw); {
		r, n := utf8.DecodeRune(raw[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return len(raw)
}

// ReadLines decodes everything from r.
func ReadLines(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// SplitLines splits text on any line ending. A trailing line ending does not
// produce an extra empty line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return []string{}
	}
	out := strings.Split(text, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// Digest returns the hex BLAKE3 hash of raw.
func Digest(raw []byte) string {
	sum := blake3.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
