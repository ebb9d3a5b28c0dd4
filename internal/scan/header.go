// Package scan extracts tokens from a line buffer.
//
// Extractors take the buffer explicitly and consume from it. They run one at
// a time: the header extractor pops its lines off the front, and the
// comparison extractor deletes the blank lines it walks over, so each call
// sees whatever the previous one left behind.
package scan

import (
	"fmt"
	"strings"

	"github.com/hyperifyio/sermonnotes/internal/lines"
	"github.com/hyperifyio/sermonnotes/internal/tokens"
)

// SpeakerPrefix starts a speaker line, compared case-insensitively.
const SpeakerPrefix = "by"

// ExtractHeader pops the title (the first non-blank line) and, when the next
// non-blank line starts with "by", the speaker line. Otherwise the speaker is
// tokens.NoSpeaker and that line stays at the front of the buffer. Blank
// lines before either are discarded.
func ExtractHeader(buf *lines.Buffer) (tokens.Header, error) {
	var h tokens.Header

	for buf.Len() > 0 {
		ln, err := buf.PopFront()
		if err != nil {
			return tokens.Header{}, fmt.Errorf("title: %w", err)
		}
		if ln != "" {
			h.Title = ln
			break
		}
	}

	for buf.Len() > 0 {
		ln, err := buf.Line(0)
		if err != nil {
			return tokens.Header{}, fmt.Errorf("speaker: %w", err)
		}
		if ln != "" {
			if hasSpeakerPrefix(ln) {
				h.Speaker = ln
				if _, err := buf.PopFront(); err != nil {
					return tokens.Header{}, fmt.Errorf("speaker: %w", err)
				}
			} else {
				h.Speaker = tokens.NoSpeaker
			}
			break
		}
		if _, err := buf.PopFront(); err != nil {
			return tokens.Header{}, fmt.Errorf("speaker: %w", err)
		}
	}

	if h.Title == "" || h.Speaker == "" {
		return tokens.Header{}, &HeaderNotFoundError{Remaining: buf.Len()}
	}
	return h, nil
}

// hasSpeakerPrefix compares the first two characters of ln with "by".
func hasSpeakerPrefix(ln string) bool {
	r := []rune(ln)
	if len(r) < 2 {
		return false
	}
	return strings.EqualFold(string(r[:2]), SpeakerPrefix)
}
