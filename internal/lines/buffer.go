// Package lines holds the mutable line buffer that the extractors consume.
package lines

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBuffer is returned when an operation needs a line and none remain.
	ErrEmptyBuffer = errors.New("empty buffer")
	// ErrOutOfRange is returned when an index does not address a remaining line.
	ErrOutOfRange = errors.New("index out of range")
)

// Buffer is an ordered sequence of document lines with destructive,
// front-to-back consumption. Indices passed to Line and RemoveAt are relative
// to the current front, so index 0 is always the next line PopFront returns.
//
// A Buffer is not safe for concurrent use. Extractors share one Buffer and
// each observes the buffer as the previous one left it.
type Buffer struct {
	lines []string
	// cursor is the number of lines popped from the front so far.
	cursor int
}

// New returns a Buffer over a copy of lines.
func New(lines []string) *Buffer {
	cp := make([]string, len(lines))
	copy(cp, lines)
	return &Buffer{lines: cp}
}

// Len reports how many lines remain.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.lines) - b.cursor
}

// Consumed reports how many lines have been popped from the front.
func (b *Buffer) Consumed() int {
	if b == nil {
		return 0
	}
	return b.cursor
}

// Line returns the remaining line at index i.
func (b *Buffer) Line(i int) (string, error) {
	if i < 0 || i >= b.Len() {
		return "", fmt.Errorf("line %d of %d: %w", i, b.Len(), ErrOutOfRange)
	}
	return b.lines[b.cursor+i], nil
}

// PopFront removes and returns the first remaining line.
func (b *Buffer) PopFront() (string, error) {
	if b.Len() == 0 {
		return "", ErrEmptyBuffer
	}
	s := b.lines[b.cursor]
	b.lines[b.cursor] = ""
	b.cursor++
	return s, nil
}

// RemoveAt deletes the remaining line at index i. Lines after it shift down
// by one index.
func (b *Buffer) RemoveAt(i int) error {
	if i < 0 || i >= b.Len() {
		return fmt.Errorf("remove %d of %d: %w", i, b.Len(), ErrOutOfRange)
	}
	at := b.cursor + i
	copy(b.lines[at:], b.lines[at+1:])
	b.lines[len(b.lines)-1] = ""
	b.lines = b.lines[:len(b.lines)-1]
	return nil
}

// Remaining returns a copy of the lines that have not been consumed.
func (b *Buffer) Remaining() []string {
	out := make([]string, b.Len())
	if b != nil {
		copy(out, b.lines[b.cursor:])
	}
	return out
}
