package tokens

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMismatchedContentLength is returned when a comparison is rendered with
// a different number of left and right items.
var ErrMismatchedContentLength = errors.New("mismatched comparison content length")

// Comparison sets two ideas side by side under a pair of headings.
//
// LeftContent and RightContent are index-aligned. AddPair keeps them the same
// length. Nothing checks this at construction; Validate and Render do.
type Comparison struct {
	LeftHeading  string   `json:"left_heading"`
	RightHeading string   `json:"right_heading"`
	LeftContent  []string `json:"left_content"`
	RightContent []string `json:"right_content"`
}

// NewComparison returns a comparison with the given headings and no content.
func NewComparison(left, right string) *Comparison {
	return &Comparison{
		LeftHeading:  left,
		RightHeading: right,
		LeftContent:  []string{},
		RightContent: []string{},
	}
}

func (Comparison) Kind() Kind { return KindComparison }
func (Comparison) isToken()   {}

// AddPair appends one item to each side.
func (c *Comparison) AddPair(left, right string) {
	c.LeftContent = append(c.LeftContent, left)
	c.RightContent = append(c.RightContent, right)
}

// Len returns the number of content pairs.
func (c Comparison) Len() int { return len(c.LeftContent) }

// Validate reports whether both sides hold the same number of items.
func (c Comparison) Validate() error {
	if len(c.LeftContent) != len(c.RightContent) {
		return fmt.Errorf("%w: %q has %d left and %d right items",
			ErrMismatchedContentLength, c.LeftHeading+"//"+c.RightHeading, len(c.LeftContent), len(c.RightContent))
	}
	return nil
}

// Render formats the comparison as a heading line followed by one line per
// pair:
//
//	*Faith* vs. *Works*
//	Belief vs. Action
func (c Comparison) Render() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("*" + c.LeftHeading + "* vs. *" + c.RightHeading + "*")
	for i, left := range c.LeftContent {
		b.WriteString("\n" + left + " vs. " + c.RightContent[i])
	}
	return b.String(), nil
}
