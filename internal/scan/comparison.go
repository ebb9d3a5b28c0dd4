package scan

import (
	"strings"

	"github.com/hyperifyio/sermonnotes/internal/lines"
	"github.com/hyperifyio/sermonnotes/internal/tokens"
)

const (
	// HeadingMarker starts a comparison group.
	HeadingMarker = "::"
	// ItemMarker starts a comparison item.
	ItemMarker = ":"
	// Divider separates the left and right side of a heading or item.
	Divider = "//"
)

// group is one comparison heading and the buffer indices of its items.
type group struct {
	heading int
	items   []int
}

// ExtractComparisons finds every comparison group in the buffer and returns
// one Comparison per heading, in heading order.
//
// Headings are located in a single pass before any items are gathered.
// Gathering then deletes blank lines between items from the buffer; later
// heading positions are shifted to match. Non-blank lines are never removed.
func ExtractComparisons(buf *lines.Buffer) ([]tokens.Comparison, error) {
	groups, err := findHeadings(buf)
	if err != nil {
		return nil, err
	}

	for gi := range groups {
		removed, err := gatherItems(buf, &groups[gi])
		if err != nil {
			return nil, err
		}
		for _, r := range removed {
			for gj := gi + 1; gj < len(groups); gj++ {
				if groups[gj].heading > r {
					groups[gj].heading--
				}
			}
		}
	}

	out := make([]tokens.Comparison, 0, len(groups))
	for _, g := range groups {
		c, err := buildComparison(buf, g)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func findHeadings(buf *lines.Buffer) ([]group, error) {
	var groups []group
	for i := 0; i < buf.Len(); i++ {
		ln, err := buf.Line(i)
		if err != nil {
			return nil, err
		}
		if isHeading(ln) {
			groups = append(groups, group{heading: i})
		}
	}
	return groups, nil
}

// gatherItems records the item lines following g's heading, deleting blank
// lines as it goes. It returns the indices deleted, each as it was at the
// moment of deletion.
func gatherItems(buf *lines.Buffer, g *group) ([]int, error) {
	var removed []int
	i := g.heading + 1
	for i < buf.Len() {
		ln, err := buf.Line(i)
		if err != nil {
			return nil, err
		}
		switch {
		case ln == "":
			if err := buf.RemoveAt(i); err != nil {
				return nil, err
			}
			removed = append(removed, i)
		case isItem(ln):
			g.items = append(g.items, i)
			i++
		default:
			return removed, nil
		}
	}
	return removed, nil
}

func buildComparison(buf *lines.Buffer, g group) (*tokens.Comparison, error) {
	head, err := buf.Line(g.heading)
	if err != nil {
		return nil, err
	}
	left, right, ok := strings.Cut(strings.TrimPrefix(head, HeadingMarker), Divider)
	if !ok {
		return nil, &MalformedLineError{Err: ErrMalformedHeading, Index: g.heading, Line: head}
	}
	c := tokens.NewComparison(left, right)

	for _, idx := range g.items {
		ln, err := buf.Line(idx)
		if err != nil {
			return nil, err
		}
		l, r, ok := strings.Cut(strings.TrimPrefix(ln, ItemMarker), Divider)
		if !ok {
			return nil, &MalformedLineError{Err: ErrMalformedItem, Index: idx, Line: ln}
		}
		c.AddPair(l, r)
	}
	return c, nil
}

func isHeading(ln string) bool {
	return strings.HasPrefix(ln, HeadingMarker)
}

// isItem matches ":" followed by anything but a second ":". A lone ":" is
// too short to tell and does not match.
func isItem(ln string) bool {
	return len(ln) >= 2 && ln[0] == ':' && ln[1] != ':'
}
