package tokens

import (
	"errors"
	"fmt"
)

// ErrNoSuchNode is returned when a list index does not name a node.
var ErrNoSuchNode = errors.New("no such list node")

// NoParent is the parent index of a top-level list item.
const NoParent = -1

// ListNode is one item of a hierarchical list.
type ListNode struct {
	Text string `json:"text"`
	// Parent is the index of the enclosing item, or NoParent.
	Parent int `json:"parent"`
	// Children are the indices of nested items in document order.
	Children []int `json:"children,omitempty"`
}

// ListTree stores list items in an arena. Items refer to each other by index
// so a child never owns its parent.
type ListTree struct {
	Nodes []ListNode `json:"nodes"`
	roots []int
}

// Add appends an item under parent (NoParent for a top-level item) and
// returns its index.
func (t *ListTree) Add(parent int, text string) (int, error) {
	if parent != NoParent && (parent < 0 || parent >= len(t.Nodes)) {
		return 0, fmt.Errorf("parent %d: %w", parent, ErrNoSuchNode)
	}
	idx := len(t.Nodes)
	t.Nodes = append(t.Nodes, ListNode{Text: text, Parent: parent})
	if parent == NoParent {
		t.roots = append(t.roots, idx)
	} else {
		t.Nodes[parent].Children = append(t.Nodes[parent].Children, idx)
	}
	return idx, nil
}

// Node returns the item at index i.
func (t *ListTree) Node(i int) (ListNode, error) {
	if i < 0 || i >= len(t.Nodes) {
		return ListNode{}, fmt.Errorf("node %d: %w", i, ErrNoSuchNode)
	}
	return t.Nodes[i], nil
}

// Roots returns the indices of top-level items in order.
func (t *ListTree) Roots() []int {
	out := make([]int, len(t.roots))
	copy(out, t.roots)
	return out
}

// Depth returns how many ancestors item i has.
func (t *ListTree) Depth(i int) (int, error) {
	n, err := t.Node(i)
	if err != nil {
		return 0, err
	}
	d := 0
	for n.Parent != NoParent {
		d++
		n = t.Nodes[n.Parent]
	}
	return d, nil
}

// Len returns the number of items.
func (t *ListTree) Len() int { return len(t.Nodes) }

// BulletList is an unordered, possibly nested, list.
type BulletList struct{ ListTree }

func (BulletList) Kind() Kind { return KindBulletList }
func (BulletList) isToken()   {}

// NumberList is an ordered, possibly nested, list.
type NumberList struct{ ListTree }

func (NumberList) Kind() Kind { return KindNumberList }
func (NumberList) isToken()   {}
