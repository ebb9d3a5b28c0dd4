package tokens

import (
	"errors"
	"reflect"
	"testing"
)

func TestListTree_ParentAndChildren(t *testing.T) {
	var l BulletList
	root, _ := l.Add(NoParent, "Prayer")
	a, _ := l.Add(root, "Adoration")
	b, _ := l.Add(root, "Confession")
	deep, err := l.Add(b, "Silence")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, _ := l.Add(NoParent, "Scripture")

	n, _ := l.Node(root)
	if !reflect.DeepEqual(n.Children, []int{a, b}) {
		t.Fatalf("children = %v, want [%d %d]", n.Children, a, b)
	}
	if got, _ := l.Node(deep); got.Parent != b {
		t.Fatalf("parent = %d, want %d", got.Parent, b)
	}
	if d, _ := l.Depth(deep); d != 2 {
		t.Fatalf("depth = %d, want 2", d)
	}
	if !reflect.DeepEqual(l.Roots(), []int{root, second}) {
		t.Fatalf("roots = %v", l.Roots())
	}
	if l.Len() != 5 {
		t.Fatalf("len = %d, want 5", l.Len())
	}
}

func TestListTree_UnknownParent(t *testing.T) {
	var l NumberList
	if _, err := l.Add(3, "x"); !errors.Is(err, ErrNoSuchNode) {
		t.Fatalf("expected ErrNoSuchNode, got %v", err)
	}
	if _, err := l.Node(0); !errors.Is(err, ErrNoSuchNode) {
		t.Fatalf("expected ErrNoSuchNode, got %v", err)
	}
}
