package tui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameCollectsLeavesDepthFirst(t *testing.T) {
	root := HStack(
		focusLeaf("a"),
		VStack(
			focusLeaf("b"),
			Leaf(&stubWidget{}), // untagged, skipped from order
			focusLeaf("c"),
		),
		Tagged("d", &stubWidget{}), // tagged but not focusable
	)

	f, err := newFrame(root)
	if err != nil {
		t.Fatalf("newFrame: %v", err)
	}

	if got, want := len(f.leaves), 5; got != want {
		t.Errorf("got %d leaves, want %d", got, want)
	}
	if diff := cmp.Diff([]Tag{"a", "b", "c"}, f.order); diff != "" {
		t.Errorf("focus order mismatch (-want +got):\n%s", diff)
	}
	for _, tag := range []Tag{"a", "b", "c", "d"} {
		if f.tags[tag] == nil {
			t.Errorf("tag %q missing from frame", tag)
		}
	}
}

func TestFrameDuplicateTag(t *testing.T) {
	root := HStack(focusLeaf("x"), VStack(focusLeaf("x")))

	_, err := newFrame(root)
	var dup DuplicateTagError
	if !errors.As(err, &dup) {
		t.Fatalf("got %v, want DuplicateTagError", err)
	}
	if dup.Tag != "x" {
		t.Errorf("error tag = %q, want %q", dup.Tag, "x")
	}
}

func TestFrameTooManyChildren(t *testing.T) {
	children := make([]*Node, MaxChildren+1)
	for i := range children {
		children[i] = flexLeaf()
	}

	_, err := newFrame(VStack(children...))
	var tooMany TooManyChildrenError
	if !errors.As(err, &tooMany) {
		t.Fatalf("got %v, want TooManyChildrenError", err)
	}
	if tooMany.Count != MaxChildren+1 {
		t.Errorf("error count = %d, want %d", tooMany.Count, MaxChildren+1)
	}
}

func TestFrameMaxChildrenExactlyAllowed(t *testing.T) {
	children := make([]*Node, MaxChildren)
	for i := range children {
		children[i] = flexLeaf()
	}
	if _, err := newFrame(HStack(children...)); err != nil {
		t.Fatalf("newFrame with %d children: %v", MaxChildren, err)
	}
}

func TestFrameNilChildrenDropped(t *testing.T) {
	root := HStack(flexLeaf(), nil, flexLeaf())

	f, err := newFrame(root)
	if err != nil {
		t.Fatalf("newFrame: %v", err)
	}
	if got, want := len(f.leaves), 2; got != want {
		t.Fatalf("got %d leaves, want %d", got, want)
	}

	// The assembled tree must survive layout: the dropped entries leave
	// no holes for later passes to trip over.
	layoutTree(root, NewRect(0, 0, 10, 2))
	if got := f.leaves[0].rect.Width + f.leaves[1].rect.Width; got != 10 {
		t.Errorf("leaf widths sum to %d, want 10", got)
	}
}

func TestFrameNilChildrenNotCounted(t *testing.T) {
	children := make([]*Node, MaxChildren)
	for i := range children {
		children[i] = flexLeaf()
	}
	children = append(children, nil)

	if _, err := newFrame(VStack(children...)); err != nil {
		t.Fatalf("newFrame with %d real children plus nil: %v", MaxChildren, err)
	}
}

func TestFrameNilRoot(t *testing.T) {
	f, err := newFrame(nil)
	if err != nil {
		t.Fatalf("newFrame(nil): %v", err)
	}
	if len(f.leaves) != 0 || len(f.order) != 0 {
		t.Errorf("nil root produced non-empty frame: %+v", f)
	}
}
