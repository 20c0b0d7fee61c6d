package tui

// frame is the validated, assembled form of one rebuilt tree: the leaves
// in depth-first declaration order, the set of tags present, and the
// focus order. Assembly is the point where construction errors surface;
// a tree that fails assembly is never reconciled, laid out, or rendered.
type frame struct {
	root   *Node
	leaves []*Node
	tags   map[Tag]*Node
	order  []Tag // focusable tags in traversal order
}

// newFrame walks the tree depth-first in declaration order, collecting
// leaves and tags. It returns DuplicateTagError if a tag appears twice
// and TooManyChildrenError if a stack exceeds MaxChildren.
func newFrame(root *Node) (*frame, error) {
	f := &frame{
		root: root,
		tags: make(map[Tag]*Node),
	}
	if root == nil {
		return f, nil
	}
	if err := f.walk(root); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *frame) walk(n *Node) error {
	if n.isLeaf() {
		f.leaves = append(f.leaves, n)
		if n.tag == "" {
			return nil
		}
		if _, exists := f.tags[n.tag]; exists {
			return DuplicateTagError{Tag: n.tag}
		}
		f.tags[n.tag] = n
		if n.widget.Focusable() {
			f.order = append(f.order, n.tag)
		}
		return nil
	}

	// Constructors drop nil children, so every entry here is real and
	// the count matches what layout will see.
	if len(n.children) > MaxChildren {
		return TooManyChildrenError{Count: len(n.children)}
	}
	for _, child := range n.children {
		if err := f.walk(child); err != nil {
			return err
		}
	}
	return nil
}
