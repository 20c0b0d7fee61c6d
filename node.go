package tui

// Axis is the main axis along which a stack distributes space.
type Axis uint8

const (
	// Horizontal lays children out left to right.
	Horizontal Axis = iota
	// Vertical lays children out top to bottom.
	Vertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// Tag is a stable, application-chosen identifier that correlates a leaf
// widget across frame rebuilds. Tags must be unique within a single
// tree. The empty tag marks an untagged leaf, which gets no persistent
// state and never receives focus.
type Tag string

// MaxChildren is the maximum number of children a stack may hold.
// Exceeding it is a construction error reported at frame assembly.
const MaxChildren = 12

// Node is one node of the declarative view tree: either a stack
// (an axis and an ordered list of children) or a leaf (a widget with an
// optional tag). Trees are rebuilt from scratch every frame; a Node
// carries no state beyond the rect the layout pass assigns to it.
type Node struct {
	axis     Axis
	children []*Node

	widget Widget
	tag    Tag

	pref    Size
	hasPref bool

	// rect is assigned by the layout pass each frame, never persisted.
	rect Rect
}

// HStack creates a stack that distributes width among its children.
// Nil children are dropped, so conditional builds can pass nil for
// "nothing here".
func HStack(children ...*Node) *Node {
	return &Node{axis: Horizontal, children: compactChildren(children)}
}

// VStack creates a stack that distributes height among its children.
// Nil children are dropped, so conditional builds can pass nil for
// "nothing here".
func VStack(children ...*Node) *Node {
	return &Node{axis: Vertical, children: compactChildren(children)}
}

// compactChildren drops nil entries at construction so assembly,
// layout, and focus all see the same children.
func compactChildren(children []*Node) []*Node {
	for _, c := range children {
		if c == nil {
			out := make([]*Node, 0, len(children)-1)
			for _, c := range children {
				if c != nil {
					out = append(out, c)
				}
			}
			return out
		}
	}
	return children
}

// Leaf creates an untagged leaf node for the given widget.
func Leaf(w Widget) *Node {
	return &Node{widget: w}
}

// Tagged creates a leaf node whose widget keeps persistent state under
// the given tag across rebuilds.
func Tagged(tag Tag, w Widget) *Node {
	return &Node{widget: w, tag: tag}
}

// Sized attaches an explicit size preference to the node and returns it
// for chaining. A zero component means no preference on that axis; a
// node with no preference on its parent's main axis is flexible and
// shares leftover space.
func (n *Node) Sized(width, height int) *Node {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	n.pref = Size{Width: width, Height: height}
	n.hasPref = true
	return n
}

// isLeaf reports whether the node is a leaf.
func (n *Node) isLeaf() bool {
	return n.widget != nil
}

// preference returns the node's effective size preference: the explicit
// Sized value if set, otherwise the widget's measured size for leaves.
func (n *Node) preference() (Size, bool) {
	if n.hasPref {
		return n.pref, true
	}
	if n.isLeaf() {
		return n.widget.Measure()
	}
	return Size{}, false
}

// mainPref returns the node's preferred extent along the given axis, or
// false if the node is flexible on that axis.
func (n *Node) mainPref(axis Axis) (int, bool) {
	pref, ok := n.preference()
	if !ok {
		return 0, false
	}
	extent := pref.Width
	if axis == Vertical {
		extent = pref.Height
	}
	if extent <= 0 {
		return 0, false
	}
	return extent, true
}
