package phylo

import (
	"fmt"
	"slices"

	"github.com/npillmayer/treeslicer"
)

// Node is a node of a rooted tree.
type Node struct {
	Label    string
	Height   float64
	Parent   *Node
	Children []*Node
}

// IsLeaf is true for nodes without children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsRoot is true for the node without a parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// BranchLength is the length of the branch leading to n, or 0 for the root.
func (n *Node) BranchLength() float64 {
	if n.Parent == nil {
		return 0
	}
	return n.Parent.Height - n.Height
}

// Invalidator is notified whenever a tree changes.
// treeslicer.Slicer satisfies this interface.
type Invalidator interface {
	Invalidate()
}

// Tree is a rooted tree. Tree implements treeslicer.Snapshot.
type Tree struct {
	root      *Node
	refDate   float64 // calendar date of height 0
	observers []Invalidator
}

var _ treeslicer.Snapshot = (*Tree)(nil)

// NewTree creates a tree from a root node. Parent links are set up for all
// nodes below root.
func NewTree(root *Node) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: tree needs a root", ErrInvalidHeight)
	}
	root.Parent = nil
	var check func(*Node) error
	check = func(n *Node) error {
		for _, c := range n.Children {
			c.Parent = n
			if c.Height > n.Height {
				return fmt.Errorf("%w: node %q at %g is older than its parent at %g",
					ErrInvalidHeight, c.Label, c.Height, n.Height)
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(root); err != nil {
		return nil, err
	}
	return &Tree{root: root}, nil
}

// Root returns the root node of t.
func (t *Tree) Root() *Node {
	return t.root
}

// SetReferenceDate sets the calendar date of height 0. Dates of nodes are
// derived as refDate - height.
func (t *Tree) SetReferenceDate(date float64) {
	t.refDate = date
	t.changed()
}

// Date returns the calendar date of node n.
func (t *Tree) Date(n *Node) float64 {
	return t.refDate - n.Height
}

// Watch registers an observer to be notified of changes to t.
func (t *Tree) Watch(o Invalidator) {
	t.observers = append(t.observers, o)
}

// Unwatch removes an observer.
func (t *Tree) Unwatch(o Invalidator) {
	t.observers = slices.DeleteFunc(t.observers, func(x Invalidator) bool {
		return x == o
	})
}

func (t *Tree) changed() {
	for _, o := range t.observers {
		o.Invalidate()
	}
}

// --- Traversal -------------------------------------------------------------

// Nodes returns all nodes of t in pre-order.
func (t *Tree) Nodes() []*Node {
	var nodes []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		nodes = append(nodes, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	if t != nil && t.root != nil {
		walk(t.root)
	}
	return nodes
}

// LeafNodes returns the leaves of t, left to right.
func (t *Tree) LeafNodes() []*Node {
	return slices.DeleteFunc(t.Nodes(), func(n *Node) bool { return !n.IsLeaf() })
}

// InternalNodes returns the internal nodes of t in pre-order.
func (t *Tree) InternalNodes() []*Node {
	return slices.DeleteFunc(t.Nodes(), func(n *Node) bool { return n.IsLeaf() })
}

// --- treeslicer.Snapshot ---------------------------------------------------

// RootHeight is part of interface treeslicer.Snapshot.
// A tree without a root has height 0.
func (t *Tree) RootHeight() float64 {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.Height
}

// RootDate is part of interface treeslicer.Snapshot.
func (t *Tree) RootDate() float64 {
	if t == nil || t.root == nil {
		return 0
	}
	return t.Date(t.root)
}

// Leaves is part of interface treeslicer.Snapshot.
func (t *Tree) Leaves() []treeslicer.Leaf {
	leaves := t.LeafNodes()
	r := make([]treeslicer.Leaf, len(leaves))
	for i, n := range leaves {
		r[i] = treeslicer.Leaf{Height: n.Height, Date: t.Date(n)}
	}
	return r
}

// InternalHeights is part of interface treeslicer.Snapshot.
func (t *Tree) InternalHeights(minChildren int) []float64 {
	var heights []float64
	for _, n := range t.InternalNodes() {
		if len(n.Children) >= minChildren {
			heights = append(heights, n.Height)
		}
	}
	return heights
}

// --- Changes ---------------------------------------------------------------

// Scale multiplies the heights of all internal nodes by factor. Leaf heights
// are data (sampling times) and are left untouched. If scaling would move an
// internal node below one of its children, t is left unchanged and an error
// is returned.
func (t *Tree) Scale(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, factor)
	}
	internal := t.InternalNodes()
	for _, n := range internal {
		for _, c := range n.Children {
			h := c.Height
			if !c.IsLeaf() {
				h *= factor
			}
			if h > n.Height*factor {
				return fmt.Errorf("%w: scaling by %g moves node %q below child %q",
					ErrInvalidHeight, factor, n.Label, c.Label)
			}
		}
	}
	for _, n := range internal {
		n.Height *= factor
	}
	tracer().Debugf("scaled %d internal nodes by %g", len(internal), factor)
	t.changed()
	return nil
}

// SetHeight moves node n to height h, e.g. for sampling tip dates. h must not
// exceed the height of n's parent nor fall below the heights of n's children.
func (t *Tree) SetHeight(n *Node, h float64) error {
	if h < 0 {
		return fmt.Errorf("%w: negative height %g for node %q", ErrInvalidHeight, h, n.Label)
	}
	if n.Parent != nil && h > n.Parent.Height {
		return fmt.Errorf("%w: node %q at %g would be older than its parent at %g",
			ErrInvalidHeight, n.Label, h, n.Parent.Height)
	}
	for _, c := range n.Children {
		if c.Height > h {
			return fmt.Errorf("%w: node %q at %g would be younger than its child %q at %g",
				ErrInvalidHeight, n.Label, h, c.Label, c.Height)
		}
	}
	n.Height = h
	t.changed()
	return nil
}
