package treeslicer

// Leaf is a sampled tip of a tree, located by its height (time before the
// present) and its calendar date.
type Leaf struct {
	Height float64
	Date   float64
}

// Snapshot is a read-only view of a tree. Slicers never mutate trees; they
// re-read a snapshot every time their slice times are recomputed.
type Snapshot interface {
	// RootHeight is the height of the root node, i.e. the tMRCA.
	RootHeight() float64
	// RootDate is the calendar date of the root node.
	RootDate() float64
	// Leaves returns heights and dates of all leaves of the tree.
	Leaves() []Leaf
	// InternalHeights returns the heights of all internal nodes with at least
	// minChildren children.
	InternalHeights(minChildren int) []float64
}
