package treeslicer

// fakeTree is a Snapshot with explicitly set heights.
type fakeTree struct {
	rootHeight, rootDate float64
	leaves               []Leaf
	branchings           []float64 // internal nodes with >= 2 children
	unifurcations        []float64
	reads                int // calls to RootHeight, one per recomputation
}

func (f *fakeTree) RootHeight() float64 {
	f.reads++
	return f.rootHeight
}

func (f *fakeTree) RootDate() float64 { return f.rootDate }

func (f *fakeTree) Leaves() []Leaf {
	return append([]Leaf(nil), f.leaves...)
}

func (f *fakeTree) InternalHeights(minChildren int) []float64 {
	h := append([]float64(nil), f.branchings...)
	if minChildren <= 1 {
		h = append(h, f.unifurcations...)
	}
	return h
}

func (f *fakeTree) scale(factor float64) {
	f.rootHeight *= factor
	for i := range f.branchings {
		f.branchings[i] *= factor
	}
	for i := range f.unifurcations {
		f.unifurcations[i] *= factor
	}
}

// ladder is the tree
//
//	(((((((G:1,F:2):1,E:4):1,D:6):1,C:8):1,B:10):1,A:12):1);
//
// with dates relative to a most recent sample in 2000.
func ladder() *fakeTree {
	f := &fakeTree{rootHeight: 13, rootDate: 1987}
	for h := 0.0; h <= 6; h++ {
		f.leaves = append(f.leaves, Leaf{Height: h, Date: 2000 - h})
	}
	f.branchings = []float64{7, 8, 9, 10, 11, 12}
	f.unifurcations = []float64{13}
	return f
}
