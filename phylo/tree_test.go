package phylo

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treeslicer"
)

type countingObserver struct {
	n int
}

func (o *countingObserver) Invalidate() { o.n++ }

func TestScaleKeepsLeaves(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := ParseNewick("((A:1,B:2):1,C:4);")
	if err != nil {
		t.Fatal(err)
	}
	obs := &countingObserver{}
	tree.Watch(obs)
	if err := tree.Scale(2); err != nil {
		t.Fatal(err)
	}
	if tree.RootHeight() != 8 {
		t.Errorf("expected root height 8 after scaling, is %g", tree.RootHeight())
	}
	for _, l := range tree.LeafNodes() {
		if l.Label == "A" && l.Height != 2 {
			t.Errorf("expected leaf A to stay at height 2, is %g", l.Height)
		}
	}
	if obs.n != 1 {
		t.Errorf("expected observer to be notified once, was %d times", obs.n)
	}
	tree.Unwatch(obs)
	_ = tree.Scale(1)
	if obs.n != 1 {
		t.Errorf("expected no notification after Unwatch")
	}
}

func TestScaleRejectsInvalidFactors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree, err := ParseNewick("((A:1,B:2):1,C:4);")
	if err != nil {
		t.Fatal(err)
	}
	if err := tree.Scale(0); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("expected ErrInvalidScale, got %v", err)
	}
	// internal node at 3 would drop below leaf A at 2
	if err := tree.Scale(0.5); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("expected ErrInvalidHeight, got %v", err)
	}
	if tree.RootHeight() != 4 {
		t.Errorf("expected tree to be unchanged, root height is %g", tree.RootHeight())
	}
}

func TestSetHeightAndDates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree, err := ParseNewick("((A:1,B:2):1,C:4);")
	if err != nil {
		t.Fatal(err)
	}
	tree.SetReferenceDate(2020)
	if tree.RootDate() != 2016 {
		t.Errorf("expected root date 2016, is %g", tree.RootDate())
	}
	var a *Node
	for _, l := range tree.LeafNodes() {
		if l.Label == "A" {
			a = l
		}
	}
	if err := tree.SetHeight(a, 2.5); err != nil {
		t.Fatal(err)
	}
	if tree.Date(a) != 2017.5 {
		t.Errorf("expected date 2017.5 for A, is %g", tree.Date(a))
	}
	if err := tree.SetHeight(a, 3.5); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("expected ErrInvalidHeight for leaf above parent, got %v", err)
	}
	if err := tree.SetHeight(a, -1); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("expected ErrInvalidHeight for negative height, got %v", err)
	}
}

func TestNewTreeRejectsInvertedHeights(t *testing.T) {
	root := &Node{Label: "r", Height: 1}
	root.Children = []*Node{{Label: "x", Height: 2}}
	if _, err := NewTree(root); !errors.Is(err, ErrInvalidHeight) {
		t.Errorf("expected ErrInvalidHeight, got %v", err)
	}
}

func TestTree2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree, err := ParseNewick("(((A:1,B:2):1):1);")
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	if err := Tree2Dot(tree, &b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("DOT output does not start with digraph header")
	}
	if strings.Count(dot, "->") != 4 {
		t.Errorf("expected 4 edges, have %d", strings.Count(dot, "->"))
	}
	if !strings.Contains(dot, "shape=point") {
		t.Errorf("expected unifurcating node to be drawn as point")
	}
	for _, edge := range []string{`"1" -> "2"`, `"2" -> "3"`, `"3" -> "4"`, `"3" -> "5"`} {
		if !strings.Contains(dot, edge) {
			t.Errorf("expected pre-order edge %s", edge)
		}
	}
	if !strings.Contains(dot, `"5" [label="B\n0"`) {
		t.Errorf("expected leaf B to be node 5")
	}
}

func TestRootlessTreesAreInvalid(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cfg := treeslicer.DefaultConfig()
	cfg.Dimension = 4
	for _, tree := range []*Tree{nil, {}} {
		if _, err := treeslicer.UpdateAnchors(tree); !errors.Is(err, treeslicer.ErrInvalidTree) {
			t.Errorf("expected ErrInvalidTree for %#v, got %v", tree, err)
		}
		if _, err := treeslicer.New(tree, cfg); !errors.Is(err, treeslicer.ErrInvalidTree) {
			t.Errorf("expected slicer over %#v to fail with ErrInvalidTree, got %v", tree, err)
		}
	}
}
