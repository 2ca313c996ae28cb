package treeslicer

import (
	"fmt"
	"strings"
)

// BreakCriterion selects where slice breakpoints come from.
type BreakCriterion int

const (
	// None places breakpoints equidistantly between present and anchor.
	None BreakCriterion = iota
	// Branches breaks at branching events (internal nodes with more than
	// one child).
	Branches
	// Samples breaks at sampling events (leaves).
	Samples
	// BranchSamples breaks at both branching and sampling events.
	BranchSamples
)

func (c BreakCriterion) String() string {
	switch c {
	case None:
		return "none"
	case Branches:
		return "branches"
	case Samples:
		return "samples"
	case BranchSamples:
		return "branchsamples"
	}
	return fmt.Sprintf("BreakCriterion(%d)", int(c))
}

// IsEventBased is true for all criteria except None.
func (c BreakCriterion) IsEventBased() bool {
	return c == Branches || c == Samples || c == BranchSamples
}

// ParseBreakCriterion reads the name of a break criterion. Singular forms
// are accepted as well ("branch", "sample", "branchsample"). An empty name
// selects equidistant slicing.
func ParseBreakCriterion(s string) (BreakCriterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "equidistant":
		return None, nil
	case "branches", "branch":
		return Branches, nil
	case "samples", "sample":
		return Samples, nil
	case "branchsamples", "branchsample":
		return BranchSamples, nil
	}
	return None, fmt.Errorf("%w: unknown break criterion (%q) for input 'breakAt'", ErrInvalidConfig, s)
}

// selectHeights collects the node heights which serve as events for
// criterion c. Unifurcating internal nodes never count as branching events.
func selectHeights(tree Snapshot, c BreakCriterion) []float64 {
	var heights []float64
	if c == Branches || c == BranchSamples {
		heights = append(heights, tree.InternalHeights(2)...)
	}
	if c == Samples || c == BranchSamples {
		for _, leaf := range tree.Leaves() {
			heights = append(heights, leaf.Height)
		}
	}
	return heights
}
