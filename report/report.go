package report

import (
	"math"

	"github.com/npillmayer/treeslicer"
)

// Report is a snapshot of a slicer, ready for output.
type Report struct {
	ID        string
	BreakAt   treeslicer.BreakCriterion
	To        treeslicer.Anchor
	Inclusive bool
	Times     []float64
	Anchors   treeslicer.AnchorTimes
}

// FromSlicer reads the current slice times and anchors of s. This will
// recompute s if it is stale.
func FromSlicer(s *treeslicer.Slicer) (*Report, error) {
	times, err := s.Values()
	if err != nil {
		return nil, err
	}
	anchors, err := s.Anchors()
	if err != nil {
		return nil, err
	}
	cfg := s.Config()
	return &Report{
		ID:        cfg.ID,
		BreakAt:   cfg.BreakAt,
		To:        cfg.To,
		Inclusive: cfg.Inclusive,
		Times:     times,
		Anchors:   anchors,
	}, nil
}

// Interval is a slice between two consecutive slice times.
type Interval struct {
	Index    int
	From, To float64
}

// Length is the duration of an interval. The last interval of an exclusive
// vector is open-ended.
func (iv Interval) Length() float64 {
	return iv.To - iv.From
}

// Intervals lists the intervals between slice times. For exclusive slicers
// the last interval extends to +Inf.
func (r *Report) Intervals() []Interval {
	var ivs []Interval
	for i := 0; i+1 < len(r.Times); i++ {
		ivs = append(ivs, Interval{Index: i, From: r.Times[i], To: r.Times[i+1]})
	}
	if !r.Inclusive && len(r.Times) > 0 {
		n := len(r.Times) - 1
		ivs = append(ivs, Interval{Index: n, From: r.Times[n], To: math.Inf(1)})
	}
	return ivs
}

type anchorRow struct {
	Name string
	Time treeslicer.AnchorTime
}

// anchorRows lists anchors in the order present, oldest sample, tMRCA.
func (r *Report) anchorRows() []anchorRow {
	return []anchorRow{
		{"present", r.Anchors.Present},
		{"oldest sample", r.Anchors.OldestSample},
		{"tMRCA", r.Anchors.TMRCA},
	}
}
