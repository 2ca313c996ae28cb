package treeslicer

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/guiguan/caster"
)

// Slicer is a lazily computed vector of slice times over a tree.
//
// A Slicer is either fresh or stale. Invalidate turns it stale; every read
// operation on a stale slicer first recomputes anchors and slice times from
// the current tree snapshot. Reads never return times computed for an outdated
// tree snapshot. Slicers never try to find out whether a change of the tree is
// relevant for them: every notification is accepted.
//
// A Slicer is not safe for concurrent use.
type Slicer struct {
	tree          Snapshot
	cfg           Config
	anchors       AnchorTimes
	storedAnchors AnchorTimes
	values        []float64
	stored        []float64
	fresh         bool
	cast          *caster.Caster // broadcaster for recomputed vectors, created on demand
}

// Recomputed is published to subscribers of a slicer after every
// recomputation of its slice times.
type Recomputed struct {
	ID      string
	Values  []float64
	Anchors AnchorTimes
}

// New creates a slicer over tree. The config is validated and slice times
// are computed once, thus errors in either surface here. The new slicer
// starts out stale, i.e. the first read will recompute.
func New(tree Snapshot, cfg Config) (*Slicer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: slicer %s needs a tree", ErrInvalidConfig, cfg.normalized().ID)
	}
	s := &Slicer{
		tree: tree,
		cfg:  cfg.normalized(),
	}
	if err := s.recompute(); err != nil {
		return nil, err
	}
	s.stored = slices.Clone(s.values)
	s.storedAnchors = s.anchors
	s.fresh = false
	return s, nil
}

// recompute re-derives anchors and rebuilds the complete vector of slice
// times. On error the slicer stays stale and keeps its previous vector.
func (s *Slicer) recompute() error {
	anchors, err := UpdateAnchors(s.tree)
	if err != nil {
		return fmt.Errorf("slicer %s: %w", s.cfg.ID, err)
	}
	endTime := anchors.Get(s.cfg.To).Height
	var heights []float64
	if s.cfg.BreakAt.IsEventBased() {
		heights = selectHeights(s.tree, s.cfg.BreakAt)
	}
	values, err := buildVector(s.cfg.BreakAt, heights, s.cfg.Dimension, s.cfg.Inclusive, endTime)
	if err != nil {
		return fmt.Errorf("slicer %s: %w", s.cfg.ID, err)
	}
	s.anchors, s.values = anchors, values
	s.fresh = true
	T().P("slicer", s.cfg.ID).Debugf("recomputed slice times up to %s = %g: %v",
		s.cfg.To, endTime, values)
	if s.cast != nil { // subscribers with a full buffer miss the event
		s.cast.TryPub(Recomputed{
			ID:      s.cfg.ID,
			Values:  slices.Clone(values),
			Anchors: anchors,
		})
	}
	return nil
}

func (s *Slicer) ensureFresh() error {
	if s.fresh {
		return nil
	}
	return s.recompute()
}

// Invalidate notifies a slicer that its tree may have changed.
func (s *Slicer) Invalidate() {
	s.fresh = false
}

// IsFresh reports whether the slice times are known for the current tree
// snapshot, i.e. no Invalidate happened since the last recomputation.
func (s *Slicer) IsFresh() bool {
	return s.fresh
}

// Config returns the configuration of s.
func (s *Slicer) Config() Config {
	return s.cfg
}

// ID returns the (normalized) ID of s.
func (s *Slicer) ID() string {
	return s.cfg.ID
}

// Dimension returns the number of slice times.
func (s *Slicer) Dimension() int {
	return s.cfg.Dimension
}

// Value returns the slice time at index i.
func (s *Slicer) Value(i int) (float64, error) {
	if i < 0 || i >= s.cfg.Dimension {
		return 0, fmt.Errorf("%w: slice index %d, dimension is %d",
			ErrIndexOutOfBounds, i, s.cfg.Dimension)
	}
	if err := s.ensureFresh(); err != nil {
		return 0, err
	}
	return s.values[i], nil
}

// Values returns a copy of all slice times.
func (s *Slicer) Values() ([]float64, error) {
	if err := s.ensureFresh(); err != nil {
		return nil, err
	}
	return slices.Clone(s.values), nil
}

// Anchors returns the anchor times of the current tree snapshot.
func (s *Slicer) Anchors() (AnchorTimes, error) {
	if err := s.ensureFresh(); err != nil {
		return AnchorTimes{}, err
	}
	return s.anchors, nil
}

// Lower is the lower bound of every slice time.
func (s *Slicer) Lower() float64 {
	return 0
}

// Upper is the upper bound of every slice time.
func (s *Slicer) Upper() float64 {
	return math.Inf(1)
}

// --- Checkpoints -----------------------------------------------------------

// Store saves the slice times of the current tree snapshot to a shadow
// vector. A stale slicer is recomputed first; if that fails, the shadow
// vector is left untouched.
func (s *Slicer) Store() error {
	if err := s.ensureFresh(); err != nil {
		return err
	}
	s.stored = slices.Clone(s.values)
	s.storedAnchors = s.anchors
	return nil
}

// Stored returns a copy of the shadow vector.
func (s *Slicer) Stored() []float64 {
	return slices.Clone(s.stored)
}

// Restore swaps the shadow vector back in. Clients call Restore after they
// have restored the tree to the state it had at the time of Store; the
// slicer is fresh afterwards.
func (s *Slicer) Restore() {
	s.values, s.stored = s.stored, s.values
	s.anchors, s.storedAnchors = s.storedAnchors, s.anchors
	s.fresh = true
}

// --- Publication -----------------------------------------------------------

// Subscribe returns a channel of Recomputed events, with a buffer of
// capacity events. Publication never waits for a subscriber: if its buffer
// is full, the event is dropped for this subscriber.
// The subscription ends when ctx is done or the slicer is closed.
func (s *Slicer) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	if s.cast == nil {
		s.cast = caster.New(context.Background())
	}
	return s.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions.
func (s *Slicer) Close() {
	if s.cast != nil {
		s.cast.Close()
	}
}
