package treeslicer

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// EPS is the offset by which the oldest sample is moved into the past.
// Likelihood models like BDSKY require the oldest sample to lie strictly
// inside the last interval.
const EPS = 1e-7

// Anchor is a reference point on a tree where slices end.
type Anchor int

const (
	// Present is the time of the most recent sample, always at height 0.
	Present Anchor = iota
	// OldestSample is the height of the oldest sample, moved back by EPS.
	OldestSample
	// TMRCA is the height of the tree, i.e. the time to the most recent
	// common ancestor.
	TMRCA
)

var anchorNames = [...]string{"present", "oldestsample", "tmrca"}

func (a Anchor) String() string {
	if a < Present || a > TMRCA {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// ParseAnchor reads an anchor name. Names are case-insensitive; an empty
// name selects TMRCA.
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return TMRCA, nil
	}
	for a, n := range anchorNames {
		if n == name {
			return Anchor(a), nil
		}
	}
	return TMRCA, fmt.Errorf("%w: unknown anchor point (%q) for input 'to'", ErrInvalidConfig, s)
}

// AnchorTime locates an anchor in time, both as height (time before present)
// and as calendar date.
type AnchorTime struct {
	Height float64
	Date   float64
}

// AnchorTimes holds the anchor points of a tree snapshot.
// It is a value type and will be re-created for every tree update.
type AnchorTimes struct {
	Present      AnchorTime
	OldestSample AnchorTime
	TMRCA        AnchorTime
}

// UpdateAnchors derives anchor times from a tree snapshot. This is O(n) for
// n leaves.
//
// Change flags of trees do not reliably reflect changes of anchor times
// (e.g., sampled tip dates), therefore anchors have to be re-derived every time
// slice times are re-calculated.
func UpdateAnchors(tree Snapshot) (AnchorTimes, error) {
	var at AnchorTimes
	if tree == nil {
		return at, fmt.Errorf("%w: tree is nil", ErrInvalidTree)
	}
	leaves := tree.Leaves()
	if len(leaves) == 0 {
		return at, fmt.Errorf("%w: tree has no leaves", ErrInvalidTree)
	}
	at.TMRCA = AnchorTime{Height: tree.RootHeight(), Date: tree.RootDate()}
	at.Present = at.TMRCA
	at.OldestSample.Height = 0
	for _, leaf := range leaves {
		if leaf.Height > at.OldestSample.Height {
			at.OldestSample = AnchorTime{Height: leaf.Height + EPS, Date: leaf.Date}
		}
		if leaf.Height < at.Present.Height {
			at.Present = AnchorTime{Height: leaf.Height, Date: leaf.Date}
		}
	}
	return at, nil
}

// Get returns the time of anchor a.
func (at AnchorTimes) Get(a Anchor) AnchorTime {
	switch a {
	case Present:
		return at.Present
	case OldestSample:
		return at.OldestSample
	}
	return at.TMRCA
}

// DateToHeight converts a calendar date into a height, relative to the
// date of the most recent sample.
func (at AnchorTimes) DateToHeight(date float64) float64 {
	return at.Present.Date - date
}

// HeightToDate converts a height into a calendar date.
func (at AnchorTimes) HeightToDate(height float64) float64 {
	return at.Present.Date - height
}
