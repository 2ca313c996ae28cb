package treeslicer

import (
	"fmt"
	"math"
	"slices"
)

// intervalCount is the number of intervals a vector of dimension d spans.
// If inclusive, the last slot is taken by the anchor itself.
func intervalCount(dimension int, inclusive bool) int {
	if inclusive {
		return dimension - 1
	}
	return dimension
}

// buildVector computes a complete vector of slice times. heights is ignored
// for criterion None.
func buildVector(c BreakCriterion, heights []float64, dimension int, inclusive bool,
	endTime float64) ([]float64, error) {
	//
	if c.IsEventBased() {
		return byEvents(heights, dimension, inclusive, endTime)
	}
	return equidistant(endTime, dimension, inclusive)
}

// equidistant divides [0, anchorHeight] into steps of equal length.
// If inclusive, the last slot holds anchorHeight exactly.
func equidistant(anchorHeight float64, dimension int, inclusive bool) ([]float64, error) {
	intervals := intervalCount(dimension, inclusive)
	if intervals < 1 {
		return nil, fmt.Errorf("%w: dimension %d too small (inclusive=%v)",
			ErrInvalidConfig, dimension, inclusive)
	}
	step := anchorHeight / float64(intervals)
	times := make([]float64, dimension)
	for i := range times {
		times[i] = float64(i) * step
	}
	if inclusive {
		times[intervals] = anchorHeight
	}
	return times, nil
}

// byEvents groups the event heights into buckets of (roughly) equal size and
// places a breakpoint half-way between the last event of a bucket and the
// first event of the next one. The last bucket absorbs the rounding
// remainder; its breakpoint sits EPS above the oldest event.
//
// If the bucket size rounds to 0 the loop stops after the first breakpoint
// and the remaining slots repeat it.
func byEvents(heights []float64, dimension int, inclusive bool, endTime float64) ([]float64, error) {
	n := len(heights)
	if n == 0 {
		return nil, fmt.Errorf("%w: no events to slice at", ErrInvalidConfig)
	}
	intervals := intervalCount(dimension, inclusive)
	if intervals < 1 {
		return nil, fmt.Errorf("%w: dimension %d too small (inclusive=%v)",
			ErrInvalidConfig, dimension, inclusive)
	}
	sorted := slices.Clone(heights)
	slices.Sort(sorted)
	times := make([]float64, dimension)
	if intervals > 1 {
		groupSize := roundHalfUp(float64(n) / float64(intervals-1))
		lastGroupSize := n - groupSize*(intervals-2)
		if lastGroupSize <= 0 {
			return nil, fmt.Errorf("%w: %d events cannot fill %d intervals (group size %d)",
				ErrTooFewEvents, n, intervals, groupSize)
		}
		T().Debugf("slicing %d events into %d intervals, group size %d, last group %d",
			n, intervals, groupSize, lastGroupSize)
		i, j := 0, 1
		for ; j < intervals; j++ {
			if i+lastGroupSize >= n {
				times[j] = sorted[n-1] + EPS
				break
			}
			i += groupSize
			times[j] = (sorted[i-1] + sorted[i]) / 2
		}
		for k := j + 1; k < intervals; k++ {
			times[k] = times[j]
		}
	}
	if inclusive {
		times[intervals] = endTime
	}
	return times, nil
}

// roundHalfUp rounds x to the nearest integer, with halves rounded
// towards +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
