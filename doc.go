/*
Package treeslicer computes vectors of slice times over a phylogenetic tree.

Slice Times

Skyline coalescent and birth-death-skyline models discretize time into
intervals. The boundaries of these intervals, called slice times, are usually
tied to the tree under inference: they run from the present (the most recent
sample, height 0) back to an anchor point on the tree, either the oldest sample
or the time to the most recent common ancestor (tMRCA).

A Slicer produces such a vector of a fixed dimension. Two flavours exist:

  - equidistant slices divide the interval between the present and the anchor
    into equally long steps,
  - event slices group node heights (sampling events, branching events or both)
    into buckets of roughly equal size and place a breakpoint between
    consecutive buckets, so that every interval holds about the same number of
    events.

Whenever the tree may have changed, clients call Invalidate. Slice times are
recomputed lazily on the next read, never before, and a read never returns a
vector computed for an outdated tree.

	tree, _ := phylo.ParseNewick("((A:1,B:2):1,C:4);")
	cfg := treeslicer.DefaultConfig()
	cfg.Dimension = 4
	cfg.BreakAt = treeslicer.Samples
	slicer, err := treeslicer.New(tree, cfg)
	...
	times, err := slicer.Values()

Trees enter the package through the Snapshot interface only. Package phylo
provides a reference implementation, including a Newick parser.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package treeslicer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SliceError is an error type for the treeslicer module.
type SliceError string

func (e SliceError) Error() string {
	return string(e)
}

// ErrInvalidConfig is flagged for configurations which cannot produce a
// slice vector: unknown anchor points or break criteria, a dimension
// too small or not divisible by the minor dimension stride.
const ErrInvalidConfig = SliceError("invalid slicer configuration")

// ErrInvalidTree is flagged whenever a tree snapshot violates the
// minimum requirements of a slicer, e.g., has no leaves.
const ErrInvalidTree = SliceError("invalid tree")

// ErrIndexOutOfBounds is flagged whenever a slice index is
// not within [0, dimension).
const ErrIndexOutOfBounds = SliceError("index out of bounds")

// ErrTooFewEvents is flagged if there are too few tree events to
// be grouped into the configured number of intervals.
// Errors of this kind also match ErrInvalidConfig.
const ErrTooFewEvents = SliceError("too few events for number of intervals")

// Is lets ErrTooFewEvents match ErrInvalidConfig.
func (e SliceError) Is(target error) bool {
	if e == ErrTooFewEvents && target == ErrInvalidConfig {
		return true
	}
	return e == target
}
