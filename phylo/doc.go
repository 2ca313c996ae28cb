/*
Package phylo provides a small rooted phylogenetic tree, sufficient to drive
slicers of package treeslicer.

Trees are read from Newick strings. Node heights are measured backwards in
time from the most recent sample, which sits at height 0. Internal node heights
may be scaled and leaf heights may be re-sampled; every such change is
announced synchronously to the observers of a tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package phylo

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'treeslicer'
func tracer() tracing.Trace {
	return tracing.Select("treeslicer")
}

var (
	// ErrSyntax signals a malformed Newick string.
	ErrSyntax = errors.New("phylo: Newick syntax error")
	// ErrInvalidHeight signals a node height which would break the order of
	// heights along a path from the root.
	ErrInvalidHeight = errors.New("phylo: invalid node height")
	// ErrInvalidScale signals a non-positive scale factor.
	ErrInvalidScale = errors.New("phylo: invalid scale factor")
)
