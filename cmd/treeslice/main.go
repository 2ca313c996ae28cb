// Command treeslice prints slice times for a phylogenetic tree given in
// Newick format.
//
//	treeslice --dimension 5 --break-at samples tree.nwk
//	treeslice --config slicers.yaml --format html tree.nwk > slices.html
//
// Slicers may be configured by flags (one slicer) or by a YAML file holding a
// list of slicers:
//
//	tree: tree.nwk        # optional, if no argument is given
//	scale: 1.0            # optional scale factor for internal nodes
//	slicers:
//	  - id: births
//	    dimension: 4
//	    breakAt: samples
//	    inclusive: false
//	  - id: rates
//	    dimension: 10
//	    to: oldestsample
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
