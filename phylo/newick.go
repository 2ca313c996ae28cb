package phylo

import (
	"fmt"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	gotree "github.com/evolbioinfo/gotree/tree"
)

// ParseNewick reads a tree in Newick format, e.g.
//
//	((A:1,B:2):1,C:4);
//
// Branch lengths are required for every non-root node; the branch length of
// the root is ignored. Node heights are derived from branch lengths such that
// the leaf farthest from the root is at height 0. Labels may be quoted with
// single quotes. Whitespace is not allowed between a branch length and the
// token following it.
func ParseNewick(s string) (*Tree, error) {
	if !strings.HasSuffix(strings.TrimSpace(s), ";") {
		return nil, fmt.Errorf("%w: tree must be terminated by ';'", ErrSyntax)
	}
	gt, err := newick.NewParser(strings.NewReader(s)).Parse()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSyntax, err.Error())
	}
	if gt.Root() == nil {
		return nil, fmt.Errorf("%w: tree has no root", ErrSyntax)
	}
	depth := make(map[*Node]float64) // distance from the root
	root, err := fromNewick(gt.Root(), nil, 0, depth)
	if err != nil {
		return nil, err
	}
	maxDepth := 0.0
	for _, d := range depth {
		maxDepth = max(maxDepth, d)
	}
	for n, d := range depth {
		n.Height = maxDepth - d
	}
	tree, err := NewTree(root)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed Newick tree with %d nodes, height %g", len(depth), root.Height)
	return tree, nil
}

// fromNewick copies the subtree of gn into phylo nodes. Neighbours in gotree
// are undirected; from is the neighbour of gn on the path to the root.
func fromNewick(gn, from *gotree.Node, d float64, depth map[*Node]float64) (*Node, error) {
	label, err := unquote(gn.Name())
	if err != nil {
		return nil, err
	}
	node := &Node{Label: label}
	depth[node] = d
	edges := gn.Edges()
	for i, nb := range gn.Neigh() {
		if nb == from {
			continue
		}
		length := edges[i].Length()
		if length == gotree.NIL_LENGTH {
			return nil, fmt.Errorf("%w: missing branch length for node %q", ErrSyntax, nb.Name())
		}
		if length < 0 {
			return nil, fmt.Errorf("%w: negative branch length %g for node %q",
				ErrSyntax, length, nb.Name())
		}
		child, err := fromNewick(nb, gn, d+length, depth)
		if err != nil {
			return nil, err
		}
		child.Parent = node
		node.Children = append(node.Children, child)
	}
	if node.IsLeaf() && label == "" {
		return nil, fmt.Errorf("%w: leaf without label", ErrSyntax)
	}
	return node, nil
}

func unquote(label string) (string, error) {
	label = strings.TrimSpace(label)
	if !strings.HasPrefix(label, "'") {
		return label, nil
	}
	if len(label) < 2 || !strings.HasSuffix(label, "'") {
		return "", fmt.Errorf("%w: unterminated quoted label %s", ErrSyntax, label)
	}
	return label[1 : len(label)-1], nil
}
