package phylo

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labelled with their heights;
// unifurcating nodes are drawn as small points.
func Tree2Dot(t *Tree, w io.Writer) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodes := t.Nodes()
	ids := make(map[*Node]int, len(nodes)) // DOT ids in pre-order, starting at 1
	for i, node := range nodes {
		ids[node] = i + 1
	}
	var edges strings.Builder
	for _, node := range nodes {
		label := fmt.Sprintf("%.4g", node.Height)
		if node.Label != "" {
			label = fmt.Sprintf("%s\\n%.4g", node.Label, node.Height)
		}
		fmt.Fprintf(&b, "\"%d\" [label=\"%s\"%s];\n", ids[node], label, nodeDotStyles(node))
		for _, c := range node.Children {
			fmt.Fprintf(&edges, "\"%d\" -> \"%d\" [label=\"%.4g\"];\n",
				ids[node], ids[c], c.BranchLength())
		}
	}
	b.WriteString(edges.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func nodeDotStyles(node *Node) string {
	s := ",style=filled"
	switch {
	case node.IsLeaf():
		s += ",shape=box"
	case len(node.Children) == 1:
		s += ",shape=point,width=.1"
	default:
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=circle"
	}
	return s
}
