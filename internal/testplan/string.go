package testplan

import (
	"fmt"
	"strings"

	"github.com/atlanticdynamic/jmxbulk/internal/fancy"
)

// String returns a string representation of the Plan
func (p *Plan) String() string {
	if p == nil {
		return "<nil>"
	}

	var trees []string
	for _, n := range p.Nodes {
		trees = append(trees, n.ToTree().Tree().String())
	}
	return strings.Join(trees, "\n")
}

// String returns a single-line representation of a Node
func (n *Node) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s '%s'", n.Tag, n.Name)

	if hs, ok := n.HTTPSampler(); ok {
		if url := hs.URL(); url != "" {
			fmt.Fprintf(&b, " %s", url)
		}
	}
	if hm, ok := n.HeaderManager(); ok {
		fmt.Fprintf(&b, " (%d headers)", len(hm.Rows()))
	}
	if !n.Enabled {
		b.WriteString(" [disabled]")
	}
	return b.String()
}

// ToTree returns a tree visualization of the node and its subtree
func (n *Node) ToTree() *fancy.ComponentTree {
	tree := n.newTree()

	if hm, ok := n.HeaderManager(); ok {
		for _, row := range hm.Rows() {
			tree.AddChild(fmt.Sprintf("%s: %s", row.Name, fancy.TruncateString(row.Value, 50)))
		}
	}

	for _, c := range n.Children {
		tree.AddChild(c.ToTree().Tree())
	}
	return tree
}

func (n *Node) newTree() *fancy.ComponentTree {
	label := n.String()
	switch {
	case !n.Enabled:
		return fancy.NewComponentTree(fancy.DisabledText(label))
	case n.IsSampler():
		return fancy.SamplerTree(label)
	case n.Tag == TagHeaderManager:
		return fancy.NewComponentTree(fancy.ManagerText(label))
	case n.Tag == "TestPlan":
		return fancy.PlanTree(label)
	default:
		return fancy.NewComponentTree(fancy.ControllerText(label))
	}
}
