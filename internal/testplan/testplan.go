// Package testplan models a JMeter test plan as an in-memory tree of
// elements. Nodes keep their properties generically so elements the tool
// does not understand still round-trip through load and save; typed views
// (HTTP samplers, header managers) sit on top of the generic bag.
package testplan

// Plan is a loaded test plan. Version, Properties and JMeter mirror the
// attributes of the jmeterTestPlan document element.
type Plan struct {
	Version    string
	Properties string
	JMeter     string
	Nodes      []*Node
}

// Node is a single test-plan element and its subtree.
type Node struct {
	Tag       string
	GUIClass  string
	TestClass string
	Name      string
	Enabled   bool
	Props     []Prop
	Children  []*Node

	parent *Node
}

// NewNode creates an enabled node with the given tag and test name. The
// testclass defaults to the tag, which is how JMeter writes most elements.
func NewNode(tag, name string) *Node {
	return &Node{
		Tag:       tag,
		TestClass: tag,
		Name:      name,
		Enabled:   true,
	}
}

// AddChild appends a child node and claims ownership of it.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.Children = append(n.Children, child)
	return child
}

// Parent returns the node's parent, nil for top-level nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// RemoveChild detaches the given child. It reports whether the child was
// present.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Walk visits the node and its subtree depth-first in document order. The
// visit function returns false to stop the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

// Walk visits every node of the plan in document order.
func (p *Plan) Walk(visit func(*Node) bool) {
	for _, n := range p.Nodes {
		if !n.Walk(visit) {
			return
		}
	}
}

// Remove detaches a node from the tree, wherever it sits. Top-level nodes
// are removed from the plan itself.
func (p *Plan) Remove(node *Node) bool {
	if node.parent != nil {
		return node.parent.RemoveChild(node)
	}
	for i, n := range p.Nodes {
		if n == node {
			p.Nodes = append(p.Nodes[:i], p.Nodes[i+1:]...)
			return true
		}
	}
	return false
}

// FindByName returns every node whose test name equals name, in document
// order.
func (p *Plan) FindByName(name string) []*Node {
	var found []*Node
	p.Walk(func(n *Node) bool {
		if n.Name == name {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Summary holds the counts shown by the inspect command.
type Summary struct {
	Elements       int
	Samplers       int
	HeaderManagers int
	HeaderRows     int
	Disabled       int
}

// Summarize walks the plan and counts the element kinds of interest.
func (p *Plan) Summarize() Summary {
	var s Summary
	p.Walk(func(n *Node) bool {
		s.Elements++
		if n.IsSampler() {
			s.Samplers++
		}
		if hm, ok := n.HeaderManager(); ok {
			s.HeaderManagers++
			s.HeaderRows += len(hm.Rows())
		}
		if !n.Enabled {
			s.Disabled++
		}
		return true
	})
	return s
}

// adopt restores parent pointers below n. The JMX decoder builds subtrees
// bottom-up and calls this once per top-level node.
func (n *Node) adopt() {
	for _, c := range n.Children {
		c.parent = n
		c.adopt()
	}
}

// Adopt fixes parent pointers for all nodes in the plan.
func (p *Plan) Adopt() {
	for _, n := range p.Nodes {
		n.parent = nil
		n.adopt()
	}
}
