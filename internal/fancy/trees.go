package fancy

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// ComponentTree creates a component-specific styled tree
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a new component tree with appropriate styling
func NewComponentTree(title string) *ComponentTree {
	t := Tree()
	t.Root(title)

	return &ComponentTree{
		tree: t,
	}
}

// Tree returns the underlying tree
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddChild adds a child node to the root branch
func (c *ComponentTree) AddChild(child interface{}) *tree.Tree {
	return c.tree.Child(child)
}

// PlanTree creates a tree rooted at the test plan name
func PlanTree(name string) *ComponentTree {
	return NewComponentTree(RootStyle.Render(name))
}

// SamplerTree creates a tree branch for sampler visualization
func SamplerTree(samplerInfo string) *ComponentTree {
	return NewComponentTree(SamplerStyle.Render(samplerInfo))
}
