package bulkedit

import (
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// ResolveScope maps scope names to subtree roots. Every name must resolve
// to at least one plan node; an empty name list means the whole plan.
func ResolveScope(p *testplan.Plan, names []string) ([]*testplan.Node, error) {
	var roots []*testplan.Node
	for _, name := range names {
		nodes := p.FindByName(name)
		if len(nodes) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrScopeNotFound, name)
		}
		roots = append(roots, nodes...)
	}
	return roots, nil
}

// walkScope visits either the whole plan or each scope subtree in turn.
func walkScope(p *testplan.Plan, scope []*testplan.Node, visit func(*testplan.Node) bool) {
	if len(scope) == 0 {
		p.Walk(visit)
		return
	}
	for _, root := range scope {
		if !root.Walk(visit) {
			return
		}
	}
}
