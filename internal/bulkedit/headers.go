package bulkedit

import (
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/fancy"
	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

const previewValueLength = 50

// HeaderMatch is one header row selected by the matcher. Index is the row's
// position within its manager at collection time.
type HeaderMatch struct {
	Manager *testplan.Node
	Index   int
	Name    string
	Value   string
}

// Preview returns the display line for the match, truncating long values.
func (hm HeaderMatch) Preview() string {
	return fmt.Sprintf("[%s] %s: %s",
		hm.Manager.Name, hm.Name, fancy.TruncateString(hm.Value, previewValueLength))
}

// FindHeaders walks the plan (or the scope subtrees) and matches every
// header row's name across all header managers, in row order.
func FindHeaders(p *testplan.Plan, m *Matcher, scope []*testplan.Node) []HeaderMatch {
	var matches []HeaderMatch
	walkScope(p, scope, func(n *testplan.Node) bool {
		hm, ok := n.HeaderManager()
		if !ok {
			return true
		}
		for i, row := range hm.Rows() {
			if m.Matches(row.Name) {
				matches = append(matches, HeaderMatch{
					Manager: n,
					Index:   i,
					Name:    row.Name,
					Value:   row.Value,
				})
			}
		}
		return true
	})
	return matches
}
