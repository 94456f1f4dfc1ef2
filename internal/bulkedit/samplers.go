package bulkedit

import (
	"fmt"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// SamplerMatch is one sampler selected by the matcher.
type SamplerMatch struct {
	Node *testplan.Node
	Text string
}

// Preview returns the display line for the match.
func (sm SamplerMatch) Preview() string {
	status := ""
	if !sm.Node.Enabled {
		status = " [DISABLED]"
	}
	return fmt.Sprintf("%s → %s%s", sm.Node.Name, sm.Text, status)
}

// FindSamplers walks the plan (or the scope subtrees) in document order and
// returns every sampler whose searchable text matches.
func FindSamplers(p *testplan.Plan, m *Matcher, scope []*testplan.Node) []SamplerMatch {
	var matches []SamplerMatch
	walkScope(p, scope, func(n *testplan.Node) bool {
		if !n.IsSampler() {
			return true
		}
		text := SearchableText(n)
		if m.Matches(text) {
			matches = append(matches, SamplerMatch{Node: n, Text: text})
		}
		return true
	})
	return matches
}
