package bulkedit

import (
	"strings"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// SearchableText builds the string a sampler is matched against: the
// element name, plus the reconstructed request URL for HTTP samplers when
// it adds anything beyond the name. Samplers are often named after their
// URL, so the duplicate is skipped.
func SearchableText(n *testplan.Node) string {
	var b strings.Builder
	b.WriteString(n.Name)

	hs, ok := n.HTTPSampler()
	if !ok {
		return b.String()
	}

	if url := hs.URL(); url != "" {
		if url != n.Name {
			b.WriteString(" ")
			b.WriteString(url)
		}
		return b.String()
	}

	if path := hs.Path(); path != "" && path != n.Name {
		b.WriteString(" ")
		b.WriteString(path)
	}
	return b.String()
}
