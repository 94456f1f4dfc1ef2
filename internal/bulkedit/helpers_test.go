package bulkedit

import (
	"strconv"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// newHTTPSampler builds an HTTPSamplerProxy node with the usual properties.
func newHTTPSampler(name, protocol, domain string, port int, path string) *testplan.Node {
	n := testplan.NewNode(testplan.TagHTTPSamplerProxy, name)
	n.GUIClass = "HttpTestSampleGui"
	if protocol != "" {
		n.SetStringProp("HTTPSampler.protocol", protocol)
	}
	if domain != "" {
		n.SetStringProp("HTTPSampler.domain", domain)
	}
	if port != 0 {
		n.SetStringProp("HTTPSampler.port", strconv.Itoa(port))
	}
	if path != "" {
		n.SetStringProp("HTTPSampler.path", path)
	}
	n.SetStringProp("HTTPSampler.method", "GET")
	return n
}

// newHeaderManager builds a HeaderManager node with the given rows.
func newHeaderManager(name string, rows ...testplan.Header) *testplan.Node {
	n := testplan.NewNode(testplan.TagHeaderManager, name)
	n.GUIClass = "HeaderPanel"
	hm, _ := n.HeaderManager()
	for _, row := range rows {
		if err := hm.AddRow(row); err != nil {
			panic(err)
		}
	}
	return n
}

// newTestPlan assembles a plan with a TestPlan root and one thread group
// holding the given nodes.
func newTestPlan(nodes ...*testplan.Node) *testplan.Plan {
	root := testplan.NewNode("TestPlan", "Test Plan")
	tg := root.AddChild(testplan.NewNode("ThreadGroup", "Thread Group"))
	for _, n := range nodes {
		tg.AddChild(n)
	}
	return &testplan.Plan{Version: "1.2", Nodes: []*testplan.Node{root}}
}

func mustMatcher(pattern string, opts MatchOptions) *Matcher {
	m, err := NewMatcher(pattern, opts)
	if err != nil {
		panic(err)
	}
	return m
}
