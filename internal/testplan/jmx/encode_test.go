package jmx

import (
	"strings"
	"testing"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSameTree compares the decoded structure of two plans field by field.
func assertSameTree(t *testing.T, expected, actual *testplan.Plan) {
	t.Helper()

	assert.Equal(t, expected.Version, actual.Version)
	assert.Equal(t, expected.Properties, actual.Properties)
	assert.Equal(t, expected.JMeter, actual.JMeter)

	require.Len(t, actual.Nodes, len(expected.Nodes))
	for i := range expected.Nodes {
		assertSameNode(t, expected.Nodes[i], actual.Nodes[i])
	}
}

func assertSameNode(t *testing.T, expected, actual *testplan.Node) {
	t.Helper()

	assert.Equal(t, expected.Tag, actual.Tag)
	assert.Equal(t, expected.GUIClass, actual.GUIClass)
	assert.Equal(t, expected.TestClass, actual.TestClass)
	assert.Equal(t, expected.Name, actual.Name)
	assert.Equal(t, expected.Enabled, actual.Enabled)
	assert.Equal(t, expected.Props, actual.Props)

	require.Len(t, actual.Children, len(expected.Children))
	for i := range expected.Children {
		assertSameNode(t, expected.Children[i], actual.Children[i])
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	original, err := Decode([]byte(sampleJMX))
	require.NoError(t, err)

	encoded, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assertSameTree(t, original, decoded)
}

func TestRoundTripAfterEdit(t *testing.T) {
	t.Parallel()

	plan, err := Decode([]byte(sampleJMX))
	require.NoError(t, err)

	// Disable the login sampler and drop a header row, then round-trip.
	login := plan.FindByName("Login")[0]
	login.Enabled = false

	manager := plan.FindByName("HTTP Header Manager")[0]
	hm, ok := manager.HeaderManager()
	require.True(t, ok)
	require.NoError(t, hm.RemoveRow(1))

	encoded, err := Encode(plan)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	assert.False(t, decoded.FindByName("Login")[0].Enabled)

	decodedHM, ok := decoded.FindByName("HTTP Header Manager")[0].HeaderManager()
	require.True(t, ok)
	rows := decodedHM.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Authorization", rows[0].Name)
}

func TestEncodeLayout(t *testing.T) {
	t.Parallel()

	plan, err := Decode([]byte(sampleJMX))
	require.NoError(t, err)

	encoded, err := Encode(plan)
	require.NoError(t, err)
	out := string(encoded)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<jmeterTestPlan version="1.2" properties="5.0" jmeter="5.6.3">`)
	assert.Contains(t, out, `testname="Login"`)
	assert.Contains(t, out, `enabled="false"`)
	assert.True(t, strings.HasSuffix(out, "</jmeterTestPlan>\n"))
}

func TestEncodeDefaultsVersion(t *testing.T) {
	t.Parallel()

	plan := &testplan.Plan{
		Nodes: []*testplan.Node{testplan.NewNode("TestPlan", "Test Plan")},
	}
	encoded, err := Encode(plan)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `<jmeterTestPlan version="1.2">`)
}

func TestEncodeEscapesValues(t *testing.T) {
	t.Parallel()

	node := testplan.NewNode(testplan.TagHTTPSamplerProxy, `Search "q<1>"`)
	node.SetStringProp("HTTPSampler.path", "/search?q=a&b=<c>")
	plan := &testplan.Plan{Nodes: []*testplan.Node{node}}

	encoded, err := Encode(plan)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Len(t, decoded.Nodes, 1)
	assert.Equal(t, `Search "q<1>"`, decoded.Nodes[0].Name)

	path, ok := decoded.Nodes[0].StringProp("HTTPSampler.path")
	require.True(t, ok)
	assert.Equal(t, "/search?q=a&b=<c>", path)
}
