package testplan

import (
	"fmt"
	"strings"
)

// HTTP sampler element tags written by JMeter.
const (
	TagHTTPSamplerProxy = "HTTPSamplerProxy"
	TagHTTPSampler      = "HTTPSampler"
	TagHeaderManager    = "HeaderManager"
)

// IsSampler reports whether the element is a sampler. JMeter sampler test
// classes all carry the Sampler suffix (HTTPSamplerProxy, JSR223Sampler,
// DebugSampler, ...); elements without a testclass fall back to the tag.
func (n *Node) IsSampler() bool {
	tc := n.TestClass
	if tc == "" {
		tc = n.Tag
	}
	return strings.Contains(tc, "Sampler")
}

// HTTPSampler is a typed view over an HTTP sampler node's properties.
type HTTPSampler struct {
	node *Node
}

// HTTPSampler returns the HTTP view of the node, if it is an HTTP sampler.
func (n *Node) HTTPSampler() (*HTTPSampler, bool) {
	switch n.Tag {
	case TagHTTPSamplerProxy, TagHTTPSampler:
		return &HTTPSampler{node: n}, true
	}
	return nil, false
}

func (h *HTTPSampler) Node() *Node { return h.node }

func (h *HTTPSampler) Protocol() string {
	v, _ := h.node.StringProp("HTTPSampler.protocol")
	return v
}

func (h *HTTPSampler) Domain() string {
	v, _ := h.node.StringProp("HTTPSampler.domain")
	return v
}

func (h *HTTPSampler) Port() int {
	v, _ := h.node.IntProp("HTTPSampler.port")
	return v
}

func (h *HTTPSampler) Path() string {
	v, _ := h.node.StringProp("HTTPSampler.path")
	return v
}

func (h *HTTPSampler) Method() string {
	v, _ := h.node.StringProp("HTTPSampler.method")
	return v
}

// URL reconstructs the request URL from the sampler properties. The
// protocol defaults to http, default ports are omitted, and the path is
// given a leading slash. An empty string is returned when no domain is set.
func (h *HTTPSampler) URL() string {
	domain := h.Domain()
	if domain == "" {
		return ""
	}

	protocol := h.Protocol()
	if protocol == "" {
		protocol = "http"
	}

	var b strings.Builder
	b.WriteString(protocol)
	b.WriteString("://")
	b.WriteString(domain)

	if port := h.Port(); port > 0 && port != 80 && port != 443 {
		fmt.Fprintf(&b, ":%d", port)
	}

	if path := h.Path(); path != "" {
		if !strings.HasPrefix(path, "/") {
			b.WriteString("/")
		}
		b.WriteString(path)
	}
	return b.String()
}
