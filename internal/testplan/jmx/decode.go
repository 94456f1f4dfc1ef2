// Package jmx reads and writes JMeter .jmx documents. The format is an XML
// tree where every element is followed by a hashTree holding its children;
// properties nest inside the element itself. Decoding is tolerant: elements
// and properties the tool does not know are kept generically so they
// survive a load/save cycle.
package jmx

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

const rootElement = "jmeterTestPlan"

// Known document versions written by JMeter.
var supportedVersions = map[string]bool{
	"":    true,
	"1.2": true,
}

// Decode parses a .jmx document into a Plan.
func Decode(data []byte) (*testplan.Plan, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	plan := &testplan.Plan{}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, ErrMissingRoot
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != rootElement {
			return nil, fmt.Errorf("%w: found <%s>", ErrMissingRoot, se.Name.Local)
		}

		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "version":
				plan.Version = attr.Value
			case "properties":
				plan.Properties = attr.Value
			case "jmeter":
				plan.JMeter = attr.Value
			}
		}
		break
	}

	if !supportedVersions[plan.Version] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedVersion, plan.Version)
	}

	// The root holds a single hashTree with the top-level elements.
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "hashTree" {
				return nil, fmt.Errorf("%w: expected <hashTree>, found <%s>",
					ErrMalformedDocument, t.Name.Local)
			}
			nodes, err := decodeTree(dec)
			if err != nil {
				return nil, err
			}
			plan.Nodes = append(plan.Nodes, nodes...)
		case xml.EndElement:
			if t.Name.Local == rootElement {
				plan.Adopt()
				return plan, nil
			}
		}
	}

	plan.Adopt()
	return plan, nil
}

// decodeTree consumes the body of a hashTree: alternating element and
// hashTree pairs. The hashTree after an element carries that element's
// children; a dangling hashTree is descended and discarded.
func decodeTree(dec *xml.Decoder) ([]*testplan.Node, error) {
	var nodes []*testplan.Node
	var last *testplan.Node

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "hashTree" {
				children, err := decodeTree(dec)
				if err != nil {
					return nil, err
				}
				if last != nil {
					last.Children = children
					last = nil
				}
				continue
			}
			node, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
			last = node
		case xml.EndElement:
			// End of the enclosing hashTree.
			return nodes, nil
		}
	}
}

// decodeElement parses one test element and its property bag.
func decodeElement(dec *xml.Decoder, se xml.StartElement) (*testplan.Node, error) {
	node := &testplan.Node{
		Tag:     se.Name.Local,
		Enabled: true,
	}

	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "guiclass":
			node.GUIClass = attr.Value
		case "testclass":
			node.TestClass = attr.Value
		case "testname":
			node.Name = attr.Value
		case "enabled":
			if b, err := strconv.ParseBool(attr.Value); err == nil {
				node.Enabled = b
			}
		}
	}

	props, err := decodeProps(dec)
	if err != nil {
		return nil, err
	}
	node.Props = props
	return node, nil
}

// decodeProps consumes property elements until the parent's end tag.
func decodeProps(dec *xml.Decoder) ([]testplan.Prop, error) {
	var props []testplan.Prop

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			p, err := decodeProp(dec, t)
			if err != nil {
				return nil, err
			}
			props = append(props, p)
		case xml.EndElement:
			return props, nil
		}
	}
}

// decodeProp parses a single property. Scalar kinds keep their text value
// verbatim; container kinds recurse. A tag with both text and children is
// treated as a container, which matches how JMeter nests elementProps.
func decodeProp(dec *xml.Decoder, se xml.StartElement) (testplan.Prop, error) {
	p := testplan.Prop{Kind: se.Name.Local}
	for _, attr := range se.Attr {
		switch attr.Name.Local {
		case "name":
			p.Name = attr.Value
		case "elementType":
			p.ElementType = attr.Value
		}
	}

	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			child, err := decodeProp(dec, t)
			if err != nil {
				return p, err
			}
			p.Props = append(p.Props, child)
		case xml.EndElement:
			if len(p.Props) == 0 {
				p.Value = text.String()
			}
			return p, nil
		}
	}
}
