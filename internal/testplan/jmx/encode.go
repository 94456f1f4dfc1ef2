package jmx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// Encode serializes a Plan back to .jmx XML, two-space indented with the
// standard XML header, mirroring the layout JMeter itself writes.
func Encode(p *testplan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	version := p.Version
	if version == "" {
		version = "1.2"
	}

	root := xml.StartElement{
		Name: xml.Name{Local: rootElement},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "version"}, Value: version},
		},
	}
	if p.Properties != "" {
		root.Attr = append(root.Attr,
			xml.Attr{Name: xml.Name{Local: "properties"}, Value: p.Properties})
	}
	if p.JMeter != "" {
		root.Attr = append(root.Attr,
			xml.Attr{Name: xml.Name{Local: "jmeter"}, Value: p.JMeter})
	}

	if err := enc.EncodeToken(root); err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	tree := xml.StartElement{Name: xml.Name{Local: "hashTree"}}
	if err := enc.EncodeToken(tree); err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := encodeNodes(enc, p.Nodes); err != nil {
		return nil, err
	}
	if err := enc.EncodeToken(tree.End()); err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	buf.WriteString("\n")
	return buf.Bytes(), nil
}

// encodeNodes writes each element followed by the hashTree holding its
// children. JMeter emits the hashTree even when empty.
func encodeNodes(enc *xml.Encoder, nodes []*testplan.Node) error {
	for _, node := range nodes {
		if err := encodeElement(enc, node); err != nil {
			return err
		}

		tree := xml.StartElement{Name: xml.Name{Local: "hashTree"}}
		if err := enc.EncodeToken(tree); err != nil {
			return fmt.Errorf("failed to encode element '%s': %w", node.Name, err)
		}
		if err := encodeNodes(enc, node.Children); err != nil {
			return err
		}
		if err := enc.EncodeToken(tree.End()); err != nil {
			return fmt.Errorf("failed to encode element '%s': %w", node.Name, err)
		}
	}
	return nil
}

func encodeElement(enc *xml.Encoder, node *testplan.Node) error {
	se := xml.StartElement{Name: xml.Name{Local: node.Tag}}
	if node.GUIClass != "" {
		se.Attr = append(se.Attr,
			xml.Attr{Name: xml.Name{Local: "guiclass"}, Value: node.GUIClass})
	}
	if node.TestClass != "" {
		se.Attr = append(se.Attr,
			xml.Attr{Name: xml.Name{Local: "testclass"}, Value: node.TestClass})
	}
	se.Attr = append(se.Attr,
		xml.Attr{Name: xml.Name{Local: "testname"}, Value: node.Name},
		xml.Attr{Name: xml.Name{Local: "enabled"}, Value: strconv.FormatBool(node.Enabled)},
	)

	if err := enc.EncodeToken(se); err != nil {
		return fmt.Errorf("failed to encode element '%s': %w", node.Name, err)
	}
	for i := range node.Props {
		if err := encodeProp(enc, &node.Props[i]); err != nil {
			return fmt.Errorf("failed to encode element '%s': %w", node.Name, err)
		}
	}
	if err := enc.EncodeToken(se.End()); err != nil {
		return fmt.Errorf("failed to encode element '%s': %w", node.Name, err)
	}
	return nil
}

func encodeProp(enc *xml.Encoder, p *testplan.Prop) error {
	se := xml.StartElement{Name: xml.Name{Local: p.Kind}}
	if p.Name != "" || p.Kind == testplan.PropElement {
		se.Attr = append(se.Attr,
			xml.Attr{Name: xml.Name{Local: "name"}, Value: p.Name})
	}
	if p.ElementType != "" {
		se.Attr = append(se.Attr,
			xml.Attr{Name: xml.Name{Local: "elementType"}, Value: p.ElementType})
	}

	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if len(p.Props) > 0 {
		for i := range p.Props {
			if err := encodeProp(enc, &p.Props[i]); err != nil {
				return err
			}
		}
	} else if p.Value != "" {
		if err := enc.EncodeToken(xml.CharData(p.Value)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}
