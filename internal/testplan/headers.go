package testplan

import (
	"fmt"

	"golang.org/x/net/http/httpguts"
)

const headersPropName = "HeaderManager.headers"

// Header is one row of a header manager.
type Header struct {
	Name  string
	Value string
}

// HeaderManager is a typed view over a HeaderManager node's row collection.
type HeaderManager struct {
	node *Node
}

// HeaderManager returns the header view of the node, if it is a header
// manager element.
func (n *Node) HeaderManager() (*HeaderManager, bool) {
	if n.Tag != TagHeaderManager && n.TestClass != TagHeaderManager {
		return nil, false
	}
	return &HeaderManager{node: n}, true
}

func (hm *HeaderManager) Node() *Node { return hm.node }

// Rows returns the header rows in document order.
func (hm *HeaderManager) Rows() []Header {
	coll, ok := hm.node.CollectionProp(headersPropName)
	if !ok {
		return nil
	}
	rows := make([]Header, 0, len(coll.Props))
	for i := range coll.Props {
		rows = append(rows, rowFromProp(&coll.Props[i]))
	}
	return rows
}

// RemoveRow deletes the header row at the given index.
func (hm *HeaderManager) RemoveRow(index int) error {
	coll, ok := hm.node.CollectionProp(headersPropName)
	if !ok || index < 0 || index >= len(coll.Props) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, index)
	}
	coll.Props = append(coll.Props[:index], coll.Props[index+1:]...)
	return nil
}

// AddRow appends a header row. The name must be a valid HTTP field name.
func (hm *HeaderManager) AddRow(h Header) error {
	if !httpguts.ValidHeaderFieldName(h.Name) {
		return fmt.Errorf("%w: %q", ErrInvalidHeaderName, h.Name)
	}

	coll, ok := hm.node.CollectionProp(headersPropName)
	if !ok {
		hm.node.Props = append(hm.node.Props, Prop{
			Kind: PropCollection,
			Name: headersPropName,
		})
		coll = &hm.node.Props[len(hm.node.Props)-1]
	}

	coll.Props = append(coll.Props, Prop{
		Kind:        PropElement,
		ElementType: "Header",
		Props: []Prop{
			{Kind: PropString, Name: "Header.name", Value: h.Name},
			{Kind: PropString, Name: "Header.value", Value: h.Value},
		},
	})
	return nil
}

func rowFromProp(p *Prop) Header {
	var h Header
	if name, ok := p.Get("Header.name"); ok {
		h.Name = name.Value
	}
	if value, ok := p.Get("Header.value"); ok {
		h.Value = value.Value
	}
	return h
}
