package testplan

import "strconv"

// Property kinds as they appear in JMX documents. Scalar kinds carry their
// value as text; elementProp and collectionProp nest further properties.
const (
	PropString     = "stringProp"
	PropBool       = "boolProp"
	PropInt        = "intProp"
	PropLong       = "longProp"
	PropDouble     = "doubleProp"
	PropElement    = "elementProp"
	PropCollection = "collectionProp"
)

// Prop is a single JMeter property. Unknown kinds are preserved as-is so a
// plan survives a load/save cycle untouched.
type Prop struct {
	Kind        string
	Name        string
	Value       string
	ElementType string
	Props       []Prop
}

// IsScalar reports whether the property carries a text value rather than
// nested properties.
func (p *Prop) IsScalar() bool {
	return p.Kind != PropElement && p.Kind != PropCollection && len(p.Props) == 0
}

// Get returns the nested property with the given name.
func (p *Prop) Get(name string) (*Prop, bool) {
	for i := range p.Props {
		if p.Props[i].Name == name {
			return &p.Props[i], true
		}
	}
	return nil, false
}

// StringProp returns the value of a named string property on the node.
func (n *Node) StringProp(name string) (string, bool) {
	for i := range n.Props {
		if n.Props[i].Name == name && n.Props[i].IsScalar() {
			return n.Props[i].Value, true
		}
	}
	return "", false
}

// SetStringProp updates the named string property, creating it when absent.
func (n *Node) SetStringProp(name, value string) {
	for i := range n.Props {
		if n.Props[i].Name == name && n.Props[i].IsScalar() {
			n.Props[i].Value = value
			return
		}
	}
	n.Props = append(n.Props, Prop{Kind: PropString, Name: name, Value: value})
}

// IntProp returns the value of a named numeric property. JMeter stores ports
// and counts as stringProp or intProp interchangeably, so both are accepted.
func (n *Node) IntProp(name string) (int, bool) {
	v, ok := n.StringProp(name)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return i, true
}

// BoolProp returns the value of a named boolean property.
func (n *Node) BoolProp(name string) (bool, bool) {
	v, ok := n.StringProp(name)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// CollectionProp returns the named collection property.
func (n *Node) CollectionProp(name string) (*Prop, bool) {
	for i := range n.Props {
		if n.Props[i].Kind == PropCollection && n.Props[i].Name == name {
			return &n.Props[i], true
		}
	}
	return nil, false
}
