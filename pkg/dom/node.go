package dom

import "strings"

type attribute struct {
	name  string
	value string
}

// Node is an in-memory Element.
//
// Node is not safe for concurrent use; callers own it for the duration of
// any write.
type Node struct {
	tag       string
	namespace string
	attrs     []attribute
	props     map[string]any
	children  []*Node
	text      string
	isText    bool
}

// NewElement creates an HTML element with the given tag.
func NewElement(tag string) *Node {
	return &Node{tag: strings.ToLower(tag), props: make(map[string]any)}
}

// NewSVGElement creates an element in the SVG namespace.
func NewSVGElement(tag string) *Node {
	n := &Node{tag: tag, namespace: SVGNamespace, props: make(map[string]any)}
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{text: text, isText: true}
}

// TagName implements Element.
func (n *Node) TagName() string { return n.tag }

// Namespace implements Element.
func (n *Node) Namespace() string { return n.namespace }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.isText }

// Text returns the content of a text node.
func (n *Node) Text() string { return n.text }

// Children returns the child nodes.
func (n *Node) Children() []*Node { return n.children }

// AppendChild adds c as the last child and returns n.
func (n *Node) AppendChild(c *Node) *Node {
	n.children = append(n.children, c)
	return n
}

func (n *Node) indexOf(name string) int {
	for i, a := range n.attrs {
		if a.name == name {
			return i
		}
	}
	return -1
}

// GetAttribute implements Element.
func (n *Node) GetAttribute(name string) (string, bool) {
	if i := n.indexOf(name); i >= 0 {
		return n.attrs[i].value, true
	}
	return "", false
}

// HasAttribute implements Element.
func (n *Node) HasAttribute(name string) bool {
	return n.indexOf(name) >= 0
}

// SetAttribute implements Element. New attributes are appended.
func (n *Node) SetAttribute(name, value string) {
	if i := n.indexOf(name); i >= 0 {
		n.attrs[i].value = value
		return
	}
	n.attrs = append(n.attrs, attribute{name: name, value: value})
}

// RemoveAttribute implements Element.
func (n *Node) RemoveAttribute(name string) {
	if i := n.indexOf(name); i >= 0 {
		n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	}
}

// AttributeNames implements Element.
func (n *Node) AttributeNames() []string {
	names := make([]string, len(n.attrs))
	for i, a := range n.attrs {
		names[i] = a.name
	}
	return names
}

// Property implements Element.
func (n *Node) Property(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// SetProperty implements Element.
func (n *Node) SetProperty(name string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
}

// syncLiveProps seeds live properties from attributes the way a browser
// initializes form controls from markup.
func (n *Node) syncLiveProps() {
	if !IsControllable(n) {
		return
	}
	if v, ok := n.GetAttribute("value"); ok {
		n.SetProperty("value", v)
	} else if n.tag == "textarea" {
		var b strings.Builder
		for _, c := range n.children {
			if c.isText {
				b.WriteString(c.text)
			}
		}
		n.SetProperty("value", b.String())
	} else {
		n.SetProperty("value", "")
	}
	for _, name := range []string{"checked", "selected"} {
		n.SetProperty(name, n.HasAttribute(name))
	}
}
