package dom

import "strings"

// SVGNamespace is the namespace URI of SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Element is the host element contract.
type Element interface {
	// TagName returns the lower-case tag name.
	TagName() string

	// Namespace returns the namespace URI, or "" for HTML elements.
	Namespace() string

	GetAttribute(name string) (string, bool)
	HasAttribute(name string) bool
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	// AttributeNames returns attribute names in document order.
	AttributeNames() []string

	// Property returns a live property value.
	Property(name string) (any, bool)
	SetProperty(name string, value any)
}

// controllableTags hold live state that user interaction can change
// independently of their attributes.
var controllableTags = map[string]bool{
	"input":    true,
	"select":   true,
	"textarea": true,
	"option":   true,
}

// liveProps are the properties mirrored from attributes on controllable
// elements.
var liveProps = map[string]bool{
	"value":    true,
	"checked":  true,
	"selected": true,
}

// IsControllable reports whether el keeps live form state.
func IsControllable(el Element) bool {
	if el == nil || el.Namespace() == SVGNamespace {
		return false
	}
	return controllableTags[strings.ToLower(el.TagName())]
}

// IsLiveProp reports whether name is a live property on controllable elements.
func IsLiveProp(name string) bool {
	return liveProps[name]
}
