package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <svg>, etc.
	KindText                   // Plain text node
	KindComponent              // Functional or classful component
	KindFragment               // Grouping without wrapper
	KindRaw                    // Raw markup (dangerous)
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComponent:
		return "Component"
	case KindFragment:
		return "Fragment"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node. VNodes are built once and treated as
// immutable input by the renderer; a single tree may be rendered any number
// of times with byte-identical output.
type VNode struct {
	Kind VKind

	// Tag is the element tag name for KindElement (e.g. "div").
	Tag string

	// Type describes the component for KindComponent.
	Type *ComponentType

	// Attrs holds attributes in insertion order. Order is significant:
	// unsorted output emits attributes exactly in this order.
	Attrs []Attr

	// Children holds child items in document order. Each item is a *VNode,
	// a primitive (string, numeric, bool, nil), or a nested []any of such
	// items. Flattening happens during the walk, not at construction.
	Children []any

	// Text carries the content of KindText and KindRaw nodes.
	Text string
}

// Attr is a single named attribute. Value may be any scalar, a Style or
// class mapping, an UnsafeHTML payload, or a func (funcs are skipped by the
// serializer).
type Attr struct {
	Name  string
	Value any
}

// A constructs an attribute.
func A(name string, value any) Attr {
	return Attr{Name: name, Value: value}
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Name == ""
}

// Get returns the value of the named attribute and whether it is present.
// Later occurrences win, matching emission semantics.
func (v *VNode) Get(name string) (any, bool) {
	var val any
	found := false
	for _, a := range v.Attrs {
		if a.Name == name {
			val = a.Value
			found = true
		}
	}
	return val, found
}

// Props is the component-facing view of a node's attributes.
type Props map[string]any

// State is a component instance's state mapping.
type State map[string]any

// Context is the ambient mapping propagated to descendants. It is passed by
// value down the walk; extending it for a subtree never mutates the parent's
// view.
type Context map[string]any

// Extend returns a new Context with the entries of add merged over c.
// The receiver is left untouched. A nil or empty add returns c unchanged.
func (c Context) Extend(add Context) Context {
	if len(add) == 0 {
		return c
	}
	merged := make(Context, len(c)+len(add))
	for k, v := range c {
		merged[k] = v
	}
	for k, v := range add {
		merged[k] = v
	}
	return merged
}

// UnsafeHTML marks a string as pre-rendered markup to be emitted without
// escaping. It is the value type of the dangerouslySetInnerHTML attribute.
// Use with caution - can lead to XSS if content is user-provided.
type UnsafeHTML struct {
	HTML string
}

// Props collects the node's attributes into a Props mapping. Attribute
// order is lost; Props is only consumed by components, where order does
// not matter.
func (v *VNode) Props() Props {
	if len(v.Attrs) == 0 {
		return Props{}
	}
	p := make(Props, len(v.Attrs))
	for _, a := range v.Attrs {
		p[a.Name] = a.Value
	}
	return p
}
