package render

// Options is the immutable render-time configuration passed down the walk.
// The zero value renders HTML with attributes in insertion order.
type Options struct {
	// Shallow stops expansion at the first component node below the root,
	// emitting it as a pseudo-tag named by the component's display name.
	// The root component itself is always expanded.
	Shallow bool

	// ShallowHighOrder keeps expanding while a shallow render is inside a
	// chain of components that render directly to other components,
	// stopping at the first component child below an element.
	ShallowHighOrder bool

	// XML enables XML serialization: empty elements self-close regardless
	// of tag, boolean-true attributes emit name="name", and the HTML
	// void-element policy is disabled.
	XML bool

	// SortAttributes emits attributes sorted lexicographically by name
	// instead of in insertion order.
	SortAttributes bool

	// Pretty is reserved. When unset, no whitespace is inserted between
	// elements; all output whitespace originates from the input tree.
	Pretty bool
}
