// Package render converts VNode trees into HTML or XML byte streams,
// handling all aspects of producing valid, secure output including:
//
//   - HTML5 compliant element rendering
//   - Proper text and attribute escaping (XSS prevention)
//   - Void element handling (input, br, img, etc.)
//   - Boolean attribute handling (disabled, checked, etc.)
//   - Component expansion with will-mount lifecycle and child context
//   - Shallow rendering (components as pseudo-tags)
//   - XML mode with self-closing empty elements
//
// # Basic Usage
//
// To render a VNode tree to a string:
//
//	html, err := render.RenderToString(node, nil, render.Options{})
//
// To stream a tree to a writer:
//
//	err := render.RenderToWriter(ctx, w, node, nil, render.Options{})
//
// # Streaming
//
// For large pages, RenderToStream emits chunks incrementally. A new chunk
// starts before every element open tag and before every component's rendered
// output, so a tree with N components and M elements arrives as N+M chunks,
// plus one leading chunk when text is emitted before the first element or
// component. The consumer reads from Chunks(); an unread stream exerts backpressure on
// the walk, and Close aborts it:
//
//	s := render.RenderToStream(ctx, node, nil, render.Options{})
//	for chunk := range s.Chunks() {
//	    w.Write([]byte(chunk))
//	}
//	err := s.Err()
//
// # Security
//
// All text and attribute content is escaped by default to prevent XSS.
// Raw markup can be inserted via dangerouslySetInnerHTML or vdom.Markup,
// but should only be used with trusted content.
package render
