// Package strand provides the public API for the Strand streaming renderer.
//
// This is the recommended import for most applications:
//
//	import "github.com/strand-ui/strand"
//
// Usage:
//
//	tree := strand.H("div", strand.A("class", "greeting"), "hello")
//	html, err := strand.RenderToString(tree, nil, strand.Options{})
//
//	s := strand.RenderToStream(ctx, tree, nil, strand.Options{})
//	for chunk := range s.Chunks() {
//	    w.Write([]byte(chunk))
//	}
package strand

import (
	"context"
	"io"

	"github.com/strand-ui/strand/pkg/render"
	"github.com/strand-ui/strand/pkg/vdom"
)

// =============================================================================
// VDOM primitives (re-export from pkg/vdom)
// =============================================================================

// VNode is the virtual DOM node consumed by the renderer.
type VNode = vdom.VNode

// Attr is a single named attribute.
type Attr = vdom.Attr

// Props is the component-facing view of a node's attributes.
type Props = vdom.Props

// State is a component instance's state mapping.
type State = vdom.State

// Context is the ambient mapping propagated to descendants.
type Context = vdom.Context

// Component is the classful component contract.
type Component = vdom.Component

// ComponentType describes a functional or classful component.
type ComponentType = vdom.ComponentType

// RenderFunc is a functional component.
type RenderFunc = vdom.RenderFunc

// Base provides the instance slots of a classful component.
type Base = vdom.Base

// UnsafeHTML marks a string as pre-rendered markup.
type UnsafeHTML = vdom.UnsafeHTML

// Style is an ordered list of CSS declarations.
type Style = vdom.Style

// StyleDecl is one CSS declaration.
type StyleDecl = vdom.StyleDecl

// ClassMap is an ordered class mapping.
type ClassMap = vdom.ClassMap

// ClassToggle names a class and whether it is enabled.
type ClassToggle = vdom.ClassToggle

// H builds a VNode from a tag or component plus attributes and children.
var H = vdom.H

// A constructs an attribute.
var A = vdom.A

// Text creates a text node.
var Text = vdom.Text

// Textf creates a formatted text node.
var Textf = vdom.Textf

// Fragment groups children without a wrapper element.
var Fragment = vdom.Fragment

// Markup creates an unescaped markup node.
var Markup = vdom.Markup

// =============================================================================
// Rendering (re-export from pkg/render)
// =============================================================================

// Options is the immutable render-time configuration.
type Options = render.Options

// Stream is a readable stream of rendered chunks.
type Stream = render.Stream

// ComponentError wraps a failure raised by component code.
type ComponentError = render.ComponentError

// InvalidNodeError reports an unrenderable node.
type InvalidNodeError = render.InvalidNodeError

// SinkError wraps a failure of the downstream sink.
type SinkError = render.SinkError

// RenderToString renders a tree synchronously to a string.
func RenderToString(node any, ctx Context, opts Options) (string, error) {
	return render.RenderToString(node, ctx, opts)
}

// ShallowRender renders the tree one component level deep.
func ShallowRender(node any, ctx Context) (string, error) {
	return render.ShallowRender(node, ctx)
}

// RenderToStream renders a tree into a backpressured chunk stream.
func RenderToStream(ctx context.Context, node any, vctx Context, opts Options) *Stream {
	return render.RenderToStream(ctx, node, vctx, opts)
}

// RenderToWriter streams a tree into w.
func RenderToWriter(ctx context.Context, w io.Writer, node any, vctx Context, opts Options) error {
	return render.RenderToWriter(ctx, w, node, vctx, opts)
}
