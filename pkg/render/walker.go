package render

import (
	"strconv"
	"strings"

	"github.com/strand-ui/strand/pkg/vdom"
)

// voidElements is the HTML void set, keyed by lowercased tag name. Void
// elements never take a closing tag and may not contain children.
var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "keygen": {}, "link": {}, "meta": {},
	"param": {}, "source": {}, "track": {}, "wbr": {},
}

func isVoidElement(lowerTag string) bool {
	_, ok := voidElements[lowerTag]
	return ok
}

// walker emits a VNode tree onto a driver in document order. It holds the
// immutable options; everything positional (context, shallow-depth, SVG
// membership) travels as parameters so concurrent renders share nothing.
type walker struct {
	d    *driver
	opts Options
}

// walk emits one child item. inner is false only for the root node and,
// under ShallowHighOrder, for output of an expanded component; it drives
// the shallow-render decision. svg is true inside an SVG subtree (and
// false again inside a foreignObject).
func (w *walker) walk(node any, ctx vdom.Context, inner, svg bool) error {
	switch n := node.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case string:
		return w.d.writeString(escape(n))
	case int:
		return w.d.writeString(strconv.Itoa(n))
	case int8:
		return w.d.writeString(strconv.FormatInt(int64(n), 10))
	case int16:
		return w.d.writeString(strconv.FormatInt(int64(n), 10))
	case int32:
		return w.d.writeString(strconv.FormatInt(int64(n), 10))
	case int64:
		return w.d.writeString(strconv.FormatInt(n, 10))
	case uint:
		return w.d.writeString(strconv.FormatUint(uint64(n), 10))
	case uint8:
		return w.d.writeString(strconv.FormatUint(uint64(n), 10))
	case uint16:
		return w.d.writeString(strconv.FormatUint(uint64(n), 10))
	case uint32:
		return w.d.writeString(strconv.FormatUint(uint64(n), 10))
	case uint64:
		return w.d.writeString(strconv.FormatUint(n, 10))
	case float32:
		return w.d.writeString(strconv.FormatFloat(float64(n), 'g', -1, 32))
	case float64:
		return w.d.writeString(strconv.FormatFloat(n, 'g', -1, 64))
	case []any:
		for _, c := range n {
			if err := w.walk(c, ctx, inner, svg); err != nil {
				return err
			}
		}
		return nil
	case []*vdom.VNode:
		for _, c := range n {
			if err := w.walk(c, ctx, inner, svg); err != nil {
				return err
			}
		}
		return nil
	case *vdom.VNode:
		if n == nil {
			return nil
		}
		return w.node(n, ctx, inner, svg)
	default:
		return invalidNode(node)
	}
}

func (w *walker) node(n *vdom.VNode, ctx vdom.Context, inner, svg bool) error {
	switch n.Kind {
	case vdom.KindText:
		return w.d.writeString(escape(n.Text))
	case vdom.KindRaw:
		return w.d.writeString(n.Text)
	case vdom.KindFragment:
		return w.walk(n.Children, ctx, inner, svg)
	case vdom.KindComponent:
		return w.component(n, ctx, inner, svg)
	case vdom.KindElement:
		return w.element(n, ctx, svg)
	default:
		return invalidNode(n)
	}
}

// component expands a component node, or emits it as a pseudo-tag when
// shallow rendering has reached its stopping point.
func (w *walker) component(n *vdom.VNode, ctx vdom.Context, inner, svg bool) error {
	if n.Type == nil {
		return invalidNode(n)
	}

	if w.opts.Shallow && inner {
		pseudo := &vdom.VNode{
			Kind:     vdom.KindElement,
			Tag:      n.Type.DisplayName(),
			Attrs:    n.Attrs,
			Children: n.Children,
		}
		return w.element(pseudo, ctx, svg)
	}

	// Component boundary: a fresh chunk before the rendered output.
	if err := w.d.boundary(); err != nil {
		return err
	}

	child, childCtx, err := runComponent(n, ctx)
	if err != nil {
		return err
	}

	// Under ShallowHighOrder the rendered output keeps root standing, so
	// a chain of components rendering components stays expanded.
	return w.walk(child, childCtx, !w.opts.ShallowHighOrder, svg)
}

func (w *walker) element(n *vdom.VNode, ctx vdom.Context, svg bool) error {
	tag := n.Tag
	if tag == "" {
		return invalidNode(n)
	}

	// Element boundary: the open tag starts a fresh chunk.
	if err := w.d.boundary(); err != nil {
		return err
	}

	lower := strings.ToLower(tag)
	childSvg := svg
	switch lower {
	case "svg":
		childSvg = true
	case "foreignobject":
		childSvg = false
	}

	if err := w.d.writeByte('<'); err != nil {
		return err
	}
	if err := w.d.writeString(tag); err != nil {
		return err
	}
	if err := writeAttributes(w.d, n.Attrs, w.opts, svg); err != nil {
		return err
	}

	if raw, ok := innerHTML(n); ok {
		// Raw markup replaces children entirely.
		if err := w.d.writeByte('>'); err != nil {
			return err
		}
		if err := w.d.writeString(raw); err != nil {
			return err
		}
		return w.writeClose(tag)
	}

	empty := !hasContent(n.Children)

	if w.opts.XML && empty {
		return w.d.writeString(" />")
	}

	if !w.opts.XML && isVoidElement(lower) {
		// Void elements do not contain. Children, if any, render as
		// siblings after the self-closed tag.
		if err := w.d.writeString(" />"); err != nil {
			return err
		}
		if empty {
			return nil
		}
		return w.walk(n.Children, ctx, true, childSvg)
	}

	if err := w.d.writeByte('>'); err != nil {
		return err
	}
	if err := w.walk(n.Children, ctx, true, childSvg); err != nil {
		return err
	}
	return w.writeClose(tag)
}

func (w *walker) writeClose(tag string) error {
	if err := w.d.writeString("</"); err != nil {
		return err
	}
	if err := w.d.writeString(tag); err != nil {
		return err
	}
	return w.d.writeByte('>')
}

// innerHTML extracts the dangerouslySetInnerHTML payload, if present.
func innerHTML(n *vdom.VNode) (string, bool) {
	v, ok := n.Get("dangerouslySetInnerHTML")
	if !ok || v == nil {
		return "", false
	}
	switch h := v.(type) {
	case vdom.UnsafeHTML:
		return h.HTML, true
	case *vdom.UnsafeHTML:
		if h == nil {
			return "", false
		}
		return h.HTML, true
	case string:
		return h, true
	case map[string]any:
		if s, ok := h["__html"].(string); ok {
			return s, true
		}
		return "", false
	default:
		return "", false
	}
}

// hasContent reports whether a child sequence produces any output at all.
// Nil, booleans, empty strings, and empty fragments do not; components are
// assumed to (their output is unknowable without running them).
func hasContent(children []any) bool {
	for _, c := range children {
		switch v := c.(type) {
		case nil:
		case bool:
		case string:
			if v != "" {
				return true
			}
		case []any:
			if hasContent(v) {
				return true
			}
		case []*vdom.VNode:
			for _, n := range v {
				if nodeHasContent(n) {
					return true
				}
			}
		case *vdom.VNode:
			if nodeHasContent(v) {
				return true
			}
		default:
			return true
		}
	}
	return false
}

func nodeHasContent(n *vdom.VNode) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case vdom.KindText, vdom.KindRaw:
		return n.Text != ""
	case vdom.KindFragment:
		return hasContent(n.Children)
	default:
		return true
	}
}
