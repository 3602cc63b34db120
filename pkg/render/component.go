package render

import (
	"fmt"

	"github.com/strand-ui/strand/pkg/vdom"
)

// renderHost is the renderer-facing surface of vdom.Base. Instances that
// embed Base get their props, context, and render lock installed through
// it; instances that manage their own state simply do not implement it.
type renderHost interface {
	BeginRender(props vdom.Props, ctx vdom.Context)
	EndRender()
	RenderState() vdom.State
}

// runComponent resolves a component node into its rendered child.
//
// Props are the type's defaults with the node's attributes merged over
// them, plus a "children" prop holding the node's child sequence flattened
// one level. Functional components are invoked with (props, context).
// Classful components are constructed fresh, render-locked, given their
// will-mount hook, then rendered exactly once; a child-context hook extends
// the context for descendants only.
//
// Any panic out of component code is recovered and returned as a
// ComponentError carrying the display name.
func runComponent(node *vdom.VNode, ctx vdom.Context) (child any, childCtx vdom.Context, err error) {
	t := node.Type
	if t == nil || (t.Func == nil && t.New == nil) {
		return nil, nil, invalidNode(node)
	}

	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			child, childCtx = nil, nil
			err = componentError(t.DisplayName(), cause)
		}
	}()

	props := componentProps(t, node)
	childCtx = ctx

	if t.Func != nil {
		return t.Func(props, ctx), ctx, nil
	}

	inst := t.New()
	if inst == nil {
		return nil, nil, componentError(t.DisplayName(), fmt.Errorf("constructor returned nil"))
	}

	host, isHost := inst.(renderHost)
	if isHost {
		host.BeginRender(props, ctx)
		defer host.EndRender()
	}

	if wm, ok := inst.(vdom.WillMounter); ok {
		wm.WillMount()
	}

	if cp, ok := inst.(vdom.ChildContextProvider); ok {
		childCtx = ctx.Extend(cp.ChildContext())
	}

	state := vdom.State{}
	if isHost {
		state = host.RenderState()
	}

	// The component's own render sees the inherited context; only
	// descendants see the extended one.
	child = inst.Render(props, state, ctx)
	return child, childCtx, nil
}

// componentProps merges the type's default props under the node's
// attributes (explicit values win) and injects the children prop.
func componentProps(t *vdom.ComponentType, node *vdom.VNode) vdom.Props {
	props := make(vdom.Props, len(t.Defaults)+len(node.Attrs)+1)
	for k, v := range t.Defaults {
		props[k] = v
	}
	for _, a := range node.Attrs {
		props[a.Name] = a.Value
	}
	if len(node.Children) > 0 {
		props["children"] = flattenOnce(node.Children)
	}
	return props
}

// flattenOnce splices one level of nesting out of a child sequence.
func flattenOnce(children []any) []any {
	flat := make([]any, 0, len(children))
	for _, c := range children {
		switch v := c.(type) {
		case []any:
			flat = append(flat, v...)
		case []*vdom.VNode:
			for _, n := range v {
				flat = append(flat, n)
			}
		default:
			flat = append(flat, c)
		}
	}
	return flat
}
