package vdom

import "fmt"

// H builds a VNode. nodeName is a string tag for elements, or a component:
// a *ComponentType, a RenderFunc, or a Constructor. Remaining arguments are
// scanned in order: Attr, []Attr, and Props values become attributes
// (preserving argument order); everything else becomes a child.
//
// Children are kept as supplied - primitives, nested slices, nil - and
// flattened during the walk, so sequence structure survives construction.
func H(nodeName any, args ...any) *VNode {
	node := &VNode{}

	switch n := nodeName.(type) {
	case string:
		node.Kind = KindElement
		node.Tag = n
	case *ComponentType:
		node.Kind = KindComponent
		node.Type = n
	case RenderFunc:
		node.Kind = KindComponent
		node.Type = &ComponentType{Func: n}
	case func(Props, Context) any:
		node.Kind = KindComponent
		node.Type = &ComponentType{Func: n}
	case Constructor:
		node.Kind = KindComponent
		node.Type = &ComponentType{New: n}
	case func() Component:
		node.Kind = KindComponent
		node.Type = &ComponentType{New: n}
	default:
		// Neither a tag nor a component. The empty tag makes the walker
		// reject the node as invalid at render time.
		node.Kind = KindElement
	}

	for _, arg := range args {
		switch a := arg.(type) {
		case Attr:
			node.Attrs = append(node.Attrs, a)
		case []Attr:
			node.Attrs = append(node.Attrs, a...)
		case Props:
			// Map order is not defined; sort for deterministic output.
			for _, k := range sortedKeys(a) {
				node.Attrs = append(node.Attrs, Attr{Name: k, Value: a[k]})
			}
		default:
			node.Children = append(node.Children, arg)
		}
	}

	return node
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Markup creates an unescaped markup node.
// Use with caution - can lead to XSS if content is user-provided.
func Markup(html string) *VNode {
	return &VNode{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	return &VNode{
		Kind:     KindFragment,
		Children: children,
	}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to child items.
func Range[T any](items []T, fn func(item T, index int) *VNode) []any {
	result := make([]any, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) *VNode) []any {
	if n <= 0 {
		return nil
	}
	result := make([]any, 0, n)
	for i := 0; i < n; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
