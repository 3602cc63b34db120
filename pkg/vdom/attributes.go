package vdom

import "sort"

// StyleDecl is one CSS declaration.
type StyleDecl struct {
	Property string
	Value    any
}

// Style is an ordered list of CSS declarations. It serializes in order,
// unlike a Go map, so "color" before "border" stays that way.
type Style []StyleDecl

// ClassToggle names a class and whether it is enabled.
type ClassToggle struct {
	Name string
	On   bool
}

// ClassMap is an ordered class mapping: enabled names join with single
// spaces in order.
type ClassMap []ClassToggle

// Class builds a class attribute from an ordered list of names.
func Class(names ...string) Attr {
	out := ""
	for _, n := range names {
		if n == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += n
	}
	return Attr{Name: "class", Value: out}
}

// Styles builds a style attribute from property/value pairs, preserving
// pair order. Odd trailing arguments are ignored.
func Styles(pairs ...any) Attr {
	s := make(Style, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		prop, ok := pairs[i].(string)
		if !ok {
			continue
		}
		s = append(s, StyleDecl{Property: prop, Value: pairs[i+1]})
	}
	return Attr{Name: "style", Value: s}
}

// Dangerously builds a dangerouslySetInnerHTML attribute.
// Use with caution - can lead to XSS if content is user-provided.
func Dangerously(html string) Attr {
	return Attr{Name: "dangerouslySetInnerHTML", Value: UnsafeHTML{HTML: html}}
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
