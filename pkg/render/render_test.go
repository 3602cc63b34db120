package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/strand-ui/strand/pkg/vdom"
)

// =============================================================================
// Element & Attribute Serialization
// =============================================================================

func TestRenderToStringBasics(t *testing.T) {
	tests := []struct {
		name string
		node any
		opts Options
		want string
	}{
		{
			name: "element with class and text",
			node: vdom.H("div", vdom.A("class", "foo"), "bar"),
			want: `<div class="foo">bar</div>`,
		},
		{
			name: "nullish and false attributes skipped",
			node: vdom.H("div", vdom.A("a", nil), vdom.A("b", nil), vdom.A("c", false)),
			want: `<div></div>`,
		},
		{
			name: "empty and true attributes collapse to bare names",
			node: vdom.H("div",
				vdom.A("class", ""), vdom.A("style", ""),
				vdom.A("foo", true), vdom.A("bar", true)),
			want: `<div class style foo bar></div>`,
		},
		{
			name: "entities encoded in text and attributes",
			node: vdom.H("div", vdom.A("a", `"<>&`), `"<>&`),
			want: `<div a="&quot;&lt;&gt;&amp;">&quot;&lt;&gt;&amp;</div>`,
		},
		{
			name: "void elements self-close without closing tag",
			node: vdom.H("div", vdom.H("input", vdom.A("type", "text")), vdom.H("wbr")),
			want: `<div><input type="text" /><wbr /></div>`,
		},
		{
			name: "style mapping serializes in order",
			node: vdom.H("div", vdom.A("style", vdom.Style{
				{Property: "color", Value: "red"},
				{Property: "border", Value: "none"},
			})),
			want: `<div style="color: red; border: none;"></div>`,
		},
		{
			name: "xlink rewrites inside svg subtrees",
			node: vdom.H("svg", vdom.H("image", vdom.A("xlinkHref", "#"))),
			want: `<svg><image xlink:href="#"></image></svg>`,
		},
		{
			name: "xml boolean attributes and self-closing",
			node: vdom.H("div", vdom.A("foo", true), vdom.A("bar", true)),
			opts: Options{XML: true},
			want: `<div foo="foo" bar="bar" />`,
		},
		{
			name: "dangerouslySetInnerHTML replaces children",
			node: vdom.H("div",
				vdom.A("dangerouslySetInnerHTML", vdom.UnsafeHTML{HTML: "<a>x</a>"}),
				vdom.H("b", "bar")),
			want: `<div><a>x</a></div>`,
		},
		{
			name: "numeric zero attribute is kept",
			node: vdom.H("div", vdom.A("tabindex", 0)),
			want: `<div tabindex="0"></div>`,
		},
		{
			name: "value equal to name collapses in html",
			node: vdom.H("input", vdom.A("checked", "checked")),
			want: `<input checked />`,
		},
		{
			name: "key ref children and functions never emit",
			node: vdom.H("div",
				vdom.A("key", "k"), vdom.A("ref", "r"),
				vdom.A("children", "c"), vdom.A("onclick", func() {})),
			want: `<div></div>`,
		},
		{
			name: "className routes to class",
			node: vdom.H("div", vdom.A("className", "a b")),
			want: `<div class="a b"></div>`,
		},
		{
			name: "class wins over className",
			node: vdom.H("div", vdom.A("className", "lose"), vdom.A("class", "win")),
			want: `<div class="win"></div>`,
		},
		{
			name: "empty class still beats className",
			node: vdom.H("div", vdom.A("class", ""), vdom.A("className", "fallback")),
			want: `<div class></div>`,
		},
		{
			name: "class mapping keeps insertion order",
			node: vdom.H("div", vdom.A("class", vdom.ClassMap{
				{Name: "b", On: true}, {Name: "a", On: true}, {Name: "off", On: false},
			})),
			want: `<div class="b a"></div>`,
		},
		{
			name: "empty style mapping suppresses the attribute",
			node: vdom.H("div", vdom.A("style", vdom.Style{})),
			want: `<div></div>`,
		},
		{
			name: "xml empty string attribute stays explicit",
			node: vdom.H("div", vdom.A("foo", "")),
			opts: Options{XML: true},
			want: `<div foo="" />`,
		},
		{
			name: "xml non-empty element closes normally",
			node: vdom.H("div", "x"),
			opts: Options{XML: true},
			want: `<div>x</div>`,
		},
		{
			name: "void element with children renders them as siblings",
			node: vdom.H("link", vdom.H("span", "x")),
			want: `<link /><span>x</span>`,
		},
		{
			name: "foreignObject leaves svg mode",
			node: vdom.H("svg",
				vdom.H("foreignObject",
					vdom.H("a", vdom.A("xlinkHref", "#")))),
			want: `<svg><foreignObject><a xlinkHref="#"></a></foreignObject></svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.node, nil, tt.opts)
			if err != nil {
				t.Fatalf("RenderToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

// =============================================================================
// Primitives & Children Flattening
// =============================================================================

func TestPrimitiveChildren(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{"string root", "hi & bye", "hi &amp; bye"},
		{"numeric zero child", vdom.H("div", 0), "<div>0</div>"},
		{"float child", vdom.H("div", 1.5), "<div>1.5</div>"},
		{"nil root", nil, ""},
		{"booleans emit nothing", vdom.H("div", true, false, nil), "<div></div>"},
		{
			"nested sequences flatten in order",
			vdom.H("div", []any{"a", []any{"b", vdom.H("i", "c")}, "d"}),
			"<div>ab<i>c</i>d</div>",
		},
		{
			"false separates adjacent strings",
			vdom.H("div", "a", false, "b"),
			"<div>ab</div>",
		},
		{"fragment splices children", vdom.Fragment("a", vdom.H("b", "x")), "a<b>x</b>"},
		{"text node escapes", vdom.Text("1<2"), "1&lt;2"},
		{"markup node does not escape", vdom.Markup("<b>!</b>"), "<b>!</b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderToString(tt.node, nil, Options{})
			if err != nil {
				t.Fatalf("RenderToString: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInvalidChildFails(t *testing.T) {
	_, err := RenderToString(vdom.H("div", struct{ X int }{1}), nil, Options{})
	if err == nil {
		t.Fatal("expected error for unrenderable child")
	}
	var inv *InvalidNodeError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidNodeError, got %T: %v", err, err)
	}
}

// =============================================================================
// Options
// =============================================================================

func TestSortAttributes(t *testing.T) {
	node := vdom.H("div",
		vdom.A("zeta", "1"), vdom.A("alpha", "2"), vdom.A("mid", "3"))

	got, err := RenderToString(node, nil, Options{SortAttributes: true})
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	want := `<div alpha="2" mid="3" zeta="1"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Unsorted keeps insertion order.
	got, err = RenderToString(node, nil, Options{})
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	want = `<div zeta="1" alpha="2" mid="3"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDeterministicOutput(t *testing.T) {
	node := deepTree(4, 2)
	first, err := RenderToString(node, nil, Options{})
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := RenderToString(node, nil, Options{})
		if err != nil {
			t.Fatalf("RenderToString: %v", err)
		}
		if again != first {
			t.Fatalf("render %d differed from first render", i+2)
		}
	}
}

func TestNoStrayWhitespace(t *testing.T) {
	node := vdom.H("div",
		vdom.H("span", "a"),
		vdom.H("span", "b"),
		vdom.H("ul", vdom.H("li", "x"), vdom.H("li", "y")))

	got, err := RenderToString(node, nil, Options{})
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if strings.ContainsAny(got, " \n\t") {
		t.Errorf("output contains whitespace not present in input: %q", got)
	}
}

// =============================================================================
// String / Stream Equivalence
// =============================================================================

func TestStringEqualsStreamConcat(t *testing.T) {
	trees := map[string]any{
		"elements":   deepTree(4, 2),
		"components": vdom.H(echoType, vdom.A("label", "x"), vdom.H("p", "body")),
		"mixed":      vdom.H("main", vdom.H(echoType, vdom.A("label", "a")), "tail"),
	}

	for name, tree := range trees {
		for _, opts := range []Options{{}, {XML: true}, {SortAttributes: true}} {
			s, err := RenderToString(tree, nil, opts)
			if err != nil {
				t.Fatalf("%s: RenderToString: %v", name, err)
			}

			stream := RenderToStream(context.Background(), tree, nil, opts)
			var b strings.Builder
			for chunk := range stream.Chunks() {
				b.WriteString(chunk)
			}
			if err := stream.Err(); err != nil {
				t.Fatalf("%s: stream: %v", name, err)
			}
			if b.String() != s {
				t.Errorf("%s: stream concat differs from RenderToString\nstream: %q\nstring: %q",
					name, b.String(), s)
			}
		}
	}
}

// =============================================================================
// Helpers
// =============================================================================

// echoType renders a div carrying its label prop and children.
var echoType = &vdom.ComponentType{
	Name: "Echo",
	Func: func(props vdom.Props, ctx vdom.Context) any {
		return vdom.H("div", vdom.A("data-label", props["label"]), props["children"])
	},
}

func deepTree(depth, breadth int) *vdom.VNode {
	if depth == 0 {
		return vdom.Text("leaf")
	}
	children := make([]any, 0, breadth)
	for i := 0; i < breadth; i++ {
		children = append(children, deepTree(depth-1, breadth))
	}
	return vdom.H("div", vdom.A("class", "node"), children)
}
