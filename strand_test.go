package strand

import (
	"context"
	"strings"
	"testing"
)

func TestFacadeRenderToString(t *testing.T) {
	tree := H("div", A("class", "x"), "hi")
	got, err := RenderToString(tree, nil, Options{})
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	if got != `<div class="x">hi</div>` {
		t.Errorf("got %q", got)
	}
}

func TestFacadeShallowRender(t *testing.T) {
	inner := &ComponentType{
		Name: "Widget",
		Func: func(props Props, ctx Context) any { return H("div") },
	}
	outer := &ComponentType{
		Name: "App",
		Func: func(props Props, ctx Context) any {
			return H(inner, A("n", 1))
		},
	}

	got, err := ShallowRender(H(outer), nil)
	if err != nil {
		t.Fatalf("ShallowRender: %v", err)
	}
	if got != `<Widget n="1"></Widget>` {
		t.Errorf("got %q", got)
	}
}

func TestFacadeStreamMatchesString(t *testing.T) {
	tree := H("ul", Fragment(H("li", "a"), H("li", "b")), Markup("<!--x-->"))

	want, err := RenderToString(tree, nil, Options{})
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}

	s := RenderToStream(context.Background(), tree, nil, Options{})
	var b strings.Builder
	for chunk := range s.Chunks() {
		b.WriteString(chunk)
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream: %v", err)
	}
	if b.String() != want {
		t.Errorf("stream %q != string %q", b.String(), want)
	}
}

func TestFacadeRenderToWriter(t *testing.T) {
	var b strings.Builder
	if err := RenderToWriter(context.Background(), &b, Text("a&b"), nil, Options{}); err != nil {
		t.Fatalf("RenderToWriter: %v", err)
	}
	if b.String() != "a&amp;b" {
		t.Errorf("got %q", b.String())
	}
}
