package render

import (
	"testing"

	"github.com/strand-ui/strand/pkg/vdom"
)

func TestResolveClass(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string verbatim", "a  b", "a  b"},
		{
			"class map keeps order and drops off toggles",
			vdom.ClassMap{{Name: "z", On: true}, {Name: "a", On: false}, {Name: "m", On: true}},
			"z m",
		},
		{"string slice joins", []string{"x", "y"}, "x y"},
		{"bool map sorts for determinism", map[string]bool{"b": true, "a": true, "c": false}, "a b"},
		{
			"any map uses truthiness",
			map[string]any{"on": 1, "off": 0, "empty": "", "set": "yes"},
			"on set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveClass(tt.value); got != tt.want {
				t.Errorf("resolveClass(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	truthyValues := []any{true, "x", 1, int64(2), 3.5, []int{}}
	for _, v := range truthyValues {
		if !truthy(v) {
			t.Errorf("truthy(%v) = false, want true", v)
		}
	}
	falsyValues := []any{nil, false, "", 0, int64(0), 0.0}
	for _, v := range falsyValues {
		if truthy(v) {
			t.Errorf("truthy(%v) = true, want false", v)
		}
	}
}
