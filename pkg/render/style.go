package render

import (
	"sort"
	"strings"

	"github.com/strand-ui/strand/pkg/vdom"
)

// serializeStyle converts a style mapping into a CSS declaration string:
// one "prop: value;" per declaration, single space after the colon, single
// space between declarations. An empty mapping yields "", which suppresses
// the style attribute entirely. Values are stringified as-is; the caller
// owns units. The second return reports whether the value was a mapping at
// all (non-mappings pass through the generic attribute path).
func serializeStyle(value any) (string, bool) {
	switch v := value.(type) {
	case vdom.Style:
		var b strings.Builder
		for _, d := range v {
			appendDecl(&b, d.Property, d.Value)
		}
		return b.String(), true
	case map[string]any:
		var b strings.Builder
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendDecl(&b, k, v[k])
		}
		return b.String(), true
	case map[string]string:
		var b strings.Builder
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			appendDecl(&b, k, v[k])
		}
		return b.String(), true
	default:
		return "", false
	}
}

func appendDecl(b *strings.Builder, prop string, value any) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(prop)
	b.WriteString(": ")
	b.WriteString(attrString(value))
	b.WriteByte(';')
}
