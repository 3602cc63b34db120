package render

import (
	"sort"
	"strings"

	"github.com/strand-ui/strand/pkg/vdom"
)

// resolveClass normalizes a class or className attribute value to the
// string emitted under the "class" name. Strings pass through verbatim.
// Mappings flatten to a space-joined list of the names whose value is
// truthy: vdom.ClassMap keeps its own order, plain Go maps emit in
// lexicographic order since map iteration order is undefined.
func resolveClass(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case vdom.ClassMap:
		var b strings.Builder
		for _, t := range v {
			if !t.On {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Name)
		}
		return b.String()
	case []string:
		return strings.Join(v, " ")
	case map[string]bool:
		var b strings.Builder
		for _, k := range sortedClassKeys(v) {
			if !v[k] {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k)
		}
		return b.String()
	case map[string]any:
		var b strings.Builder
		for _, k := range sortedClassKeys(v) {
			if !truthy(v[k]) {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(k)
		}
		return b.String()
	default:
		return attrString(value)
	}
}

func sortedClassKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// truthy reports whether a mapping value enables its key.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
