package render

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/strand-ui/strand/pkg/vdom"
)

// writeAttributes serializes an element's attribute list onto the driver.
// Attributes emit in insertion order, or sorted by name when the option is
// set. hasClass reports whether a non-nil "class" attribute exists so that
// "className" can defer to it.
func writeAttributes(d *driver, attrs []vdom.Attr, opts Options, svg bool) error {
	if len(attrs) == 0 {
		return nil
	}

	if opts.SortAttributes {
		sorted := make([]vdom.Attr, len(attrs))
		copy(sorted, attrs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return attrOutputName(sorted[i].Name, svg) < attrOutputName(sorted[j].Name, svg)
		})
		attrs = sorted
	}

	// A present, non-nullish class attribute wins; className is ignored.
	hasClass := false
	for _, a := range attrs {
		if a.Name == "class" && a.Value != nil {
			hasClass = true
		}
	}

	for _, a := range attrs {
		if err := writeAttribute(d, a.Name, a.Value, opts, svg, hasClass); err != nil {
			return err
		}
	}
	return nil
}

// writeAttribute emits a single " name" or ` name="value"` fragment.
func writeAttribute(d *driver, name string, value any, opts Options, svg, hasClass bool) error {
	// Consumed elsewhere or never serialized.
	switch name {
	case "key", "ref", "children", "dangerouslySetInnerHTML":
		return nil
	}
	if value == nil || isFunc(value) {
		return nil
	}
	if b, ok := value.(bool); ok && !b {
		return nil
	}

	switch name {
	case "className":
		if hasClass {
			return nil
		}
		name = "class"
		value = resolveClass(value)
	case "class":
		value = resolveClass(value)
	case "style":
		if css, isMapping := serializeStyle(value); isMapping {
			if css == "" {
				return nil
			}
			value = css
		}
	}

	name = attrOutputName(name, svg)

	// Boolean true: bare attribute in HTML, name="name" in XML.
	if b, ok := value.(bool); ok && b {
		if opts.XML {
			return writeKV(d, name, name)
		}
		return writeBare(d, name)
	}

	if s, ok := value.(string); ok {
		if s == "" {
			if opts.XML {
				return writeKV(d, name, "")
			}
			return writeBare(d, name)
		}
		if s == name && !opts.XML {
			return writeBare(d, name)
		}
		return writeKV(d, name, s)
	}

	return writeKV(d, name, attrString(value))
}

func writeBare(d *driver, name string) error {
	if err := d.writeByte(' '); err != nil {
		return err
	}
	return d.writeString(name)
}

func writeKV(d *driver, name, value string) error {
	if err := d.writeByte(' '); err != nil {
		return err
	}
	if err := d.writeString(name); err != nil {
		return err
	}
	if err := d.writeString(`="`); err != nil {
		return err
	}
	if err := d.writeString(escape(value)); err != nil {
		return err
	}
	return d.writeByte('"')
}

// attrOutputName rewrites xlinkXxx to xlink:xxx inside an SVG subtree.
func attrOutputName(name string, svg bool) string {
	if svg && strings.HasPrefix(name, "xlink") && len(name) > 5 {
		rest := name[5:]
		if rest[0] >= 'A' && rest[0] <= 'Z' {
			return "xlink:" + strings.ToLower(rest[:1]) + rest[1:]
		}
	}
	return name
}

// attrString converts an attribute value to its textual form.
func attrString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isFunc reports whether the value is a function of any signature.
func isFunc(value any) bool {
	return reflect.ValueOf(value).Kind() == reflect.Func
}
