package render

import "strings"

// entityReplacer rewrites the four markup-significant characters. The same
// set applies in text and attribute contexts; double quotes are encoded in
// text too so emitted fragments can be spliced into either context.
var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape entity-encodes s. The common case of no special characters
// returns s unchanged without allocating.
func escape(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return entityReplacer.Replace(s)
}
