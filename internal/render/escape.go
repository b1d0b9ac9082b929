package render

import (
	"fmt"
	"strings"
)

// escaper replaces in a single pass, which yields the same result as replacing
// & first and then < > " ' in sequence.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape stringifies v and makes it safe for interpolation into markup and
// attribute values. nil renders as the empty string.
func Escape(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case fmt.Stringer:
		s = x.String()
	default:
		s = fmt.Sprint(x)
	}
	return escaper.Replace(s)
}
