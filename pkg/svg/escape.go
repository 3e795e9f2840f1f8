package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Replacers run in a single pass, so entities introduced by one rule are
// never re-escaped by another. Attribute values additionally escape the
// double quote because they are quote-delimited; text content is not.
var (
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		`"`, "&quot;",
		"<", "&lt;",
		">", "&gt;",
	)
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// EscapeAttr stringifies value and escapes it for use inside a
// double-quoted attribute.
func EscapeAttr(value any) string {
	return attrEscaper.Replace(Stringify(value))
}

// EscapeText stringifies value and escapes it for use as text content.
func EscapeText(value any) string {
	return textEscaper.Replace(Stringify(value))
}

// Stringify coerces a value to its markup string form. Floats use the
// shortest representation that round-trips, so whole numbers render without
// a fractional part.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}
