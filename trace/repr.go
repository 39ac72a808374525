package trace

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// truncationMarker terminates a capped representation
const truncationMarker = "..."

// tupleRepr renders a list of values as "(a, b, c)", redacted and capped
// at max bytes.
func tupleRepr(vals []reflect.Value, max int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(valueRepr(v))
	}
	b.WriteByte(')')
	return truncate(Redact(b.String()), max)
}

// resultRepr renders function results: a single value stands alone,
// multiple values form a tuple.
func resultRepr(vals []reflect.Value, max int) string {
	if len(vals) == 1 {
		return truncate(Redact(valueRepr(vals[0])), max)
	}
	return tupleRepr(vals, max)
}

// valueRepr renders one value. Strings are quoted (after redaction, so
// that quoting cannot hide a credential from the patterns); everything
// else uses the fmt default rendering.
func valueRepr(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}
	if v.Kind() == reflect.String {
		return strconv.Quote(Redact(v.String()))
	}
	return fmt.Sprintf("%v", v.Interface())
}

// truncate caps s at max bytes, cutting at a rune boundary and appending
// the truncation marker.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + truncationMarker
}
