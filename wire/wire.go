package wire

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"unicode"
)

// Payload is a generic key-value mapping exchanged with the API.
type Payload = map[string]any

// ToWire returns a new payload with every key rewritten to snake_case.
// Keys holding a zero value (empty string, 0, false, nil) are dropped, so
// optional parameters disappear from request bodies and query strings
// instead of being sent empty.
func ToWire(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		if isZero(v) {
			continue
		}
		out[SnakeCase(k)] = v
	}
	return out
}

// FromWire returns a new payload with every top-level key rewritten to
// camelCase. Values pass through unchanged; nested objects are not recursed
// into.
func FromWire(p Payload) Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[CamelCase(k)] = v
	}
	return out
}

// Values stringifies a payload into url.Values for form or query encoding.
func Values(p Payload) url.Values {
	vals := make(url.Values, len(p))
	for k, v := range p {
		vals.Set(k, stringify(v))
	}
	return vals
}

// SnakeCase rewrites a camelCase key to snake_case.
func SnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CamelCase rewrites a snake_case key to camelCase.
func CamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	upper := false
	for i, r := range s {
		if r == '_' && i < len(s)-1 {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isZero reports whether a value should be omitted from outgoing payloads.
func isZero(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case int:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case []byte:
		return len(x) == 0
	default:
		rv := reflect.ValueOf(v)
		return !rv.IsValid() || rv.IsZero()
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
