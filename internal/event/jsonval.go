package event

import (
	"encoding/json"
	"strconv"
)

// Lenient extraction over decoded JSON values. Archives span years of schema
// drift, so absence or a type mismatch degrades to the zero value instead of
// failing the record. Callers decode with json.Decoder.UseNumber so numbers
// arrive as json.Number and integer-ness is checkable.

// StringOrEmpty returns v if it is a JSON string, else ""
func StringOrEmpty(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// NumberOrZero returns v if it is a JSON unsigned integer, else 0.
// Floats, negatives, strings of digits all degrade to 0
func NumberOrZero(v any) uint64 {
	n, ok := v.(json.Number)
	if !ok {
		return 0
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0
	}
	return u
}

// BoolOrFalse returns v if it is a JSON boolean, else false
func BoolOrFalse(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return false
}

// asObject returns v as a JSON object, reporting whether it was one
func asObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}
