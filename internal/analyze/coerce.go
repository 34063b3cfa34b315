package analyze

import (
	"math"
	"strconv"
	"strings"
)

// Coercion helpers for duck-typed generator payloads. Each helper takes
// an arbitrary decoded JSON value and produces the canonical type for a
// schema field, with a supplied fallback on mismatch. None of them can
// fail; between them they absorb every shape the generator has been
// observed to emit.

// asString returns v if it is a string, fallback otherwise.
func asString(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

// asTrimmedString returns the trimmed string form of v; fallback when v
// is not a string or trims to empty.
func asTrimmedString(v any, fallback string) string {
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return s
}

// asList returns v as a []any, or nil when v is not an array.
func asList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return nil
}

// asObject returns v as a map, or nil when v is not an object. Indexing
// the nil result is safe, so callers chase nested fields without
// checking.
func asObject(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return nil
}

// asStringList coerces v into a slice of non-empty trimmed strings.
// Non-array values and non-string or whitespace-only elements are
// dropped. The result is never nil.
func asStringList(v any) []string {
	items := asList(v)
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// asNumber extracts a finite number from v. Numeric strings are
// accepted (generators quote numbers routinely); NaN, infinities, and
// everything else report ok=false.
func asNumber(v any) (float64, bool) {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case int:
		n = float64(val)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// clampInt bounds n to [lo, hi].
func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
