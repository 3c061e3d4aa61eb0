package core

import (
	"strconv"
	"strings"
)

// Metadata is an open mapping of document attributes. Values may be scalars,
// nested maps, or lists (the shape JSON deserialization produces).
type Metadata map[string]any

// Lookup resolves a dot-addressable field path into the metadata.
// Intermediate maps are descended directly; list-valued intermediates are
// scanned for the first map element containing the next key. Returns nil
// when the path does not resolve.
func (m Metadata) Lookup(path string) any {
	if m == nil || path == "" {
		return nil
	}

	var current any = map[string]any(m)
	for _, key := range strings.Split(path, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[key]
			if !ok {
				return nil
			}
			current = next
		case Metadata:
			next, ok := v[key]
			if !ok {
				return nil
			}
			current = next
		case []any:
			// For list fields, return the first element that carries the key.
			current = lookupInList(v, key)
			if current == nil {
				return nil
			}
			return current
		default:
			return nil
		}
	}
	return current
}

func lookupInList(items []any, key string) any {
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	return nil
}

// Year extracts a document year from the "date" or "year" metadata field.
// Accepts integers, floats, and digit strings. Returns 0 and false when no
// parseable year is present.
func (m Metadata) Year() (int, bool) {
	v := m.Lookup("date")
	if v == nil {
		v = m.Lookup("year")
	}
	return asYear(v)
}

func asYear(v any) (int, bool) {
	switch y := v.(type) {
	case int:
		return y, true
	case int64:
		return int(y), true
	case float64:
		return int(y), true
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(y)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// AsFloat coerces a metadata value to float64 for numeric comparisons.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// AsString renders a metadata value for string comparisons.
func AsString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case float64:
		// Years and section numbers arrive as float64 after JSON decoding.
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	}
	return ""
}
