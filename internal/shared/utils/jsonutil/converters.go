// Package jsonutil provides helpers for navigating and coercing decoded
// JSON payloads (map[string]any / []any as produced by encoding/json).
package jsonutil

import "encoding/json"

// Dig reads a value at the given path from a decoded JSON object.
// Returns nil when any path element is missing or not an object.
//
// Example:
//
//	Dig(record, "position", "x") -> -9.1e12
//	Dig(record, "name")          -> "Jita"
func Dig(record map[string]any, path ...string) any {
	var current any = record
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = obj[key]
		if !ok {
			return nil
		}
	}
	return current
}

// AsInt64 coerces a decoded JSON value to int64.
// encoding/json decodes all numbers as float64 unless json.Number is used.
func AsInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// AsFloat64 coerces a decoded JSON value to float64.
func AsFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// AsString coerces a decoded JSON value to string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsBool coerces a decoded JSON value to bool.
func AsBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// AsObject coerces a decoded JSON value to an object.
func AsObject(v any) (map[string]any, bool) {
	obj, ok := v.(map[string]any)
	return obj, ok
}

// AsArray coerces a decoded JSON value to an array.
func AsArray(v any) ([]any, bool) {
	arr, ok := v.([]any)
	return arr, ok
}

// Int64Slice converts a decoded JSON array of numbers to []int64,
// skipping elements that are not numbers.
func Int64Slice(v any) []int64 {
	arr, ok := AsArray(v)
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(arr))
	for _, el := range arr {
		if id, ok := AsInt64(el); ok {
			out = append(out, id)
		}
	}
	return out
}
