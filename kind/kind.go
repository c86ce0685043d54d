// Package kind classifies dynamically-typed values into a small closed set
// of nominal kinds, and answers same-kind questions for cross-type-safe
// comparisons.
//
// The kinds mirror the shapes produced by decoding JSON or YAML into `any`:
// primitives, sequences, string-keyed plain mappings, and associative maps
// with arbitrary key types. Primitive kinds (Numeric, Boolean, String) are
// matched by exact runtime type, so a named type with an underlying bool or
// numeric representation does not pass as a primitive.
package kind

import "reflect"

// Kind is a nominal classification of a runtime value.
type Kind string

const (
	// Null classifies the nil value.
	Null Kind = "null"

	// Numeric classifies the built-in integer and float types.
	Numeric Kind = "numeric"

	// Boolean classifies bool.
	Boolean Kind = "boolean"

	// String classifies string.
	String Kind = "string"

	// Sequence classifies slices and arrays (e.g., []any from a decoder).
	Sequence Kind = "sequence"

	// PlainMap classifies map[string]any, the shape of a decoded JSON
	// object: string keys, values of any type.
	PlainMap Kind = "plain_map"

	// Map classifies every other map type: an associative container with
	// arbitrary-typed keys, tested by explicit membership.
	Map Kind = "map"

	// Custom classifies every other non-nil value (structs, channels,
	// named primitive types, ...).
	Custom Kind = "custom"
)

// Valid reports whether k is one of the defined kind descriptors.
func Valid(k Kind) bool {
	switch k {
	case Null, Numeric, Boolean, String, Sequence, PlainMap, Map, Custom:
		return true
	}
	return false
}

// Of classifies v. A nil v yields Null.
func Of(v any) Kind {
	if v == nil {
		return Null
	}

	// Primitives match by exact runtime type, never by underlying
	// representation.
	switch v.(type) {
	case bool:
		return Boolean
	case string:
		return String
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Numeric
	case map[string]any:
		return PlainMap
	case []any:
		return Sequence
	}

	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		return Sequence
	case reflect.Map:
		return Map
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null
		}
		return Custom
	default:
		return Custom
	}
}

// Is reports whether v is of kind k.
func Is(v any, k Kind) bool {
	return Of(v) == k
}

// Same reports whether a and b share the same kind. Two nil values are the
// same kind; a nil value never shares a kind with a non-nil one.
func Same(a, b any) bool {
	return Of(a) == Of(b)
}
