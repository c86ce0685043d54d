// Package compare defines the pluggable ordering capability used by the
// range assertions, with a default implementation over natural ordering.
package compare

import "reflect"

// Comparator supplies the five binary predicates the range assertions
// consume. Implementations may order structured values by a derived key;
// both operands are always of the same kind by the time a Comparator is
// invoked.
type Comparator interface {
	Eq(a, b any) bool
	Le(a, b any) bool
	Lt(a, b any) bool
	Ge(a, b any) bool
	Gt(a, b any) bool
}

// Natural orders values by their native ordering: numerics by magnitude
// (mixed integer/float operands are widened to float64), strings
// lexicographically, booleans with false before true. Values of any other
// kind compare equal only per reflect.DeepEqual and are never ordered.
type Natural struct{}

// Default is the process-wide default comparator.
var Default Comparator = Natural{}

func (Natural) Eq(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func (n Natural) Le(a, b any) bool {
	return n.Lt(a, b) || n.Eq(a, b)
}

func (Natural) Lt(a, b any) bool {
	if af, aok := toFloat(a); aok {
		bf, bok := toFloat(b)
		return bok && af < bf
	}
	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case bool:
		bv, ok := b.(bool)
		return ok && !av && bv
	}
	return false
}

func (n Natural) Ge(a, b any) bool {
	return n.Gt(a, b) || n.Eq(a, b)
}

func (n Natural) Gt(a, b any) bool {
	return n.Lt(b, a)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
