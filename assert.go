package treeval

import (
	"fmt"
	"math"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
)

// IsNull reports whether the wrapped value is null. Total; never records
// an error.
func (n *Node) IsNull() bool {
	return kind.Is(n.value, kind.Null)
}

// NotNull asserts that the wrapped value is not null, failing with a type
// error otherwise. The result is memoized: once the check passes it is
// never re-evaluated on this node.
func (n *Node) NotNull() *Node {
	if n.err != nil || n.passedNotNull {
		return n
	}
	if n.IsNull() {
		return n.fail(checkerr.NewTypeError("Node.NotNull", n.path, "value is null"))
	}
	n.passedNotNull = true
	return n
}

// TypeOf asserts that the wrapped value is of kind k. A null value passes
// vacuously. An unknown kind descriptor is a parameter error regardless of
// the wrapped value. Outcomes are memoized per (node, kind).
func (n *Node) TypeOf(k kind.Kind) *Node {
	return n.typeOf("Node.TypeOf", k)
}

func (n *Node) typeOf(op string, k kind.Kind) *Node {
	if n.err != nil {
		return n
	}
	if !kind.Valid(k) {
		return n.fail(checkerr.NewParameterError(op, n.path,
			fmt.Sprintf("invalid kind descriptor %q", string(k))))
	}
	if n.IsNull() {
		return n
	}
	if !n.checkKind(k) {
		return n.fail(checkerr.NewTypeError(op, n.path,
			fmt.Sprintf("expected %s, got %s", k, kind.Of(n.value))))
	}
	return n
}

// Numeric asserts the wrapped value is numeric (unless null).
func (n *Node) Numeric() *Node {
	return n.typeOf("Node.Numeric", kind.Numeric)
}

// Boolean asserts the wrapped value is a boolean (unless null).
func (n *Node) Boolean() *Node {
	return n.typeOf("Node.Boolean", kind.Boolean)
}

// String asserts the wrapped value is a string (unless null).
func (n *Node) String() *Node {
	return n.typeOf("Node.String", kind.String)
}

// Integer asserts the wrapped value is numeric and a finite whole number,
// so a float with a fractional part fails even though it is numeric. A
// null value passes vacuously.
func (n *Node) Integer() *Node {
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.Numeric().err != nil {
		return n
	}
	f, _ := asFloat(n.value)
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return n.fail(checkerr.NewTypeError("Node.Integer", n.path,
			fmt.Sprintf("numeric value %v is not a whole number", n.value)))
	}
	return n
}

// asFloat widens any built-in numeric value to float64.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
