package treeval

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/compare"
	"github.com/treeval/treeval/kind"
)

// Min asserts the wrapped value is not below threshold. The value and the
// threshold must share a kind (a parameter error otherwise, since
// cross-kind comparison is never permitted); a violation is a
// value-out-of-range error. An optional comparator replaces the default
// natural ordering. A null value passes vacuously.
func (n *Node) Min(threshold any, cmp ...compare.Comparator) *Node {
	return n.bound("Node.Min", threshold, cmp, compare.Comparator.Lt, "below minimum")
}

// MinExclusive is Min with an exclusive bound: the value must be strictly
// above threshold.
func (n *Node) MinExclusive(threshold any, cmp ...compare.Comparator) *Node {
	return n.bound("Node.MinExclusive", threshold, cmp, compare.Comparator.Le, "not above exclusive minimum")
}

// Max asserts the wrapped value is not above threshold, with the same
// kind and comparator rules as Min.
func (n *Node) Max(threshold any, cmp ...compare.Comparator) *Node {
	return n.bound("Node.Max", threshold, cmp, compare.Comparator.Gt, "above maximum")
}

// MaxExclusive is Max with an exclusive bound: the value must be strictly
// below threshold.
func (n *Node) MaxExclusive(threshold any, cmp ...compare.Comparator) *Node {
	return n.bound("Node.MaxExclusive", threshold, cmp, compare.Comparator.Ge, "not below exclusive maximum")
}

// Range asserts lo <= value <= hi; it is exactly Min then Max with the
// same comparator.
func (n *Node) Range(lo, hi any, cmp ...compare.Comparator) *Node {
	return n.Min(lo, cmp...).Max(hi, cmp...)
}

func (n *Node) bound(op string, threshold any, cmps []compare.Comparator,
	violated func(compare.Comparator, any, any) bool, describe string) *Node {
	if n.err != nil || n.IsNull() {
		return n
	}
	if !kind.Same(n.value, threshold) {
		return n.fail(checkerr.NewParameterError(op, n.path,
			fmt.Sprintf("cannot compare %s value against %s threshold",
				kind.Of(n.value), kind.Of(threshold))))
	}
	c := compare.Default
	if len(cmps) > 0 && cmps[0] != nil {
		c = cmps[0]
	}
	if violated(c, n.value, threshold) {
		return n.fail(checkerr.NewValueOutOfRangeError(op, n.path,
			fmt.Sprintf("value %v %s %v", n.value, describe, threshold)))
	}
	return n
}

// OneOf asserts the wrapped value is among selections: key membership for
// any map (including sets in the map[T]struct{} form), a linear deep-equal
// scan for a sequence. Any other selections type is a parameter error; an
// absent value is a key-not-found error. A null value passes vacuously.
func (n *Node) OneOf(selections any) *Node {
	const op = "Node.OneOf"
	if n.err != nil || n.IsNull() {
		return n
	}
	rv := reflect.ValueOf(selections)
	switch {
	case selections == nil:
		return n.fail(checkerr.NewParameterError(op, n.path, "selections is nil"))
	case rv.Kind() == reflect.Map:
		if _, found := reflectLookup(rv, n.value); found {
			return n
		}
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), n.value) {
				return n
			}
		}
	default:
		return n.fail(checkerr.NewParameterError(op, n.path,
			fmt.Sprintf("cannot test membership in %T", selections)))
	}
	return n.fail(checkerr.NewKeyNotFoundError(op, n.path,
		fmt.Sprintf("value %v is not among the selections", n.value)))
}

// CustomRule asserts the wrapped value satisfies predicate. A nil
// predicate is a parameter error; a predicate returning false is a
// general-kind failure. A null value passes vacuously.
func (n *Node) CustomRule(predicate func(value any) bool) *Node {
	const op = "Node.CustomRule"
	if n.err != nil {
		return n
	}
	if predicate == nil {
		return n.fail(checkerr.NewParameterError(op, n.path, "predicate is nil"))
	}
	if n.IsNull() {
		return n
	}
	if !predicate(n.value) {
		return n.fail(checkerr.NewGeneralError(op, n.path,
			fmt.Sprintf("custom rule rejected value %v", n.value)))
	}
	return n
}

// ExprRule asserts the wrapped value satisfies a boolean expression
// compiled with expr-lang, evaluated with the wrapped value bound to the
// identifier "value" (e.g. `value >= 0 && value < 100`). Code that does
// not compile, fails to evaluate, or yields a non-boolean is a parameter
// error; a false result is a general-kind failure. A null value passes
// vacuously once the code has compiled.
func (n *Node) ExprRule(code string) *Node {
	const op = "Node.ExprRule"
	if n.err != nil {
		return n
	}
	program, err := expr.Compile(code, expr.AllowUndefinedVariables())
	if err != nil {
		return n.fail(checkerr.NewParameterError(op, n.path, "expression does not compile").WithCause(err))
	}
	if n.IsNull() {
		return n
	}
	out, err := expr.Run(program, map[string]any{"value": n.value})
	if err != nil {
		return n.fail(checkerr.NewParameterError(op, n.path, "expression failed to evaluate").WithCause(err))
	}
	pass, ok := out.(bool)
	if !ok {
		return n.fail(checkerr.NewParameterError(op, n.path,
			fmt.Sprintf("expression yielded %T, not a boolean", out)))
	}
	if !pass {
		return n.fail(checkerr.NewGeneralError(op, n.path,
			fmt.Sprintf("expression %q rejected value %v", code, n.value)))
	}
	return n
}
