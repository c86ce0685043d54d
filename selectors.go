package treeval

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
)

// SelectFromObject treats the wrapped value as a string key into the
// supplied mapping and returns a new node for the selected value, path
// extended by the key. The wrapped value must be a non-null string; a
// non-mapping from is a parameter error; a missing key is a key-not-found
// error.
func (n *Node) SelectFromObject(from any) *Node {
	const op = "Node.SelectFromObject"
	child, found := n.selectByStringKey(op, from)
	if n.err != nil {
		return n
	}
	if !found {
		return n.fail(checkerr.NewKeyNotFoundError(op, n.path,
			fmt.Sprintf("no key %q", n.value.(string))))
	}
	return child
}

// SelectFromObjectOptional is SelectFromObject with a default: a missing
// key yields a new node wrapping defaultValue instead of failing.
func (n *Node) SelectFromObjectOptional(from, defaultValue any) *Node {
	const op = "Node.SelectFromObjectOptional"
	child, found := n.selectByStringKey(op, from)
	if n.err != nil {
		return n
	}
	if !found {
		return n.newChild(defaultValue, n.value.(string))
	}
	return child
}

func (n *Node) selectByStringKey(op string, from any) (child *Node, found bool) {
	if n.err != nil {
		return nil, false
	}
	if n.NotNull().err != nil {
		return nil, false
	}
	if n.typeOf(op, kind.String).err != nil {
		return nil, false
	}
	key := n.value.(string)
	var v any
	switch m := from.(type) {
	case map[string]any:
		v, found = m[key]
	case map[any]any:
		v, found = m[key]
	default:
		if rv := reflect.ValueOf(from); from != nil && rv.Kind() == reflect.Map {
			v, found = reflectLookup(rv, key)
			break
		}
		n.fail(checkerr.NewParameterError(op, n.path,
			fmt.Sprintf("cannot select from %s", kind.Of(from))))
		return nil, false
	}
	if !found {
		return nil, false
	}
	return n.newChild(v, key), true
}

// SelectFromMap treats the wrapped value as a key into the supplied
// associative map, with presence decided by map membership rather than
// string coercion, and returns a new node for the selected value. The
// path is extended with a JSON-like rendering of the key, or the literal
// (unserializable) when the key has no such rendering. The wrapped value
// must be non-null; a missing key is a key-not-found error.
func (n *Node) SelectFromMap(from map[any]any) *Node {
	const op = "Node.SelectFromMap"
	if n.err != nil {
		return n
	}
	if n.NotNull().err != nil {
		return n
	}
	v, found := assocLookup(from, n.value)
	if !found {
		return n.fail(checkerr.NewKeyNotFoundError(op, n.path,
			fmt.Sprintf("no key %s", keySegment(n.value))))
	}
	return n.newChild(v, keySegment(n.value))
}

// SelectFromMapOptional is SelectFromMap with a default: a missing key
// yields a new node wrapping defaultValue instead of failing.
func (n *Node) SelectFromMapOptional(from map[any]any, defaultValue any) *Node {
	if n.err != nil {
		return n
	}
	if n.NotNull().err != nil {
		return n
	}
	v, found := assocLookup(from, n.value)
	if !found {
		return n.newChild(defaultValue, keySegment(n.value))
	}
	return n.newChild(v, keySegment(n.value))
}

// keySegment renders an arbitrary key as a JSON-like path segment, e.g.
// 42 or "key", falling back to (unserializable).
func keySegment(key any) string {
	b, err := json.Marshal(key)
	if err != nil {
		return "(unserializable)"
	}
	return string(b)
}
