package treeval

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
)

// Sub navigates to the child reachable by key, returning a new node with
// the path extended by the stringified key. The wrapped value must be a
// non-null plain mapping or associative map; for a plain mapping the key
// must be a string (a parameter error otherwise). A missing key is a
// key-not-found error.
func (n *Node) Sub(key any) *Node {
	const op = "Node.Sub"
	if n.err != nil {
		return n
	}
	v, found, cerr := n.lookup(op, key)
	if cerr != nil {
		return n.fail(cerr)
	}
	if !found {
		return n.fail(checkerr.NewKeyNotFoundError(op, n.path,
			fmt.Sprintf("no key %s", keySegment(key))))
	}
	return n.childAt(v, fmt.Sprint(key), key)
}

// OptionalSub is Sub with a default: a missing key yields a new node
// wrapping defaultValue instead of failing. All other errors match Sub.
func (n *Node) OptionalSub(key, defaultValue any) *Node {
	const op = "Node.OptionalSub"
	if n.err != nil {
		return n
	}
	v, found, cerr := n.lookup(op, key)
	if cerr != nil {
		return n.fail(cerr)
	}
	if !found {
		return n.newChild(defaultValue, fmt.Sprint(key))
	}
	return n.childAt(v, fmt.Sprint(key), key)
}

// lookup resolves key against the wrapped mapping. It reports presence
// separately from errors so optional lookups are an explicit two-branch
// decision, not error-driven control flow.
func (n *Node) lookup(op string, key any) (v any, found bool, cerr *checkerr.Error) {
	switch m := n.value.(type) {
	case map[any]any:
		v, found = assocLookup(m, key)
		return v, found, nil
	case map[string]any:
		ks, ok := key.(string)
		if !ok {
			return nil, false, checkerr.NewParameterError(op, n.path,
				fmt.Sprintf("plain mapping requires a string key, got %T", key))
		}
		v, found = m[ks]
		return v, found, nil
	}
	if rv := reflect.ValueOf(n.value); n.value != nil && rv.Kind() == reflect.Map {
		v, found = reflectLookup(rv, key)
		return v, found, nil
	}
	return nil, false, checkerr.NewTypeError(op, n.path,
		fmt.Sprintf("expected mapping, got %s", kind.Of(n.value)))
}

// assocLookup tests membership in an associative map, tolerating keys
// whose dynamic type is not comparable (such keys can never be present).
func assocLookup(m map[any]any, key any) (any, bool) {
	if key != nil && !reflect.TypeOf(key).Comparable() {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// reflectLookup tests membership in an arbitrary map value.
func reflectLookup(rv reflect.Value, key any) (any, bool) {
	if key == nil || !reflect.TypeOf(key).Comparable() {
		return nil, false
	}
	kv := reflect.ValueOf(key)
	if !kv.Type().AssignableTo(rv.Type().Key()) {
		return nil, false
	}
	out := rv.MapIndex(kv)
	if !out.IsValid() {
		return nil, false
	}
	return out.Interface(), true
}

// ObjectHas reports whether the wrapped plain mapping has key. The value
// must be a non-null plain mapping.
func (n *Node) ObjectHas(key string) (bool, error) {
	const op = "Node.ObjectHas"
	if n.err != nil {
		return false, n.err
	}
	if n.IsNull() {
		return false, checkerr.NewTypeError(op, n.path, "value is null")
	}
	m, ok := n.value.(map[string]any)
	if !ok {
		return false, checkerr.NewTypeError(op, n.path,
			fmt.Sprintf("expected plain mapping, got %s", kind.Of(n.value)))
	}
	_, present := m[key]
	return present, nil
}

// ObjectForEach invokes fn once per key of the wrapped plain mapping, in
// sorted key order, with a child node for the key's value. A null value is
// a no-op. Iteration walks a snapshot of the key set taken at entry;
// mutating sibling keys from the callback is unspecified behavior, except
// that a key deleted before its visit is skipped. A callback error aborts
// iteration and fails the chain.
func (n *Node) ObjectForEach(fn func(child *Node) error) *Node {
	return n.objectForEach("Node.ObjectForEach", func(_ string, child *Node) error {
		return fn(child)
	})
}

// ObjectForEachEx is ObjectForEach with the raw key supplied alongside
// each child node.
func (n *Node) ObjectForEachEx(fn func(key string, child *Node) error) *Node {
	return n.objectForEach("Node.ObjectForEachEx", fn)
}

func (n *Node) objectForEach(op string, fn func(string, *Node) error) *Node {
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.PlainMap).err != nil {
		return n
	}
	m := n.value.(map[string]any)
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v, ok := m[k]
		if !ok {
			continue
		}
		if err := fn(k, n.childAt(v, k, k)); err != nil {
			return n.failCallback(op, err)
		}
	}
	return n
}

// ObjectSet sets key to value in the wrapped plain mapping, mutating the
// referenced mapping in place. A null value is a no-op; a non-mapping
// value is a type error. Returns the node itself.
func (n *Node) ObjectSet(key string, value any) *Node {
	const op = "Node.ObjectSet"
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.PlainMap).err != nil {
		return n
	}
	n.value.(map[string]any)[key] = value
	return n
}
