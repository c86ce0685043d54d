package treeval

import (
	"errors"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
)

// rootPath is the path assigned to a node created by Wrap or Rewrap.
const rootPath = "/"

// Node wraps one dynamically-typed value together with the structural path
// by which it was reached. Every assertion either validates in place and
// returns the node itself, or returns a new Node wrapping a derived value
// with an extended path, so operations compose by chaining.
//
// The first failing operation records its error on the node; all later
// operations on a failed node are no-ops, and Err returns the recorded
// failure. This mirrors the abort-on-first-failure propagation of a thrown
// exception while keeping the chain total.
type Node struct {
	value any
	path  string

	// parent and key link a node derived by navigation back to the
	// container element it was read from, so mutators that replace a
	// slice header can write the new header back.
	parent *Node
	key    any

	err error

	// Memoized check results. Sound because no operation changes which
	// value this node wraps: mutators alter the referenced container's
	// contents, never the node's own value slot.
	passedNotNull bool
	kindChecks    map[kind.Kind]bool
}

// Wrap wraps a value into a root Node. Wrapping is idempotent: a *Node
// argument is returned unchanged, so helpers may accept either raw values
// or already-wrapped ones without double indirection.
func Wrap(v any) *Node {
	if n, ok := v.(*Node); ok {
		return n
	}
	return Rewrap(v)
}

// Rewrap always constructs a new root Node, even when v is itself a *Node.
func Rewrap(v any) *Node {
	return &Node{value: v, path: rootPath}
}

// Unwrap returns the wrapped raw value.
func (n *Node) Unwrap() any {
	return n.value
}

// Path returns the structural path of this node, "/"-joined from the wrap
// root. Paths are diagnostic only and are never parsed back.
func (n *Node) Path() string {
	return n.path
}

// Err returns the first validation failure recorded on this node, or nil.
// The returned error is always a *checkerr.Error (possibly wrapping a
// callback error) and can be matched with errors.Is against the checkerr
// sentinels or extracted with errors.As.
func (n *Node) Err() error {
	return n.err
}

// fail records the first failure and returns the node for chaining.
func (n *Node) fail(err error) *Node {
	if n.err == nil {
		n.err = err
	}
	return n
}

// failCallback records an error returned by an iteration callback. An
// error that already carries a *checkerr.Error is kept as is; anything
// else is wrapped in a general-kind error at this node's path.
func (n *Node) failCallback(op string, err error) *Node {
	var ce *checkerr.Error
	if errors.As(err, &ce) {
		return n.fail(err)
	}
	return n.fail(checkerr.NewGeneralError(op, n.path, "callback failed").WithCause(err))
}

func (n *Node) childPath(segment string) string {
	if n.path == rootPath {
		return rootPath + segment
	}
	return n.path + "/" + segment
}

// newChild derives a node for a value that lives outside the wrapped
// structure (conversion results, defaults, externally selected elements).
func (n *Node) newChild(v any, segment string) *Node {
	return &Node{value: v, path: n.childPath(segment)}
}

// childAt derives a node for an element of the wrapped container,
// remembering where it came from so sequence mutators can write back.
func (n *Node) childAt(v any, segment string, key any) *Node {
	c := n.newChild(v, segment)
	c.parent = n
	c.key = key
	return c
}

// storeSeq replaces this node's sequence value and propagates the new
// slice header into the parent container, if any.
func (n *Node) storeSeq(s []any) {
	n.value = s
	if n.parent == nil {
		return
	}
	switch c := n.parent.value.(type) {
	case map[string]any:
		if k, ok := n.key.(string); ok {
			c[k] = s
		}
	case map[any]any:
		c[n.key] = s
	case []any:
		if i, ok := n.key.(int); ok && i >= 0 && i < len(c) {
			c[i] = s
		}
	}
}

// checkKind answers a memoized kind test for this node's value.
func (n *Node) checkKind(k kind.Kind) bool {
	if ok, seen := n.kindChecks[k]; seen {
		return ok
	}
	if n.kindChecks == nil {
		n.kindChecks = make(map[kind.Kind]bool, 2)
	}
	ok := kind.Is(n.value, k)
	n.kindChecks[k] = ok
	return ok
}
