// Package treeval is a fluent, chainable validator and accessor for
// dynamically-typed tree data such as parsed JSON or nested mappings and
// sequences. It replaces ad-hoc defensive checking when consuming
// configuration or wire-format payloads: callers assert shape and
// constraints (type, nullability, numeric range, string charset or
// pattern, membership) while navigating into nested structures, and every
// failure is a descriptive error tagged with the structural path at which
// it occurred.
//
// # Basic Usage
//
// Wrap a decoded value and chain assertions:
//
//	root := treeval.Wrap(payload)
//	port := root.Sub("server").Sub("port")
//	if err := port.Integer().Range(1, 65535).Err(); err != nil {
//	    return err
//	}
//
// Assertions return the node itself; navigation and conversion return a
// new node with an extended path. The first failure is recorded on the
// node, every later operation is a no-op, and Err reports the failure, so
// a whole chain needs exactly one error check.
//
// # Null Tolerance
//
// Assertions pass vacuously on a null value, so optional fields validate
// cleanly; NotNull (and the operations documented to require a non-null
// value) are the only ways to reject null:
//
//	treeval.Wrap(nil).Numeric().Max(10).Err()  // nil
//	treeval.Wrap(nil).NotNull().Err()          // type error
//
// # Error Taxonomy
//
// Failures are checkerr.Error values carrying an operation, a kind, and
// the node's path. Match a specific kind with errors.Is against the
// checkerr sentinels, or any treeval failure with errors.As:
//
//	err := node.Sub("mode").OneOf([]any{"fast", "safe"}).Err()
//	if errors.Is(err, checkerr.ErrKeyNotFound) {
//	    // value not among the selections
//	}
//
// # Iteration
//
// ObjectForEach and ArrayForEach walk containers with child nodes per
// entry. ArrayForEach supplies a Loop control whose Stop and Delete verbs
// halt iteration and remove the current element in place:
//
//	treeval.Wrap(items).ArrayForEach(func(item *treeval.Node, ctl *treeval.Loop) error {
//	    if item.Unwrap() == nil {
//	        ctl.Delete()
//	    }
//	    return nil
//	})
//
// The library is synchronous and performs no I/O; concurrent mutation of
// a wrapped structure while a chain is in flight is unsupported.
package treeval
