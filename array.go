package treeval

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
)

// Loop is the control object supplied to ArrayForEach callbacks. Invoking
// Stop halts iteration after the current element is fully processed;
// invoking Delete removes the current element from the underlying sequence
// immediately after the callback returns. Both may be invoked in the same
// call, with deletion applied before the stop takes effect.
type Loop struct {
	stop   bool
	remove bool
}

// Stop requests that iteration halt after the current element.
func (l *Loop) Stop() {
	l.stop = true
}

// Delete requests removal of the current element.
func (l *Loop) Delete() {
	l.remove = true
}

// ArrayLength returns the length of the wrapped sequence. The value must
// be a non-null sequence.
func (n *Node) ArrayLength() (int, error) {
	const op = "Node.ArrayLength"
	if n.err != nil {
		return 0, n.err
	}
	if n.IsNull() {
		return 0, checkerr.NewTypeError(op, n.path, "value is null")
	}
	l, ok := seqLen(n.value)
	if !ok {
		return 0, checkerr.NewTypeError(op, n.path,
			fmt.Sprintf("expected sequence, got %s", kind.Of(n.value)))
	}
	return l, nil
}

// ArrayGetItem returns a new node for the element at offset, path extended
// with [offset]. The value must be a non-null sequence and the offset in
// range.
func (n *Node) ArrayGetItem(offset int) *Node {
	const op = "Node.ArrayGetItem"
	if n.err != nil {
		return n
	}
	if n.IsNull() {
		return n.fail(checkerr.NewTypeError(op, n.path, "value is null"))
	}
	if n.typeOf(op, kind.Sequence).err != nil {
		return n
	}
	l, _ := seqLen(n.value)
	if offset < 0 || offset >= l {
		return n.fail(checkerr.NewIndexOutOfRangeError(op, n.path,
			fmt.Sprintf("offset %d out of range for length %d", offset, l)))
	}
	return n.childAt(seqIndex(n.value, offset), fmt.Sprintf("[%d]", offset), offset)
}

// ArraySetItem sets the element at offset, mutating the referenced
// sequence. An offset equal to the length appends one element; anything
// beyond that, or negative, is an index-out-of-range error. A null value
// is a no-op. Returns the node itself.
func (n *Node) ArraySetItem(offset int, value any) *Node {
	const op = "Node.ArraySetItem"
	if n.err != nil || n.IsNull() {
		return n
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	switch {
	case offset < 0 || offset > len(s):
		return n.fail(checkerr.NewIndexOutOfRangeError(op, n.path,
			fmt.Sprintf("offset %d out of range for length %d", offset, len(s))))
	case offset == len(s):
		n.storeSeq(append(s, value))
	default:
		s[offset] = value
	}
	return n
}

// ArrayPushItem appends value to the wrapped sequence in place. A null
// value is a no-op. Returns the node itself.
func (n *Node) ArrayPushItem(value any) *Node {
	const op = "Node.ArrayPushItem"
	if n.err != nil || n.IsNull() {
		return n
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	n.storeSeq(append(s, value))
	return n
}

// ArrayUnshiftItem prepends value to the wrapped sequence in place. A null
// value is a no-op. Returns the node itself.
func (n *Node) ArrayUnshiftItem(value any) *Node {
	const op = "Node.ArrayUnshiftItem"
	if n.err != nil || n.IsNull() {
		return n
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	n.storeSeq(append([]any{value}, s...))
	return n
}

// ArrayPopItem removes the last element of the wrapped sequence and
// returns a new node wrapping it, path extended with the removed
// element's index. The value must be a non-null, non-empty sequence.
func (n *Node) ArrayPopItem() *Node {
	const op = "Node.ArrayPopItem"
	if n.err != nil {
		return n
	}
	if n.IsNull() {
		return n.fail(checkerr.NewTypeError(op, n.path, "value is null"))
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	if len(s) == 0 {
		return n.fail(checkerr.NewIndexOutOfRangeError(op, n.path, "sequence is empty"))
	}
	last := s[len(s)-1]
	n.storeSeq(s[:len(s)-1])
	return n.newChild(last, fmt.Sprintf("[%d]", len(s)-1))
}

// ArrayShiftItem removes the first element of the wrapped sequence and
// returns a new node wrapping it, path extended with [0]. The value must
// be a non-null, non-empty sequence.
func (n *Node) ArrayShiftItem() *Node {
	const op = "Node.ArrayShiftItem"
	if n.err != nil {
		return n
	}
	if n.IsNull() {
		return n.fail(checkerr.NewTypeError(op, n.path, "value is null"))
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	if len(s) == 0 {
		return n.fail(checkerr.NewIndexOutOfRangeError(op, n.path, "sequence is empty"))
	}
	first := s[0]
	n.storeSeq(s[1:])
	return n.newChild(first, "[0]")
}

// SelectFromArray treats the wrapped value as an integer index into the
// supplied sequence and returns a new node for the selected element, path
// extended with the index. The value must be a non-null integer; an index
// outside [0, len(sequence)) is an index-out-of-range error, deliberately
// distinct from a threshold violation.
func (n *Node) SelectFromArray(sequence []any) *Node {
	const op = "Node.SelectFromArray"
	if n.err != nil {
		return n
	}
	if n.NotNull().err != nil {
		return n
	}
	if n.Integer().err != nil {
		return n
	}
	f, _ := asFloat(n.value)
	idx := int(f)
	if idx < 0 || idx >= len(sequence) {
		return n.fail(checkerr.NewIndexOutOfRangeError(op, n.path,
			fmt.Sprintf("index %d out of range for length %d", idx, len(sequence))))
	}
	return n.newChild(sequence[idx], fmt.Sprintf("[%d]", idx))
}

// ArrayForEach iterates the wrapped sequence front-to-back, or back-to-
// front when reverse is true, invoking fn once per element with a child
// node and a Loop control. Deleting re-targets the next unvisited element
// correctly in both directions. A null value is a no-op; a callback error
// aborts iteration and fails the chain.
func (n *Node) ArrayForEach(fn func(child *Node, ctl *Loop) error, reverse ...bool) *Node {
	const op = "Node.ArrayForEach"
	if n.err != nil || n.IsNull() {
		return n
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	backward := len(reverse) > 0 && reverse[0]
	i := 0
	if backward {
		i = len(s) - 1
	}
	for i >= 0 && i < len(s) {
		ctl := &Loop{}
		child := n.childAt(s[i], fmt.Sprintf("[%d]", i), i)
		if err := fn(child, ctl); err != nil {
			return n.failCallback(op, err)
		}
		if ctl.remove {
			s = slices.Delete(s, i, i+1)
			n.storeSeq(s)
		}
		// After a forward deletion the next unvisited element already
		// sits at i.
		if backward {
			i--
		} else if !ctl.remove {
			i++
		}
		if ctl.stop {
			break
		}
	}
	return n
}

// ArrayForEachWithDeletion iterates the wrapped sequence front-to-back;
// fn returning true deletes the current element without advancing,
// returning false advances without deleting.
//
// Retained for compatibility; new code should use ArrayForEach with its
// Loop control.
func (n *Node) ArrayForEachWithDeletion(fn func(child *Node) (remove bool, err error)) *Node {
	const op = "Node.ArrayForEachWithDeletion"
	if n.err != nil || n.IsNull() {
		return n
	}
	s, cerr := n.anySeq(op)
	if cerr != nil {
		return n.fail(cerr)
	}
	for i := 0; i < len(s); {
		remove, err := fn(n.childAt(s[i], fmt.Sprintf("[%d]", i), i))
		if err != nil {
			return n.failCallback(op, err)
		}
		if remove {
			s = slices.Delete(s, i, i+1)
			n.storeSeq(s)
		} else {
			i++
		}
	}
	return n
}

// ArrayMinLength asserts the wrapped sequence has at least min elements.
// A null value passes vacuously.
func (n *Node) ArrayMinLength(min int) *Node {
	const op = "Node.ArrayMinLength"
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.Sequence).err != nil {
		return n
	}
	l, _ := seqLen(n.value)
	if l < min {
		return n.fail(checkerr.NewSizeError(op, n.path,
			fmt.Sprintf("length %d below minimum %d", l, min)))
	}
	return n
}

// ArrayMaxLength asserts the wrapped sequence has at most max elements.
// A null value passes vacuously.
func (n *Node) ArrayMaxLength(max int) *Node {
	const op = "Node.ArrayMaxLength"
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.Sequence).err != nil {
		return n
	}
	l, _ := seqLen(n.value)
	if l > max {
		return n.fail(checkerr.NewSizeError(op, n.path,
			fmt.Sprintf("length %d above maximum %d", l, max)))
	}
	return n
}

// anySeq asserts the sequence kind and returns the wrapped value as the
// mutable []any form. Sequences of another concrete type satisfy the kind
// check but cannot hold arbitrary elements, so mutation and iteration
// reject them.
func (n *Node) anySeq(op string) ([]any, *checkerr.Error) {
	if !n.checkKind(kind.Sequence) {
		return nil, checkerr.NewTypeError(op, n.path,
			fmt.Sprintf("expected sequence, got %s", kind.Of(n.value)))
	}
	s, ok := n.value.([]any)
	if !ok {
		return nil, checkerr.NewTypeError(op, n.path,
			fmt.Sprintf("sequence of %T is not mutable as []any", n.value))
	}
	return s, nil
}

// seqLen returns the length of any slice or array value.
func seqLen(v any) (int, bool) {
	if s, ok := v.([]any); ok {
		return len(s), true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return rv.Len(), true
	}
	return 0, false
}

// seqIndex returns element i of any slice or array value. Bounds are the
// caller's responsibility.
func seqIndex(v any, i int) any {
	if s, ok := v.([]any); ok {
		return s[i]
	}
	return reflect.ValueOf(v).Index(i).Interface()
}
