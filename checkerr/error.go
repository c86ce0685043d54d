// Package checkerr provides the structured error taxonomy for treeval.
//
// Every failure produced by the library is a *Error carrying the operation
// that failed, a Kind categorizing the failure, and the structural path of
// the node the failure occurred at. The type integrates with Go's standard
// errors package: errors.As extracts a *Error from any chain
// (catch-by-base), and errors.Is against one of the per-kind sentinel
// values matches a specific kind (catch-by-specific).
package checkerr

import (
	"fmt"
	"strings"
)

// Kind categorizes a validation failure.
type Kind string

const (
	// KindGeneral is the base category for failures that fit no more
	// specific kind, such as a custom rule returning false.
	KindGeneral Kind = "general"

	// KindParameter indicates the caller passed an invalid argument to an
	// operation, independent of the wrapped value.
	KindParameter Kind = "parameter"

	// KindType indicates the wrapped value has the wrong kind, or is
	// unexpectedly null.
	KindType Kind = "type"

	// KindFormat indicates a wrapped string fails a lexical or content rule.
	KindFormat Kind = "format"

	// KindParse indicates an external decode (JSON, YAML) failed.
	KindParse Kind = "parse"

	// KindSize indicates a collection length constraint was violated.
	KindSize Kind = "size"

	// KindKeyNotFound indicates a structural lookup by key failed.
	KindKeyNotFound Kind = "key_not_found"

	// KindIndexOutOfRange indicates a positional lookup failed. It is
	// deliberately distinct from KindValueOutOfRange so array-bounds
	// failures are distinguishable from threshold failures.
	KindIndexOutOfRange Kind = "index_out_of_range"

	// KindValueOutOfRange indicates an ordering or threshold constraint
	// was violated.
	KindValueOutOfRange Kind = "value_out_of_range"
)

// Error is the structured error type for validation failures.
//
// Example usage:
//
//	err := node.Sub("port").Integer().Range(1, 65535).Err()
//	if errors.Is(err, checkerr.ErrValueOutOfRange) {
//	    // threshold violation
//	}
//	var ce *checkerr.Error
//	if errors.As(err, &ce) {
//	    log.Println(ce.Path, ce.Message)
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Node.Sub", "Node.Min").
	Op string

	// Kind categorizes the failure.
	Kind Kind

	// Path is the structural path of the node the failure occurred at.
	Path string

	// Message is a human-readable description, embedding the offending
	// value or threshold where relevant.
	Message string

	// Cause is the underlying error, if any (e.g., a decoder error).
	Cause error
}

// New creates a new validation error.
func New(op string, kind Kind, path, message string) *Error {
	return &Error{
		Op:      op,
		Kind:    kind,
		Path:    path,
		Message: message,
	}
}

// WithCause attaches an underlying error and returns the same instance
// for chaining.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// Error implements the error interface. It formats the error as:
// "treeval: op (kind) at path: message: cause".
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "treeval: %s (%s)", e.Op, e.Kind)
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As
// to traverse wrapped errors.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements matching for errors.Is. A target *Error matches when its
// Kind equals this error's Kind and its Op is either empty or equal. This
// makes the per-kind sentinel values below match any error of their kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != "" && e.Kind == t.Kind {
		return t.Op == "" || e.Op == t.Op
	}
	return false
}

// As implements extraction for errors.As.
func (e *Error) As(target any) bool {
	t, ok := target.(**Error)
	if !ok {
		return false
	}
	*t = e
	return true
}

// Per-kind sentinel values for use with errors.Is.
var (
	// ErrGeneral matches any failure of the base kind.
	ErrGeneral = &Error{Kind: KindGeneral}

	// ErrParameter matches any invalid-argument failure.
	ErrParameter = &Error{Kind: KindParameter}

	// ErrType matches any wrong-kind or unexpected-null failure.
	ErrType = &Error{Kind: KindType}

	// ErrFormat matches any lexical/content rule failure.
	ErrFormat = &Error{Kind: KindFormat}

	// ErrParse matches any external decode failure.
	ErrParse = &Error{Kind: KindParse}

	// ErrSize matches any collection length failure.
	ErrSize = &Error{Kind: KindSize}

	// ErrKeyNotFound matches any failed lookup by key.
	ErrKeyNotFound = &Error{Kind: KindKeyNotFound}

	// ErrIndexOutOfRange matches any failed positional lookup.
	ErrIndexOutOfRange = &Error{Kind: KindIndexOutOfRange}

	// ErrValueOutOfRange matches any threshold violation.
	ErrValueOutOfRange = &Error{Kind: KindValueOutOfRange}
)

// NewGeneralError creates a new Error with KindGeneral.
func NewGeneralError(op, path, message string) *Error {
	return New(op, KindGeneral, path, message)
}

// NewParameterError creates a new Error with KindParameter.
func NewParameterError(op, path, message string) *Error {
	return New(op, KindParameter, path, message)
}

// NewTypeError creates a new Error with KindType.
func NewTypeError(op, path, message string) *Error {
	return New(op, KindType, path, message)
}

// NewFormatError creates a new Error with KindFormat.
func NewFormatError(op, path, message string) *Error {
	return New(op, KindFormat, path, message)
}

// NewParseError creates a new Error with KindParse.
func NewParseError(op, path, message string) *Error {
	return New(op, KindParse, path, message)
}

// NewSizeError creates a new Error with KindSize.
func NewSizeError(op, path, message string) *Error {
	return New(op, KindSize, path, message)
}

// NewKeyNotFoundError creates a new Error with KindKeyNotFound.
func NewKeyNotFoundError(op, path, message string) *Error {
	return New(op, KindKeyNotFound, path, message)
}

// NewIndexOutOfRangeError creates a new Error with KindIndexOutOfRange.
func NewIndexOutOfRangeError(op, path, message string) *Error {
	return New(op, KindIndexOutOfRange, path, message)
}

// NewValueOutOfRangeError creates a new Error with KindValueOutOfRange.
func NewValueOutOfRangeError(op, path, message string) *Error {
	return New(op, KindValueOutOfRange, path, message)
}
