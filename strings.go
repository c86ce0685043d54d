package treeval

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"

	"github.com/treeval/treeval/checkerr"
	"github.com/treeval/treeval/kind"
	"github.com/treeval/treeval/lexical"
)

// StringValidate asserts that every character of the wrapped string is
// present in charTable. A null value passes vacuously.
func (n *Node) StringValidate(charTable string) *Node {
	const op = "Node.StringValidate"
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	s := n.value.(string)
	if !lexical.ValidateCharset(s, charTable) {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q contains characters outside the allowed set", s)))
	}
	return n
}

// StringValidateByRegExp asserts that the whole wrapped string matches
// pattern. A nil pattern is a parameter error; a null value passes
// vacuously.
func (n *Node) StringValidateByRegExp(pattern *regexp.Regexp) *Node {
	const op = "Node.StringValidateByRegExp"
	if n.err != nil {
		return n
	}
	if pattern == nil {
		return n.fail(checkerr.NewParameterError(op, n.path, "pattern is nil"))
	}
	if n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	s := n.value.(string)
	// The match must cover the whole string, so re-anchor the pattern. A
	// pattern that compiled once compiles wrapped as well.
	full, err := regexp.Compile(`\A(?:` + pattern.String() + `)\z`)
	if err != nil {
		return n.fail(checkerr.NewParameterError(op, n.path, "pattern cannot be anchored").WithCause(err))
	}
	if !full.MatchString(s) {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q does not match pattern %q", s, pattern.String())))
	}
	return n
}

// StringValidateUUID asserts that the wrapped string is a valid UUID
// textual form. A null value passes vacuously.
func (n *Node) StringValidateUUID() *Node {
	const op = "Node.StringValidateUUID"
	if n.err != nil || n.IsNull() {
		return n
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	s := n.value.(string)
	if _, err := uuid.Parse(s); err != nil {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q is not a valid UUID", s)).WithCause(err))
	}
	return n
}

// StringToInteger parses the wrapped string as a strict integer literal
// (optional leading '-', no redundant leading zeros; "-0" denotes zero)
// and returns a new node wrapping the parsed int64, path extended with
// [str->int]. The value must be a non-null string.
func (n *Node) StringToInteger() *Node {
	const op = "Node.StringToInteger"
	if n.err != nil {
		return n
	}
	if n.NotNull().err != nil {
		return n
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	s := n.value.(string)
	if !lexical.IsStrictInteger(s) {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q is not a strict integer", s)))
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q does not fit an int64", s)).WithCause(err))
	}
	return n.newChild(v, "[str->int]")
}

// StringToFloat parses the wrapped string as a strict numeric literal (a
// strict integer part, optionally '.' and one or more digits; a bare
// leading '.' is rejected) and returns a new node wrapping the parsed
// float64, path extended with [str->float]. The value must be a non-null
// string.
func (n *Node) StringToFloat() *Node {
	const op = "Node.StringToFloat"
	if n.err != nil {
		return n
	}
	if n.NotNull().err != nil {
		return n
	}
	if n.typeOf(op, kind.String).err != nil {
		return n
	}
	s := n.value.(string)
	if !lexical.IsStrictNumeric(s) {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q is not a strict numeric literal", s)))
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return n.fail(checkerr.NewFormatError(op, n.path,
			fmt.Sprintf("%q does not fit a float64", s)).WithCause(err))
	}
	return n.newChild(v, "[str->float]")
}
