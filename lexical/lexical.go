// Package lexical implements the strict text grammars used by string
// conversion and charset validation.
//
// The grammars are deliberately narrower than what strconv accepts: no
// exponents, no leading "+", no redundant leading zeros, no bare leading
// decimal point. They describe the canonical textual forms of integers and
// decimal numbers as they appear in configuration values and wire payloads.
package lexical

import "strings"

// IsStrictInteger reports whether s is a strict integer literal: an
// optional leading '-', then either the single digit "0" or a nonzero
// digit followed by any digits. "-0" is accepted and denotes zero.
func IsStrictInteger(s string) bool {
	rest, ok := integerPart(trimSign(s))
	return ok && rest == ""
}

// IsStrictNumeric reports whether s is a strict numeric literal: a strict
// integer part optionally followed by '.' and one or more digits. A bare
// leading '.' is rejected.
func IsStrictNumeric(s string) bool {
	rest, ok := integerPart(trimSign(s))
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	if rest[0] != '.' || len(rest) == 1 {
		return false
	}
	for i := 1; i < len(rest); i++ {
		if !isDigit(rest[i]) {
			return false
		}
	}
	return true
}

// ValidateCharset reports whether every character of text is present in
// the allowed-character table. The empty text is vacuously valid.
func ValidateCharset(text, charTable string) bool {
	for _, r := range text {
		if !strings.ContainsRune(charTable, r) {
			return false
		}
	}
	return true
}

func trimSign(s string) string {
	if len(s) > 1 && s[0] == '-' {
		return s[1:]
	}
	return s
}

// integerPart consumes a no-redundant-leading-zero digit run from the
// front of s and returns the remainder. It fails on an empty run and on a
// '0' followed by more digits.
func integerPart(s string) (rest string, ok bool) {
	if s == "" || !isDigit(s[0]) {
		return "", false
	}
	if s[0] == '0' {
		if len(s) > 1 && isDigit(s[1]) {
			return "", false
		}
		return s[1:], true
	}
	i := 1
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[i:], true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
