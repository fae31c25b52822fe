// Package stringext provides string helpers.
package stringext

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// ErrEmpty is returned by DecapitalizeStrict for an empty string.
var ErrEmpty = errors.New("stringext: empty string")

// Decapitalize lower-cases the first rune of s and leaves the rest as is.
// An empty string, or one starting with invalid UTF-8, is returned unchanged.
// The rune is mapped with unicode.ToLower, a simple one-to-one case mapping
// with no locale rules, so "İstanbul" becomes "istanbul".
//
// Example:
//
//	Decapitalize("Hello world") // "hello world"
func Decapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return s
	}
	return string(lower) + s[size:]
}

// DecapitalizeStrict is Decapitalize that rejects the empty string.
func DecapitalizeStrict(s string) (string, error) {
	if s == "" {
		return "", ErrEmpty
	}
	return Decapitalize(s), nil
}
