// Package valueobject contains domain value objects for the BankFlow system.
package valueobject

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so "Notaría"
// normalizes the same as "Notaria".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText lower-cases, strips diacritics and trims whitespace.
// Total: any input yields a (possibly empty) string, never an error.
func NormalizeText(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ContainsAnyKeyword reports whether the normalized form of s contains
// any of the given keywords as a substring. Keywords are expected to be
// pre-normalized (lower-case, no diacritics).
func ContainsAnyKeyword(s string, keywords []string) bool {
	normalized := NormalizeText(s)
	for _, k := range keywords {
		if k != "" && strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}
