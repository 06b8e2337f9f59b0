package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and drops combining marks, so "píenas" and
// "pienas" collapse to the same bytes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases s and strips diacritics. Offer titles are stored
// pre-normalized with the same rules by the scraper pipeline, so matching
// stays accent- and case-insensitive as long as every query passes through
// here too. Runes the transform does not cover pass through unchanged;
// Normalize never fails.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
