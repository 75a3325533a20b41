package sanitize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizedText holds the two canonical forms of an input string used for
// forbidden-phrase matching. Spaced keeps token boundaries (single spaces),
// Collapsed removes them entirely so that punctuation or whitespace inserted
// inside a phrase cannot defeat a match.
type NormalizedText struct {
	Spaced    string
	Collapsed string
}

// foldCompat decomposes to NFKD and strips combining marks before
// recomposing, so both diacritics and compatibility variants collapse to
// plain ASCII: "pneumonía" and full-width "ｐｎｅｕｍｏｎｉａ" normalize the
// same as "pneumonia".
var foldCompat = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFKC)

// Normalize produces both canonical forms of the input. Fold first, then
// lowercase (full-width capitals only become ASCII capitals after folding),
// then map every rune outside [a-z0-9] to a space and collapse whitespace
// runs. Pure; no shared state.
func Normalize(input string) NormalizedText {
	folded, _, err := transform.String(foldCompat, input)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; fall back to the
		// raw input for anything it rejects.
		folded = input
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	lastSpace := true // leading spaces are trimmed
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	spaced := strings.TrimRight(b.String(), " ")
	collapsed := strings.ReplaceAll(spaced, " ", "")

	return NormalizedText{Spaced: spaced, Collapsed: collapsed}
}
