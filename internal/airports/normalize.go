package airports

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func isCombiningMark(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
}

// Normalize folds s for comparison: NFKD, combining marks removed, lowercased.
func Normalize(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(isCombiningMark)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}
