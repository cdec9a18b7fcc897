package triviaservice

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// normalize case-folds s and drops every whitespace rune, so "Crafting Table"
// and "craftingtable" compare equal.
func normalize(s string) string {
	folded := cases.Fold().String(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, folded)
}

// foldEqual compares case-insensitively without touching whitespace.
func foldEqual(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
