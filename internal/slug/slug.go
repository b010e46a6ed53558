// Package slug derives URL-safe identifiers from post titles.
//
// Latin letters with diacritics are transliterated to their base letter
// (é to e, ß to ss), apostrophes are dropped, and every other run of
// characters outside [a-z0-9] collapses into a single hyphen. Characters
// from non-Latin scripts have no ASCII form here and are stripped.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the words of a slug.
const Separator = '-'

var pattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// folds covers lowercase letters that have no canonical decomposition.
var folds = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
	'ı': "i",
}

// Derive maps a title to its slug. It never fails; a title with no
// transliterable characters derives to the empty string.
func Derive(title string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, title)
	if err != nil {
		folded = title
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false

	write := func(s string) {
		if pendingSep && b.Len() > 0 {
			b.WriteRune(Separator)
		}
		pendingSep = false
		b.WriteString(s)
	}

	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			write(string(r))
		case r == '\'' || r == '’':
			// dropped without splitting the word
		default:
			if f, ok := folds[r]; ok {
				write(f)
				continue
			}
			pendingSep = true
		}
	}

	return b.String()
}

// Valid reports whether s is a well-formed, non-empty slug.
func Valid(s string) bool {
	return pattern.MatchString(s)
}
