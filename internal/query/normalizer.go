// Package query implements the search query compiler: it turns one
// free-text catalog search string into numeric range filters, semantic
// exact-match filters, and a boolean tsquery string for the full-text
// backend. Every function here is pure and safe for concurrent use; the
// only shared state is the read-only vocabulary in vocabulary.go.
package query

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks removes combining diacritical marks so accented spellings
// compare equal (goto == gotō). The kana voicing marks U+3099/U+309A are
// kept; dropping them would fold voiced kana into their base characters.
var stripMarks = runes.Remove(runes.Predicate(func(r rune) bool {
	if r == '゙' || r == '゚' {
		return false
	}
	return unicode.Is(unicode.Mn, r)
}))

// Normalize canonicalizes raw search input: compatibility forms folded
// (fullwidth ASCII to halfwidth, halfwidth kana to fullwidth), diacritics
// stripped, lower-cased, whitespace runs collapsed to single spaces and
// trimmed. Idempotent; always returns a string, possibly empty.
func Normalize(s string) string {
	// The transform chain is stateful, so build it per call rather than
	// sharing one across goroutines.
	chain := transform.Chain(norm.NFKD, stripMarks, norm.NFKC)
	if folded, _, err := transform.String(chain, s); err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// denseScripts are scripts where a single character can be a complete,
// meaningful search term, exempting it from the minimum term length.
var denseScripts = []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana}

// HasDenseScript reports whether s contains at least one CJK ideograph or
// kana character.
func HasDenseScript(s string) bool {
	for _, r := range s {
		if unicode.IsOneOf(denseScripts, r) {
			return true
		}
	}
	return false
}

// searchable reports whether a term is long enough to search on: at least
// min runes, or any length when it carries dense-script characters.
func searchable(term string, min int) bool {
	return utf8.RuneCountInString(term) >= min || HasDenseScript(term)
}
