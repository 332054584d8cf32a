package match

import (
	"slices"
	"strings"
	"unicode"
)

// IsAccessorName reports whether a method name looks like a value accessor:
// a leading "get" token or any "value" token qualifies.
func IsAccessorName(name string) bool {
	tokens := TokenizeIdent(name)
	if len(tokens) == 0 {
		return false
	}

	if tokens[0] == "get" {
		return true
	}

	return slices.Contains(tokens, "value")
}

// TokenizeIdent splits an identifier into lowercase word tokens. Words
// break at _, - and space separators and at case boundaries, with
// acronyms kept whole: "PlacedAt" gives [placed at], "CustomerID" gives
// [customer id] and "getSKUValue" gives [get sku value].
func TokenizeIdent(s string) []string {
	var tokens []string

	for _, word := range splitWords(s) {
		tokens = append(tokens, strings.ToLower(word))
	}

	return tokens
}

// splitWords cuts an identifier at separators and case boundaries. A word
// starts on an upper rune following a non-upper one, and on the last
// upper rune of an acronym run when a lower rune comes next.
func splitWords(s string) []string {
	runes := []rune(s)

	var words []string

	start := -1 // start of the word being scanned, -1 between words

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}

		start = -1
	}

	for i, r := range runes {
		if isWordSep(r) {
			flush(i)
			continue
		}

		if start < 0 {
			start = i
			continue
		}

		if wordBoundary(runes, i) {
			flush(i)
			start = i
		}
	}

	flush(len(runes))

	return words
}

func isWordSep(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// wordBoundary reports whether a new word starts at runes[i], given that
// runes[i-1] belongs to the word being scanned.
func wordBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
