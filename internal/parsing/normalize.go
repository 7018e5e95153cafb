// Package parsing provides text normalization and tokenization for resume and job-description analysis.
package parsing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// allowedPunctuation lists the non-word characters that survive normalization
const allowedPunctuation = `.,;:()[]{}'"?!@#$%^&*+=-`

// Normalize lowercases text, drops every character that is not a word
// character, whitespace or allowed punctuation, collapses whitespace runs to
// a single space and trims both ends.
//
// Compatibility characters (ligatures and full-width forms produced by PDF
// extraction) are folded with NFKC first. Normalize never fails: empty or
// non-text input yields the empty string, and Normalize(Normalize(s)) ==
// Normalize(s) for every s.
func Normalize(text string) string {
	out := normalizeOnce(text)
	// Dropping a character can leave composable neighbours adjacent (Hangul
	// jamo around a stray mark), so repeat until the output is stable.
	for {
		next := normalizeOnce(out)
		if next == out {
			return out
		}
		out = next
	}
}

func normalizeOnce(text string) string {
	if text == "" {
		return ""
	}

	text = norm.NFKC.String(text)
	// Casers carry state and must not be shared between goroutines
	text = cases.Lower(language.Und).String(text)

	var sb strings.Builder
	sb.Grow(len(text))
	pendingSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = sb.Len() > 0
		case isWordRune(r) || strings.ContainsRune(allowedPunctuation, r):
			if pendingSpace {
				sb.WriteByte(' ')
				pendingSpace = false
			}
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// isWordRune reports whether r is a word character (letter, number or underscore)
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
