package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// spaceClass matches ASCII whitespace, vertical tab, Unicode separators
// (NBSP, thin space, line separators) and the zero-width no-break space
const spaceClass = `\s\v\p{Z}\x{FEFF}`

// Package-level compiled regex patterns for performance
var (
	punctuationRegex = regexp.MustCompile(`[^\w` + spaceClass + `]`)
	whitespaceRegex  = regexp.MustCompile(`[` + spaceClass + `]+`)
)

// minKeywordLength is the length a token must exceed to count as a keyword
const minKeywordLength = 2

// Normalize canonicalizes a product name for comparison: lower-case,
// drop everything that is not an ASCII word character or whitespace,
// collapse whitespace runs and trim. Normalize(Normalize(s)) == Normalize(s).
func Normalize(name string) string {
	s := foldCase(name)
	s = punctuationRegex.ReplaceAllString(s, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Keywords returns the significant tokens of a product name, in order.
// Duplicates are kept.
func Keywords(name string) []string {
	return keywordsOf(Normalize(name))
}

func keywordsOf(normalized string) []string {
	var keywords []string
	for _, token := range strings.Fields(normalized) {
		if len(token) > minKeywordLength {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// foldCase lower-cases s. A Caser keeps state, so one is built per call.
func foldCase(s string) string {
	return cases.Lower(language.Und).String(s)
}
