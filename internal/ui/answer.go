package ui

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var upper = cases.Upper(language.German)

// normalizeWord is used for riddles, word guesses and the final password,
// which accept any letter case.
func normalizeWord(s string) string {
	return upper.String(norm.NFC.String(strings.TrimSpace(s)))
}

// normalizeCode keeps case: code answers are identifiers and literals.
func normalizeCode(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
