package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MinWordLength is the minimum number of runes in a word.
const MinWordLength = 3

// Tokenize returns the words of text in order of appearance.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, norm.NFC.String(text))

	fields := strings.Fields(cleaned)
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) < MinWordLength {
			continue
		}
		if IsStopWord(f) {
			continue
		}
		words = append(words, f)
	}
	return words
}
