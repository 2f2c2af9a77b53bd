package tokenize

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopWords holds lower-cased words that never reach the word cloud.
// Entries shorter than MinWordLength are kept so IsStopWord answers for them
// too, even though Tokenize drops them by length first.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "that": {}, "this": {},
	"you": {}, "your": {}, "for": {}, "are": {}, "was": {},
	"have": {}, "from": {},
	"אני": {}, "אתה": {}, "את": {}, "זה": {}, "של": {},
	"עם": {}, "על": {}, "מה": {}, "איך": {}, "כן": {},
	"לא": {}, "יותר": {}, "כל": {}, "כמו": {},
	"to": {}, "in": {}, "of": {}, "a": {}, "an": {},
	"it": {}, "is": {}, "be": {}, "as": {}, "at": {}, "or": {},
}

// IsStopWord reports whether w, compared case-insensitively, is a stop word.
func IsStopWord(w string) bool {
	_, ok := stopWords[cases.Lower(language.Und).String(w)]
	return ok
}
