package note

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Russian stopwords excluded from search keywords.
var stopwords = map[string]bool{
	"и": true, "в": true, "на": true, "о": true, "с": true, "к": true,
	"по": true, "за": true, "из": true, "не": true, "что": true,
	"как": true, "это": true, "для": true, "но": true, "от": true,
	"при": true, "его": true, "она": true, "они": true, "мы": true,
	"то": true, "бы": true, "было": true, "был": true, "быть": true,
	"все": true, "так": true, "же": true, "уже": true, "ещё": true,
	"ни": true, "мне": true, "мой": true, "моя": true, "моё": true,
	"тот": true, "эта": true,
}

// Keywords extracts searchable words from a title: lowercase, punctuation
// stripped, longer than three letters, and not a stopword.
func Keywords(title string) []string {
	lowered := strings.ToLower(title)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lowered)

	var out []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) > 3 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}
