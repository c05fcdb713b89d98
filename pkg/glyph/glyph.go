// Package glyph maps note categories and achievements to terminal
// symbols and provides the raw ANSI style helpers the block renderer
// composes.
package glyph

import "fmt"

// Glyph pairs a symbol with its meaning for legend output.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	italicCode    = 3
	underlineCode = 4
	strikeCode    = 9
)

func wrap(code int, in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, code, in, escape, resetCode)
}

// Bold wraps in with the ANSI bold attribute.
func Bold(in string) string { return wrap(boldCode, in) }

// Italic wraps in with the ANSI italic attribute.
func Italic(in string) string { return wrap(italicCode, in) }

// Underline wraps in with the ANSI underline attribute.
func Underline(in string) string { return wrap(underlineCode, in) }

// Strike wraps in with the ANSI strikethrough attribute.
func Strike(in string) string { return wrap(strikeCode, in) }

// CategoryGlyphs returns the legend for note categories.
func CategoryGlyphs() []Glyph {
	return []Glyph{
		{Key: "note", Symbol: "⁃", Meaning: "note"},
		{Key: "dream", Symbol: "☾", Meaning: "dream"},
		{Key: "revelation", Symbol: "✷", Meaning: "revelation"},
		{Key: "reminder", Symbol: "◷", Meaning: "reminder"},
	}
}

// CategorySymbol returns the symbol for a category key, or the note
// symbol for unknown keys.
func CategorySymbol(key string) string {
	for _, g := range CategoryGlyphs() {
		if g.Key == key {
			return g.Symbol
		}
	}
	return "⁃"
}

// BlockGlyphs returns the legend for block kinds as shown in note
// listings.
func BlockGlyphs() []Glyph {
	return []Glyph{
		{Key: "text", Symbol: "¶", Meaning: "text block"},
		{Key: "verse", Symbol: "❝", Meaning: "verse quotation"},
		{Key: "divider", Symbol: "─", Meaning: "divider"},
	}
}

// AchievementSymbol marks unlocked vs locked achievements.
func AchievementSymbol(unlocked bool) string {
	if unlocked {
		return "★"
	}
	return "☆"
}
