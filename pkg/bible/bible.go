// Package bible defines the immutable verse corpus the rest of the
// application reads from.
package bible

import "fmt"

// Testament tags a book as belonging to the old or new testament.
type Testament string

const (
	OldTestament Testament = "old"
	NewTestament Testament = "new"
)

// Book describes one book of the corpus.
type Book struct {
	Name      string    `json:"name"`
	Chapters  int       `json:"chapters"`
	Testament Testament `json:"testament"`
}

// Verse is a single verse. Identity is (Book, Chapter, Verse); ID is a
// stable surrogate key assigned at load time when the data omits one.
type Verse struct {
	ID      int    `json:"id"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
}

// Ref identifies a verse without its text, e.g. for note links.
type Ref struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

// Ref returns the verse's reference triple.
func (v Verse) Ref() Ref {
	return Ref{Book: v.Book, Chapter: v.Chapter, Verse: v.Verse}
}

// Reference renders the human form, e.g. "Genesis 1:1".
func (v Verse) Reference() string {
	return fmt.Sprintf("%s %d:%d", v.Book, v.Chapter, v.Verse)
}

func (r Ref) String() string {
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.Verse)
}

// Reader is the read-only corpus contract consumed by selectors and
// document operations. Implementations load once and never mutate.
type Reader interface {
	Verses() []Verse
	Books() []Book
}
