package bible

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Corpus is an in-memory, indexed verse collection. It implements Reader.
// All index maps are built once; a Corpus is safe for concurrent reads.
type Corpus struct {
	verses []Verse
	books  []Book

	booksByName  map[string]*Book
	versesByBook map[string][]Verse
}

// New builds a corpus directly from slices. Verses without an ID are
// assigned sequential ones in input order.
func New(books []Book, verses []Verse) *Corpus {
	c := &Corpus{
		verses:       make([]Verse, len(verses)),
		books:        make([]Book, len(books)),
		booksByName:  make(map[string]*Book, len(books)),
		versesByBook: make(map[string][]Verse),
	}
	copy(c.books, books)
	copy(c.verses, verses)
	for i := range c.verses {
		if c.verses[i].ID == 0 {
			c.verses[i].ID = i + 1
		}
	}
	for i := range c.books {
		c.booksByName[c.books[i].Name] = &c.books[i]
	}
	for _, v := range c.verses {
		c.versesByBook[v.Book] = append(c.versesByBook[v.Book], v)
	}
	return c
}

// Open loads a corpus from a data directory containing books.json and
// verses.json.
func Open(root string) (*Corpus, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, &CorpusError{Kind: FileError, Err: fmt.Errorf("%w: %v", ErrInvalidRoot, err)}
	}

	var books []Book
	if err := readJSON(filepath.Join(root, "books.json"), &books); err != nil {
		return nil, err
	}
	var verses []Verse
	if err := readJSON(filepath.Join(root, "verses.json"), &verses); err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return nil, &CorpusError{Kind: RangeError, Err: ErrNoVerses}
	}
	for _, v := range verses {
		if v.Chapter < 1 || v.Verse < 1 {
			return nil, &CorpusError{Kind: RangeError, Err: fmt.Errorf("verse %s %d:%d out of range", v.Book, v.Chapter, v.Verse)}
		}
	}
	return New(books, verses), nil
}

func readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &CorpusError{Kind: FileError, Err: err}
	}
	if err := json.Unmarshal(data, target); err != nil {
		return &CorpusError{Kind: ParseError, Err: fmt.Errorf("parse %s: %w", filepath.Base(path), err)}
	}
	return nil
}

// Verses returns all verses in canonical load order. A nil Corpus acts
// as an empty one, so callers without verse data still get well-formed
// (if empty) selections.
func (c *Corpus) Verses() []Verse {
	if c == nil {
		return nil
	}
	return c.verses
}

// Books returns all books.
func (c *Corpus) Books() []Book {
	if c == nil {
		return nil
	}
	return c.books
}

// Book looks up a book by exact name.
func (c *Corpus) Book(name string) (Book, bool) {
	if c == nil {
		return Book{}, false
	}
	if b, ok := c.booksByName[name]; ok {
		return *b, true
	}
	return Book{}, false
}

// BookContaining returns the first book whose name contains any of the
// given substrings. Lookup is substring-based so the same selectors work
// against corpora in different languages.
func (c *Corpus) BookContaining(substrs ...string) (Book, bool) {
	if c == nil {
		return Book{}, false
	}
	for _, b := range c.books {
		for _, s := range substrs {
			if s != "" && strings.Contains(b.Name, s) {
				return b, true
			}
		}
	}
	return Book{}, false
}

// ChapterVerses returns the verses of one chapter sorted by verse number.
func (c *Corpus) ChapterVerses(book string, chapter int) []Verse {
	if c == nil {
		return nil
	}
	var out []Verse
	for _, v := range c.versesByBook[book] {
		if v.Chapter == chapter {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Verse < out[j].Verse })
	return out
}

// FindVerse looks up a single verse by its identity triple.
func (c *Corpus) FindVerse(book string, chapter, verse int) (Verse, bool) {
	if c == nil {
		return Verse{}, false
	}
	for _, v := range c.versesByBook[book] {
		if v.Chapter == chapter && v.Verse == verse {
			return v, true
		}
	}
	return Verse{}, false
}
