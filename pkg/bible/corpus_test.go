package bible

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fixtureCorpus() *Corpus {
	books := []Book{
		{Name: "Бытие", Chapters: 2, Testament: OldTestament},
		{Name: "Псалтирь", Chapters: 1, Testament: OldTestament},
	}
	verses := []Verse{
		{Book: "Бытие", Chapter: 1, Verse: 2, Text: "Земля же была"},
		{Book: "Бытие", Chapter: 1, Verse: 1, Text: "В начале"},
		{Book: "Бытие", Chapter: 2, Verse: 1, Text: "Так совершены"},
		{Book: "Псалтирь", Chapter: 1, Verse: 1, Text: "Блажен муж"},
	}
	return New(books, verses)
}

func TestNewAssignsIDs(t *testing.T) {
	c := fixtureCorpus()
	seen := make(map[int]bool)
	for _, v := range c.Verses() {
		if v.ID == 0 {
			t.Fatalf("verse %v missing id", v)
		}
		if seen[v.ID] {
			t.Fatalf("duplicate id %d", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestBookLookup(t *testing.T) {
	c := fixtureCorpus()
	b, ok := c.Book("Псалтирь")
	if !ok || b.Chapters != 1 {
		t.Fatalf("lookup failed: %v %v", b, ok)
	}
	if _, ok := c.Book("Нет"); ok {
		t.Fatalf("expected miss")
	}
}

func TestBookContaining(t *testing.T) {
	c := fixtureCorpus()
	b, ok := c.BookContaining("Псал", "Psal")
	if !ok || b.Name != "Псалтирь" {
		t.Fatalf("substring lookup failed: %v %v", b, ok)
	}
	if _, ok := c.BookContaining("Притч"); ok {
		t.Fatalf("expected miss")
	}
}

func TestChapterVersesSorted(t *testing.T) {
	c := fixtureCorpus()
	got := c.ChapterVerses("Бытие", 1)
	if len(got) != 2 {
		t.Fatalf("expected 2 verses, got %d", len(got))
	}
	if got[0].Verse != 1 || got[1].Verse != 2 {
		t.Fatalf("not sorted: %v", got)
	}
}

func TestFindVerse(t *testing.T) {
	c := fixtureCorpus()
	v, ok := c.FindVerse("Бытие", 2, 1)
	if !ok || v.Text != "Так совершены" {
		t.Fatalf("find failed: %v %v", v, ok)
	}
	if _, ok := c.FindVerse("Бытие", 9, 9); ok {
		t.Fatalf("expected miss")
	}
}

func TestNilCorpusIsEmpty(t *testing.T) {
	var c *Corpus
	if got := c.Verses(); got != nil {
		t.Fatalf("expected nil verses, got %v", got)
	}
	if _, ok := c.BookContaining("Псал"); ok {
		t.Fatalf("expected miss on nil corpus")
	}
	if got := c.ChapterVerses("Бытие", 1); got != nil {
		t.Fatalf("expected nil chapter, got %v", got)
	}
}

func TestOpenMissingRoot(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatalf("expected error")
	}
	var ce *CorpusError
	if !errors.As(err, &ce) || ce.Kind != FileError {
		t.Fatalf("expected file error, got %v", err)
	}
}

func TestOpenRejectsOutOfRangeVerse(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("books.json", `[{"name":"Бытие","chapters":1,"testament":"old"}]`)
	write("verses.json", `[{"book":"Бытие","chapter":0,"verse":1,"text":"x"}]`)

	_, err := Open(dir)
	if err == nil {
		t.Fatalf("expected error")
	}
	var ce *CorpusError
	if !errors.As(err, &ce) || ce.Kind != RangeError {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestOpenLoadsCorpus(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	write("books.json", `[{"name":"Бытие","chapters":1,"testament":"old"}]`)
	write("verses.json", `[{"book":"Бытие","chapter":1,"verse":1,"text":"В начале"}]`)

	c, err := Open(dir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if len(c.Verses()) != 1 {
		t.Fatalf("expected 1 verse, got %d", len(c.Verses()))
	}
}
