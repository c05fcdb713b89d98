package note

import (
	"reflect"
	"strings"
	"testing"

	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/block"
)

func TestKeywords(t *testing.T) {
	got := Keywords("Молитва утренняя, о мире!")
	want := []string{"молитва", "утренняя", "мире"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keywords = %v, want %v", got, want)
	}
}

func TestKeywordsShortAndStopwordsExcluded(t *testing.T) {
	got := Keywords("это было так: сон про небо")
	for _, w := range got {
		if w == "это" || w == "было" || w == "так" || w == "сон" {
			t.Fatalf("unexpected keyword %q in %v", w, got)
		}
	}
}

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want Category
	}{
		{"dream", CategoryDream},
		{" Revelation ", CategoryRevelation},
		{"reminder", CategoryReminder},
		{"", CategoryNote},
		{"bogus", CategoryNote},
	}
	for _, c := range cases {
		if got := ParseCategory(c.in); got != c.want {
			t.Fatalf("ParseCategory(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewEntryHasDocument(t *testing.T) {
	e := New("Утро", CategoryNote, Now())
	if e.ID == "" {
		t.Fatalf("missing id")
	}
	if strings.Contains(e.ID, "-") {
		t.Fatalf("id %q must be dash-free", e.ID)
	}
	doc := e.Document()
	if len(doc) != 1 {
		t.Fatalf("expected single empty block, got %d", len(doc))
	}
}

func TestSetDocumentRoundTrip(t *testing.T) {
	e := New("Утро", CategoryNote, Now())
	doc := block.Document{
		&block.TextBlock{ID: "t1", Content: "привет"},
		&block.DividerBlock{ID: "d1"},
	}
	if err := e.SetDocument(doc); err != nil {
		t.Fatalf("set document: %v", err)
	}
	got := e.Document()
	if len(got) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got))
	}
	if got[0].(*block.TextBlock).Content != "привет" {
		t.Fatalf("content lost")
	}
}

func TestLinkVerseDedupes(t *testing.T) {
	e := New("x", CategoryNote, Now())
	ref := bible.Ref{Book: "Бытие", Chapter: 1, Verse: 1}
	e.LinkVerse(ref)
	e.LinkVerse(ref)
	e.LinkVerse(bible.Ref{Book: "Бытие", Chapter: 1, Verse: 2})
	if len(e.LinkedVerses) != 2 {
		t.Fatalf("expected 2 refs, got %v", e.LinkedVerses)
	}
}
