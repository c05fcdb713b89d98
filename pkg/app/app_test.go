package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/block"
	"tableflip.dev/selah/pkg/daily"
	"tableflip.dev/selah/pkg/note"
	"tableflip.dev/selah/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func testService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	books := []bible.Book{
		{Name: "Бытие", Chapters: 2, Testament: bible.OldTestament},
		{Name: "Псалтирь", Chapters: 3, Testament: bible.OldTestament},
		{Name: "Притчи", Chapters: 3, Testament: bible.OldTestament},
	}
	var verses []bible.Verse
	for _, b := range books {
		for ch := 1; ch <= b.Chapters; ch++ {
			for v := 1; v <= 3; v++ {
				verses = append(verses, bible.Verse{
					Book:    b.Name,
					Chapter: ch,
					Verse:   v,
					Text:    fmt.Sprintf("%s %d:%d текст", b.Name, ch, v),
				})
			}
		}
	}

	return &Service{Persistence: p, Corpus: bible.New(books, verses)}
}

func TestPatternRoundTrip(t *testing.T) {
	svc := testService(t)

	if svc.Pattern() != nil {
		t.Fatalf("expected no pattern on a fresh store")
	}

	want := daily.Pattern{BookName: "Псалтирь", ChapterOverride: 2, Label: "псалом дня"}
	if err := svc.SetPattern(want); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	got := svc.Pattern()
	if got == nil || *got != want {
		t.Fatalf("pattern round trip: %#v", got)
	}

	if err := svc.ClearPattern(); err != nil {
		t.Fatalf("clear pattern: %v", err)
	}
	if svc.Pattern() != nil {
		t.Fatalf("expected pattern cleared")
	}
}

func TestMarkReadRecordsHistoryAndUnlocks(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()
	date := time.Now()

	if svc.IsRead(date) {
		t.Fatalf("fresh store must not be read")
	}

	reading, unlocked, err := svc.MarkRead(ctx, date)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if reading.VerseOfDay.Text == "" {
		t.Fatalf("reading missing verse of day")
	}
	if !svc.IsRead(date) {
		t.Fatalf("date not recorded as read")
	}

	found := false
	for _, a := range unlocked {
		if a.ID == "first-read" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected first-read unlock, got %v", unlocked)
	}

	// Marking the same day again rewrites in place and unlocks nothing.
	_, again, err := svc.MarkRead(ctx, date)
	if err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected idempotent unlock, got %v", again)
	}
	if stats := svc.Stats(ctx); stats.TotalReads != 1 {
		t.Fatalf("expected 1 read, got %d", stats.TotalReads)
	}
}

func TestStatsStreak(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 3; i++ {
		if _, _, err := svc.MarkRead(ctx, now.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("mark read: %v", err)
		}
	}

	stats := svc.Stats(ctx)
	if stats.TotalReads != 3 {
		t.Fatalf("expected 3 reads, got %d", stats.TotalReads)
	}
	if stats.CurrentStreak != 3 {
		t.Fatalf("expected streak 3, got %d", stats.CurrentStreak)
	}
	if stats.UniquePsalmsRead == 0 {
		t.Fatalf("expected psalms recorded in history")
	}
}

func TestSaveVerseBumpsCounter(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	v, ok := svc.Corpus.FindVerse("Бытие", 1, 1)
	if !ok {
		t.Fatalf("fixture verse missing")
	}

	e, err := svc.SaveVerse(v, block.BoxGold)
	if err != nil {
		t.Fatalf("save verse: %v", err)
	}
	if len(e.LinkedVerses) != 1 || e.LinkedVerses[0] != v.Ref() {
		t.Fatalf("verse not linked: %v", e.LinkedVerses)
	}

	doc := e.Document()
	foundQuote := false
	for _, b := range doc {
		if vb, ok := b.(*block.VerseBlock); ok {
			foundQuote = true
			if vb.Quote.Book != "Бытие" || vb.Quote.VerseStart != 1 {
				t.Fatalf("unexpected quote %#v", vb.Quote)
			}
		}
	}
	if !foundQuote {
		t.Fatalf("document missing verse block: %#v", doc)
	}

	if stats := svc.Stats(ctx); stats.SavedFromReading != 1 {
		t.Fatalf("expected counter 1, got %d", stats.SavedFromReading)
	}

	if _, err := svc.SaveVerse(v, block.BoxGold); err != nil {
		t.Fatalf("save again: %v", err)
	}
	if stats := svc.Stats(ctx); stats.SavedFromReading != 2 {
		t.Fatalf("expected counter 2, got %d", stats.SavedFromReading)
	}
}

func TestSearchMatchesAllKeywords(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if _, err := svc.AddNote("Молитва утренняя", "о мире и покое", note.CategoryNote); err != nil {
		t.Fatalf("add note: %v", err)
	}
	if _, err := svc.AddNote("Вечер", "другая запись", note.CategoryNote); err != nil {
		t.Fatalf("add note: %v", err)
	}

	got, err := svc.Search(ctx, "молитва мире")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Молитва утренняя" {
		t.Fatalf("unexpected search result: %v", got)
	}

	got, err = svc.Search(ctx, "молитва запись")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no note matching both keywords, got %v", got)
	}
}

func TestPatternUnlocksSeeker(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	if err := svc.SetPattern(daily.Pattern{BookName: "Псалтирь"}); err != nil {
		t.Fatalf("set pattern: %v", err)
	}
	if _, unlocked, err := svc.MarkRead(ctx, time.Now()); err != nil {
		t.Fatalf("mark read: %v", err)
	} else {
		found := false
		for _, a := range unlocked {
			if a.ID == "pattern-seeker" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected pattern-seeker unlock, got %v", unlocked)
		}
	}
	if !svc.Unlocked()["pattern-seeker"] {
		t.Fatalf("unlock not persisted")
	}
}
