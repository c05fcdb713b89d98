package store

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/selah/pkg/daily"
	"tableflip.dev/selah/pkg/note"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func testStore(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestNoteRoundTrip(t *testing.T) {
	p := testStore(t)

	e := note.New("Утро", note.CategoryDream, note.Now())
	if err := p.StoreNote(e); err != nil {
		t.Fatalf("store note: %v", err)
	}

	got, err := p.Note(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if got.ID != e.ID || got.Title != "Утро" || got.Category != note.CategoryDream {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestNoteMissing(t *testing.T) {
	p := testStore(t)
	if _, err := p.Note(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreNoteRequiresID(t *testing.T) {
	p := testStore(t)
	if err := p.StoreNote(&note.Entry{Title: "x"}); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestNotesSortedNewestFirst(t *testing.T) {
	p := testStore(t)

	older := note.New("старая", note.CategoryNote, note.Now())
	older.Created.Time = older.Created.AddDate(0, 0, -2)
	newer := note.New("новая", note.CategoryNote, note.Now())

	if err := p.StoreNote(older); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.StoreNote(newer); err != nil {
		t.Fatalf("store: %v", err)
	}

	all := p.Notes(context.Background())
	if len(all) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(all))
	}
	if all[0].ID != newer.ID {
		t.Fatalf("expected newest first, got %q", all[0].Title)
	}
}

func TestDeleteNote(t *testing.T) {
	p := testStore(t)

	e := note.New("x", note.CategoryNote, note.Now())
	if err := p.StoreNote(e); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := p.DeleteNote(e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := p.Note(context.Background(), e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := p.DeleteNote(e.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second delete, got %v", err)
	}
}

func TestLegacyListShapedNote(t *testing.T) {
	p := testStore(t)

	e := note.New("x", note.CategoryNote, note.Now())
	if err := p.StoreNote(e); err != nil {
		t.Fatalf("store: %v", err)
	}

	// Rewrite the stored value as a one-element list, the shape early
	// exports used.
	inner := p.(*persistence)
	key, ok := inner.findNoteKey(e.ID)
	if !ok {
		t.Fatalf("key not found")
	}
	val, err := inner.d.Read(key)
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	if err := inner.d.Write(key, append(append([]byte("["), val...), ']')); err != nil {
		t.Fatalf("write raw: %v", err)
	}

	got, err := p.Note(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("read legacy note: %v", err)
	}
	if got.ID != e.ID {
		t.Fatalf("legacy shape lost id: %#v", got)
	}
}

func TestHistoryUpsert(t *testing.T) {
	p := testStore(t)

	if _, err := p.History("2026-03-02"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	rec := daily.Record{Date: "2026-03-02", ReadAt: note.Now(), VerseOfDay: "Бытие 1:1"}
	if err := p.MarkRead(rec); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	got, err := p.History("2026-03-02")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if got.VerseOfDay != "Бытие 1:1" {
		t.Fatalf("record mismatch: %#v", got)
	}

	// Re-reading the same day overwrites in place.
	rec.VerseOfDay = "Бытие 1:2"
	if err := p.MarkRead(rec); err != nil {
		t.Fatalf("mark read again: %v", err)
	}
	all := p.RecentHistory(context.Background(), 0)
	if len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}
	if all[0].VerseOfDay != "Бытие 1:2" {
		t.Fatalf("upsert lost: %#v", all[0])
	}
}

func TestRecentHistoryOrderAndLimit(t *testing.T) {
	p := testStore(t)

	for _, date := range []string{"2026-03-01", "2026-02-27", "2026-03-02"} {
		if err := p.MarkRead(daily.Record{Date: date}); err != nil {
			t.Fatalf("mark read %s: %v", date, err)
		}
	}

	all := p.RecentHistory(context.Background(), 0)
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	if all[0].Date != "2026-03-02" || all[2].Date != "2026-02-27" {
		t.Fatalf("unexpected order: %v", all)
	}

	limited := p.RecentHistory(context.Background(), 2)
	if len(limited) != 2 || limited[1].Date != "2026-03-01" {
		t.Fatalf("unexpected limited result: %v", limited)
	}
}

func TestMarkReadRequiresDate(t *testing.T) {
	p := testStore(t)
	if err := p.MarkRead(daily.Record{}); err == nil {
		t.Fatalf("expected error for missing date")
	}
}

func TestSettings(t *testing.T) {
	p := testStore(t)

	if _, ok := p.Setting("pattern"); ok {
		t.Fatalf("expected miss")
	}
	if err := p.SetSetting("pattern", `{"book":"Псалтирь"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok := p.Setting("pattern")
	if !ok || val != `{"book":"Псалтирь"}` {
		t.Fatalf("unexpected setting %q %v", val, ok)
	}

	if err := p.SetSetting("  ", "x"); err == nil {
		t.Fatalf("expected error for blank key")
	}
}
