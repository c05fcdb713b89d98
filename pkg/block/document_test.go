package block

import (
	"strings"
	"testing"

	"tableflip.dev/selah/pkg/bible"
)

func TestSerializeRoundTrip(t *testing.T) {
	doc := Document{
		&TextBlock{ID: "t1", Content: "Заметка", Ranges: []StyleRange{{Start: 0, End: 3, Bold: true}}},
		&VerseBlock{ID: "v1", BoxColor: "gold", Quote: VerseQuote{
			Book: "Бытие", Chapter: 1, VerseStart: 1, Text: "1. В начале",
		}},
		&DividerBlock{ID: "d1"},
	}

	raw, err := doc.Serialize()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}

	got := Deserialize(raw)
	if len(got) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(got))
	}

	tb, ok := got[0].(*TextBlock)
	if !ok {
		t.Fatalf("expected text block, got %T", got[0])
	}
	if tb.Content != "Заметка" {
		t.Fatalf("content lost: %q", tb.Content)
	}
	if len(tb.Ranges) != 1 || !tb.Ranges[0].Bold {
		t.Fatalf("ranges lost: %#v", tb.Ranges)
	}

	vb, ok := got[1].(*VerseBlock)
	if !ok {
		t.Fatalf("expected verse block, got %T", got[1])
	}
	if vb.Quote.Book != "Бытие" || vb.Quote.VerseStart != 1 {
		t.Fatalf("quote lost: %#v", vb.Quote)
	}

	if _, ok := got[2].(*DividerBlock); !ok {
		t.Fatalf("expected divider block, got %T", got[2])
	}
}

func TestDeserializeEmpty(t *testing.T) {
	doc := Deserialize("")
	if len(doc) != 1 {
		t.Fatalf("expected single block, got %d", len(doc))
	}
	tb, ok := doc[0].(*TextBlock)
	if !ok || tb.Content != "" {
		t.Fatalf("expected empty text block, got %#v", doc[0])
	}
}

func TestDeserializeLegacyPlainText(t *testing.T) {
	doc := Deserialize("просто старый текст")
	if len(doc) != 1 {
		t.Fatalf("expected single block, got %d", len(doc))
	}
	tb, ok := doc[0].(*TextBlock)
	if !ok {
		t.Fatalf("expected text block, got %T", doc[0])
	}
	if tb.Content != "просто старый текст" {
		t.Fatalf("legacy content lost: %q", tb.Content)
	}
}

func TestDeserializeUnknownBlockFallsBackToLegacy(t *testing.T) {
	raw := `[{"type":"text","id":"a","content":"hi"},{"type":"mystery","id":"b"}]`
	doc := Deserialize(raw)
	if len(doc) != 1 {
		t.Fatalf("expected whole string as one legacy block, got %d blocks", len(doc))
	}
	tb, ok := doc[0].(*TextBlock)
	if !ok {
		t.Fatalf("expected text block, got %T", doc[0])
	}
	if tb.Content != raw {
		t.Fatalf("expected raw preserved verbatim, got %q", tb.Content)
	}
}

func TestInsertAfterAppendsEmptyText(t *testing.T) {
	doc := NewDocument()
	anchor := doc[0].BlockID()

	doc = doc.InsertAfter(anchor, &DividerBlock{ID: "d1"})
	if len(doc) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc))
	}
	if doc[1].BlockID() != "d1" {
		t.Fatalf("divider not after anchor: %v", doc[1].BlockID())
	}
	tb, ok := doc[2].(*TextBlock)
	if !ok || tb.Content != "" {
		t.Fatalf("expected trailing empty text block, got %#v", doc[2])
	}
}

func TestInsertAfterUnknownAnchorAppends(t *testing.T) {
	doc := NewDocument().InsertAfter("missing", &DividerBlock{ID: "d1"})
	if len(doc) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc))
	}
	if doc[1].BlockID() != "d1" {
		t.Fatalf("expected divider appended, got %v", doc[1].BlockID())
	}
}

func TestRemoveLastTextBlockResets(t *testing.T) {
	doc := Document{
		&TextBlock{ID: "t1", Content: "x"},
		&DividerBlock{ID: "d1"},
	}
	doc = doc.Remove("t1")
	if len(doc) != 1 {
		t.Fatalf("expected reset document, got %d blocks", len(doc))
	}
	tb, ok := doc[0].(*TextBlock)
	if !ok || tb.Content != "" {
		t.Fatalf("expected fresh empty text block, got %#v", doc[0])
	}
}

func TestMoveOutOfBoundsNoOp(t *testing.T) {
	doc := Document{
		&TextBlock{ID: "t1"},
		&TextBlock{ID: "t2"},
	}
	moved := doc.Move(0, -1)
	if moved[0].BlockID() != "t1" || moved[1].BlockID() != "t2" {
		t.Fatalf("expected no-op move, got %v %v", moved[0].BlockID(), moved[1].BlockID())
	}
	moved = doc.Move(1, 1)
	if moved[0].BlockID() != "t1" || moved[1].BlockID() != "t2" {
		t.Fatalf("expected no-op move, got %v %v", moved[0].BlockID(), moved[1].BlockID())
	}
}

func TestMoveSwapsNeighbors(t *testing.T) {
	doc := Document{
		&TextBlock{ID: "t1"},
		&TextBlock{ID: "t2"},
	}
	moved := doc.Move(0, 1)
	if moved[0].BlockID() != "t2" || moved[1].BlockID() != "t1" {
		t.Fatalf("expected swap, got %v %v", moved[0].BlockID(), moved[1].BlockID())
	}
	// Source document untouched.
	if doc[0].BlockID() != "t1" {
		t.Fatalf("move mutated source document")
	}
}

func TestGroupVersesConsecutiveRuns(t *testing.T) {
	verses := []bible.Verse{
		{Book: "Бытие", Chapter: 1, Verse: 3, Text: "И сказал Бог"},
		{Book: "Бытие", Chapter: 1, Verse: 1, Text: "В начале"},
		{Book: "Бытие", Chapter: 1, Verse: 2, Text: "Земля же была"},
		{Book: "Бытие", Chapter: 2, Verse: 7, Text: "И создал Господь"},
	}

	blocks := GroupVerses(verses, "gold")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(blocks))
	}

	first, ok := blocks[0].(*VerseBlock)
	if !ok {
		t.Fatalf("expected verse block, got %T", blocks[0])
	}
	if first.Quote.VerseStart != 1 || first.Quote.VerseEnd != 3 {
		t.Fatalf("expected run 1-3, got %d-%d", first.Quote.VerseStart, first.Quote.VerseEnd)
	}
	if !strings.HasPrefix(first.Quote.Text, "1. В начале 2. ") {
		t.Fatalf("unexpected joined text: %q", first.Quote.Text)
	}

	second, ok := blocks[1].(*VerseBlock)
	if !ok {
		t.Fatalf("expected verse block, got %T", blocks[1])
	}
	if second.Quote.Chapter != 2 || second.Quote.VerseStart != 7 {
		t.Fatalf("expected single verse 2:7, got %#v", second.Quote)
	}
	if second.Quote.VerseEnd != 0 {
		t.Fatalf("single-verse run should not set VerseEnd, got %d", second.Quote.VerseEnd)
	}
}

func TestGroupVersesEmpty(t *testing.T) {
	if blocks := GroupVerses(nil, "gold"); blocks != nil {
		t.Fatalf("expected nil for empty selection, got %#v", blocks)
	}
}
