package block

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/selah/pkg/bible"
)

// Document is an ordered block list. A well-formed document always
// contains at least one TextBlock; every mutating operation restores
// that invariant instead of reporting an error.
type Document []Block

// NewDocument returns a document holding a single empty text block.
func NewDocument() Document {
	return Document{&TextBlock{ID: NewID()}}
}

// Serialize encodes the document as a JSON array. It round-trips
// through Deserialize.
func (d Document) Serialize() (string, error) {
	data, err := json.Marshal([]Block(d))
	if err != nil {
		return "", fmt.Errorf("block: serialize: %w", err)
	}
	return string(data), nil
}

// Deserialize parses a persisted content string. Anything that is not a
// JSON array of recognized blocks is treated as legacy plain text and
// wrapped in a single text block. It never fails: data availability wins
// over strictness here.
func Deserialize(raw string) Document {
	legacy := func() Document {
		return Document{&TextBlock{ID: NewID(), Content: raw}}
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Document{&TextBlock{ID: NewID()}}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil || len(items) == 0 {
		return legacy()
	}
	doc := make(Document, 0, len(items))
	for _, item := range items {
		b, err := decodeBlock(item)
		if err != nil {
			// The duck-check failed somewhere in the array; the whole
			// string is legacy content.
			return legacy()
		}
		doc = append(doc, b)
	}
	return doc
}

// InsertAfter splices blocks immediately after the block with anchorID,
// or at the end when anchorID is empty or unknown. A fresh empty text
// block is added after the insertion so there is always a place to keep
// typing.
func (d Document) InsertAfter(anchorID string, blocks ...Block) Document {
	at := len(d)
	if anchorID != "" {
		for i, b := range d {
			if b.BlockID() == anchorID {
				at = i + 1
				break
			}
		}
	}

	insert := make([]Block, 0, len(blocks)+1)
	insert = append(insert, blocks...)
	insert = append(insert, &TextBlock{ID: NewID()})

	out := make(Document, 0, len(d)+len(insert))
	out = append(out, d[:at]...)
	out = append(out, insert...)
	out = append(out, d[at:]...)
	return out
}

// Remove deletes the block with the given id. Removing the last text
// block resets to a fresh empty document.
func (d Document) Remove(id string) Document {
	out := make(Document, 0, len(d))
	for _, b := range d {
		if b.BlockID() != id {
			out = append(out, b)
		}
	}
	if len(out) == 0 || !out.hasText() {
		return NewDocument()
	}
	return out
}

// Move swaps the block at index with its neighbor in the given
// direction (-1 or +1). Out-of-bounds moves return the document
// unchanged.
func (d Document) Move(index, direction int) Document {
	target := index + direction
	if index < 0 || index >= len(d) || target < 0 || target >= len(d) {
		return d
	}
	out := make(Document, len(d))
	copy(out, d)
	out[index], out[target] = out[target], out[index]
	return out
}

func (d Document) hasText() bool {
	for _, b := range d {
		if _, ok := b.(*TextBlock); ok {
			return true
		}
	}
	return false
}

// GroupVerses turns a verse selection into the minimal number of verse
// blocks: the selection is sorted by (book, chapter, verse) and split
// into maximal runs of consecutive verses within one chapter. Each run
// becomes a single block quoting "{verse}. {text}" per member.
func GroupVerses(selected []bible.Verse, color BoxColor) []Block {
	if len(selected) == 0 {
		return nil
	}
	verses := make([]bible.Verse, len(selected))
	copy(verses, selected)
	sort.Slice(verses, func(i, j int) bool {
		a, b := verses[i], verses[j]
		if a.Book != b.Book {
			return a.Book < b.Book
		}
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		return a.Verse < b.Verse
	})

	var out []Block
	run := []bible.Verse{verses[0]}
	flush := func() {
		first, last := run[0], run[len(run)-1]
		parts := make([]string, len(run))
		for i, v := range run {
			parts[i] = fmt.Sprintf("%d. %s", v.Verse, v.Text)
		}
		q := VerseQuote{
			Book:       first.Book,
			Chapter:    first.Chapter,
			VerseStart: first.Verse,
			Text:       strings.Join(parts, " "),
		}
		if len(run) > 1 {
			q.VerseEnd = last.Verse
		}
		out = append(out, &VerseBlock{ID: NewID(), BoxColor: color, Quote: q})
	}
	for _, v := range verses[1:] {
		prev := run[len(run)-1]
		if v.Book == prev.Book && v.Chapter == prev.Chapter && v.Verse == prev.Verse+1 {
			run = append(run, v)
			continue
		}
		flush()
		run = []bible.Verse{v}
	}
	flush()
	return out
}
