// Package block implements the rich-text document model for note bodies:
// an ordered list of typed blocks, style ranges over text content, and
// the mutation algorithms that keep ranges consistent under edits.
package block

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Type discriminates the block union in the serialized form.
type Type string

const (
	TypeText    Type = "text"
	TypeVerse   Type = "verse"
	TypeDivider Type = "divider"
)

// Block is one unit of a note's body. Exactly three variants exist:
// *TextBlock, *VerseBlock, and *DividerBlock.
type Block interface {
	// BlockID returns the opaque id. Ids are stable for the lifetime of
	// the block and never reused; ordering carries no meaning.
	BlockID() string
	// Kind returns the serialized type discriminator.
	Kind() Type
}

// TextBlock holds free-form text with optional block-level style and
// character-offset style ranges.
type TextBlock struct {
	ID      string       `json:"id"`
	Content string       `json:"content"`
	Style   *TextStyle   `json:"textStyle,omitempty"`
	Ranges  []StyleRange `json:"ranges,omitempty"`
}

func (b *TextBlock) BlockID() string { return b.ID }
func (b *TextBlock) Kind() Type      { return TypeText }

// VerseHighlight marks a styled span inside a verse quotation. Color is
// a distinct enum space from block highlight colors.
type VerseHighlight struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Color     string `json:"color,omitempty"`
}

// VerseQuote is a denormalized, already-formatted quotation. Once
// created it is independent of the corpus; corpus edits never
// retroactively change saved quotes.
type VerseQuote struct {
	Book       string           `json:"book"`
	Chapter    int              `json:"chapter"`
	VerseStart int              `json:"verseStart"`
	VerseEnd   int              `json:"verseEnd,omitempty"`
	Text       string           `json:"text"`
	FontFamily string           `json:"fontFamily,omitempty"`
	Highlights []VerseHighlight `json:"highlights,omitempty"`
}

// Reference renders the quote's reference, including the range when the
// quote spans more than one verse.
func (q VerseQuote) Reference() string {
	if q.VerseEnd > q.VerseStart {
		return fmt.Sprintf("%s %d:%d-%d", q.Book, q.Chapter, q.VerseStart, q.VerseEnd)
	}
	return fmt.Sprintf("%s %d:%d", q.Book, q.Chapter, q.VerseStart)
}

// VerseBlock embeds a verse quotation in a note.
type VerseBlock struct {
	ID       string     `json:"id"`
	BoxColor BoxColor   `json:"boxColor,omitempty"`
	Quote    VerseQuote `json:"payload"`
}

func (b *VerseBlock) BlockID() string { return b.ID }
func (b *VerseBlock) Kind() Type      { return TypeVerse }

// DividerBlock is a pure visual separator.
type DividerBlock struct {
	ID string `json:"id"`
}

func (b *DividerBlock) BlockID() string { return b.ID }
func (b *DividerBlock) Kind() Type      { return TypeDivider }

// NewID generates an opaque block id.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

type taggedText struct {
	Type Type `json:"type"`
	TextBlock
}

type taggedVerse struct {
	Type Type `json:"type"`
	VerseBlock
}

type taggedDivider struct {
	Type Type `json:"type"`
	DividerBlock
}

// MarshalJSON adds the type discriminator.
func (b *TextBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedText{Type: TypeText, TextBlock: *b})
}

// MarshalJSON adds the type discriminator.
func (b *VerseBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedVerse{Type: TypeVerse, VerseBlock: *b})
}

// MarshalJSON adds the type discriminator.
func (b *DividerBlock) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedDivider{Type: TypeDivider, DividerBlock: *b})
}

func decodeBlock(raw json.RawMessage) (Block, error) {
	var probe struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	switch probe.Type {
	case TypeText:
		var b TextBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return &b, nil
	case TypeVerse:
		var b VerseBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return &b, nil
	case TypeDivider:
		var b DividerBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("block: unknown type %q", probe.Type)
	}
}
