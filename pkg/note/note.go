// Package note defines the persisted journal entry and its helpers.
package note

import (
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/block"
)

// Category classifies an entry. Each entry has exactly one.
type Category string

const (
	CategoryNote       Category = "note"
	CategoryDream      Category = "dream"
	CategoryRevelation Category = "revelation"
	CategoryReminder   Category = "reminder"
)

// Categories lists the supported entry categories.
func Categories() []Category {
	return []Category{CategoryNote, CategoryDream, CategoryRevelation, CategoryReminder}
}

// ParseCategory normalizes raw input to a Category, defaulting to note.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Categories() {
		if c == known {
			return known
		}
	}
	return CategoryNote
}

// RepeatFrequency describes how a reminder entry repeats. Scheduling
// itself is outside this program; the fields round-trip so external
// tooling keeps working.
type RepeatFrequency string

const (
	RepeatNone    RepeatFrequency = "none"
	RepeatDaily   RepeatFrequency = "daily"
	RepeatWeekly  RepeatFrequency = "weekly"
	RepeatMonthly RepeatFrequency = "monthly"
)

// Entry is one journal note. Content holds the serialized block
// document; the block package owns that format, including the legacy
// plain-text fallback on read.
type Entry struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Category     Category    `json:"category"`
	Created      Timestamp   `json:"created_at"`
	Updated      Timestamp   `json:"updated_at,omitempty"`
	LinkedVerses []bible.Ref `json:"linked_verses,omitempty"`
	FolderID     string      `json:"folder_id,omitempty"`

	ReminderOffset  int             `json:"reminder_offset,omitempty"`
	RepeatFrequency RepeatFrequency `json:"repeat_frequency,omitempty"`
	RepeatDays      []int           `json:"repeat_days,omitempty"`
}

// NewID generates an entry id. Ids are dash-free so they can serve as
// the final segment of a store key.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// New creates an entry with a fresh id and an empty block document.
func New(title string, category Category, created Timestamp) *Entry {
	content, _ := block.NewDocument().Serialize()
	return &Entry{
		ID:       NewID(),
		Title:    title,
		Content:  content,
		Category: category,
		Created:  created,
		Updated:  created,
	}
}

// Document deserializes the entry body. Legacy plain-text content comes
// back as a single text block; this never fails.
func (e *Entry) Document() block.Document {
	return block.Deserialize(e.Content)
}

// SetDocument serializes and stores a block document as the body.
func (e *Entry) SetDocument(doc block.Document) error {
	content, err := doc.Serialize()
	if err != nil {
		return err
	}
	e.Content = content
	return nil
}

// LinkVerse records a verse reference on the entry, once.
func (e *Entry) LinkVerse(ref bible.Ref) {
	for _, existing := range e.LinkedVerses {
		if existing == ref {
			return
		}
	}
	e.LinkedVerses = append(e.LinkedVerses, ref)
}
