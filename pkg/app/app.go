// Package app provides the high-level operations shared by the CLI and
// the TUI: daily readings, history, streaks, achievements, and note
// editing over a single persistence handle. The handle is constructed
// once at startup and injected; nothing in here is a package global.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/block"
	"tableflip.dev/selah/pkg/daily"
	"tableflip.dev/selah/pkg/note"
	"tableflip.dev/selah/pkg/store"
	"tableflip.dev/selah/pkg/streak"
	"tableflip.dev/selah/pkg/timeutil"
)

const (
	settingPattern      = "pattern"
	settingSavedCounter = "counter.savedFromReading"
	settingAchievements = "achievements"
)

// Service wires the corpus and persistence together.
type Service struct {
	Persistence store.Persistence
	Corpus      *bible.Corpus
}

var errNoPersistence = errors.New("app: no persistence configured")

// Pattern returns the stored custom reading pattern, or nil when none
// is set.
func (s *Service) Pattern() *daily.Pattern {
	if s.Persistence == nil {
		return nil
	}
	raw, ok := s.Persistence.Setting(settingPattern)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil
	}
	var p daily.Pattern
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.IsZero() {
		return nil
	}
	return &p
}

// SetPattern stores the custom reading pattern.
func (s *Service) SetPattern(p daily.Pattern) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("app: marshal pattern: %w", err)
	}
	return s.Persistence.SetSetting(settingPattern, string(data))
}

// ClearPattern removes the custom reading pattern.
func (s *Service) ClearPattern() error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.SetSetting(settingPattern, "")
}

// Reading derives the daily reading for a date, applying the stored
// custom pattern. Readings are re-derived on every call, never cached:
// the selectors are deterministic per date.
func (s *Service) Reading(date time.Time) daily.Result {
	return daily.Reading(s.Corpus, date, s.Pattern())
}

// IsRead reports whether the date is recorded as read.
func (s *Service) IsRead(date time.Time) bool {
	if s.Persistence == nil {
		return false
	}
	rec, err := s.Persistence.History(timeutil.FormatDate(date))
	return err == nil && rec != nil
}

// MarkRead upserts the history record for the date's reading and
// returns the reading together with any achievements the write newly
// unlocked. Marking the same day twice rewrites the same record.
func (s *Service) MarkRead(ctx context.Context, date time.Time) (daily.Result, []streak.Achievement, error) {
	if s.Persistence == nil {
		return daily.Result{}, nil, errNoPersistence
	}
	reading := s.Reading(date)
	rec := daily.NewRecord(reading, note.Now())
	if err := s.Persistence.MarkRead(rec); err != nil {
		return daily.Result{}, nil, err
	}
	unlocked, err := s.checkAchievements(ctx)
	if err != nil {
		return daily.Result{}, nil, err
	}
	return reading, unlocked, nil
}

// Stats assembles the snapshot achievements are evaluated against.
func (s *Service) Stats(ctx context.Context) streak.Stats {
	if s.Persistence == nil {
		return streak.Stats{}
	}
	history := s.Persistence.RecentHistory(ctx, 0)

	dates := make([]string, 0, len(history))
	psalms := make(map[int]bool)
	for _, rec := range history {
		dates = append(dates, rec.Date)
		for _, ch := range rec.PsalmsRead {
			psalms[ch] = true
		}
	}

	saved := 0
	if raw, ok := s.Persistence.Setting(settingSavedCounter); ok {
		saved, _ = strconv.Atoi(strings.TrimSpace(raw))
	}

	return streak.Stats{
		TotalReads:       len(history),
		CurrentStreak:    streak.Calc(dates, streak.Today()),
		SavedFromReading: saved,
		HasCustomPattern: s.Pattern() != nil,
		UniquePsalmsRead: len(psalms),
	}
}

// Unlocked returns the persisted achievement id set.
func (s *Service) Unlocked() map[string]bool {
	out := make(map[string]bool)
	if s.Persistence == nil {
		return out
	}
	raw, ok := s.Persistence.Setting(settingAchievements)
	if !ok {
		return out
	}
	var byID map[string]string // id -> unlock time
	if err := json.Unmarshal([]byte(raw), &byID); err != nil {
		return out
	}
	for id := range byID {
		out[id] = true
	}
	return out
}

func (s *Service) checkAchievements(ctx context.Context) ([]streak.Achievement, error) {
	already := s.Unlocked()
	newIDs := streak.Unlock(s.Stats(ctx), already)
	if len(newIDs) == 0 {
		return nil, nil
	}

	byID := make(map[string]string, len(already)+len(newIDs))
	raw, _ := s.Persistence.Setting(settingAchievements)
	_ = json.Unmarshal([]byte(raw), &byID)
	now := note.Now().String()
	for _, id := range newIDs {
		byID[id] = now
	}
	data, err := json.Marshal(byID)
	if err != nil {
		return nil, fmt.Errorf("app: marshal achievements: %w", err)
	}
	if err := s.Persistence.SetSetting(settingAchievements, string(data)); err != nil {
		return nil, err
	}

	var unlocked []streak.Achievement
	for _, a := range streak.Achievements() {
		for _, id := range newIDs {
			if a.ID == id {
				unlocked = append(unlocked, a)
			}
		}
	}
	return unlocked, nil
}

// AddNote creates and stores a note whose body is a single text block.
func (s *Service) AddNote(title, body string, category note.Category) (*note.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e := note.New(title, category, note.Now())
	doc := block.Document{&block.TextBlock{ID: block.NewID(), Content: body}}
	if err := e.SetDocument(doc); err != nil {
		return nil, err
	}
	if err := s.Persistence.StoreNote(e); err != nil {
		return nil, err
	}
	return e, nil
}

// SaveVerse creates a note quoting the verse and bumps the
// saved-from-reading counter. The document gets the quotation plus an
// empty trailing text block for the user's thoughts.
func (s *Service) SaveVerse(v bible.Verse, color block.BoxColor) (*note.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	e := note.New(v.Reference(), note.CategoryNote, note.Now())
	doc := block.NewDocument().InsertAfter("", block.GroupVerses([]bible.Verse{v}, color)...)
	if err := e.SetDocument(doc); err != nil {
		return nil, err
	}
	e.LinkVerse(v.Ref())
	if err := s.Persistence.StoreNote(e); err != nil {
		return nil, err
	}

	saved := 0
	if raw, ok := s.Persistence.Setting(settingSavedCounter); ok {
		saved, _ = strconv.Atoi(strings.TrimSpace(raw))
	}
	if err := s.Persistence.SetSetting(settingSavedCounter, strconv.Itoa(saved+1)); err != nil {
		return nil, err
	}
	return e, nil
}

// Notes lists all notes, newest first.
func (s *Service) Notes(ctx context.Context) ([]*note.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Notes(ctx), nil
}

// Note fetches one note by id.
func (s *Service) Note(ctx context.Context, id string) (*note.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Note(ctx, id)
}

// DeleteNote removes a note by id.
func (s *Service) DeleteNote(id string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	return s.Persistence.DeleteNote(id)
}

// Search returns notes whose title or text content matches every
// keyword of the query.
func (s *Service) Search(ctx context.Context, query string) ([]*note.Entry, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	words := note.Keywords(query)
	if len(words) == 0 {
		words = strings.Fields(strings.ToLower(strings.TrimSpace(query)))
	}
	if len(words) == 0 {
		return nil, nil
	}

	var out []*note.Entry
	for _, e := range s.Persistence.Notes(ctx) {
		haystack := strings.ToLower(e.Title + " " + plainText(e.Document()))
		match := true
		for _, w := range words {
			if !strings.Contains(haystack, w) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out, nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

func plainText(doc block.Document) string {
	var b strings.Builder
	for _, bl := range doc {
		switch t := bl.(type) {
		case *block.TextBlock:
			b.WriteString(t.Content)
			b.WriteString(" ")
		case *block.VerseBlock:
			b.WriteString(t.Quote.Text)
			b.WriteString(" ")
		}
	}
	return b.String()
}
