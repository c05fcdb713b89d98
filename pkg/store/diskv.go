// Package store persists notes, reading history, and settings in a
// local diskv tree. There is exactly one writer (the person using the
// CLI); durability is a full-value JSON upsert per key.
package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/selah/pkg/daily"
	"tableflip.dev/selah/pkg/note"
)

const (
	bucketNotes    = "notes"
	bucketHistory  = "history"
	bucketSettings = "settings"
)

// Persistence is the storage contract for the journal: note CRUD,
// reading history keyed by date, and string settings.
type Persistence interface {
	StoreNote(e *note.Entry) error
	DeleteNote(id string) error
	Note(ctx context.Context, id string) (*note.Entry, error)
	Notes(ctx context.Context) []*note.Entry

	History(date string) (*daily.Record, error)
	RecentHistory(ctx context.Context, limit int) []daily.Record
	MarkRead(rec daily.Record) error

	Setting(key string) (string, bool)
	SetSetting(key, value string) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// ErrNotFound is returned when a keyed read misses.
var ErrNotFound = errors.New("store: not found")

// Load creates a Persistence backed by diskv using the provided config,
// falling back to LoadConfig when cfg is nil.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) StoreNote(e *note.Entry) error {
	if e.ID == "" {
		return errors.New("store: note id required")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: marshal note: %w", err)
	}
	return p.d.Write(noteKey(e), data)
}

func (p *persistence) DeleteNote(id string) error {
	key, ok := p.findNoteKey(id)
	if !ok {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return p.d.Erase(key)
}

func (p *persistence) Note(ctx context.Context, id string) (*note.Entry, error) {
	key, ok := p.findNoteKey(id)
	if !ok {
		return nil, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return p.readNote(key)
}

func (p *persistence) Notes(ctx context.Context) []*note.Entry {
	all := make([]*note.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketNotes {
			continue
		}
		e, err := p.readNote(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortNotes(all)
	return all
}

func (p *persistence) readNote(key string) (*note.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := note.Entry{}
	target := &e
	if err := json.Unmarshal(val, target); err != nil {
		// Early exports wrapped single entries in a one-element list.
		var list []*note.Entry
		if err2 := json.Unmarshal(val, &list); err2 == nil && len(list) > 0 && list[0] != nil {
			target = list[0]
		} else {
			return nil, err
		}
	}
	if target.ID == "" {
		pk := keyToPathTransform(key)
		target.ID = pk.FileName
	}
	if target.Category == "" {
		target.Category = note.CategoryNote
	}
	return target, nil
}

func (p *persistence) findNoteKey(id string) (string, bool) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketNotes {
			continue
		}
		if keyToPathTransform(key).FileName == id {
			return key, true
		}
	}
	return "", false
}

func (p *persistence) History(date string) (*daily.Record, error) {
	val, err := p.d.Read(historyKey(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: history %s", ErrNotFound, date)
		}
		return nil, err
	}
	var rec daily.Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("store: parse history %s: %w", date, err)
	}
	if rec.Date == "" {
		rec.Date = date
	}
	return &rec, nil
}

func (p *persistence) RecentHistory(ctx context.Context, limit int) []daily.Record {
	all := make([]daily.Record, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if bucketOf(key) != bucketHistory {
			continue
		}
		date := strings.SplitN(key, "-", 2)[1]
		rec, err := p.History(date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, *rec)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date > all[j].Date })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all
}

func (p *persistence) MarkRead(rec daily.Record) error {
	if rec.Date == "" {
		return errors.New("store: history record date required")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: marshal history: %w", err)
	}
	// Write is an upsert; re-reading the same day overwrites in place.
	return p.d.Write(historyKey(rec.Date), data)
}

func (p *persistence) Setting(key string) (string, bool) {
	val, err := p.d.Read(settingKey(key))
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (p *persistence) SetSetting(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: setting key required")
	}
	return p.d.Write(settingKey(key), []byte(value))
}

func sortNotes(entries []*note.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		lt := left.Created.Time
		rt := right.Created.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.After(rt)
		}
	})
}

const layoutISO = "2006-01-02"

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// noteKey makes `bucket-date-id`. Note ids never contain dashes, so the
// transform pair stays bijective.
func noteKey(e *note.Entry) string {
	return fmt.Sprintf("%s-%s-%s", toBucket(bucketNotes), e.Created.Format(layoutISO), e.ID)
}

func historyKey(date string) string {
	return fmt.Sprintf("%s-%s", toBucket(bucketHistory), date)
}

func settingKey(key string) string {
	return fmt.Sprintf("%s-%s", toBucket(bucketSettings), key)
}

func bucketOf(key string) string {
	parts := strings.SplitN(key, "-", 2)
	return fromBucket(parts[0])
}

func toBucket(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func fromBucket(s string) string {
	bucket, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(bucket)
}
