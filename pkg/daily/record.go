package daily

import "tableflip.dev/selah/pkg/note"

// Record is one day's reading-history row. Date ("YYYY-MM-DD") is the
// unique key; marking a day read is an upsert, so re-opening the screen
// the same day rewrites the same record.
type Record struct {
	Date         string         `json:"date"`
	ReadAt       note.Timestamp `json:"read_at"`
	VerseOfDay   string         `json:"verse_of_day_ref"`
	PsalmsRead   []int          `json:"psalms_read,omitempty"`
	ProverbsRead []string       `json:"proverbs_read,omitempty"`
}

// NewRecord captures what the given reading showed.
func NewRecord(r Result, readAt note.Timestamp) Record {
	rec := Record{
		Date:       r.Date,
		ReadAt:     readAt,
		VerseOfDay: r.VerseOfDay.Reference(),
	}
	for _, p := range r.Psalms {
		rec.PsalmsRead = append(rec.PsalmsRead, p.Chapter)
	}
	for _, p := range r.Proverbs {
		rec.ProverbsRead = append(rec.ProverbsRead, p.Reference())
	}
	return rec
}
