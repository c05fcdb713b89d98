// Package daily derives the daily reading for a calendar date: a verse
// of the day, date-pattern verses, pseudo-random psalms, and proverb
// picks. Every selection is a pure function of (corpus, date) so the
// same date always reproduces the same reading.
package daily

import (
	"fmt"
	"time"

	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/timeutil"
)

// Book name fragments the selectors look for. Substring matching keeps
// the selectors working against corpora in different languages.
var (
	PsalmsBookNames   = []string{"Псал", "Psal"}
	ProverbsBookNames = []string{"Притч", "Prov"}
)

// Pattern narrows verse-of-day selection to a book, and optionally a
// chapter and verse within it.
type Pattern struct {
	BookName        string `json:"bookName,omitempty"`
	ChapterOverride int    `json:"chapterOverride,omitempty"`
	VerseOverride   int    `json:"verseOverride,omitempty"`
	Label           string `json:"label,omitempty"`
}

// IsZero reports whether the pattern narrows nothing.
func (p Pattern) IsZero() bool {
	return p == Pattern{}
}

// PsalmChapter is one whole psalm chosen for the day.
type PsalmChapter struct {
	Chapter int           `json:"chapter"`
	Verses  []bible.Verse `json:"verses"`
	Title   string        `json:"title"`
}

// ProverbKind distinguishes the two proverb picks.
type ProverbKind string

const (
	ProverbByDay  ProverbKind = "by_day"
	ProverbRandom ProverbKind = "random"
)

// Proverb is one proverb pick with its selection kind.
type Proverb struct {
	bible.Verse
	Kind ProverbKind `json:"type"`
}

// Result is the full daily reading for one date.
type Result struct {
	Date        string         `json:"date"`
	VerseOfDay  bible.Verse    `json:"verseOfDay"`
	DatePattern []bible.Verse  `json:"datePatternVerses"`
	Psalms      []PsalmChapter `json:"psalms"`
	Proverbs    []Proverb      `json:"proverbs"`
}

// VerseOfDay picks the date's verse. The pattern filters the candidate
// pool progressively (book, then chapter, then verse); a filter that
// would empty the pool is skipped so a partial pattern still selects
// from the widest matching set. An empty corpus yields the zero verse.
func VerseOfDay(c *bible.Corpus, date time.Time, pattern *Pattern) bible.Verse {
	all := c.Verses()
	if len(all) == 0 {
		return bible.Verse{}
	}

	seed := date.Day()*31 + int(date.Month())*12 + date.Year()

	pool := all
	if pattern != nil && pattern.BookName != "" {
		if byBook := filter(all, func(v bible.Verse) bool { return v.Book == pattern.BookName }); len(byBook) > 0 {
			pool = byBook
			if pattern.ChapterOverride > 0 {
				if byCh := filter(pool, func(v bible.Verse) bool { return v.Chapter == pattern.ChapterOverride }); len(byCh) > 0 {
					pool = byCh
				}
			}
			if pattern.VerseOverride > 0 {
				if byV := filter(pool, func(v bible.Verse) bool { return v.Verse == pattern.VerseOverride }); len(byV) > 0 {
					pool = byV
				}
			}
		}
	}

	if seed < 0 {
		seed = -seed
	}
	return pool[seed%len(pool)]
}

// DatePatternVerses finds verses whose chapter and verse numerals match
// the day of month, topped up with chapter==month matches when fewer
// than five, and deterministically trimmed to five when more. Zero
// matches is a valid result.
func DatePatternVerses(c *bible.Corpus, date time.Time) []bible.Verse {
	day := date.Day()
	month := int(date.Month())

	results := filter(c.Verses(), func(v bible.Verse) bool {
		return v.Chapter == day && v.Verse == day
	})

	if len(results) < 5 {
		seen := make(map[int]bool, len(results))
		for _, v := range results {
			seen[v.ID] = true
		}
		for _, v := range c.Verses() {
			if v.Chapter == month && v.Verse == day && !seen[v.ID] {
				results = append(results, v)
				seen[v.ID] = true
			}
		}
	}

	if len(results) > 5 {
		rng := NewRand(DateSeed(date))
		shuffled := make([]bible.Verse, len(results))
		copy(shuffled, results)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}
		results = shuffled[:5]
	}
	return results
}

// RandomPsalms picks count distinct psalm chapters for the date and
// returns each as a titled chapter group. A corpus without a psalms
// book yields an empty list.
func RandomPsalms(c *bible.Corpus, date time.Time, count int) []PsalmChapter {
	book, ok := c.BookContaining(PsalmsBookNames...)
	if !ok {
		return nil
	}

	rng := NewRand(DateSeed(date))
	picked := make(map[int]bool, count)
	var order []int
	for len(picked) < count && len(picked) < book.Chapters {
		ch := rng.Intn(book.Chapters) + 1
		if !picked[ch] {
			picked[ch] = true
			order = append(order, ch)
		}
	}

	var out []PsalmChapter
	for _, ch := range order {
		verses := c.ChapterVerses(book.Name, ch)
		if len(verses) == 0 {
			continue
		}
		out = append(out, PsalmChapter{
			Chapter: ch,
			Verses:  verses,
			Title:   fmt.Sprintf("%s %d", book.Name, ch),
		})
	}
	return out
}

// DayProverbs returns up to two proverb picks: the verse at
// (chapter=day, verse=1) when it exists, and an independently seeded
// random verse which is dropped when it coincides with the first. The
// result legitimately holds zero, one, or two entries.
func DayProverbs(c *bible.Corpus, date time.Time) []Proverb {
	book, ok := c.BookContaining(ProverbsBookNames...)
	if !ok {
		return nil
	}

	var out []Proverb
	byDay, haveByDay := c.FindVerse(book.Name, date.Day(), 1)
	if haveByDay {
		out = append(out, Proverb{Verse: byDay, Kind: ProverbByDay})
	}

	rng := NewRand(DateSeed(date) + 1)
	chapter := rng.Intn(book.Chapters) + 1
	verses := c.ChapterVerses(book.Name, chapter)
	if len(verses) > 0 {
		v := verses[rng.Intn(len(verses))]
		if !haveByDay || v.Chapter != byDay.Chapter || v.Verse != byDay.Verse {
			out = append(out, Proverb{Verse: v, Kind: ProverbRandom})
		}
	}
	return out
}

// Reading assembles the full daily reading for a date.
func Reading(c *bible.Corpus, date time.Time, pattern *Pattern) Result {
	return Result{
		Date:        timeutil.FormatDate(date),
		VerseOfDay:  VerseOfDay(c, date, pattern),
		DatePattern: DatePatternVerses(c, date),
		Psalms:      RandomPsalms(c, date, 2),
		Proverbs:    DayProverbs(c, date),
	}
}

func filter(verses []bible.Verse, keep func(bible.Verse) bool) []bible.Verse {
	var out []bible.Verse
	for _, v := range verses {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
