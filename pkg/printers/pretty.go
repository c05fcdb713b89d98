// Package printers renders notes, readings, and stats for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/selah/pkg/block"
	"tableflip.dev/selah/pkg/glyph"
	"tableflip.dev/selah/pkg/note"
	"tableflip.dev/selah/pkg/streak"
)

const wrapWidth = 72

// nowFunc is swappable in tests.
var nowFunc = time.Now

// PrettyPrint renders domain objects to stdout.
type PrettyPrint struct {
	Theme Theme
}

// New builds a printer with terminal detection done.
func New() *PrettyPrint {
	return &PrettyPrint{Theme: NewTheme()}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

// Title prints a bold underlined heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Note renders a full note: heading, category, then each block.
func (pp *PrettyPrint) Note(e *note.Entry) {
	pp.Title(e.Title)
	f := color.New(color.Faint)
	_, _ = f.Printf("%s %s\n\n", glyph.CategorySymbol(string(e.Category)), e.Created.Local().Format("January 2, 2006"))
	pp.Blocks(e.Document())
	if len(e.LinkedVerses) > 0 {
		refs := make([]string, len(e.LinkedVerses))
		for i, r := range e.LinkedVerses {
			refs[i] = r.String()
		}
		_, _ = f.Printf("linked: %s\n", strings.Join(refs, ", "))
	}
}

// Blocks walks a document and renders each block.
func (pp *PrettyPrint) Blocks(doc block.Document) {
	for _, b := range doc {
		switch t := b.(type) {
		case *block.TextBlock:
			text := pp.styledText(t)
			if strings.TrimSpace(text) != "" {
				fmt.Println(wordwrap.String(text, wrapWidth))
			}
		case *block.VerseBlock:
			pp.verseBox(t)
		case *block.DividerBlock:
			f := color.New(color.Faint)
			_, _ = f.Println(strings.Repeat("─", wrapWidth/2))
		}
		fmt.Println("")
	}
}

// styledText applies the composed style per offset. Offsets are UTF-16
// code units, so the walk tracks that index while iterating runes.
func (pp *PrettyPrint) styledText(b *block.TextBlock) string {
	if pp.Theme.Plain() || (b.Style == nil && len(b.Ranges) == 0) {
		return b.Content
	}

	var out strings.Builder
	var segment strings.Builder
	var current block.TextStyle
	offset := 0
	started := false

	flush := func() {
		if segment.Len() == 0 {
			return
		}
		out.WriteString(renderSegment(segment.String(), current, pp.Theme))
		segment.Reset()
	}

	for _, r := range b.Content {
		style := block.StyleAt(b, offset)
		if !started || style != current {
			flush()
			current = style
			started = true
		}
		segment.WriteRune(r)
		offset += len(utf16.Encode([]rune{r}))
	}
	flush()
	return out.String()
}

func renderSegment(s string, style block.TextStyle, theme Theme) string {
	if style.Highlight != block.HighlightNone {
		s = theme.HighlightText(s, style.Highlight)
	}
	if style.Bold {
		s = glyph.Bold(s)
	}
	if style.Italic {
		s = glyph.Italic(s)
	}
	if style.Underline {
		s = glyph.Underline(s)
	}
	return s
}

func (pp *PrettyPrint) verseBox(b *block.VerseBlock) {
	bar := pp.Theme.BorderText("│", b.BoxColor)
	for _, line := range strings.Split(wordwrap.String(b.Quote.Text, wrapWidth-2), "\n") {
		fmt.Printf("%s %s\n", bar, line)
	}
	ref := color.New(color.Faint, color.Italic)
	_, _ = ref.Printf("  — %s\n", b.Quote.Reference())
}

// NoteList renders a listing table for many notes.
func (pp *PrettyPrint) NoteList(entries ...*note.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	note.PrettyPrintList(nowFunc(), entries...)
}

// Streak renders the current streak count.
func (pp *PrettyPrint) Streak(days int) {
	t := color.New(color.Bold)
	switch days {
	case 0:
		f := color.New(color.Faint)
		_, _ = f.Println("no streak, read today to start one")
	case 1:
		_, _ = t.Println("1 day streak")
	default:
		_, _ = t.Printf("%d day streak\n", days)
	}
}

// Achievements renders the achievement table with unlock markers.
func (pp *PrettyPrint) Achievements(all []streak.Achievement, unlocked map[string]bool) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold(""), glyph.Bold("Achievement"), glyph.Bold("ID"))
	for _, a := range all {
		tbl.AddRow(glyph.AchievementSymbol(unlocked[a.ID]), a.Title, a.ID)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats renders the reading stats snapshot.
func (pp *PrettyPrint) Stats(s streak.Stats) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("total reads", fmt.Sprintf("%d", s.TotalReads))
	tbl.AddRow("current streak", fmt.Sprintf("%d", s.CurrentStreak))
	tbl.AddRow("verses saved", fmt.Sprintf("%d", s.SavedFromReading))
	tbl.AddRow("unique psalms", fmt.Sprintf("%d", s.UniquePsalmsRead))
	custom := "no"
	if s.HasCustomPattern {
		custom = "yes"
	}
	tbl.AddRow("custom pattern", custom)
	_, _ = fmt.Fprintln(color.Output, tbl)
}
