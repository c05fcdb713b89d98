package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/selah/pkg/bible"
	"tableflip.dev/selah/pkg/daily"
)

// DailyReading renders the full reading for one date.
func (pp *PrettyPrint) DailyReading(r daily.Result, read bool) {
	heading := "Daily reading for " + r.Date
	if read {
		heading += " ✓"
	}
	pp.Title(heading)
	pp.NewLine()

	pp.section("Verse of the day")
	pp.verse(r.VerseOfDay)

	if len(r.DatePattern) > 0 {
		pp.section("Date pattern")
		for _, v := range r.DatePattern {
			pp.verse(v)
		}
	}

	if len(r.Psalms) > 0 {
		pp.section("Psalms")
		for _, ps := range r.Psalms {
			b := color.New(color.Bold)
			_, _ = b.Println(ps.Title)
			for _, v := range ps.Verses {
				fmt.Println(wordwrap.String(fmt.Sprintf("%d. %s", v.Verse, v.Text), wrapWidth))
			}
			pp.NewLine()
		}
	}

	if len(r.Proverbs) > 0 {
		pp.section("Proverbs")
		for _, p := range r.Proverbs {
			pp.verse(p.Verse)
		}
	}
}

func (pp *PrettyPrint) section(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) verse(v bible.Verse) {
	if v.Text == "" {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	fmt.Println(wordwrap.String(v.Text, wrapWidth))
	ref := color.New(color.Faint, color.Italic)
	_, _ = ref.Printf("  — %s\n\n", v.Reference())
}
