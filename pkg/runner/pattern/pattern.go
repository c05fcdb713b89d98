// Package pattern manages the custom date-pattern verse source.
package pattern

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/daily"
	"tableflip.dev/selah/pkg/printers"
)

// Pattern sets, clears, or shows the custom pattern.
type Pattern struct {
	Book    string
	Chapter int
	Verse   int
	Label   string
	Clear   bool

	Service *app.Service
}

func (n *Pattern) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not configure, no service")
	}

	pp := printers.New()

	if n.Clear {
		if err := n.Service.ClearPattern(); err != nil {
			return err
		}
		pp.Title("Pattern cleared")
		return nil
	}

	if n.Book != "" {
		p := daily.Pattern{
			BookName:        n.Book,
			ChapterOverride: n.Chapter,
			VerseOverride:   n.Verse,
			Label:           n.Label,
		}
		if err := n.Service.SetPattern(p); err != nil {
			return err
		}
	}

	p := n.Service.Pattern()
	if p == nil {
		pp.Title("Pattern: day/day (default)")
		return nil
	}
	pp.Title("Pattern: " + p.BookName)
	if p.ChapterOverride > 0 {
		fmt.Printf("  chapter %d\n", p.ChapterOverride)
	}
	if p.VerseOverride > 0 {
		fmt.Printf("  verse %d\n", p.VerseOverride)
	}
	if p.Label != "" {
		fmt.Printf("  label %q\n", p.Label)
	}
	return nil
}
