// Package mark records a day's reading as read.
package mark

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
	"tableflip.dev/selah/pkg/timeutil"
)

// Mark upserts the history record for On (today when empty).
type Mark struct {
	On string

	Service *app.Service
}

// Do marks the date read and reports any newly unlocked achievements.
func (n *Mark) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not mark, no service")
	}

	date := time.Now()
	if n.On != "" {
		parsed, err := timeutil.ParseDate(n.On)
		if err != nil {
			return err
		}
		date = parsed
	}

	reading, unlocked, err := n.Service.MarkRead(ctx, date)
	if err != nil {
		return err
	}

	pp := printers.New()
	pp.Title("Marked read: " + reading.Date)
	for _, a := range unlocked {
		c := color.New(color.FgHiYellow, color.Bold)
		_, _ = c.Printf("★ achievement unlocked: %s\n", a.Title)
	}
	pp.Streak(n.Service.Stats(ctx).CurrentStreak)
	return nil
}
