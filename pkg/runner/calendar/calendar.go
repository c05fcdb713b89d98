// Package calendar renders a month of reading history.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
	"tableflip.dev/selah/pkg/timeutil"
)

// Calendar shows the month containing On (today when empty), marking
// read days.
type Calendar struct {
	On string

	Service *app.Service
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not render, no service")
	}

	today := time.Now()
	anchor := today
	if n.On != "" {
		parsed, err := timeutil.ParseDate(n.On)
		if err != nil {
			return err
		}
		anchor = parsed
	}

	records := n.Service.Persistence.RecentHistory(ctx, 0)
	read := make(map[string]bool, len(records))
	for _, r := range records {
		read[r.Date] = true
	}

	pp := printers.New()
	pp.Calendar(anchor.Year(), anchor.Month(), today, read)
	return nil
}
