// Package daily prints the deterministic reading for a date.
package daily

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
	"tableflip.dev/selah/pkg/timeutil"
)

// Daily shows the reading for On (today when empty).
type Daily struct {
	On string

	Service *app.Service
}

// Do derives and prints the reading. The derivation is pure per date,
// so printing never writes history.
func (n *Daily) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not read, no service")
	}

	date := time.Now()
	if n.On != "" {
		parsed, err := timeutil.ParseDate(n.On)
		if err != nil {
			return err
		}
		date = parsed
	}

	pp := printers.New()
	pp.DailyReading(n.Service.Reading(date), n.Service.IsRead(date))
	return nil
}
