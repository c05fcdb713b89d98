// Package streak prints the current reading streak.
package streak

import (
	"context"
	"errors"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
)

// Streak shows how many consecutive days have been read.
type Streak struct {
	Service *app.Service
}

func (n *Streak) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}

	pp := printers.New()
	pp.Streak(n.Service.Stats(ctx).CurrentStreak)
	return nil
}
