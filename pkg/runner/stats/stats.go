// Package stats prints reading statistics, streaks, and achievements.
package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/selah/pkg/app"
	"tableflip.dev/selah/pkg/printers"
	"tableflip.dev/selah/pkg/streak"
	"tableflip.dev/selah/pkg/timeutil"
)

// Stats renders the stats snapshot.
type Stats struct {
	Window           string
	ShowAchievements bool

	Service *app.Service
}

// Do prints stats and, when requested, the achievement table.
func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}

	pp := printers.New()
	s := n.Service.Stats(ctx)

	pp.Title("Reading stats")
	pp.Stats(s)
	pp.NewLine()
	pp.Streak(s.CurrentStreak)

	if n.Window != "" {
		days, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		cutoff := timeutil.FormatDate(time.Now().AddDate(0, 0, -days+1))
		count := 0
		for _, rec := range n.Service.Persistence.RecentHistory(ctx, 0) {
			if rec.Date >= cutoff {
				count++
			}
		}
		fmt.Printf("%d reads in the last %dd\n", count, days)
	}

	if n.ShowAchievements {
		pp.NewLine()
		pp.Title("Achievements")
		pp.Achievements(streak.Achievements(), n.Service.Unlocked())
	}
	return nil
}
