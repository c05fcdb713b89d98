// Package timeutil holds the date helpers shared by the calendar,
// history, and daily-reading features.
package timeutil

import (
	"fmt"
	"time"
)

// LayoutISO is the date key format used across persistence ("YYYY-MM-DD").
const LayoutISO = "2006-01-02"

// FormatDate renders the canonical date key for t.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}

// ParseDate parses a canonical date key in the local zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutISO, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: parse date %q: %w", s, err)
	}
	return t, nil
}

// MonthDays returns the 42-cell month grid for a Monday-first calendar:
// leading days from the previous month, every day of the month, and
// trailing days from the next month to fill six full weeks.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)

	pad := int(first.Weekday()) - 1
	if first.Weekday() == time.Sunday {
		pad = 6
	}

	days := make([]time.Time, 0, 42)
	for i := pad; i > 0; i-- {
		days = append(days, first.AddDate(0, 0, -i))
	}
	for d := 1; d <= last.Day(); d++ {
		days = append(days, time.Date(year, month, d, 0, 0, 0, 0, time.Local))
	}
	next := 1
	for len(days) < 42 {
		days = append(days, last.AddDate(0, 0, next))
		next++
	}
	return days
}

// RelTime renders a short relative description of then as seen from now.
func RelTime(then, now time.Time) string {
	diff := now.Sub(then)
	mins := int(diff.Minutes())
	switch {
	case mins < 1:
		return "только что"
	case mins < 60:
		return fmt.Sprintf("%d мин. назад", mins)
	}
	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%d ч. назад", hours)
	}
	days := hours / 24
	switch {
	case days == 1:
		return "вчера"
	case days < 7:
		return fmt.Sprintf("%d дн. назад", days)
	case days < 30:
		return fmt.Sprintf("%d нед. назад", days/7)
	}
	return then.Format("2 Jan")
}
