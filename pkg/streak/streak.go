// Package streak computes consecutive-day reading streaks and the
// achievement checks derived from reading history.
package streak

import (
	"sort"
	"time"

	"tableflip.dev/selah/pkg/timeutil"
)

// Calc counts consecutive calendar days ending at today that appear in
// dates ("YYYY-MM-DD" keys, any order, duplicates allowed). A history
// that does not include today yields zero: the streak starts from
// today, not from the most recent entry.
func Calc(dates []string, today string) int {
	if len(dates) == 0 {
		return 0
	}

	uniq := make(map[string]bool, len(dates))
	for _, d := range dates {
		uniq[d] = true
	}
	sorted := make([]string, 0, len(uniq))
	for d := range uniq {
		sorted = append(sorted, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	streak := 0
	expected := today
	for _, d := range sorted {
		if d == expected {
			streak++
			expected = prevDay(expected)
		} else if d < expected {
			// A gap: the chain is broken. Dates above expected are
			// skipped, which keeps malformed input from inflating the
			// count.
			break
		}
	}
	return streak
}

func prevDay(date string) string {
	t, err := timeutil.ParseDate(date)
	if err != nil {
		return date
	}
	return timeutil.FormatDate(t.AddDate(0, 0, -1))
}

// Today returns the streak key for the current moment.
func Today() string {
	return timeutil.FormatDate(time.Now())
}
