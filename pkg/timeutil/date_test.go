package timeutil

import (
	"testing"
	"time"
)

func TestFormatParseRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-03-02")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := FormatDate(d); got != "2026-03-02" {
		t.Fatalf("round trip = %q", got)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("02.03.2026"); err == nil {
		t.Fatalf("expected error for non-ISO input")
	}
}

func TestMonthDaysGrid(t *testing.T) {
	// January 2025 starts on a Wednesday: two leading December days in a
	// Monday-first grid.
	days := MonthDays(2025, time.January)
	if len(days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(days))
	}
	if got := FormatDate(days[0]); got != "2024-12-30" {
		t.Fatalf("first cell = %s, want 2024-12-30", got)
	}
	if days[0].Weekday() != time.Monday {
		t.Fatalf("grid must start on Monday, got %v", days[0].Weekday())
	}
	if got := FormatDate(days[2]); got != "2025-01-01" {
		t.Fatalf("third cell = %s, want 2025-01-01", got)
	}
	if got := FormatDate(days[41]); got != "2025-02-09" {
		t.Fatalf("last cell = %s, want 2025-02-09", got)
	}
}

func TestMonthDaysSundayStart(t *testing.T) {
	// February 2026 starts on a Sunday, the maximum leading pad.
	days := MonthDays(2026, time.February)
	if len(days) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(days))
	}
	if got := FormatDate(days[0]); got != "2026-01-26" {
		t.Fatalf("first cell = %s, want 2026-01-26", got)
	}
	if got := FormatDate(days[6]); got != "2026-02-01" {
		t.Fatalf("seventh cell = %s, want 2026-02-01", got)
	}
}

func TestRelTime(t *testing.T) {
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)
	cases := []struct {
		then time.Time
		want string
	}{
		{now.Add(-30 * time.Second), "только что"},
		{now.Add(-5 * time.Minute), "5 мин. назад"},
		{now.Add(-3 * time.Hour), "3 ч. назад"},
		{now.Add(-30 * time.Hour), "вчера"},
		{now.Add(-3 * 24 * time.Hour), "3 дн. назад"},
		{now.Add(-14 * 24 * time.Hour), "2 нед. назад"},
		{now.Add(-60 * 24 * time.Hour), "1 Jan"},
	}
	for _, c := range cases {
		if got := RelTime(c.then, now); got != c.want {
			t.Fatalf("RelTime(%v) = %q, want %q", c.then, got, c.want)
		}
	}
}
