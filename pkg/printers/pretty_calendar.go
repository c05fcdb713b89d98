package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/selah/pkg/timeutil"
)

// CalendarOptions controls calendar styling.
type CalendarOptions struct {
	HeaderStyle lipgloss.Style
	EmptyStyle  lipgloss.Style
	ReadStyle   lipgloss.Style
	TodayStyle  lipgloss.Style
}

// DefaultCalendarOptions returns the built-in calendar styling.
func DefaultCalendarOptions() CalendarOptions {
	return CalendarOptions{
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		EmptyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ReadStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Bold(true),
		TodayStyle:  lipgloss.NewStyle().Reverse(true),
	}
}

// RenderCalendar produces the Monday-first six-week month grid, marking
// days whose date key appears in read.
func RenderCalendar(year int, month time.Month, today time.Time, read map[string]bool, opts CalendarOptions) string {
	days := timeutil.MonthDays(year, month)
	todayKey := timeutil.FormatDate(today)

	var lines []string
	lines = append(lines, opts.HeaderStyle.Render("Mo Tu We Th Fr Sa Su"))

	for row := 0; row < len(days)/7; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			d := days[row*7+col]
			key := timeutil.FormatDate(d)

			style := opts.EmptyStyle
			if read[key] {
				style = opts.ReadStyle
			}
			if d.Month() != month {
				style = opts.EmptyStyle.Faint(true)
			}
			if key == todayKey {
				style = style.Inherit(opts.TodayStyle)
			}
			cells = append(cells, style.Render(fmt.Sprintf("%2d", d.Day())))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

// Calendar prints the month grid with a title.
func (pp *PrettyPrint) Calendar(year int, month time.Month, today time.Time, read map[string]bool) {
	pp.Title(fmt.Sprintf("%s %d", month.String(), year))
	fmt.Println(RenderCalendar(year, month, today, read, DefaultCalendarOptions()))
}
