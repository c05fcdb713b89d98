package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultWindow is the fallback history window when none is provided.
const DefaultWindow = "1w"

var windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

var windowUnits = map[string]int{
	"d":      1,
	"day":    1,
	"days":   1,
	"w":      7,
	"wk":     7,
	"wks":    7,
	"week":   7,
	"weeks":  7,
	"m":      30,
	"mo":     30,
	"month":  30,
	"months": 30,
}

// ParseWindow parses a human-friendly day window such as "2w" or
// "1m2w" and returns the total day count. History queries are keyed by
// calendar date, so windows resolve to whole days. An empty input uses
// the default window of one week.
func ParseWindow(input string) (int, error) {
	trimmed := strings.TrimSpace(strings.ToLower(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	remaining := trimmed
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("timeutil: invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid window value %q: %w", matches[1], err)
		}
		unit, ok := windowUnits[matches[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unsupported window unit %q", matches[2])
		}
		total += value * unit
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, fmt.Errorf("timeutil: window must cover at least one day")
	}
	return total, nil
}
