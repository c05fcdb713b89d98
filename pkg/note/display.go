package note

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/selah/pkg/glyph"
	"tableflip.dev/selah/pkg/timeutil"
)

// PrettyPrintList renders entries as a table of category symbol, title,
// and relative age.
func PrettyPrintList(now time.Time, entries ...*Entry) {
	if len(entries) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range entries {
		tbl.AddRow(
			glyph.CategorySymbol(string(e.Category)),
			e.Title,
			timeutil.RelTime(e.Created.Time, now),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
