// Package key prints the symbol legend.
package key

import (
	"context"
	"fmt"

	"github.com/gosuri/uitable"

	"tableflip.dev/selah/pkg/glyph"
	"tableflip.dev/selah/pkg/printers"
)

// Key lists the symbols used in note and achievement output.
type Key struct{}

func (n *Key) Do(ctx context.Context) error {
	pp := printers.New()

	pp.Title("Categories")
	table := uitable.New()
	for _, g := range glyph.CategoryGlyphs() {
		table.AddRow(g.Symbol, g.Meaning)
	}
	fmt.Println(table)

	pp.NewLine()
	pp.Title("Blocks")
	table = uitable.New()
	for _, g := range glyph.BlockGlyphs() {
		table.AddRow(g.Symbol, g.Meaning)
	}
	fmt.Println(table)

	pp.NewLine()
	pp.Title("Achievements")
	table = uitable.New()
	table.AddRow(glyph.AchievementSymbol(true), "unlocked")
	table.AddRow(glyph.AchievementSymbol(false), "locked")
	fmt.Println(table)
	return nil
}
