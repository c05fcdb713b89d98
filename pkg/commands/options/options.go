// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// OnOptions carries the common date override flag.
type OnOptions struct {
	OnString string
}

// AddOnArgs wires the --on flag on the provided command.
func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-02-28". Defaults to today.`)
}

// IDOptions carries a note id.
type IDOptions struct {
	ID string
}

// AddIDArgs wires the --id flag on the provided command.
func AddIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the id of a note.")
}

// CategoryOptions selects a note category.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the --category flag on the provided command.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "note",
		"Note category. One of note, dream, revelation, reminder.")
}

// WindowOptions carries a history window such as "2w" or "1m".
type WindowOptions struct {
	Window string
}

// AddWindowArgs wires the --window flag on the provided command.
func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", "",
		`Count reads inside a recent window, example: --window=2w.`)
}

// PatternOptions configures the custom date-pattern source.
type PatternOptions struct {
	Book    string
	Chapter int
	Verse   int
	Label   string
}

// AddPatternArgs wires the pattern flags on the provided command.
func AddPatternArgs(cmd *cobra.Command, o *PatternOptions) {
	cmd.Flags().StringVarP(&o.Book, "book", "b", "",
		"Book name substring to draw pattern verses from.")
	cmd.Flags().IntVar(&o.Chapter, "chapter", 0,
		"Fixed chapter override. Zero follows the day of month.")
	cmd.Flags().IntVar(&o.Verse, "verse", 0,
		"Fixed verse override. Zero follows the day of month.")
	cmd.Flags().StringVar(&o.Label, "label", "",
		"Label shown with pattern verses.")
}
