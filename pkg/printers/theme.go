package printers

import (
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"tableflip.dev/selah/pkg/block"
)

// Theme resolves the app's color enums against the terminal's color
// profile. Hex palette values are normalized through go-colorful so
// degraded profiles still get the nearest displayable color.
type Theme struct {
	profile termenv.Profile
	plain   bool
}

// NewTheme detects the output terminal. Non-terminal output (pipes,
// redirects) renders plain text.
func NewTheme() Theme {
	plain := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	return Theme{profile: termenv.ColorProfile(), plain: plain}
}

// Plain reports whether styling is disabled.
func (t Theme) Plain() bool { return t.plain }

var highlightHex = map[block.Highlight]string{
	block.HighlightYellow: "#FFF59D",
	block.HighlightGreen:  "#C8E6C9",
	block.HighlightBlue:   "#BBDEFB",
	block.HighlightPink:   "#F8BBD0",
}

// HighlightText renders s over the highlight color's background.
func (t Theme) HighlightText(s string, h block.Highlight) string {
	hex, ok := highlightHex[h]
	if t.plain || !ok {
		return s
	}
	return termenv.String(s).Background(t.color(hex)).String()
}

// BorderText renders s in the verse box border color.
func (t Theme) BorderText(s string, c block.BoxColor) string {
	if t.plain {
		return s
	}
	return termenv.String(s).Foreground(t.color(block.ColorDef(c).Border)).String()
}

func (t Theme) color(hex string) termenv.Color {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return t.profile.Color(hex)
	}
	return t.profile.Color(parsed.Clamped().Hex())
}
