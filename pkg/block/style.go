package block

// FontSize is a coarse size bucket carried on block-level text style.
type FontSize string

const (
	FontSmall  FontSize = "s"
	FontNormal FontSize = "n"
	FontLarge  FontSize = "l"
	FontXLarge FontSize = "xl"
)

// Points returns the rendered point size for a bucket, defaulting to
// normal for unknown values.
func (f FontSize) Points() int {
	switch f {
	case FontSmall:
		return 14
	case FontLarge:
		return 18
	case FontXLarge:
		return 22
	default:
		return 16
	}
}

// Highlight names a text highlight color.
type Highlight string

const (
	HighlightNone   Highlight = ""
	HighlightYellow Highlight = "yellow"
	HighlightGreen  Highlight = "green"
	HighlightBlue   Highlight = "blue"
	HighlightPink   Highlight = "pink"
)

// BoxColor names a verse block frame color. Distinct enum space from
// Highlight.
type BoxColor string

const (
	BoxGold   BoxColor = "gold"
	BoxBlue   BoxColor = "blue"
	BoxGreen  BoxColor = "green"
	BoxPurple BoxColor = "purple"
	BoxRed    BoxColor = "red"
	BoxTeal   BoxColor = "teal"
)

// BoxColorDef carries the render colors for a verse frame.
type BoxColorDef struct {
	ID         BoxColor
	Background string
	Border     string
}

var boxColors = []BoxColorDef{
	{BoxGold, "#FEF9F3", "#D4A574"},
	{BoxBlue, "#EBF5FF", "#5B9BD5"},
	{BoxGreen, "#E8F5E9", "#66BB6A"},
	{BoxPurple, "#F3E5F5", "#AB47BC"},
	{BoxRed, "#FFEBEE", "#EF5350"},
	{BoxTeal, "#E0F2F1", "#26A69A"},
}

// BoxColors returns the fixed verse frame palette.
func BoxColors() []BoxColorDef {
	out := make([]BoxColorDef, len(boxColors))
	copy(out, boxColors)
	return out
}

// ColorDef resolves a box color id, falling back to the first palette
// entry for unknown ids.
func ColorDef(id BoxColor) BoxColorDef {
	for _, c := range boxColors {
		if c.ID == id {
			return c
		}
	}
	return boxColors[0]
}

// TextStyle is the block-level default style applied to text typed while
// no range is active.
type TextStyle struct {
	Bold      bool      `json:"bold,omitempty"`
	Italic    bool      `json:"italic,omitempty"`
	Underline bool      `json:"underline,omitempty"`
	FontSize  FontSize  `json:"fontSize,omitempty"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// IsZero reports whether no style attribute is set.
func (s TextStyle) IsZero() bool {
	return s == TextStyle{}
}
