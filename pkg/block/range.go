package block

import "unicode/utf16"

// StyleRange is a character-offset span carrying formatting flags.
// Offsets index the owning block's content in UTF-16 code units, the
// indexing the persisted documents were written with. Ranges may
// overlap; rendering composes all ranges covering an offset.
type StyleRange struct {
	Start     int       `json:"start"`
	End       int       `json:"end"`
	Bold      bool      `json:"bold,omitempty"`
	Italic    bool      `json:"italic,omitempty"`
	Underline bool      `json:"underline,omitempty"`
	Highlight Highlight `json:"highlight,omitempty"`
}

// Flag names a toggleable boolean style attribute.
type Flag string

const (
	FlagBold      Flag = "bold"
	FlagItalic    Flag = "italic"
	FlagUnderline Flag = "underline"
)

func (r StyleRange) flag(f Flag) bool {
	switch f {
	case FlagBold:
		return r.Bold
	case FlagItalic:
		return r.Italic
	case FlagUnderline:
		return r.Underline
	}
	return false
}

func (r *StyleRange) setFlag(f Flag, v bool) {
	switch f {
	case FlagBold:
		r.Bold = v
	case FlagItalic:
		r.Italic = v
	case FlagUnderline:
		r.Underline = v
	}
}

// ContentLength returns the length of s in UTF-16 code units.
func ContentLength(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}

// ShiftRanges applies a content edit to a text block and shifts its
// style ranges by the net length change. The algorithm only knows the
// length delta and the caret position before the edit, so it is a
// heuristic: equal-length replacement edits do not move ranges at all.
// That imprecision is ported behavior; the renderer re-derives styling
// on every edit and the user re-applies when it drifts. What must hold
// is that no surviving range is ever out of bounds.
func ShiftRanges(b *TextBlock, newContent string, caretBeforeEdit int) *TextBlock {
	out := *b
	out.Content = newContent

	delta := ContentLength(newContent) - ContentLength(b.Content)
	if delta == 0 || len(b.Ranges) == 0 {
		return &out
	}

	// Position just before the inserted or deleted span. For a deletion
	// the caret sits at the end of the removed span; for an insertion
	// delta is positive and this backs up over the new text.
	cp := caretBeforeEdit - delta
	if delta < 0 {
		cp = caretBeforeEdit
	}
	if cp < 0 {
		cp = 0
	}

	limit := ContentLength(newContent)
	shifted := make([]StyleRange, 0, len(b.Ranges))
	for _, r := range b.Ranges {
		switch {
		case cp >= r.End:
			// Edit is at or after the range; it does not move.
		case cp <= r.Start:
			r.Start += delta
			r.End += delta
		default:
			// Edit lands inside the range; the start stays put and the
			// range absorbs the change.
			r.End += delta
			if r.End < r.Start+1 {
				r.End = r.Start + 1
			}
		}
		if r.Start < 0 || r.End > limit || r.Start >= r.End {
			// Dropped, not clamped: a clamped range would resurrect
			// stale styling on unrelated text.
			continue
		}
		shifted = append(shifted, r)
	}
	out.Ranges = shifted
	return &out
}

// ToggleStyle toggles a boolean style flag over the selection
// [selStart, selEnd). A collapsed selection toggles the block-level
// default style used for subsequently typed text. A real selection
// either removes the flag (when every selected offset already carries
// it) or adds one covering range.
func ToggleStyle(b *TextBlock, selStart, selEnd int, flag Flag) *TextBlock {
	out := *b

	if selStart >= selEnd {
		style := TextStyle{}
		if b.Style != nil {
			style = *b.Style
		}
		switch flag {
		case FlagBold:
			style.Bold = !style.Bold
		case FlagItalic:
			style.Italic = !style.Italic
		case FlagUnderline:
			style.Underline = !style.Underline
		}
		out.Style = &style
		return &out
	}

	match := func(r StyleRange) bool { return r.flag(flag) }
	if covered(b.Ranges, selStart, selEnd, match) {
		out.Ranges = splitOut(b.Ranges, selStart, selEnd, match)
	} else {
		added := StyleRange{Start: selStart, End: selEnd}
		added.setFlag(flag, true)
		out.Ranges = append(append([]StyleRange(nil), b.Ranges...), added)
	}
	return &out
}

// SetHighlight applies or clears a highlight color over the selection.
// A nil-equivalent (empty) color removes any highlight from the
// selection; otherwise the same full-coverage test as ToggleStyle
// decides between removal and adding a range.
func SetHighlight(b *TextBlock, selStart, selEnd int, color Highlight) *TextBlock {
	out := *b

	if selStart >= selEnd {
		style := TextStyle{}
		if b.Style != nil {
			style = *b.Style
		}
		style.Highlight = color
		out.Style = &style
		return &out
	}

	anyHighlight := func(r StyleRange) bool { return r.Highlight != HighlightNone }
	if color == HighlightNone {
		out.Ranges = splitOut(b.Ranges, selStart, selEnd, anyHighlight)
		return &out
	}

	sameColor := func(r StyleRange) bool { return r.Highlight == color }
	if covered(b.Ranges, selStart, selEnd, sameColor) {
		out.Ranges = splitOut(b.Ranges, selStart, selEnd, sameColor)
	} else {
		out.Ranges = append(append([]StyleRange(nil), b.Ranges...),
			StyleRange{Start: selStart, End: selEnd, Highlight: color})
	}
	return &out
}

// covered reports whether every offset in [selStart, selEnd) lies in at
// least one range accepted by match.
func covered(ranges []StyleRange, selStart, selEnd int, match func(StyleRange) bool) bool {
	// Walk the selection left to right, extending the covered frontier
	// with any matching range that starts at or before it.
	at := selStart
	for at < selEnd {
		advanced := false
		for _, r := range ranges {
			if match(r) && r.Start <= at && r.End > at {
				if r.End > at {
					at = r.End
					advanced = true
				}
			}
		}
		if !advanced {
			return false
		}
	}
	return true
}

// splitOut removes the [selStart, selEnd) portion of every matching
// range, keeping up-to-two remainder ranges outside the selection. The
// selected portion is dropped entirely; remainders retain all of the
// original range's attributes. Non-matching ranges pass through.
func splitOut(ranges []StyleRange, selStart, selEnd int, match func(StyleRange) bool) []StyleRange {
	out := make([]StyleRange, 0, len(ranges))
	for _, r := range ranges {
		if !match(r) || r.End <= selStart || r.Start >= selEnd {
			out = append(out, r)
			continue
		}
		if r.Start < selStart {
			left := r
			left.End = selStart
			out = append(out, left)
		}
		if r.End > selEnd {
			right := r
			right.Start = selEnd
			out = append(out, right)
		}
	}
	return out
}

// StyleAt composes the effective style at one offset. Boolean flags OR
// across every covering range plus the block default. For conflicting
// highlight colors the most recently added covering range wins, then
// the block default.
func StyleAt(b *TextBlock, offset int) TextStyle {
	style := TextStyle{}
	if b.Style != nil {
		style = *b.Style
	}
	for _, r := range b.Ranges {
		if r.Start <= offset && offset < r.End {
			style.Bold = style.Bold || r.Bold
			style.Italic = style.Italic || r.Italic
			style.Underline = style.Underline || r.Underline
			if r.Highlight != HighlightNone {
				style.Highlight = r.Highlight
			}
		}
	}
	return style
}
