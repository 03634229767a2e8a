package styles

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cellSanitizer flattens control whitespace so a cell renders on a
// single line. CRLF pairs collapse to one space.
var cellSanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// Sanitize replaces newlines and tabs in s with spaces.
func Sanitize(s string) string {
	return cellSanitizer.Replace(s)
}

// TruncateString shortens s to at most maxWidth display columns,
// appending an ellipsis when anything was cut. Width is measured per
// grapheme cluster so emoji and combining sequences are never split.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}

	var b strings.Builder
	width := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, next := uniseg.StepString(s, state)
		w := runewidth.StringWidth(cluster)
		if width+w > maxWidth-1 {
			break
		}
		b.WriteString(cluster)
		width += w
		s = rest
		state = next
	}
	return b.String() + "…"
}

// PadRight pads s with trailing spaces to width display columns.
// Strings already at or past width are returned unchanged.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft pads s with leading spaces to width display columns.
func PadLeft(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
