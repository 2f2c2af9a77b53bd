package report

import (
	"strings"

	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// truncate shortens s to at most maxWidth terminal cells, cutting on
// grapheme cluster boundaries and marking the cut with an ellipsis.
func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	limit := maxWidth - uniseg.StringWidth(ellipsis)
	var sb strings.Builder
	width := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > limit {
			break
		}
		sb.WriteString(cluster)
		width += w
	}
	sb.WriteString(ellipsis)
	return sb.String()
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	w := uniseg.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// bar draws a weight between 0 and 100 as a fixed-width bar.
func bar(weight, width int) string {
	weight = min(max(weight, 0), 100)
	filled := (weight*width + 50) / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
