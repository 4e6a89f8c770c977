package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrap breaks text on spaces into lines at most width cells wide.
// A word wider than width gets a line of its own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if lineWidth > 0 && lineWidth+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(w)
		lineWidth += ww
	}
	return append(lines, line.String())
}
