// Package overlay composes rendered blocks on top of each other.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws block over base with its top-left corner at column x and row
// y. base is padded to width; block cells outside it are clipped. Both
// strings may carry ANSI styling.
func Place(base, block string, x, y, width int) string {
	if block == "" || width <= 0 {
		return base
	}
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		baseLines[row] = splice(baseLines[row], line, x, width)
	}
	return strings.Join(baseLines, "\n")
}

// splice replaces the cells of line starting at column x with over.
func splice(line, over string, x, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	start, end := x, x+ansi.StringWidth(over)
	if start < 0 {
		over = ansi.Cut(over, -start, end-start)
		start = 0
	}
	if end > width {
		over = ansi.Cut(over, 0, width-start)
		end = width
	}
	if start >= end {
		return line
	}

	var b strings.Builder
	b.WriteString(ansi.Cut(line, 0, start))
	b.WriteString(over)
	if end < width {
		b.WriteString(ansi.Cut(line, end, width))
	}
	return b.String()
}
