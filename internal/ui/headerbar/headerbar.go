// Package headerbar renders the app bar above the body.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/ui/render"
	"github.com/llehouerou/navshell/internal/ui/styles"
)

// Height is the default height of the app bar in rows.
const Height = 1

// Info is what the app bar shows.
type Info struct {
	Title       string
	Destination string // label of the selected destination
	Mode        string // display mode name
	Forced      bool   // the mode is an override
	ShowMenu    bool   // the pane can be toggled from here
	CanGoBack   bool
	RTL         bool
}

// MenuWidth is the number of cells the menu button occupies at the start
// of the bar, for mouse hit testing.
const MenuWidth = 3

// Render returns the app bar, exactly width x height cells.
func Render(info Info, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := styles.T().S()

	var left strings.Builder
	if info.ShowMenu {
		left.WriteString(" " + icons.Menu() + " ")
	}
	if info.CanGoBack {
		left.WriteString(icons.Back() + " ")
	}
	left.WriteString(render.Sanitize(info.Title))
	if info.Destination != "" {
		left.WriteString(" › ")
		left.WriteString(render.Sanitize(info.Destination))
	}

	right := info.Mode
	if info.Forced {
		right += "*"
	}
	right += " "

	var line string
	if info.RTL {
		line = render.Row(right, mirror(left.String()), width)
	} else {
		line = render.Row(left.String(), right, width)
	}

	rows := make([]string, height)
	rows[0] = s.AppBar.Render(line)
	blank := s.AppBar.Render(render.Blank(width))
	for i := 1; i < height; i++ {
		rows[i] = blank
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// MenuHit reports whether column x of the bar is on the menu button.
func MenuHit(info Info, x, width int) bool {
	if !info.ShowMenu {
		return false
	}
	if info.RTL {
		return x >= width-MenuWidth && x < width
	}
	return x >= 0 && x < MenuWidth
}

// mirror reverses the order of the space-separated parts so that the
// button comes last when the bar reads right to left.
func mirror(s string) string {
	parts := strings.Fields(s)
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, " ") + " "
}
