package pane

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/ui/render"
	"github.com/llehouerou/navshell/internal/ui/styles"
)

// Params describes one frame of the pane.
type Params struct {
	Width, Height int
	Labels        bool // show labels; false draws the icon rail
	RTL           bool
	Focus         int // flat index with keyboard focus, -1 for none
	Offset        int // first main row shown
	Dragging      bool
}

// View is a rendered pane plus the flat index drawn on each line.
type View struct {
	Lines []string
	flats []int // -1 for lines without a destination
}

// String joins the rendered lines.
func (v View) String() string {
	return strings.Join(v.Lines, "\n")
}

// Hit returns the flat index drawn on line y.
func (v View) Hit(y int) (int, bool) {
	if y < 0 || y >= len(v.flats) || v.flats[y] < 0 {
		return 0, false
	}
	return v.flats[y], true
}

// Line returns the line on which flat is drawn.
func (v View) Line(flat int) (int, bool) {
	for y, f := range v.flats {
		if f == flat {
			return y, true
		}
	}
	return 0, false
}

// Render draws the pane for tree.
func Render(t *destination.Tree, p Params) View {
	if p.Width <= 0 || p.Height <= 0 {
		return View{}
	}
	main, footer := Rows(t)

	// The inner edge holds the border.
	inner := max(p.Width-1, 0)

	footerRows := min(len(footer), p.Height)
	sep := 0
	if footerRows > 0 && p.Height-footerRows > 1 {
		sep = 1
	}
	mainRows := p.Height - footerRows - sep

	offset := visibleOffset(main, p.Focus, p.Offset, mainRows)

	v := View{Lines: make([]string, 0, p.Height), flats: make([]int, 0, p.Height)}
	for i := range mainRows {
		idx := offset + i
		if idx < len(main) {
			v.add(row(t, main[idx], inner, p), main[idx].Flat)
		} else {
			v.add(blank(inner), -1)
		}
	}
	if sep == 1 {
		v.add(styles.T().S().Subtle.Inherit(styles.T().S().Pane).Render(strings.Repeat("─", inner)), -1)
	}
	for _, n := range footer[len(footer)-footerRows:] {
		v.add(row(t, n, inner, p), n.Flat)
	}

	edge := styles.T().S().Handle
	if p.Dragging {
		edge = edge.Foreground(styles.T().BorderFocus)
	}
	for i, line := range v.Lines {
		if inner == p.Width {
			break
		}
		if p.RTL {
			v.Lines[i] = edge.Render("│") + line
		} else {
			v.Lines[i] = line + edge.Render("│")
		}
	}
	return v
}

func (v *View) add(line string, flat int) {
	v.Lines = append(v.Lines, line)
	v.flats = append(v.flats, flat)
}

func visibleOffset(main []destination.Node, focus, offset, rows int) int {
	if rows <= 0 {
		return 0
	}
	offset = max(0, min(offset, len(main)-rows))
	for i, n := range main {
		if n.Flat != focus {
			continue
		}
		if i < offset {
			return i
		}
		if i >= offset+rows {
			return i - rows + 1
		}
	}
	return offset
}

func blank(width int) string {
	return styles.T().S().Pane.Render(render.Blank(width))
}

func row(t *destination.Tree, n destination.Node, width int, p Params) string {
	s := styles.T().S()
	selected := t.IsSelected(n.Flat)

	glyph := icons.Glyph(n.Dest.Icon, n.Dest.Label)
	if selected && n.Dest.SelectedIcon != "" {
		glyph = icons.Glyph(n.Dest.SelectedIcon, n.Dest.Label)
	}

	var style lipgloss.Style
	switch {
	case n.Flat == p.Focus:
		style = s.Cursor
	case n.Dest.Disabled:
		style = s.Disabled.Inherit(s.Pane)
	case selected, t.ContainsSelection(n.Flat):
		style = s.Selected.Inherit(s.Pane)
	case n.Footer:
		style = s.Muted.Inherit(s.Pane)
	default:
		style = s.Base.Inherit(s.Pane)
	}

	if !p.Labels {
		return style.Render(rail(glyph, n, t, width))
	}

	indent := strings.Repeat("  ", n.Depth)
	marker := ""
	if n.HasChildren() {
		if t.CompactClosed() {
			marker = icons.Popup()
		} else {
			marker = icons.Chevron(t.IsExpanded(n.Flat))
		}
	}
	// one cell of margin on both sides
	labelWidth := max(width-2-len(indent)-2-len([]rune(marker))-1, 0)
	label := render.Truncate(n.Dest.Label, labelWidth)

	var line string
	if p.RTL {
		line = render.Row(" "+marker, label+" "+glyph+indent+" ", width)
	} else {
		line = render.Row(" "+indent+glyph+" "+label, marker+" ", width)
	}
	if selected && n.Flat != p.Focus {
		return selectedLine(line, style)
	}
	return style.Render(line)
}

// rail centers the glyph; parents get the popup marker beside it when it fits.
func rail(glyph string, n destination.Node, t *destination.Tree, width int) string {
	cell := glyph
	if n.HasChildren() && t.CompactClosed() && width >= 4 {
		cell += icons.Popup()
	}
	w := lipgloss.Width(cell)
	left := max((width-w)/2, 0)
	return render.Fit(render.Blank(left)+cell, width, false)
}

// selectedLine draws the selected row's text as a gradient on the pane
// background.
func selectedLine(line string, style lipgloss.Style) string {
	th := styles.T()
	trimmed := strings.TrimLeft(line, " ")
	lead := len(line) - len(trimmed)
	text := strings.TrimRight(trimmed, " ")
	trail := len(trimmed) - len(text)
	return style.Render(strings.Repeat(" ", lead)) +
		styles.Gradient(text, th.Primary, th.Secondary, true) +
		style.Render(strings.Repeat(" ", trail))
}
