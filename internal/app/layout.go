package app

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/motion"
	"github.com/llehouerou/navshell/internal/ui/headerbar"
	"github.com/llehouerou/navshell/internal/ui/layout"
	"github.com/llehouerou/navshell/internal/ui/pane"
	"github.com/llehouerou/navshell/internal/ui/popup"
)

// HandleWidth is the width in cells of the strip on the pane edge that
// accepts drags.
const HandleWidth = 2.0

func (m Model) direction() layout.Direction {
	if m.RTL {
		return layout.RTL
	}
	return layout.LTR
}

func (m Model) orientation() motion.Orientation {
	return motion.Orientation{RTL: m.RTL}
}

func (m Model) viewport() layout.Size {
	return layout.Size{W: float64(m.Width), H: float64(m.Height)}
}

func (m Model) layoutInput() layout.Input {
	return m.Shell.LayoutInput(m.viewport(), layout.Insets{}, m.direction())
}

func (m Model) rects() layout.Rects {
	return layout.Compose(m.layoutInput())
}

// dragSpan is the pointer travel, in cells, between closed and open.
func (m Model) dragSpan() float64 {
	pc := m.Config.GetPaneConfig()
	if m.Shell.DisplayMode() == displaymode.Medium {
		return float64(pc.OpenWidth - pc.CompactWidth)
	}
	return float64(pc.OpenWidth)
}

// --- Pane ---

// paneFrame is the rendered pane and where it sits on screen.
type paneFrame struct {
	view  pane.View
	cells layout.Cells
	// cut is the first rendered column shown; in minimal mode the pane is
	// drawn at full width and slides in from the edge.
	cut int
}

func (m Model) focusable() func(flat int) bool {
	tree := m.Shell.Tree()
	return func(flat int) bool {
		n, ok := tree.Node(flat)
		return ok && !n.Dest.Disabled
	}
}

func (m Model) paneFrame() paneFrame {
	rects := m.rects()
	cells := rects.Pane.Round()
	if cells.W <= 0 || cells.H <= 0 {
		return paneFrame{cells: cells}
	}

	width := cells.W
	if rects.PaneOverlay {
		width = max(min(m.Config.GetPaneConfig().OpenWidth, m.Width), cells.W)
	}
	view := pane.Render(m.Shell.Tree(), pane.Params{
		Width:    width,
		Height:   cells.H,
		Labels:   m.Shell.IsPaneOpen() || rects.PaneOverlay,
		RTL:      m.RTL,
		Focus:    m.Nav.Focus(),
		Offset:   m.Nav.Offset(),
		Dragging: m.drag.Active(),
	})

	f := paneFrame{view: view, cells: cells}
	if width > cells.W && !m.RTL {
		f.cut = width - cells.W
	}
	if width > cells.W {
		for i, line := range view.Lines {
			f.view.Lines[i] = ansi.Cut(line, f.cut, f.cut+cells.W)
		}
	}
	return f
}

// paneRows returns the flat indices in display order.
func (m Model) paneRows() []int {
	return pane.Flats(pane.Rows(m.Shell.Tree()))
}

// --- Child popup ---

// popupBox is the rendered child menu and its placement.
type popupBox struct {
	content string
	x, y    int
	items   []destination.Node
	// top is the row of the first item inside content.
	top int
}

func (m Model) popupBox() (popupBox, bool) {
	tree := m.Shell.Tree()
	parentFlat, open := tree.Popup()
	if !open || m.Width <= 0 {
		return popupBox{}, false
	}
	parent, _ := tree.Node(parentFlat)
	items := tree.PopupItems()

	entries := make([]popup.Item, len(items))
	for i, n := range items {
		entries[i] = popup.Item{
			Icon:     icons.Glyph(n.Dest.Icon, n.Dest.Label),
			Label:    n.Dest.Label,
			Selected: tree.IsSelected(n.Flat),
			Disabled: n.Dest.Disabled,
		}
	}
	menu := popup.NewMenu(parent.Dest.Label, entries)
	menu.Cursor = m.Nav.PopupPos()
	content := menu.Render(m.Width)

	w := firstLineWidth(content)
	h := len(items) + 4

	pf := m.paneFrame()
	line, _ := pf.view.Line(parentFlat)
	y := pf.cells.Y + line - 1
	y = max(min(y, m.Height-h), headerbar.Height)

	x := pf.cells.X + pf.cells.W
	if m.RTL {
		x = pf.cells.X - w
	}
	x = max(min(x, m.Width-w), 0)

	return popupBox{content: content, x: x, y: y, items: items, top: 3}, true
}

// itemAt returns the popup item drawn at screen cell (x, y).
func (b popupBox) itemAt(x, y int) (int, bool) {
	w := firstLineWidth(b.content)
	if x <= b.x || x >= b.x+w-1 {
		return 0, false
	}
	i := y - b.y - b.top
	if i < 0 || i >= len(b.items) {
		return 0, false
	}
	return i, true
}

// contains reports whether (x, y) lies on the popup, border included.
func (b popupBox) contains(x, y int) bool {
	w := firstLineWidth(b.content)
	h := len(b.items) + b.top + 1
	return x >= b.x && x < b.x+w && y >= b.y && y < b.y+h
}

func firstLineWidth(s string) int {
	line, _, _ := strings.Cut(s, "\n")
	return ansi.StringWidth(line)
}
