package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/ui/headerbar"
	"github.com/llehouerou/navshell/internal/ui/layout"
)

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if m.drag.Active() {
			delta := m.drag.Move(float64(msg.X))
			m.Shell.Motion().DragBy(delta, m.dragSpan(), m.orientation())
		}
		return
	case tea.MouseActionRelease:
		if m.drag.Active() {
			delta, velocity := m.drag.End(float64(msg.X))
			mo := m.Shell.Motion()
			mo.DragBy(delta, m.dragSpan(), m.orientation())
			mo.EndDrag(velocity, m.dragSpan(), m.orientation())
		}
		return
	}
	if msg.Action != tea.MouseActionPress {
		return
	}

	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		delta := 1
		if msg.Button == tea.MouseButtonWheelUp {
			delta = -1
		}
		_, popupOpen := m.Shell.Tree().Popup()
		m.moveFocus(delta, popupOpen)
		return
	}
	if msg.Button != tea.MouseButtonLeft || m.ShowHelp {
		return
	}

	if box, ok := m.popupBox(); ok {
		if i, hit := box.itemAt(msg.X, msg.Y); hit {
			if !box.items[i].Dest.Disabled {
				m.Shell.PopupSelect(box.items[i].Flat)
			}
			return
		}
		if !box.contains(msg.X, msg.Y) {
			m.Shell.Tree().ClosePopup()
		}
		return
	}

	in := m.layoutInput()
	rects := layout.Compose(in)
	x, y := float64(msg.X)+0.5, float64(msg.Y)+0.5

	if m.Shell.DisplayMode() != displaymode.Expanded &&
		layout.DragHandle(in, rects, HandleWidth).Contains(x, y) {
		m.drag.Begin(float64(msg.X))
		m.Shell.Motion().BeginDrag()
		return
	}

	if rects.AppBar.Contains(x, y) {
		if headerbar.MenuHit(m.headerInfo(), msg.X, m.Width) {
			m.Shell.Toggle()
		}
		return
	}

	if rects.Pane.Contains(x, y) {
		pf := m.paneFrame()
		if flat, ok := pf.view.Hit(msg.Y - pf.cells.Y); ok {
			m.tap(flat)
		}
		return
	}

	// tapping the scrim dismisses the drawer
	if rects.PaneOverlay && m.Shell.Motion().IsOpen() {
		m.Shell.Close()
	}
}
