// Package navctl tracks keyboard focus over the pane rows and the child
// popup menu.
package navctl

import (
	"slices"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/ui/cursor"
)

// ScrollMargin is the number of rows kept visible around the focus.
const ScrollMargin = 1

// Manager holds the focused destination by flat index, so that focus
// survives rows appearing and disappearing while parents expand.
type Manager struct {
	focus  int
	cursor cursor.Cursor
	popup  int
}

// New creates a Manager with nothing focused.
func New() *Manager {
	return &Manager{focus: -1, cursor: cursor.New(ScrollMargin)}
}

// --- Pane focus ---

// Focus returns the focused flat index, -1 when nothing is focused.
func (n *Manager) Focus() int {
	return n.focus
}

// Offset returns the first visible row.
func (n *Manager) Offset() int {
	return n.cursor.Offset()
}

// SetFocus focuses flat if it is one of rows.
func (n *Manager) SetFocus(flat int, rows []int, height int) {
	if i := slices.Index(rows, flat); i >= 0 {
		n.cursor.Jump(i, len(rows), height, nil)
		n.focus = flat
	}
}

// Sync re-anchors the focus after rows changed. A focus that is no longer
// shown moves to prefer, or to the first focusable row.
func (n *Manager) Sync(rows []int, height int, ok func(flat int) bool, prefer int) {
	if len(rows) == 0 {
		n.focus = -1
		n.cursor.Clamp(0, height)
		return
	}
	okRow := rowFilter(rows, ok)
	i := slices.Index(rows, n.focus)
	if i < 0 {
		i = slices.Index(rows, prefer)
	}
	if i < 0 {
		n.cursor.JumpStart(len(rows), height, okRow)
	} else {
		n.cursor.Jump(i, len(rows), height, okRow)
	}
	n.focus = rows[n.cursor.Pos()]
}

// Move steps the focus by delta focusable rows.
func (n *Manager) Move(delta int, rows []int, height int, ok func(flat int) bool) {
	n.Sync(rows, height, ok, -1)
	if len(rows) == 0 {
		return
	}
	n.cursor.Move(delta, len(rows), height, rowFilter(rows, ok))
	n.focus = rows[n.cursor.Pos()]
}

// JumpStart focuses the first focusable row.
func (n *Manager) JumpStart(rows []int, height int, ok func(flat int) bool) {
	if len(rows) == 0 {
		return
	}
	n.cursor.JumpStart(len(rows), height, rowFilter(rows, ok))
	n.focus = rows[n.cursor.Pos()]
}

// JumpEnd focuses the last focusable row.
func (n *Manager) JumpEnd(rows []int, height int, ok func(flat int) bool) {
	if len(rows) == 0 {
		return
	}
	n.cursor.JumpEnd(len(rows), height, rowFilter(rows, ok))
	n.focus = rows[n.cursor.Pos()]
}

func rowFilter(rows []int, ok func(flat int) bool) cursor.Focusable {
	if ok == nil {
		return nil
	}
	return func(i int) bool { return ok(rows[i]) }
}

// --- Popup focus ---

// PopupPos returns the focused item of the popup menu.
func (n *Manager) PopupPos() int {
	return n.popup
}

// ResetPopup focuses the selected item of a freshly opened popup, or its
// first enabled item.
func (n *Manager) ResetPopup(items []destination.Node, selected func(flat int) bool) {
	n.popup = 0
	for i, it := range items {
		if selected != nil && selected(it.Flat) {
			n.popup = i
			return
		}
	}
	for i, it := range items {
		if !it.Dest.Disabled {
			n.popup = i
			return
		}
	}
}

// MovePopup steps the popup focus, skipping disabled items.
func (n *Manager) MovePopup(delta int, items []destination.Node) {
	c := cursor.New(0)
	c.Jump(n.popup, len(items), len(items), nil)
	c.Move(delta, len(items), len(items), func(i int) bool { return !items[i].Dest.Disabled })
	n.popup = c.Pos()
}

// PopupItem returns the focused popup item.
func (n *Manager) PopupItem(items []destination.Node) (destination.Node, bool) {
	if n.popup < 0 || n.popup >= len(items) {
		return destination.Node{}, false
	}
	return items[n.popup], true
}
