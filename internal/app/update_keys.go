package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/keymap"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	_, popupOpen := m.Shell.Tree().Popup()
	resolver := m.paneKeys
	if popupOpen {
		resolver = m.popupKeys
	}
	action := resolver.ResolveKey(msg)

	if m.ShowHelp {
		switch action {
		case keymap.ActionQuit:
		case keymap.ActionHelp, keymap.ActionClosePane, keymap.ActionClosePopup:
			m.ShowHelp = false
			return nil
		default:
			return nil
		}
	}

	switch action {
	case keymap.ActionQuit:
		m.Quitting = true
		m.SaveNavigationState()
		return tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionReloadConfig:
		m.reloadConfig()
	case keymap.ActionCycleMode:
		m.keyMode = nextOverride(m.Shell.ModeOverride())
		m.Shell.SetModeOverride(m.keyMode)
	case keymap.ActionToggleDirection:
		m.RTL = !m.RTL

	case keymap.ActionTogglePane:
		m.Shell.Toggle()
	case keymap.ActionOpenPane:
		m.Shell.Open()
	case keymap.ActionClosePane:
		if m.Shell.Motion().IsOpen() {
			m.Shell.Close()
		}

	case keymap.ActionMoveUp, keymap.ActionMoveDown:
		delta := 1
		if action == keymap.ActionMoveUp {
			delta = -1
		}
		m.moveFocus(delta, popupOpen)
	case keymap.ActionJumpStart:
		if m.revealDrawer() {
			m.Nav.JumpStart(m.paneRows(), m.paneHeight(), m.focusable())
		}
	case keymap.ActionJumpEnd:
		if m.revealDrawer() {
			m.Nav.JumpEnd(m.paneRows(), m.paneHeight(), m.focusable())
		}
	case keymap.ActionSelect:
		if popupOpen {
			m.selectPopupItem()
		} else if m.revealDrawer() {
			m.tap(m.Nav.Focus())
		}
	case keymap.ActionExpand:
		m.expandFocused()
	case keymap.ActionCollapse:
		m.collapseFocused()
	case keymap.ActionClosePopup:
		m.Shell.Tree().ClosePopup()

	case keymap.ActionGoBack:
		m.Shell.GoBack()
	case keymap.ActionReset:
		m.Shell.Reset()
	}
	return nil
}

// nextOverride cycles auto, minimal, medium, expanded, auto.
func nextOverride(cur *displaymode.Mode) *displaymode.Mode {
	var next displaymode.Mode
	switch {
	case cur == nil:
		next = displaymode.Minimal
	case *cur == displaymode.Minimal:
		next = displaymode.Medium
	case *cur == displaymode.Medium:
		next = displaymode.Expanded
	default:
		return nil
	}
	return &next
}

// revealDrawer opens a closed minimal-mode drawer instead of acting on rows
// the user cannot see. It reports whether the rows are visible.
func (m *Model) revealDrawer() bool {
	if m.Shell.DisplayMode() == displaymode.Minimal && !m.Shell.Motion().IsOpen() {
		m.Shell.Open()
		return false
	}
	return true
}

func (m *Model) moveFocus(delta int, popupOpen bool) {
	if popupOpen {
		m.Nav.MovePopup(delta, m.Shell.Tree().PopupItems())
		return
	}
	if m.revealDrawer() {
		m.Nav.Move(delta, m.paneRows(), m.paneHeight(), m.focusable())
	}
}

// tap forwards a tap to the shell and focuses the popup when one opens.
func (m *Model) tap(flat int) {
	if _, ok := m.Shell.Tree().Node(flat); !ok {
		return
	}
	m.Nav.SetFocus(flat, m.paneRows(), m.paneHeight())
	act := m.Shell.Tap(flat)
	if act.Kind == destination.ActionOpenPopup {
		tree := m.Shell.Tree()
		m.Nav.ResetPopup(tree.PopupItems(), tree.IsSelected)
	}
}

func (m *Model) selectPopupItem() {
	item, ok := m.Nav.PopupItem(m.Shell.Tree().PopupItems())
	if !ok || item.Dest.Disabled {
		return
	}
	m.Shell.PopupSelect(item.Flat)
}

func (m *Model) expandFocused() {
	tree := m.Shell.Tree()
	n, ok := tree.Node(m.Nav.Focus())
	if !ok || !n.HasChildren() || tree.IsExpanded(n.Flat) {
		return
	}
	m.tap(n.Flat)
}

// collapseFocused collapses the focused parent, or moves focus to the
// parent of a focused child and collapses that.
func (m *Model) collapseFocused() {
	tree := m.Shell.Tree()
	n, ok := tree.Node(m.Nav.Focus())
	if !ok {
		return
	}
	if !n.HasChildren() || !tree.IsExpanded(n.Flat) {
		if n.Parent < 0 {
			return
		}
		n, _ = tree.Node(n.Parent)
	}
	if tree.IsExpanded(n.Flat) {
		m.tap(n.Flat)
	}
}
