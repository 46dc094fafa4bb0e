package app

import (
	"slices"

	"github.com/llehouerou/navshell/internal/state"
)

// navigationState snapshots what survives a restart.
func (m Model) navigationState() state.NavigationState {
	st := state.NavigationState{
		SelectionMode:  m.Shell.Selection().Mode().String(),
		SelectedPath:   m.Shell.SelectedPath(),
		HistoryIndices: m.Shell.PreviousIndices(),
		HistoryPaths:   m.Shell.PreviousPaths(),
		PaneOpen:       m.Shell.Motion().IsOpen(),
	}
	if idx, ok := m.Shell.SelectedIndex(); ok {
		st.SelectedIndex = &idx
	}
	if m.keyMode != nil {
		st.DisplayMode = m.keyMode.String()
	}
	return st
}

// SaveNavigationState persists the current navigation state.
func (m *Model) SaveNavigationState() {
	if m.StateMgr == nil || !m.Config.ShouldPersist() {
		return
	}
	st := m.navigationState()
	m.StateMgr.SaveNavigation(st)
	m.savedState = &st
}

// persistIfChanged saves when the snapshot differs from the last one saved.
// Drags in flight are saved once they settle.
func (m *Model) persistIfChanged() {
	if m.drag.Active() {
		return
	}
	st := m.navigationState()
	if m.savedState != nil && sameNavigation(*m.savedState, st) {
		return
	}
	m.SaveNavigationState()
}

func sameNavigation(a, b state.NavigationState) bool {
	sameIndex := (a.SelectedIndex == nil) == (b.SelectedIndex == nil) &&
		(a.SelectedIndex == nil || *a.SelectedIndex == *b.SelectedIndex)
	return sameIndex &&
		a.SelectionMode == b.SelectionMode &&
		a.SelectedPath == b.SelectedPath &&
		a.PaneOpen == b.PaneOpen &&
		a.DisplayMode == b.DisplayMode &&
		slices.Equal(a.HistoryIndices, b.HistoryIndices) &&
		slices.Equal(a.HistoryPaths, b.HistoryPaths)
}
