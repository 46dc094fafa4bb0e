// Package selection tracks which destination is current, either by integer
// index or by path, along with a bounded history of earlier selections.
package selection

import (
	"errors"
	"slices"

	"github.com/llehouerou/navshell/internal/contract"
	"github.com/llehouerou/navshell/internal/observe"
)

// Mode determines how destinations are addressed.
type Mode int

const (
	// ByIndex addresses destinations by flat index.
	ByIndex Mode = iota
	// ByPath addresses destinations by an opaque path string.
	ByPath
)

// String returns the config name of the mode.
func (m Mode) String() string {
	if m == ByPath {
		return "path"
	}
	return "index"
}

// ParseMode maps a config string to a Mode. Unknown values yield ByIndex.
func ParseMode(s string) Mode {
	if s == "path" {
		return ByPath
	}
	return ByIndex
}

// DefaultHistoryLimit bounds the history when Options.HistoryLimit is zero.
const DefaultHistoryLimit = 32

var (
	// ErrWrongMode is returned when an index operation is used in path mode or vice versa.
	ErrWrongMode = errors.New("selection: operation does not match selection mode")
	// ErrOutOfRange is returned when an index falls outside [0, length).
	ErrOutOfRange = errors.New("selection: index out of range")
	// ErrNotSelectable is returned when an index names a slot that cannot
	// hold the selection, such as a parent destination.
	ErrNotSelectable = errors.New("selection: index is not selectable")
)

// Options configures a Model.
type Options struct {
	Mode         Mode
	Length       int
	InitialIndex *int
	InitialPath  string
	HistoryLimit int
	OnIndex      func(int)
	OnPath       func(string)
	// Selectable restricts which in-range indices may be selected. Nil
	// allows all of them.
	Selectable func(idx int) bool

	// RestoreIndices and RestorePaths seed the history, oldest first.
	// Entries that do not fit the mode or range are dropped.
	RestoreIndices []int
	RestorePaths   []string
}

// Model owns the current selection. Mutations go through SelectIndex,
// SelectPath, GoBack, Reset and SetLength so that history and notification
// stay consistent.
type Model struct {
	mode     Mode
	length   int
	index    int
	hasIndex bool
	path     string
	limit    int

	indexHistory []int
	pathHistory  []string

	onIndex    func(int)
	onPath     func(string)
	selectable func(int) bool

	listeners observe.List
}

// New creates a Model. An out-of-range or unselectable initial index is
// reported as a contract violation and replaced by the first selectable one.
func New(opts Options) *Model {
	m := &Model{
		mode:       opts.Mode,
		length:     max(opts.Length, 0),
		limit:      opts.HistoryLimit,
		onIndex:    opts.OnIndex,
		onPath:     opts.OnPath,
		selectable: opts.Selectable,
	}
	if m.limit <= 0 {
		m.limit = DefaultHistoryLimit
	}

	switch m.mode {
	case ByIndex:
		switch {
		case opts.InitialIndex != nil && m.validIndex(*opts.InitialIndex) && m.canSelect(*opts.InitialIndex):
			m.index, m.hasIndex = *opts.InitialIndex, true
		case opts.InitialIndex != nil && m.validIndex(*opts.InitialIndex):
			contract.Fail("selection.New", "initial index %d is not selectable", *opts.InitialIndex)
			m.resetIndex()
		case opts.InitialIndex != nil:
			contract.Fail("selection.New", "initial index %d out of range [0,%d)", *opts.InitialIndex, m.length)
			m.resetIndex()
		default:
			m.resetIndex()
		}
	case ByPath:
		m.path = opts.InitialPath
	}
	m.restore(opts.RestoreIndices, opts.RestorePaths)
	return m
}

// --- Queries ---

// Mode returns the selection mode.
func (m *Model) Mode() Mode { return m.mode }

// Length returns the expected destination count.
func (m *Model) Length() int { return m.length }

// Index returns the selected index. ok is false in path mode or when nothing is selected.
func (m *Model) Index() (idx int, ok bool) {
	if m.mode != ByIndex || !m.hasIndex {
		return 0, false
	}
	return m.index, true
}

// Path returns the selected path, empty when none.
func (m *Model) Path() string {
	if m.mode != ByPath {
		return ""
	}
	return m.path
}

// CanGoBack reports whether GoBack would change the selection.
func (m *Model) CanGoBack() bool {
	return m.HistoryLen() > 0
}

// HistoryLen returns the number of history entries for the active mode.
func (m *Model) HistoryLen() int {
	if m.mode == ByPath {
		return len(m.pathHistory)
	}
	return len(m.indexHistory)
}

// HistoryContainsIndex reports whether idx is in the index history.
func (m *Model) HistoryContainsIndex(idx int) bool {
	return slices.Contains(m.indexHistory, idx)
}

// HistoryContainsPath reports whether path is in the path history.
func (m *Model) HistoryContainsPath(path string) bool {
	return slices.Contains(m.pathHistory, path)
}

// HistoryIndexAt returns the i-th oldest index history entry.
func (m *Model) HistoryIndexAt(i int) (int, bool) {
	if i < 0 || i >= len(m.indexHistory) {
		return 0, false
	}
	return m.indexHistory[i], true
}

// HistoryPathAt returns the i-th oldest path history entry.
func (m *Model) HistoryPathAt(i int) (string, bool) {
	if i < 0 || i >= len(m.pathHistory) {
		return "", false
	}
	return m.pathHistory[i], true
}

// PreviousIndices returns a copy of the index history, oldest first.
func (m *Model) PreviousIndices() []int {
	return slices.Clone(m.indexHistory)
}

// PreviousPaths returns a copy of the path history, oldest first.
func (m *Model) PreviousPaths() []string {
	return slices.Clone(m.pathHistory)
}

// Subscribe registers a change listener. Listeners must not mutate the
// model re-entrantly; nested changes are delivered after the current pass.
func (m *Model) Subscribe(fn func()) func() {
	return m.listeners.Subscribe(fn)
}

// --- Mutations ---

// SelectIndex makes idx current. Selecting the current index is a no-op.
func (m *Model) SelectIndex(idx int) error {
	if !contract.Check(m.mode == ByIndex, "selection.SelectIndex", "model is in %s mode", m.mode) {
		return ErrWrongMode
	}
	if !contract.Check(m.validIndex(idx), "selection.SelectIndex", "index %d out of range [0,%d)", idx, m.length) {
		return ErrOutOfRange
	}
	if !contract.Check(m.canSelect(idx), "selection.SelectIndex", "index %d is not selectable", idx) {
		return ErrNotSelectable
	}
	if m.hasIndex && m.index == idx {
		return nil
	}
	if m.hasIndex && m.canSelect(m.index) {
		m.indexHistory = pushUnique(m.indexHistory, m.index, m.limit)
	}
	m.index, m.hasIndex = idx, true
	m.listeners.Notify()
	if m.onIndex != nil {
		m.onIndex(idx)
	}
	return nil
}

// SelectPath makes path current. Selecting the current path is a no-op.
func (m *Model) SelectPath(path string) error {
	if !contract.Check(m.mode == ByPath, "selection.SelectPath", "model is in %s mode", m.mode) {
		return ErrWrongMode
	}
	if m.path == path {
		return nil
	}
	if m.path != "" {
		m.pathHistory = pushUnique(m.pathHistory, m.path, m.limit)
	}
	m.path = path
	m.listeners.Notify()
	if m.onPath != nil {
		m.onPath(path)
	}
	return nil
}

// GoBack re-selects the most recent history entry without recording the
// selection it replaces. Returns false when history is empty.
func (m *Model) GoBack() bool {
	switch m.mode {
	case ByPath:
		if len(m.pathHistory) == 0 {
			return false
		}
		last := len(m.pathHistory) - 1
		m.path = m.pathHistory[last]
		m.pathHistory = m.pathHistory[:last]
		m.listeners.Notify()
		if m.onPath != nil {
			m.onPath(m.path)
		}
	default:
		return m.goBackIndex()
	}
	return true
}

// goBackIndex pops the newest history entry that can still be selected.
// Entries that no longer can are discarded on the way.
func (m *Model) goBackIndex() bool {
	dropped := false
	for len(m.indexHistory) > 0 {
		last := len(m.indexHistory) - 1
		idx := m.indexHistory[last]
		m.indexHistory = m.indexHistory[:last]
		if !m.validIndex(idx) || !m.canSelect(idx) {
			dropped = true
			continue
		}
		m.index, m.hasIndex = idx, true
		m.listeners.Notify()
		if m.onIndex != nil {
			m.onIndex(idx)
		}
		return true
	}
	if dropped {
		m.listeners.Notify()
	}
	return false
}

// Reset restores the initial-empty selection and clears history.
func (m *Model) Reset() {
	if m.mode == ByPath {
		m.path = ""
		m.pathHistory = nil
	} else {
		m.resetIndex()
		m.indexHistory = nil
	}
	m.listeners.Notify()
}

// SetLength updates the destination count, clamping the current index and
// dropping history entries that no longer exist.
func (m *Model) SetLength(n int) {
	n = max(n, 0)
	if n == m.length {
		return
	}
	m.length = n
	if m.mode != ByIndex {
		return
	}
	m.indexHistory = slices.DeleteFunc(m.indexHistory, func(i int) bool { return i >= n })
	if !m.hasIndex || m.index >= n {
		m.resetIndex()
	}
	m.listeners.Notify()
}

// Revalidate re-applies the Selectable rule after the destinations behind
// it changed: history entries that can no longer be selected are dropped and
// an unselectable current index falls back to the first selectable one.
func (m *Model) Revalidate() {
	if m.mode != ByIndex {
		return
	}
	before := len(m.indexHistory)
	m.indexHistory = slices.DeleteFunc(m.indexHistory, func(i int) bool { return !m.canSelect(i) })
	changed := len(m.indexHistory) != before
	if m.hasIndex && !m.canSelect(m.index) {
		m.resetIndex()
		if m.hasIndex {
			m.indexHistory = slices.DeleteFunc(m.indexHistory, func(i int) bool { return i == m.index })
		}
		changed = true
	}
	if changed {
		m.listeners.Notify()
	}
}

// Dispose drops all listeners.
func (m *Model) Dispose() {
	m.listeners.Dispose()
}

func (m *Model) validIndex(idx int) bool {
	if m.length == 0 {
		return idx == 0
	}
	return idx >= 0 && idx < m.length
}

func (m *Model) canSelect(idx int) bool {
	return m.selectable == nil || m.selectable(idx)
}

func (m *Model) restore(indices []int, paths []string) {
	switch m.mode {
	case ByIndex:
		for _, idx := range indices {
			if idx >= 0 && idx < m.length && m.canSelect(idx) {
				m.indexHistory = pushUnique(m.indexHistory, idx, m.limit)
			}
		}
	case ByPath:
		for _, p := range paths {
			m.pathHistory = pushUnique(m.pathHistory, p, m.limit)
		}
	}
}

// resetIndex selects the first selectable index, or nothing when there is
// none.
func (m *Model) resetIndex() {
	m.index, m.hasIndex = 0, false
	for i := range m.length {
		if m.canSelect(i) {
			m.index, m.hasIndex = i, true
			return
		}
	}
}

// pushUnique appends v, removing any earlier occurrence, and trims the
// oldest entries beyond limit.
func pushUnique[T comparable](history []T, v T, limit int) []T {
	history = slices.DeleteFunc(history, func(e T) bool { return e == v })
	history = append(history, v)
	if len(history) > limit {
		history = history[len(history)-limit:]
	}
	return history
}
