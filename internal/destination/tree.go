package destination

import (
	"time"

	"github.com/llehouerou/navshell/internal/contract"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/observe"
	"github.com/llehouerou/navshell/internal/selection"
)

// Selector is the part of the selection model the tree drives.
type Selector interface {
	Mode() selection.Mode
	Index() (int, bool)
	Path() string
	SelectIndex(idx int) error
	SelectPath(path string) error
}

// ActionKind says what a tap did.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionSelect
	ActionToggle
	ActionOpenPopup
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionToggle:
		return "toggle"
	case ActionOpenPopup:
		return "popup"
	default:
		return "none"
	}
}

// Action is the result of a tap.
type Action struct {
	Kind ActionKind
	Flat int
}

const noPopup = -1

// Tree resolves taps against a flattened destination list. It owns the
// per-parent expansion state and the transient child popup.
type Tree struct {
	nodes    []Node
	sel      Selector
	expanded []bool
	popup    int

	mode     displaymode.Mode
	paneOpen bool

	arena     *arena
	listeners observe.List
}

// NewTree flattens main and footer. sel may be nil, in which case nothing
// reports selected and leaf taps do nothing.
func NewTree(main, footer []Destination, sel Selector) *Tree {
	t := &Tree{sel: sel, popup: noPopup, arena: newArena()}
	t.build(main, footer, nil)
	return t
}

// Rebuild re-flattens after the destination lists change. Expansion state
// carries over for nodes at the same position with the same label; nodes
// that left the tree release their animation state.
func (t *Tree) Rebuild(main, footer []Destination) {
	prev := make(map[string]bool, len(t.nodes))
	for _, n := range t.nodes {
		if n.HasChildren() {
			prev[n.key] = t.expanded[n.Flat]
		}
	}
	t.build(main, footer, prev)
	t.popup = noPopup
	t.listeners.Notify()
}

func (t *Tree) build(main, footer []Destination, prev map[string]bool) {
	t.nodes = Flatten(main, footer)
	t.expanded = make([]bool, len(t.nodes))
	live := make(map[string]bool, len(t.nodes))
	for _, n := range t.nodes {
		if !n.HasChildren() {
			continue
		}
		exp, ok := prev[n.key]
		if !ok {
			exp = n.Dest.InitialExpanded
		}
		t.expanded[n.Flat] = exp
		live[n.key] = true
		t.arena.ensure(n.key, exp)
	}
	t.arena.prune(live)
}

// --- Queries ---

// Len returns the number of flat slots.
func (t *Tree) Len() int { return len(t.nodes) }

// Nodes returns every node in flat order.
func (t *Tree) Nodes() []Node { return t.nodes }

// Node returns the node at flat.
func (t *Tree) Node(flat int) (Node, bool) {
	if flat < 0 || flat >= len(t.nodes) {
		return Node{}, false
	}
	return t.nodes[flat], true
}

// IsSelected reports whether the leaf at flat is the current selection:
// by path when the destination has one, otherwise by flat index.
func (t *Tree) IsSelected(flat int) bool {
	n, ok := t.Node(flat)
	if !ok || t.sel == nil || n.HasChildren() {
		return false
	}
	if n.Dest.Path != "" {
		return t.sel.Mode() == selection.ByPath && t.sel.Path() == n.Dest.Path
	}
	if t.sel.Mode() != selection.ByIndex {
		return false
	}
	idx, ok := t.sel.Index()
	return ok && idx == flat
}

// ContainsSelection reports whether any descendant of flat is selected.
func (t *Tree) ContainsSelection(flat int) bool {
	n, ok := t.Node(flat)
	if !ok {
		return false
	}
	for _, c := range n.Children {
		if t.IsSelected(c) || t.ContainsSelection(c) {
			return true
		}
	}
	return false
}

// Selected returns the selected leaf, if any.
func (t *Tree) Selected() (Node, bool) {
	for _, n := range t.nodes {
		if t.IsSelected(n.Flat) {
			return n, true
		}
	}
	return Node{}, false
}

// IsExpanded reports whether the parent at flat shows its children inline.
func (t *Tree) IsExpanded(flat int) bool {
	if flat < 0 || flat >= len(t.expanded) {
		return false
	}
	return t.expanded[flat]
}

// ExpandProgress returns the animated expansion of the parent at flat in
// [0,1], used for chevron rotation and the children's reveal.
func (t *Tree) ExpandProgress(flat int) float64 {
	n, ok := t.Node(flat)
	if !ok || !n.HasChildren() {
		return 0
	}
	return t.arena.value(n.key)
}

// Visible returns the nodes whose ancestors are all expanded, in flat order.
func (t *Tree) Visible() []Node {
	shown := make([]bool, len(t.nodes))
	out := make([]Node, 0, len(t.nodes))
	for _, n := range t.nodes {
		if n.Parent >= 0 && (!shown[n.Parent] || !t.expanded[n.Parent]) {
			continue
		}
		shown[n.Flat] = true
		out = append(out, n)
	}
	return out
}

// Selectable returns the visible, enabled leaves.
func (t *Tree) Selectable() []Node {
	var out []Node
	for _, n := range t.Visible() {
		if n.IsLeaf() && !n.Dest.Disabled {
			out = append(out, n)
		}
	}
	return out
}

// CompactClosed reports whether parents open a popup instead of expanding:
// medium mode with the pane closed.
func (t *Tree) CompactClosed() bool {
	return t.mode == displaymode.Medium && !t.paneOpen
}

// Popup returns the parent whose child menu is open.
func (t *Tree) Popup() (int, bool) {
	return t.popup, t.popup != noPopup
}

// PopupItems returns the children listed in the open popup.
func (t *Tree) PopupItems() []Node {
	n, ok := t.Node(t.popup)
	if !ok {
		return nil
	}
	items := make([]Node, 0, len(n.Children))
	for _, c := range n.Children {
		items = append(items, t.nodes[c])
	}
	return items
}

// Subscribe registers a listener for expansion and popup changes.
func (t *Tree) Subscribe(fn func()) func() {
	return t.listeners.Subscribe(fn)
}

// --- Interaction ---

// Tap resolves a tap on the node at flat.
func (t *Tree) Tap(flat int) Action {
	n, ok := t.Node(flat)
	if !contract.Check(ok, "destination.Tap", "flat index %d out of range [0,%d)", flat, len(t.nodes)) {
		return Action{Kind: ActionNone, Flat: flat}
	}
	if n.Dest.Disabled {
		return Action{Kind: ActionNone, Flat: flat}
	}
	if n.HasChildren() {
		if t.CompactClosed() {
			t.popup = flat
			t.listeners.Notify()
			return Action{Kind: ActionOpenPopup, Flat: flat}
		}
		t.setExpanded(n, !t.expanded[flat])
		t.listeners.Notify()
		return Action{Kind: ActionToggle, Flat: flat}
	}
	return t.selectLeaf(n)
}

// PopupSelect selects a child listed in the open popup and closes it.
func (t *Tree) PopupSelect(flat int) Action {
	n, ok := t.Node(flat)
	if !contract.Check(ok && t.popup != noPopup && n.Parent == t.popup, "destination.PopupSelect",
		"node %d is not in the open popup", flat) {
		return Action{Kind: ActionNone, Flat: flat}
	}
	if n.Dest.Disabled {
		return Action{Kind: ActionNone, Flat: flat}
	}
	var act Action
	if n.HasChildren() {
		// Deeper levels are listed but not navigable from the popup.
		act = Action{Kind: ActionNone, Flat: flat}
	} else {
		act = t.selectLeaf(n)
	}
	t.ClosePopup()
	return act
}

// ClosePopup dismisses the child popup.
func (t *Tree) ClosePopup() {
	if t.popup == noPopup {
		return
	}
	t.popup = noPopup
	t.listeners.Notify()
}

func (t *Tree) selectLeaf(n Node) Action {
	none := Action{Kind: ActionNone, Flat: n.Flat}
	if t.sel == nil {
		return none
	}
	var err error
	switch t.sel.Mode() {
	case selection.ByPath:
		if !contract.Check(n.Dest.Path != "", "destination.Tap", "destination %q has no path in path mode", n.Dest.Label) {
			return none
		}
		err = t.sel.SelectPath(n.Dest.Path)
	default:
		err = t.sel.SelectIndex(n.Flat)
	}
	if err != nil {
		return none
	}
	return Action{Kind: ActionSelect, Flat: n.Flat}
}

// Sync tells the tree about the current display mode and pane state. When
// the pane closes, or the mode becomes more compact, every expanded parent
// collapses and the popup closes so that nothing stays expanded out of
// sight. The popup also closes once the compact-closed condition ends.
func (t *Tree) Sync(mode displaymode.Mode, paneOpen bool) {
	collapse := (t.paneOpen && !paneOpen) || mode.MoreCompact(t.mode)
	t.mode, t.paneOpen = mode, paneOpen

	changed := false
	if collapse {
		for _, n := range t.nodes {
			if n.HasChildren() && t.expanded[n.Flat] {
				t.expanded[n.Flat] = false
				t.arena.snap(n.key, false)
				changed = true
			}
		}
	}
	if t.popup != noPopup && (collapse || !t.CompactClosed()) {
		t.popup = noPopup
		changed = true
	}
	if changed {
		t.listeners.Notify()
	}
}

// ExpandAll expands or collapses every parent.
func (t *Tree) ExpandAll(expand bool) {
	for _, n := range t.nodes {
		if n.HasChildren() {
			t.setExpanded(n, expand)
		}
	}
	t.listeners.Notify()
}

func (t *Tree) setExpanded(n Node, expand bool) {
	t.expanded[n.Flat] = expand
	t.arena.retarget(n.key, expand)
}

// Advance steps expansion animations. Returns true while any is running.
func (t *Tree) Advance(dt time.Duration) bool {
	running := t.arena.advance(dt)
	if running || t.arena.justSettled {
		t.listeners.Notify()
	}
	return running
}

// Animating reports whether any expansion animation is running.
func (t *Tree) Animating() bool {
	return t.arena.running()
}

// Dispose releases animation state and listeners.
func (t *Tree) Dispose() {
	t.arena.prune(nil)
	t.listeners.Dispose()
	t.popup = noPopup
}
