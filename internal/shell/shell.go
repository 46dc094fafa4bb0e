// Package shell wires the navigation engine together: one selection model,
// one pane motion controller, one destination tree and the breakpoints,
// all owned by a single Shell and handed explicitly to whoever needs them.
package shell

import (
	"log/slog"
	"time"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/motion"
	"github.com/llehouerou/navshell/internal/observe"
	"github.com/llehouerou/navshell/internal/selection"
	"github.com/llehouerou/navshell/internal/ui/layout"
)

// Options are the construction parameters of a Shell.
type Options struct {
	SelectionMode selection.Mode
	// Length is the expected destination count in index mode. Zero derives
	// it from the flattened destinations.
	Length       int
	InitialIndex *int
	InitialPath  string
	HistoryLimit int
	// RestoreIndices and RestorePaths seed the back history from a
	// previous session.
	RestoreIndices []int
	RestorePaths   []string

	AnimationDuration time.Duration
	MinFlingVelocity  float64
	InitialOpen       bool

	CompactBreakpoint  displaymode.Breakpoint
	MediumBreakpoint   displaymode.Breakpoint
	ExpandedBreakpoint displaymode.Breakpoint
	ModeOverride       *displaymode.Mode

	OnDestinationSelectedByIndex func(int)
	OnDestinationSelectedByPath  func(string)

	Destinations []destination.Destination
	Footer       []destination.Destination

	CompactWidth float64
	OpenWidth    float64
	AppBarHeight float64

	Logger *slog.Logger
}

func (o Options) breakpoints() displaymode.Breakpoints {
	bps := displaymode.Breakpoints{
		Compact:  o.CompactBreakpoint,
		Medium:   o.MediumBreakpoint,
		Expanded: o.ExpandedBreakpoint,
	}
	if bps == (displaymode.Breakpoints{}) {
		return displaymode.Default()
	}
	return bps
}

// Shell coordinates selection, pane motion, display mode and layout.
type Shell struct {
	sel    *selection.Model
	motion *motion.Controller
	tree   *destination.Tree

	bps      displaymode.Breakpoints
	override *displaymode.Mode
	width    float64
	mode     displaymode.Mode

	main, footer  []destination.Destination
	nodes         []destination.Node
	derivedLength bool

	compactWidth, openWidth, appBarHeight float64

	logger    *slog.Logger
	listeners observe.List
	unsub     []func()
	disposed  bool
}

// New builds a Shell. Breakpoint problems are logged as warnings.
func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	nodes := destination.Flatten(opts.Destinations, opts.Footer)
	length := opts.Length
	derived := opts.SelectionMode == selection.ByIndex && length == 0
	if derived {
		length = len(nodes)
	}

	s := &Shell{
		motion: motion.New(motion.Options{
			Duration:         opts.AnimationDuration,
			MinFlingVelocity: opts.MinFlingVelocity,
			FallbackWidth:    opts.OpenWidth,
		}),
		bps:           opts.breakpoints(),
		override:      opts.ModeOverride,
		main:          opts.Destinations,
		footer:        opts.Footer,
		nodes:         nodes,
		derivedLength: derived,
		compactWidth:  opts.CompactWidth,
		openWidth:     opts.OpenWidth,
		appBarHeight:  opts.AppBarHeight,
		logger:        logger,
	}
	s.sel = selection.New(selection.Options{
		Mode:         opts.SelectionMode,
		Length:       length,
		InitialIndex: opts.InitialIndex,
		InitialPath:  opts.InitialPath,
		HistoryLimit: opts.HistoryLimit,
		OnIndex:      opts.OnDestinationSelectedByIndex,
		OnPath:       opts.OnDestinationSelectedByPath,
		Selectable:   s.selectable,

		RestoreIndices: opts.RestoreIndices,
		RestorePaths:   opts.RestorePaths,
	})
	s.tree = destination.NewTree(opts.Destinations, opts.Footer, s.sel)
	if opts.InitialOpen {
		s.motion.SnapOpen()
	}
	s.mode = displaymode.Resolve(s.width, s.bps, s.override)
	s.tree.Sync(s.mode, s.paneOpen())
	s.warnBreakpoints()

	s.unsub = []func(){
		s.sel.Subscribe(s.listeners.Notify),
		s.motion.Subscribe(s.onMotion),
		s.tree.Subscribe(s.listeners.Notify),
	}
	return s
}

// selectable reports whether a flat index may hold the selection. Parents
// never can; indices past the destinations are left to the length check.
func (s *Shell) selectable(idx int) bool {
	if idx < 0 || idx >= len(s.nodes) {
		return true
	}
	return s.nodes[idx].IsLeaf()
}

func (s *Shell) onMotion() {
	s.tree.Sync(s.mode, s.paneOpen())
	s.listeners.Notify()
}

func (s *Shell) warnBreakpoints() {
	for _, w := range displaymode.Validate(s.bps) {
		s.logger.Warn("breakpoint configuration", "breakpoint", w.Breakpoint, "problem", w.Message)
	}
}

// --- Collaborators ---

// Selection returns the selection model.
func (s *Shell) Selection() *selection.Model { return s.sel }

// Motion returns the pane motion controller.
func (s *Shell) Motion() *motion.Controller { return s.motion }

// Tree returns the destination tree.
func (s *Shell) Tree() *destination.Tree { return s.tree }

// Subscribe registers a listener for any state change. A tap that selects
// and closes the pane produces two notifications, selection first.
func (s *Shell) Subscribe(fn func()) func() {
	return s.listeners.Subscribe(fn)
}

// --- Selection ---

// SelectByIndex selects the destination at a flat index. A parent
// destination is rejected with selection.ErrNotSelectable.
func (s *Shell) SelectByIndex(idx int) error { return s.sel.SelectIndex(idx) }

// SelectByPath selects the destination with path.
func (s *Shell) SelectByPath(path string) error { return s.sel.SelectPath(path) }

// GoBack re-selects the previous destination.
func (s *Shell) GoBack() bool { return s.sel.GoBack() }

// Reset clears the selection and its history.
func (s *Shell) Reset() { s.sel.Reset() }

// SelectedIndex returns the selected flat index in index mode.
func (s *Shell) SelectedIndex() (int, bool) { return s.sel.Index() }

// SelectedPath returns the selected path in path mode.
func (s *Shell) SelectedPath() string { return s.sel.Path() }

// CanGoBack reports whether there is history to return to.
func (s *Shell) CanGoBack() bool { return s.sel.CanGoBack() }

// HistoryLen returns the number of history entries.
func (s *Shell) HistoryLen() int { return s.sel.HistoryLen() }

// PreviousIndices returns the index history, oldest first.
func (s *Shell) PreviousIndices() []int { return s.sel.PreviousIndices() }

// PreviousPaths returns the path history, oldest first.
func (s *Shell) PreviousPaths() []string { return s.sel.PreviousPaths() }

// --- Destinations ---

// Tap resolves a tap on a destination. Selecting a leaf while the pane is
// an open drawer (minimal mode) also closes it, after the selection.
func (s *Shell) Tap(flat int) destination.Action {
	act := s.tree.Tap(flat)
	s.closeDrawerAfter(act)
	return act
}

// PopupSelect selects a child from the open popup menu.
func (s *Shell) PopupSelect(flat int) destination.Action {
	act := s.tree.PopupSelect(flat)
	s.closeDrawerAfter(act)
	return act
}

func (s *Shell) closeDrawerAfter(act destination.Action) {
	if act.Kind == destination.ActionSelect && s.mode == displaymode.Minimal && s.motion.IsOpen() {
		s.motion.Close()
	}
}

// SetDestinations replaces the destination lists.
func (s *Shell) SetDestinations(main, footer []destination.Destination) {
	s.main, s.footer = main, footer
	s.tree.Rebuild(main, footer)
	s.nodes = s.tree.Nodes()
	if s.derivedLength {
		s.sel.SetLength(s.tree.Len())
	}
	s.sel.Revalidate()
}

// --- Pane ---

// Open animates the pane open.
func (s *Shell) Open(opts ...motion.AnimateOption) { s.motion.Open(opts...) }

// Close animates the pane closed.
func (s *Shell) Close(opts ...motion.AnimateOption) { s.motion.Close(opts...) }

// Toggle opens a closed pane and closes an open one.
func (s *Shell) Toggle(opts ...motion.AnimateOption) { s.motion.Toggle(opts...) }

// IsPaneOpen reports whether the pane shows its labels. In expanded mode
// the pane is always open.
func (s *Shell) IsPaneOpen() bool { return s.paneOpen() }

func (s *Shell) paneOpen() bool {
	return s.mode == displaymode.Expanded || s.motion.IsOpen()
}

// Progress returns the pane progress used for layout.
func (s *Shell) Progress() float64 {
	if s.mode == displaymode.Expanded {
		return 1
	}
	return s.motion.Progress()
}

// --- Display mode ---

// SetWidth records the available width and re-resolves the display mode.
func (s *Shell) SetWidth(width float64) {
	s.width = width
	s.resolve()
}

// SetModeOverride forces a display mode; nil restores width-based resolution.
func (s *Shell) SetModeOverride(mode *displaymode.Mode) {
	s.override = mode
	s.resolve()
}

// SetBreakpoints replaces the breakpoints, for instance after a config reload.
func (s *Shell) SetBreakpoints(bps displaymode.Breakpoints) {
	s.bps = bps
	s.warnBreakpoints()
	s.resolve()
}

// ModeOverride returns the forced display mode, nil when width decides.
func (s *Shell) ModeOverride() *displaymode.Mode { return s.override }

// Breakpoints returns the active breakpoints.
func (s *Shell) Breakpoints() displaymode.Breakpoints { return s.bps }

// DisplayMode returns the mode for the last width given to SetWidth.
func (s *Shell) DisplayMode() displaymode.Mode { return s.mode }

// DisplayModeFor resolves the mode for an arbitrary width without changing state.
func (s *Shell) DisplayModeFor(width float64) displaymode.Mode {
	return displaymode.Resolve(width, s.bps, s.override)
}

func (s *Shell) resolve() {
	mode := displaymode.Resolve(s.width, s.bps, s.override)
	if mode == s.mode {
		return
	}
	s.logger.Debug("display mode changed", "from", s.mode, "to", mode, "width", s.width)
	s.mode = mode
	s.tree.Sync(mode, s.paneOpen())
	s.listeners.Notify()
}

// --- Layout ---

// LayoutInput assembles the compositor input for the current state.
func (s *Shell) LayoutInput(viewport layout.Size, insets layout.Insets, dir layout.Direction) layout.Input {
	return layout.Input{
		Mode:         s.mode,
		Progress:     s.Progress(),
		Direction:    dir,
		Viewport:     viewport,
		Insets:       insets,
		AppBarHeight: s.appBarHeight,
		CompactWidth: s.compactWidth,
		OpenWidth:    s.openWidth,
	}
}

// Layout computes the shell rectangles for the current state.
func (s *Shell) Layout(viewport layout.Size, insets layout.Insets, dir layout.Direction) layout.Rects {
	return layout.Compose(s.LayoutInput(viewport, insets, dir))
}

// --- Frames ---

// Advance steps pane and expansion animations by dt. It returns true while
// further frames are needed.
func (s *Shell) Advance(dt time.Duration) bool {
	if s.disposed {
		return false
	}
	paneRunning := s.motion.Advance(dt)
	treeRunning := s.tree.Advance(dt)
	return paneRunning || treeRunning
}

// Animating reports whether any animation is running.
func (s *Shell) Animating() bool {
	return !s.disposed && (s.motion.Animating() || s.tree.Animating())
}

// FrameGeneration identifies the current pane animation; frames scheduled
// under an older generation should be dropped.
func (s *Shell) FrameGeneration() uint64 { return s.motion.Generation() }

// Dispose tears down all owned components. Later calls are no-ops.
func (s *Shell) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	for _, u := range s.unsub {
		u()
	}
	s.motion.Dispose()
	s.tree.Dispose()
	s.sel.Dispose()
	s.listeners.Dispose()
}
