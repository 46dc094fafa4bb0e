// Package app is the bubbletea program that hosts the navigation shell: it
// turns keys, mouse gestures and frame ticks into shell operations and
// composes the app bar, pane and body into the terminal screen.
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/navshell/internal/app/dragctl"
	"github.com/llehouerou/navshell/internal/app/navctl"
	"github.com/llehouerou/navshell/internal/config"
	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/errmsg"
	"github.com/llehouerou/navshell/internal/keymap"
	"github.com/llehouerou/navshell/internal/selection"
	"github.com/llehouerou/navshell/internal/shell"
	"github.com/llehouerou/navshell/internal/state"
	"github.com/llehouerou/navshell/internal/ui/headerbar"
)

// Options are the command-line choices that take precedence over config.
type Options struct {
	ConfigPath   string
	ModeOverride *displaymode.Mode
	RTL          bool
	Watcher      *config.Watcher
	// Now is the clock used for drag velocity; defaults to time.Now.
	Now func() time.Time
}

// frameState tracks the single outstanding frame tick.
type frameState struct {
	pending bool
	gen     uint64
	last    time.Time
}

// Model is the bubbletea model of the application.
type Model struct {
	Shell      *shell.Shell
	Config     *config.Config
	ConfigPath string
	StateMgr   state.Interface
	Watcher    *config.Watcher
	Nav        *navctl.Manager
	Help       help.Model

	RTL      bool
	Width    int
	Height   int
	ShowHelp bool
	ErrorMsg string
	Quitting bool

	cliMode    *displaymode.Mode
	cliRTL     bool
	paneKeys   *keymap.Resolver
	popupKeys  *keymap.Resolver
	frame      frameState
	drag       *dragctl.Tracker
	now        func() time.Time
	savedState *state.NavigationState

	// keyMode is the override last chosen with the cycle-mode key. It is the
	// only override that is persisted.
	keyMode *displaymode.Mode
}

// New creates the model. Saved navigation is restored when it matches the
// configured selection mode and still addresses an existing destination.
func New(cfg *config.Config, stateMgr state.Interface, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		StateMgr:   stateMgr,
		Watcher:    opts.Watcher,
		Nav:        navctl.New(),
		Help:       help.New(),
		RTL:        opts.RTL || cfg.IsRTL(),
		cliMode:    opts.ModeOverride,
		cliRTL:     opts.RTL,
		paneKeys:   keymap.ForContexts("global", "pane"),
		popupKeys:  keymap.ForContexts("global", "popup"),
		drag:       dragctl.New(now),
		now:        now,
	}

	main, footer := cfg.GetDestinations(), cfg.GetFooter()
	pc := cfg.GetPaneConfig()
	bps := cfg.GetBreakpoints()
	mode := cfg.GetSelectionMode()

	so := shell.Options{
		SelectionMode:      mode,
		InitialPath:        cfg.InitialPath,
		InitialIndex:       cfg.InitialIndex,
		HistoryLimit:       cfg.HistoryLimit,
		AnimationDuration:  pc.AnimationDuration(),
		MinFlingVelocity:   pc.MinFlingVelocity,
		InitialOpen:        pc.StartOpen,
		CompactBreakpoint:  bps.Compact,
		MediumBreakpoint:   bps.Medium,
		ExpandedBreakpoint: bps.Expanded,
		ModeOverride:       cfg.GetDisplayModeOverride(),
		Destinations:       main,
		Footer:             footer,
		CompactWidth:       float64(pc.CompactWidth),
		OpenWidth:          float64(pc.OpenWidth),
		AppBarHeight:       headerbar.Height,
		OnDestinationSelectedByIndex: func(idx int) {
			slog.Info("destination selected", "index", idx)
		},
		OnDestinationSelectedByPath: func(path string) {
			slog.Info("destination selected", "path", path)
		},
	}

	if stateMgr != nil && cfg.ShouldPersist() {
		saved, err := stateMgr.GetNavigation()
		if err != nil {
			m.ErrorMsg = errmsg.Format(errmsg.OpStateLoad, err)
			slog.Warn("restore navigation failed", "err", err)
		} else if saved != nil {
			restore(&so, saved, destination.Flatten(main, footer))
			m.keyMode = savedMode(saved)
		}
	}
	switch {
	case opts.ModeOverride != nil:
		so.ModeOverride = opts.ModeOverride
	case so.ModeOverride == nil:
		so.ModeOverride = m.keyMode
	}

	m.Shell = shell.New(so)
	m.syncFocus()
	snapshot := m.navigationState()
	m.savedState = &snapshot
	return m
}

// restore applies the saved selection and pane state to so.
func restore(so *shell.Options, saved *state.NavigationState, nodes []destination.Node) {
	if saved.SelectionMode != so.SelectionMode.String() {
		slog.Debug("saved navigation ignored", "saved_mode", saved.SelectionMode, "mode", so.SelectionMode)
		return
	}

	switch so.SelectionMode {
	case selection.ByPath:
		if saved.SelectedPath != "" && leafWithPath(nodes, saved.SelectedPath) {
			so.InitialPath = saved.SelectedPath
		}
		so.RestorePaths = saved.HistoryPaths
	default:
		if idx := saved.SelectedIndex; idx != nil && *idx >= 0 && *idx < len(nodes) && nodes[*idx].IsLeaf() {
			so.InitialIndex = idx
		}
		so.RestoreIndices = saved.HistoryIndices
	}
	so.InitialOpen = saved.PaneOpen
}

// savedMode returns the persisted cycle-key override, nil when none.
func savedMode(saved *state.NavigationState) *displaymode.Mode {
	if saved.DisplayMode == "" {
		return nil
	}
	mode, err := displaymode.ParseMode(saved.DisplayMode)
	if err != nil {
		slog.Debug("saved display mode ignored", "mode", saved.DisplayMode, "err", err)
		return nil
	}
	return &mode
}

func leafWithPath(nodes []destination.Node, path string) bool {
	for _, n := range nodes {
		if n.IsLeaf() && n.Dest.Path == path {
			return true
		}
	}
	return false
}

// Init starts listening for config changes.
func (m Model) Init() tea.Cmd {
	return waitForConfigChange(m.Watcher)
}
