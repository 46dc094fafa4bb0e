package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/navshell/internal/config"
	"github.com/llehouerou/navshell/internal/errmsg"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/logging"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.handle(msg)
	m.syncFocus()
	m.persistIfChanged()
	return m, tea.Batch(cmd, m.scheduleFrame())
}

func (m *Model) handle(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.Help.Width = msg.Width
		m.Shell.SetWidth(float64(msg.Width))
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return nil

	case frameMsg:
		m.handleFrame(msg)
		return nil

	case configChangedMsg:
		m.reloadConfig()
		return waitForConfigChange(m.Watcher)
	}
	return nil
}

// --- Frames ---

// scheduleFrame requests the next tick while something animates. At most
// one tick is outstanding; a new pane animation restarts the frame clock.
func (m *Model) scheduleFrame() tea.Cmd {
	if !m.Shell.Animating() {
		return nil
	}
	if gen := m.Shell.FrameGeneration(); gen != m.frame.gen {
		m.frame.gen = gen
		m.frame.last = m.now()
	}
	if m.frame.pending {
		return nil
	}
	if m.frame.last.IsZero() {
		m.frame.last = m.now()
	}
	m.frame.pending = true
	return frameCmd(m.frame.gen)
}

// handleFrame advances animations. A tick scheduled for an animation that
// has since been replaced is dropped; Update schedules a fresh one.
func (m *Model) handleFrame(msg frameMsg) {
	m.frame.pending = false
	if msg.gen != m.Shell.FrameGeneration() {
		return
	}
	dt := min(max(msg.at.Sub(m.frame.last), 0), maxFrameStep)
	m.frame.last = msg.at
	if !m.Shell.Advance(dt) {
		m.frame.last = time.Time{}
	}
}

// --- Focus ---

// syncFocus keeps keyboard focus on a drawn row, preferring the selection.
func (m *Model) syncFocus() {
	prefer := -1
	if n, ok := m.Shell.Tree().Selected(); ok {
		prefer = n.Flat
	}
	m.Nav.Sync(m.paneRows(), m.paneHeight(), m.focusable(), prefer)
}

func (m Model) paneHeight() int {
	return max(m.rects().Pane.Round().H, 1)
}

// --- Config reload ---

// reloadConfig re-reads the config file and applies what can change at
// runtime. Pane widths and the selection mode need a restart.
func (m *Model) reloadConfig() {
	cfg, err := config.Load(m.ConfigPath)
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpConfigReload, m.ConfigPath, err)
		slog.Warn("config reload failed", "path", m.ConfigPath, "err", err)
		return
	}
	if cfg.GetSelectionMode() != m.Shell.Selection().Mode() {
		slog.Warn("selection mode change ignored until restart", "mode", cfg.SelectionMode)
	}

	m.Config = cfg
	m.ErrorMsg = ""
	logging.SetLevel(cfg.LogLevel)
	icons.Init(cfg.Icons)

	m.Shell.SetDestinations(cfg.GetDestinations(), cfg.GetFooter())
	m.Shell.SetBreakpoints(cfg.GetBreakpoints())
	if m.cliMode == nil {
		override := cfg.GetDisplayModeOverride()
		if override == nil {
			override = m.keyMode
		}
		m.Shell.SetModeOverride(override)
	}
	if !m.cliRTL {
		m.RTL = cfg.IsRTL()
	}
	slog.Info("config reloaded", "path", m.ConfigPath)
}
