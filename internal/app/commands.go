package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/navshell/internal/config"
)

// FrameInterval is the animation tick period.
const FrameInterval = 16 * time.Millisecond

// maxFrameStep caps the time an animation advances in one frame, so a
// stalled terminal does not make the pane jump.
const maxFrameStep = 100 * time.Millisecond

func frameCmd(gen uint64) tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg{gen: gen, at: t}
	})
}

// waitForConfigChange blocks until the watcher reports a change.
func waitForConfigChange(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-w.Events:
			return configChangedMsg{}
		case <-w.Done():
			return nil
		}
	}
}
