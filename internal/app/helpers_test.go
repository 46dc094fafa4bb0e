package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/navshell/internal/config"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/state"
	"github.com/llehouerou/navshell/internal/ui/testutil"
)

// Default destinations by flat index:
// 0 Inbox, 1 Starred, 2 Documents (3 Files, 4 Images), 5 Archive (disabled),
// 6 Settings (footer).

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, cfg *config.Config, mock *state.Mock, opts Options) (Model, *testClock) {
	t.Helper()
	icons.Init("none")
	if cfg == nil {
		cfg = config.Default()
	}
	if mock == nil {
		mock = state.NewMock()
	}
	clock := &testClock{t: time.Unix(1_700_000_000, 0)}
	if opts.Now == nil {
		opts.Now = clock.now
	}
	return New(cfg, mock, opts), clock
}

// sized returns a default model that has received a window size.
func sized(t *testing.T, width, height int) (Model, *state.Mock, *testClock) {
	t.Helper()
	mock := state.NewMock()
	m, clock := newTestModel(t, nil, mock, Options{})
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m, mock, clock
}

// updateModel is a helper that calls Update and returns the Model.
func updateModel(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	newModel, cmd := m.Update(msg)
	result, ok := newModel.(Model)
	if !ok {
		t.Fatalf("Update should return Model, got %T", newModel)
	}
	return result, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = updateModel(t, m, testutil.Key(k))
	}
	return m
}

// settle runs every animation to completion.
func settle(t *testing.T, m Model) Model {
	t.Helper()
	for range 100 {
		if !m.Shell.Advance(time.Second) {
			m, _ = updateModel(t, m, nil)
			return m
		}
	}
	t.Fatal("animations did not settle")
	return m
}
