package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/navshell/internal/config"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/state"
)

func TestNew_SelectsInitialPath(t *testing.T) {
	m, _ := newTestModel(t, nil, nil, Options{})

	assert.Equal(t, "/inbox", m.Shell.SelectedPath())
	assert.False(t, m.Shell.CanGoBack())
	assert.Equal(t, 0, m.Nav.Focus(), "focus starts on the selection")
	assert.Nil(t, m.Shell.ModeOverride())
}

func TestNew_RestoresSavedNavigation(t *testing.T) {
	mock := state.NewMock()
	mock.SetNavigation(&state.NavigationState{
		SelectionMode: "path",
		SelectedPath:  "/documents/images",
		HistoryPaths:  []string{"/inbox", "/starred"},
		PaneOpen:      true,
		DisplayMode:   "expanded",
	})

	m, _ := newTestModel(t, nil, mock, Options{})

	assert.Equal(t, "/documents/images", m.Shell.SelectedPath())
	assert.Equal(t, []string{"/inbox", "/starred"}, m.Shell.PreviousPaths())
	assert.True(t, m.Shell.Motion().IsOpen())
	require.NotNil(t, m.Shell.ModeOverride())
	assert.Equal(t, displaymode.Expanded, *m.Shell.ModeOverride())
	assert.Empty(t, mock.Saves(), "restoring does not save")
}

func TestNew_IgnoresUnusableSavedState(t *testing.T) {
	idx := 3
	tests := []struct {
		name  string
		saved state.NavigationState
	}{
		{"other selection mode", state.NavigationState{SelectionMode: "index", SelectedIndex: &idx}},
		{"path no longer exists", state.NavigationState{SelectionMode: "path", SelectedPath: "/gone"}},
		{"empty path", state.NavigationState{SelectionMode: "path", SelectedPath: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := state.NewMock()
			mock.SetNavigation(&tt.saved)
			m, _ := newTestModel(t, nil, mock, Options{})
			assert.Equal(t, "/inbox", m.Shell.SelectedPath())
		})
	}
}

func TestNew_IndexModeRestoresLeavesOnly(t *testing.T) {
	cfg := config.Default()
	cfg.SelectionMode = "index"

	for _, tt := range []struct {
		saved int
		want  int
	}{
		{saved: 4, want: 4},
		{saved: 2, want: 0}, // Documents is a parent
		{saved: 42, want: 0},
	} {
		mock := state.NewMock()
		saved := tt.saved
		mock.SetNavigation(&state.NavigationState{SelectionMode: "index", SelectedIndex: &saved})

		m, _ := newTestModel(t, cfg, mock, Options{})
		got, ok := m.Shell.SelectedIndex()
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "saved %d", tt.saved)
	}
}

func TestNew_CommandLineModeWins(t *testing.T) {
	mock := state.NewMock()
	mock.SetNavigation(&state.NavigationState{SelectionMode: "path", DisplayMode: "expanded"})
	cfg := config.Default()
	cfg.Mode = "medium"
	minimal := displaymode.Minimal

	m, _ := newTestModel(t, cfg, mock, Options{ModeOverride: &minimal})
	require.NotNil(t, m.Shell.ModeOverride())
	assert.Equal(t, displaymode.Minimal, *m.Shell.ModeOverride())

	m, _ = newTestModel(t, cfg, mock, Options{})
	assert.Equal(t, displaymode.Medium, *m.Shell.ModeOverride(), "config beats saved state")
}

type failingState struct{ *state.Mock }

func (failingState) GetNavigation() (*state.NavigationState, error) {
	return nil, errors.New("disk on fire")
}

func TestNew_StateLoadErrorIsReported(t *testing.T) {
	st := failingState{state.NewMock()}
	m := New(config.Default(), st, Options{})

	assert.Contains(t, m.ErrorMsg, "restore navigation")
	assert.Equal(t, "/inbox", m.Shell.SelectedPath())
}

func TestWindowSizeResolvesMode(t *testing.T) {
	tests := []struct {
		width int
		want  displaymode.Mode
	}{
		{60, displaymode.Minimal},
		{100, displaymode.Medium},
		{140, displaymode.Expanded},
	}
	for _, tt := range tests {
		m, _, _ := sized(t, tt.width, 30)
		assert.Equal(t, tt.want, m.Shell.DisplayMode(), "width %d", tt.width)
		assert.Equal(t, tt.width, m.Width)
	}
}

func TestInitWithoutWatcher(t *testing.T) {
	m, _ := newTestModel(t, nil, nil, Options{})
	assert.Nil(t, m.Init())
}

func TestConfigReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
selection_mode = "path"
initial_path = "/inbox"
`), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	m, _ := newTestModel(t, cfg, nil, Options{ConfigPath: path})
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})

	require.NoError(t, os.WriteFile(path, []byte(`
selection_mode = "path"
mode = "minimal"
direction = "rtl"

[[destinations]]
label = "Alpha"
path = "/alpha"

[[destinations]]
label = "Beta"
path = "/beta"
`), 0o600))

	m, cmd := updateModel(t, m, configChangedMsg{})
	assert.Nil(t, cmd, "no watcher to re-arm")

	var labels []string
	for _, n := range m.Shell.Tree().Nodes() {
		labels = append(labels, n.Dest.Label)
	}
	assert.Equal(t, []string{"Alpha", "Beta"}, labels)
	assert.Equal(t, displaymode.Minimal, m.Shell.DisplayMode())
	assert.True(t, m.RTL)
	assert.Empty(t, m.ErrorMsg)

	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o600))
	m, _ = updateModel(t, m, configChangedMsg{})
	assert.Contains(t, m.ErrorMsg, "reload config")
	assert.Len(t, m.Shell.Tree().Nodes(), 2, "a broken file keeps the last good config")
}

func TestConfigReloadKeepsCommandLineChoices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`mode = "expanded"`), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	medium := displaymode.Medium
	m, _ := newTestModel(t, cfg, nil, Options{ConfigPath: path, ModeOverride: &medium, RTL: true})
	m, _ = updateModel(t, m, configChangedMsg{})

	assert.Equal(t, displaymode.Medium, m.Shell.DisplayMode())
	assert.True(t, m.RTL)
}

func TestNew_ForcedModesAreNotPersisted(t *testing.T) {
	expanded := displaymode.Expanded
	configured := config.Default()
	configured.Mode = "expanded"

	tests := []struct {
		name string
		cfg  *config.Config
		opts Options
	}{
		{"command line", nil, Options{ModeOverride: &expanded}},
		{"config", configured, Options{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := state.NewMock()
			first, _ := newTestModel(t, tt.cfg, mock, tt.opts)
			require.NotNil(t, first.Shell.ModeOverride())
			first.SaveNavigationState()

			saves := mock.Saves()
			require.NotEmpty(t, saves)
			assert.Empty(t, saves[len(saves)-1].DisplayMode)

			second, _ := newTestModel(t, nil, mock, Options{})
			second, _ = updateModel(t, second, tea.WindowSizeMsg{Width: 60, Height: 30})
			assert.Nil(t, second.Shell.ModeOverride())
			assert.Equal(t, displaymode.Minimal, second.Shell.DisplayMode(), "the width decides again")
		})
	}
}

func TestNew_CycledModeSurvivesRestart(t *testing.T) {
	m, mock, _ := sized(t, 140, 30)
	m = press(t, m, "m")
	require.Equal(t, displaymode.Minimal, m.Shell.DisplayMode())

	saves := mock.Saves()
	require.NotEmpty(t, saves)
	assert.Equal(t, "minimal", saves[len(saves)-1].DisplayMode)

	next, _ := newTestModel(t, nil, mock, Options{})
	require.NotNil(t, next.Shell.ModeOverride())
	assert.Equal(t, displaymode.Minimal, *next.Shell.ModeOverride())

	medium := displaymode.Medium
	forced, _ := newTestModel(t, nil, mock, Options{ModeOverride: &medium})
	assert.Equal(t, displaymode.Medium, *forced.Shell.ModeOverride())
	forced.SaveNavigationState()
	saves = mock.Saves()
	assert.Equal(t, "minimal", saves[len(saves)-1].DisplayMode, "a one-off --mode keeps the cycled choice")
}

func TestConfigReloadFallsBackToCycledMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`mode = "expanded"`), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)

	m, _ := newTestModel(t, cfg, nil, Options{ConfigPath: path})
	m, _ = updateModel(t, m, tea.WindowSizeMsg{Width: 140, Height: 30})
	m = press(t, m, "m", "m")
	require.Equal(t, displaymode.Minimal, m.Shell.DisplayMode())

	require.NoError(t, os.WriteFile(path, []byte(`mode = "medium"`), 0o600))
	m, _ = updateModel(t, m, configChangedMsg{})
	assert.Equal(t, displaymode.Medium, m.Shell.DisplayMode(), "config mode wins")

	require.NoError(t, os.WriteFile(path, []byte(`title = "plain"`), 0o600))
	m, _ = updateModel(t, m, configChangedMsg{})
	assert.Equal(t, displaymode.Minimal, m.Shell.DisplayMode(), "removing mode restores the cycled choice")
}
