package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/navshell/internal/destination"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/selection"
)

const appName = "navshell"

type Config struct {
	Title string `koanf:"title" toml:"title"`
	// SelectionMode is "index" or "path". In index mode a leaf that has a
	// path is matched by path only, so it is never highlighted: index-mode
	// destinations should leave path empty.
	SelectionMode string `koanf:"selection_mode" toml:"selection_mode"`
	InitialIndex  *int   `koanf:"initial_index" toml:"initial_index,omitempty"`
	InitialPath   string `koanf:"initial_path" toml:"initial_path,omitempty"`
	HistoryLimit  int    `koanf:"history_limit" toml:"history_limit,omitempty"`
	Mode          string `koanf:"mode" toml:"mode,omitempty"`           // forced display mode, empty = by width
	Direction     string `koanf:"direction" toml:"direction,omitempty"` // "ltr" or "rtl"
	Icons         string `koanf:"icons" toml:"icons"`                   // "nerd", "unicode", or "none"
	Persist       *bool  `koanf:"persist" toml:"persist,omitempty"`     // save selection between runs (default: true)
	LogFile       string `koanf:"log_file" toml:"log_file,omitempty"`
	LogLevel      string `koanf:"log_level" toml:"log_level,omitempty"`

	Pane        PaneConfig        `koanf:"pane" toml:"pane"`
	Breakpoints BreakpointsConfig `koanf:"breakpoints" toml:"breakpoints"`

	Destinations []DestinationConfig `koanf:"destinations" toml:"destinations"`
	Footer       []DestinationConfig `koanf:"footer" toml:"footer,omitempty"`
}

// PaneConfig sizes and animates the pane. Widths are in terminal columns.
type PaneConfig struct {
	CompactWidth     int     `koanf:"compact_width" toml:"compact_width"`           // icon rail width (default: 6)
	OpenWidth        int     `koanf:"open_width" toml:"open_width"`                 // width with labels (default: 28)
	AnimationMS      int     `koanf:"animation_ms" toml:"animation_ms"`             // full travel time (default: 300)
	MinFlingVelocity float64 `koanf:"min_fling_velocity" toml:"min_fling_velocity"` // columns/s (default: 40)
	StartOpen        bool    `koanf:"start_open" toml:"start_open,omitempty"`
}

// BreakpointConfig is a column range; either bound may be omitted.
type BreakpointConfig struct {
	Start *float64 `koanf:"start" toml:"start,omitempty"`
	End   *float64 `koanf:"end" toml:"end,omitempty"`
}

// BreakpointsConfig holds the three display mode ranges.
type BreakpointsConfig struct {
	Compact  BreakpointConfig `koanf:"compact" toml:"compact"`
	Medium   BreakpointConfig `koanf:"medium" toml:"medium"`
	Expanded BreakpointConfig `koanf:"expanded" toml:"expanded"`
}

// DestinationConfig declares one pane entry.
type DestinationConfig struct {
	Label           string              `koanf:"label" toml:"label"`
	Icon            string              `koanf:"icon" toml:"icon,omitempty"`
	SelectedIcon    string              `koanf:"selected_icon" toml:"selected_icon,omitempty"`
	Path            string              `koanf:"path" toml:"path,omitempty"` // path-mode selection key
	Disabled        bool                `koanf:"disabled" toml:"disabled,omitempty"`
	InitialExpanded bool                `koanf:"initial_expanded" toml:"initial_expanded,omitempty"`
	Children        []DestinationConfig `koanf:"children" toml:"children,omitempty"`
}

// Load reads the config files in priority order. When explicit is set only
// that file is read and it must exist.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	if explicit != "" {
		if err := k.Load(file.Provider(expandPath(explicit)), koanftoml.Parser()); err != nil {
			return nil, err
		}
	} else {
		// Try config files in order of priority (last wins)
		for _, path := range getConfigPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := k.Load(file.Provider(path), koanftoml.Parser()); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := Default()
	// An explicit destinations list replaces the defaults instead of merging.
	if k.Exists("destinations") {
		cfg.Destinations = nil
		cfg.Footer = nil
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.LogFile = expandPath(cfg.LogFile)
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Title:         "navshell",
		SelectionMode: "path",
		InitialPath:   "/inbox",
		Icons:         "unicode",
		Pane: PaneConfig{
			CompactWidth:     6,
			OpenWidth:        28,
			AnimationMS:      300,
			MinFlingVelocity: 40,
		},
		Breakpoints: BreakpointsConfig{
			Compact:  BreakpointConfig{End: floatPtr(80)},
			Medium:   BreakpointConfig{Start: floatPtr(80), End: floatPtr(120)},
			Expanded: BreakpointConfig{Start: floatPtr(120)},
		},
		Destinations: []DestinationConfig{
			{Label: "Inbox", Icon: "inbox", Path: "/inbox"},
			{Label: "Starred", Icon: "star", Path: "/starred"},
			{Label: "Documents", Icon: "folder", Children: []DestinationConfig{
				{Label: "Files", Icon: "file", Path: "/documents/files"},
				{Label: "Images", Icon: "image", Path: "/documents/images"},
			}},
			{Label: "Archive", Icon: "archive", Path: "/archive", Disabled: true},
		},
		Footer: []DestinationConfig{
			{Label: "Settings", Icon: "settings", Path: "/settings"},
		},
	}
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// WriteDefault writes the default configuration to path unless a file
// already exists there.
func WriteDefault(path string) error {
	path = expandPath(path)
	if _, err := os.Stat(path); err == nil {
		return os.ErrExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600) //nolint:gosec // user config path
	if err != nil {
		return err
	}
	if err := Encode(f, Default()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// UserConfigPath is where init-config writes and the first place Load looks.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/navshell/config.toml
		UserConfigPath(),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

func floatPtr(v float64) *float64 { return &v }

// --- Accessors with defaults applied ---

// GetSelectionMode returns the selection mode.
func (c *Config) GetSelectionMode() selection.Mode {
	return selection.ParseMode(c.SelectionMode)
}

// GetDisplayModeOverride returns the forced display mode, nil when the mode
// follows the width or the value is not recognised.
func (c *Config) GetDisplayModeOverride() *displaymode.Mode {
	if c.Mode == "" {
		return nil
	}
	m, err := displaymode.ParseMode(c.Mode)
	if err != nil {
		return nil
	}
	return &m
}

// IsRTL reports whether the pane sits on the right.
func (c *Config) IsRTL() bool {
	return c.Direction == "rtl"
}

// ShouldPersist reports whether selection state is saved between runs.
func (c *Config) ShouldPersist() bool {
	return c.Persist == nil || *c.Persist
}

// GetPaneConfig returns the pane configuration with defaults applied.
func (c *Config) GetPaneConfig() PaneConfig {
	p := c.Pane
	if p.CompactWidth <= 0 {
		p.CompactWidth = 6
	}
	if p.OpenWidth <= p.CompactWidth {
		p.OpenWidth = max(28, p.CompactWidth+1)
	}
	if p.AnimationMS <= 0 {
		p.AnimationMS = 300
	}
	if p.MinFlingVelocity <= 0 {
		p.MinFlingVelocity = 40
	}
	return p
}

// AnimationDuration returns the pane travel time.
func (p PaneConfig) AnimationDuration() time.Duration {
	return time.Duration(p.AnimationMS) * time.Millisecond
}

// GetBreakpoints converts the configured ranges. A config with no bounds at
// all falls back to the defaults.
func (c *Config) GetBreakpoints() displaymode.Breakpoints {
	b := c.Breakpoints
	if b == (BreakpointsConfig{}) {
		b = Default().Breakpoints
	}
	return displaymode.Breakpoints{
		Compact:  displaymode.Breakpoint(b.Compact),
		Medium:   displaymode.Breakpoint(b.Medium),
		Expanded: displaymode.Breakpoint(b.Expanded),
	}
}

// GetDestinations converts the main destination list.
func (c *Config) GetDestinations() []destination.Destination {
	return convertDestinations(c.Destinations)
}

// GetFooter converts the footer destination list.
func (c *Config) GetFooter() []destination.Destination {
	return convertDestinations(c.Footer)
}

func convertDestinations(in []DestinationConfig) []destination.Destination {
	if len(in) == 0 {
		return nil
	}
	out := make([]destination.Destination, len(in))
	for i, d := range in {
		out[i] = destination.Destination{
			Icon:            d.Icon,
			SelectedIcon:    d.SelectedIcon,
			Label:           d.Label,
			Disabled:        d.Disabled,
			Path:            d.Path,
			Children:        convertDestinations(d.Children),
			InitialExpanded: d.InitialExpanded,
		}
	}
	return out
}
