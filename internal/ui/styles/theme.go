package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Selected destination, active indicator
	Secondary lipgloss.Color // Gradient end of the selection highlight

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Labels
	FgMuted  lipgloss.Color // Secondary text, footer destinations
	FgSubtle lipgloss.Color // Disabled destinations, hints

	// Backgrounds
	BgBase   lipgloss.Color // Body
	BgPane   lipgloss.Color // Navigation pane
	BgAppBar lipgloss.Color // App bar
	BgCursor lipgloss.Color // Keyboard focus row
	BgScrim  lipgloss.Color // Body behind an open drawer

	// Borders
	Border      lipgloss.Color // Pane edge and popup border
	BorderFocus lipgloss.Color // Drag handle while dragging

	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base     lipgloss.Style // Default text
	Muted    lipgloss.Style // Dimmed text
	Subtle   lipgloss.Style // Very dim text
	Title    lipgloss.Style // Bold, bright
	Selected lipgloss.Style // Selected destination
	Disabled lipgloss.Style
	Cursor   lipgloss.Style // Cursor background highlight
	Pane     lipgloss.Style
	AppBar   lipgloss.Style
	Handle   lipgloss.Style
	Error    lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#60a5fa"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgPane:   lipgloss.Color("#222222"),
	BgAppBar: lipgloss.Color("#262626"),
	BgCursor: lipgloss.Color("#3a3a3a"),
	BgScrim:  lipgloss.Color("#0d0d0d"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Selected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Disabled: lipgloss.NewStyle().
			Foreground(t.FgSubtle).
			Faint(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Pane:   lipgloss.NewStyle().Background(t.BgPane),
		AppBar: base.Background(t.BgAppBar).Bold(true),
		Handle: lipgloss.NewStyle().Foreground(t.Border),
		Error:  lipgloss.NewStyle().Foreground(t.Error),
	}
}
