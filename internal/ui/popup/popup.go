package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/navshell/internal/ui/render"
	"github.com/llehouerou/navshell/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.Border,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Item is one row of a Menu.
type Item struct {
	Icon     string
	Label    string
	Selected bool
	Disabled bool
}

// Menu lists the children of a parent destination next to the pane.
type Menu struct {
	Title  string
	Items  []Item
	Cursor int
	Style  Style
}

// NewMenu creates a menu with the default style.
func NewMenu(title string, items []Item) Menu {
	return Menu{Title: title, Items: items, Style: DefaultStyle()}
}

// Render returns the bordered menu, at most maxWidth cells wide.
func (m Menu) Render(maxWidth int) string {
	s := styles.T().S()

	rows := make([]string, 0, len(m.Items))
	inner := ansi.StringWidth(m.Title)
	for _, it := range m.Items {
		text := render.Sanitize(it.Label)
		if it.Icon != "" {
			text = it.Icon + " " + text
		}
		inner = max(inner, ansi.StringWidth(text)+2)
		rows = append(rows, text)
	}
	inner = max(1, min(inner, maxWidth-4))

	lines := make([]string, 0, len(rows)+2)
	if m.Title != "" {
		lines = append(lines, m.Style.TitleStyle.Render(render.Fit(m.Title, inner, false)), "")
	}
	for i, text := range rows {
		it := m.Items[i]
		line := render.Fit(" "+text, inner, false)
		switch {
		case i == m.Cursor:
			line = s.Cursor.Render(line)
		case it.Disabled:
			line = s.Disabled.Render(line)
		case it.Selected:
			line = s.Selected.Render(line)
		default:
			line = s.Base.Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(m.Style.Border).
		BorderForeground(m.Style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Dialog is a centered box with a title, content and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{
		Style: DefaultStyle(),
	}
}

// Render returns the dialog centered in a termWidth x termHeight area.
func (p *Dialog) Render(termWidth, termHeight int) string {
	return Center(p.Box(termWidth), termWidth, termHeight)
}

// Box returns the bordered dialog, at most maxWidth cells wide.
func (p *Dialog) Box(maxWidth int) string {
	style := p.Style

	innerWidth := maxLineWidth(p.Content)
	innerWidth = max(innerWidth, ansi.StringWidth(p.Title), ansi.StringWidth(p.Footer))
	innerWidth = max(1, min(innerWidth, maxWidth-4))

	lines := make([]string, 0, strings.Count(p.Content, "\n")+5)
	if p.Title != "" {
		lines = append(lines, centerLine(style.TitleStyle.Render(p.Title), innerWidth), "")
	}
	for line := range strings.SplitSeq(p.Content, "\n") {
		lines = append(lines, render.Fit(line, innerWidth, false))
	}
	if p.Footer != "" {
		lines = append(lines, "", centerLine(style.FooterStyle.Render(p.Footer), innerWidth))
	}

	return lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, ansi.StringWidth(line))
	}
	return maxW
}

func centerLine(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}

// Center places pre-rendered content in the middle of a termWidth x
// termHeight area. Lines above the content are blank; lines are not padded
// on the right so the result can be overlaid.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := max((termWidth-boxWidth)/2, 0)

	var result strings.Builder
	for range padTop {
		result.WriteString("\n")
	}
	for i, line := range lines {
		result.WriteString(strings.Repeat(" ", padLeft))
		result.WriteString(line)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// Origin returns the top-left cell at which Center would place content.
func Origin(content string, termWidth, termHeight int) (x, y int) {
	lines := strings.Count(content, "\n") + 1
	return max((termWidth-maxLineWidth(content))/2, 0), max((termHeight-lines)/2, 0)
}
