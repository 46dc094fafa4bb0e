package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/keymap"
	"github.com/llehouerou/navshell/internal/selection"
	"github.com/llehouerou/navshell/internal/ui/headerbar"
	"github.com/llehouerou/navshell/internal/ui/overlay"
	"github.com/llehouerou/navshell/internal/ui/popup"
	"github.com/llehouerou/navshell/internal/ui/render"
	"github.com/llehouerou/navshell/internal/ui/styles"
)

// scrimOpacity is how far the body fades towards the scrim color under a
// fully open drawer.
const scrimOpacity = 0.6

// View renders the UI.
func (m Model) View() string {
	if m.Quitting || m.Width <= 0 || m.Height <= 0 {
		return ""
	}
	rects := m.rects()
	bar := rects.AppBar.Round()
	contentH := m.Height - bar.Y - bar.H

	var sections []string
	if bar.H > 0 {
		sections = append(sections, headerbar.Render(m.headerInfo(), m.Width, bar.H))
	}
	if contentH > 0 {
		sections = append(sections, m.renderContent(contentH))
	}
	screen := strings.Join(sections, "\n")

	if box, ok := m.popupBox(); ok {
		screen = overlay.Place(screen, box.content, box.x, box.y, m.Width)
	}
	if m.ShowHelp {
		box := m.helpBox()
		x, y := popup.Origin(box, m.Width, m.Height)
		screen = overlay.Place(screen, box, x, y, m.Width)
	}
	return screen
}

func (m Model) headerInfo() headerbar.Info {
	mode := m.Shell.DisplayMode()
	info := headerbar.Info{
		Title:     m.title(),
		Mode:      mode.String(),
		Forced:    m.Shell.ModeOverride() != nil,
		ShowMenu:  mode != displaymode.Expanded,
		CanGoBack: m.Shell.CanGoBack(),
		RTL:       m.RTL,
	}
	if n, ok := m.Shell.Tree().Selected(); ok {
		info.Destination = n.Dest.Label
	}
	return info
}

func (m Model) title() string {
	if m.Config.Title != "" {
		return m.Config.Title
	}
	return "navshell"
}

// renderContent draws the pane and the body below the app bar.
func (m Model) renderContent(height int) string {
	rects := m.rects()
	pf := m.paneFrame()
	paneShown := pf.cells.W > 0 && len(pf.view.Lines) > 0

	if rects.PaneOverlay {
		fade := m.Shell.Progress() * scrimOpacity
		base := m.renderBody(m.Width, height, fade)
		if !paneShown {
			return base
		}
		return overlay.Place(base, pf.view.String(), pf.cells.X, 0, m.Width)
	}

	body := m.renderBody(rects.Body.Round().W, height, 0)
	if !paneShown {
		return body
	}
	if m.RTL {
		return lipgloss.JoinHorizontal(lipgloss.Top, body, pf.view.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, pf.view.String(), body)
}

// renderBody shows the selected destination and the navigation state.
func (m Model) renderBody(width, height int, fade float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s := styles.T().S()
	tree := m.Shell.Tree()

	var lines []string
	if n, ok := tree.Selected(); ok {
		icon := n.Dest.Icon
		if n.Dest.SelectedIcon != "" {
			icon = n.Dest.SelectedIcon
		}
		lines = append(lines, " "+s.Title.Render(icons.Glyph(icon, n.Dest.Label)+" "+render.Sanitize(n.Dest.Label)))
		if n.Dest.Path != "" {
			lines = append(lines, " "+s.Muted.Render("path  ")+render.Sanitize(n.Dest.Path))
		}
		lines = append(lines, " "+s.Muted.Render("index ")+strconv.Itoa(n.Flat))
	} else {
		lines = append(lines, " "+s.Muted.Render("Nothing selected"))
	}
	lines = append(lines, "")
	if back := m.historyLabels(); len(back) > 0 {
		lines = append(lines, " "+s.Muted.Render("back  ")+strings.Join(back, " › "))
	}

	dir := "ltr"
	if m.RTL {
		dir = "rtl"
	}
	lines = append(lines, " "+s.Subtle.Render(fmt.Sprintf("%s · %d cols · pane %.2f · %s",
		m.Shell.DisplayMode(), m.Width, m.Shell.Progress(), dir)))

	if m.ErrorMsg != "" {
		for len(lines) < height-1 {
			lines = append(lines, "")
		}
		lines = append(lines[:height-1], " "+s.Error.Render(m.ErrorMsg))
	}

	out := render.Block(strings.Join(lines, "\n"), width, height)
	if fade <= 0 {
		return out
	}
	th := styles.T()
	faded := lipgloss.NewStyle().
		Foreground(styles.Blend(th.FgBase, th.BgScrim, fade)).
		Background(styles.Blend(th.BgBase, th.BgScrim, fade))
	rows := strings.Split(ansi.Strip(out), "\n")
	for i, row := range rows {
		rows[i] = faded.Render(row)
	}
	return strings.Join(rows, "\n")
}

// historyLabels names the back history, oldest first.
func (m Model) historyLabels() []string {
	tree := m.Shell.Tree()
	var out []string
	if m.Shell.Selection().Mode() == selection.ByPath {
		for _, p := range m.Shell.PreviousPaths() {
			label := p
			for _, n := range tree.Nodes() {
				if n.Dest.Path == p {
					label = n.Dest.Label
					break
				}
			}
			out = append(out, render.Sanitize(label))
		}
		return out
	}
	for _, idx := range m.Shell.PreviousIndices() {
		if n, ok := tree.Node(idx); ok {
			out = append(out, render.Sanitize(n.Dest.Label))
		} else {
			out = append(out, "#"+strconv.Itoa(idx))
		}
	}
	return out
}

func (m Model) helpBox() string {
	d := popup.New()
	d.Title = "Keys"
	d.Content = m.Help.FullHelpView([][]key.Binding{
		keymap.HelpKeys("global"),
		keymap.HelpKeys("pane"),
		keymap.HelpKeys("popup"),
	})
	d.Footer = "? or esc to close"
	return d.Box(m.Width)
}
