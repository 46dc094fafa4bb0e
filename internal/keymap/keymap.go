package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "pane", "popup"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},
	{ActionReloadConfig, []string{"ctrl+l"}, "Reload config", "global"},
	{ActionCycleMode, []string{"m"}, "Cycle display mode", "global"},
	{ActionToggleDirection, []string{"D"}, "Swap pane side", "global"},
	{ActionTogglePane, []string{"tab", "ctrl+b"}, "Toggle pane", "global"},
	{ActionGoBack, []string{"backspace", "b"}, "Go back", "global"},
	{ActionReset, []string{"ctrl+r"}, "Reset selection", "global"},

	// Pane
	{ActionMoveUp, []string{"k", "up"}, "Move up", "pane"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "pane"},
	{ActionJumpStart, []string{"g", "home"}, "First destination", "pane"},
	{ActionJumpEnd, []string{"G", "end"}, "Last destination", "pane"},
	{ActionSelect, []string{"enter", " "}, "Select", "pane"},
	{ActionExpand, []string{"l", "right"}, "Expand", "pane"},
	{ActionCollapse, []string{"h", "left"}, "Collapse", "pane"},
	{ActionOpenPane, []string{"o"}, "Open pane", "pane"},
	{ActionClosePane, []string{"esc"}, "Close pane", "pane"},

	// Popup
	{ActionMoveUp, []string{"k", "up"}, "Move up", "popup"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "popup"},
	{ActionSelect, []string{"enter", " "}, "Select", "popup"},
	{ActionClosePopup, []string{"esc", "h", "left"}, "Close menu", "popup"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b for use with bubbles components such as help.
// The first key is shown as the help key.
func (b Binding) KeyBinding() key.Binding {
	help := ""
	if len(b.Keys) > 0 {
		help = displayKey(b.Keys[0])
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(help, b.Description),
	)
}

// HelpKeys returns the bindings of the given contexts as bubbles key
// bindings, in declaration order.
func HelpKeys(contexts ...string) []key.Binding {
	var result []key.Binding
	for _, c := range contexts {
		for _, b := range ByContext(c) {
			result = append(result, b.KeyBinding())
		}
	}
	return result
}

func displayKey(k string) string {
	switch k {
	case " ":
		return "space"
	case "backspace":
		return "⌫"
	}
	return k
}
