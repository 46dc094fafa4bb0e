package icons

import (
	"strings"
	"unicode/utf8"
)

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Menu      string
	Back      string
	Expanded  string
	Collapsed string
	Popup     string
	Named     map[string]string
}

var (
	nerdIcons = Icons{
		Menu:      "", // nf-fa-bars
		Back:      "", // nf-fa-arrow_left
		Expanded:  "", // nf-fa-chevron_down
		Collapsed: "", // nf-fa-chevron_right
		Popup:     "", // nf-fa-caret_right
		Named: map[string]string{
			"home":     "", // nf-fa-home
			"inbox":    "", // nf-fa-inbox
			"star":     "", // nf-fa-star
			"folder":   "", // nf-fa-folder
			"file":     "", // nf-fa-file
			"image":    "", // nf-fa-image
			"archive":  "", // nf-fa-archive
			"settings": "", // nf-fa-cog
			"search":   "", // nf-fa-search
			"user":     "", // nf-fa-user
			"mail":     "", // nf-fa-envelope
			"trash":    "", // nf-fa-trash
		},
	}

	unicodeIcons = Icons{
		Menu:      "≡",
		Back:      "←",
		Expanded:  "▾",
		Collapsed: "▸",
		Popup:     "›",
		Named: map[string]string{
			"home":     "⌂",
			"inbox":    "✉",
			"star":     "★",
			"folder":   "▤",
			"file":     "▯",
			"image":    "▣",
			"archive":  "▦",
			"settings": "⚙",
			"search":   "⌕",
			"user":     "☺",
			"mail":     "✉",
			"trash":    "✗",
		},
	}

	noneIcons = Icons{
		Menu:      "=",
		Back:      "<",
		Expanded:  "-",
		Collapsed: "+",
		Popup:     ">",
	}

	// current holds the active icon set
	current = &noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = &nerdIcons
	case StyleUnicode:
		current = &unicodeIcons
	default:
		current = &noneIcons
	}
}

// Menu returns the app bar button that toggles the pane.
func Menu() string { return current.Menu }

// Back returns the app bar back indicator.
func Back() string { return current.Back }

// Chevron returns the expansion indicator of a parent row.
func Chevron(expanded bool) string {
	if expanded {
		return current.Expanded
	}
	return current.Collapsed
}

// Popup returns the indicator for a parent that opens a popup menu.
func Popup() string { return current.Popup }

// Glyph returns the single-cell icon for a destination. name is looked up
// in the active set; a name that is already a glyph is used as is. Without
// a match the first letter of label stands in.
func Glyph(name, label string) string {
	if g, ok := current.Named[strings.ToLower(name)]; ok {
		return g
	}
	if name != "" && utf8.RuneCountInString(name) == 1 {
		return name
	}
	if label == "" {
		return "·"
	}
	r, _ := utf8.DecodeRuneInString(label)
	return strings.ToUpper(string(r))
}
