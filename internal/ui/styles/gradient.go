package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient from one color to
// another, one step per grapheme cluster. Bold is applied to every cluster.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	c1, c2 := toColorful(from), toColorful(to)
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, cluster := range clusters {
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Hex())).
			Bold(bold).
			Render(cluster))
	}
	return b.String()
}

// Blend mixes two colors in HCL space. t is clamped to [0,1]. It is used to
// fade the body toward the scrim as a drawer opens.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = max(0, min(1, t))
	switch t {
	case 0:
		return from
	case 1:
		return to
	}
	return lipgloss.Color(toColorful(from).BlendHcl(toColorful(to), t).Clamped().Hex())
}

// toColorful converts a hex lipgloss.Color. ANSI palette numbers have no
// fixed RGB value and map to a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
