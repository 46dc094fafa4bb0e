package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestPlace(t *testing.T) {
	base := "..........\n..........\n.........."

	tests := []struct {
		name  string
		block string
		x, y  int
		want  string
	}{
		{
			name:  "top left",
			block: "ab\ncd",
			x:     0, y: 0,
			want: "ab........\ncd........\n..........",
		},
		{
			name:  "inside",
			block: "XY",
			x:     4, y: 1,
			want: "..........\n....XY....\n..........",
		},
		{
			name:  "clipped on the right",
			block: "1234",
			x:     8, y: 2,
			want: "..........\n..........\n........12",
		},
		{
			name:  "clipped on the left",
			block: "1234",
			x:     -2, y: 0,
			want: "34........\n..........\n..........",
		},
		{
			name:  "rows below base are dropped",
			block: "a\nb\nc\nd",
			x:     9, y: 1,
			want: "..........\n.........a\n.........b",
		},
		{
			name:  "empty block",
			block: "",
			x:     0, y: 0,
			want: base,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Place(base, tt.block, tt.x, tt.y, 10); got != tt.want {
				t.Errorf("Place() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestPlacePadsShortBase(t *testing.T) {
	got := Place("ab", "Z", 4, 0, 6)
	if got != "ab  Z " {
		t.Errorf("Place() = %q, want %q", got, "ab  Z ")
	}
}

func TestPlaceStyled(t *testing.T) {
	block := lipgloss.NewStyle().Bold(true).Render("ok")
	got := Place("------", block, 2, 0, 6)
	if ansi.Strip(got) != "--ok--" {
		t.Errorf("stripped = %q, want %q", ansi.Strip(got), "--ok--")
	}
}
