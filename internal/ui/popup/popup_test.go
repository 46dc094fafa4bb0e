package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestMenuRender(t *testing.T) {
	m := NewMenu("Documents", []Item{
		{Icon: "F", Label: "Files"},
		{Icon: "I", Label: "Images", Selected: true},
		{Label: "Drafts", Disabled: true},
	})
	m.Cursor = 0

	out := ansi.Strip(m.Render(40))
	lines := strings.Split(out, "\n")

	// border + title + blank + 3 items + border
	if len(lines) != 7 {
		t.Fatalf("menu has %d lines, want 7:\n%s", len(lines), out)
	}
	for _, want := range []string{"Documents", "F Files", "I Images", "Drafts"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu missing %q:\n%s", want, out)
		}
	}
	w := ansi.StringWidth(lines[0])
	for i, l := range lines {
		if ansi.StringWidth(l) != w {
			t.Errorf("line %d width = %d, want %d", i, ansi.StringWidth(l), w)
		}
	}
}

func TestMenuRenderRespectsMaxWidth(t *testing.T) {
	m := NewMenu("", []Item{{Label: strings.Repeat("x", 50)}})
	out := ansi.Strip(m.Render(20))
	for _, l := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(l); w > 20 {
			t.Errorf("line width %d exceeds 20: %q", w, l)
		}
	}
}

func TestCenterAndOrigin(t *testing.T) {
	content := "ab\ncd"
	out := Center(content, 10, 6)
	lines := strings.Split(out, "\n")

	x, y := Origin(content, 10, 6)
	if x != 4 || y != 2 {
		t.Errorf("Origin = (%d,%d), want (4,2)", x, y)
	}
	if len(lines) != 4 {
		t.Fatalf("Center produced %d lines, want 4", len(lines))
	}
	if lines[2] != "    ab" || lines[3] != "    cd" {
		t.Errorf("Center lines = %q", lines)
	}
}

func TestDialogRender(t *testing.T) {
	d := New()
	d.Title = "Help"
	d.Content = "q  quit\n?  help"
	d.Footer = "esc to close"

	out := ansi.Strip(d.Render(40, 20))
	for _, want := range []string{"Help", "q  quit", "esc to close"} {
		if !strings.Contains(out, want) {
			t.Errorf("dialog missing %q", want)
		}
	}
}

func TestDialogBoxIsUncentered(t *testing.T) {
	d := New()
	d.Content = "abc"

	box := d.Box(40)
	lines := strings.Split(ansi.Strip(box), "\n")
	if len(lines) != 3 {
		t.Fatalf("box has %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[0], "╭") {
		t.Errorf("box should start at the border, got %q", lines[0])
	}
	if got := ansi.StringWidth(lines[1]); got != 7 {
		t.Errorf("box width = %d, want 7", got)
	}
}
