package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFindLineAndColumn(t *testing.T) {
	out := "first\n\x1b[31m  red\x1b[0m line\n界 wide"

	if got := FindLine(out, "red"); got != 1 {
		t.Errorf("FindLine(red) = %d, want 1", got)
	}
	if got := FindLine(out, "missing"); got != -1 {
		t.Errorf("FindLine(missing) = %d, want -1", got)
	}
	if !ContainsLine(out, "line") {
		t.Error("ContainsLine(line) = false")
	}
	if got := Column(out, 1, "red"); got != 2 {
		t.Errorf("Column(red) = %d, want 2", got)
	}
	if got := Column(out, 2, "wide"); got != 3 {
		t.Errorf("Column(wide) = %d, want 3", got)
	}
	if got := Column(out, 9, "x"); got != -1 {
		t.Errorf("Column out of range = %d, want -1", got)
	}
}

func TestMeasureWidth(t *testing.T) {
	if got := MeasureWidth("ab\n\x1b[1mabcd\x1b[0m\n界"); got != 4 {
		t.Errorf("MeasureWidth = %d, want 4", got)
	}
}

func TestKey(t *testing.T) {
	tests := []string{"enter", "esc", "tab", "backspace", "up", "down", "ctrl+c", "ctrl+b", "j", "G", "?", " "}
	for _, k := range tests {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

func TestMouseBuilders(t *testing.T) {
	if m := Press(3, 4); m.X != 3 || m.Y != 4 || m.Action != tea.MouseActionPress {
		t.Errorf("Press = %+v", m)
	}
	if m := Wheel(0, 0, true); m.Button != tea.MouseButtonWheelUp {
		t.Errorf("Wheel up button = %v", m.Button)
	}
}
