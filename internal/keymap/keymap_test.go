//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 5},
		{"pane context", "pane", 5},
		{"popup context", "popup", 3},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestAllBindingsHaveKeysAndDescription(t *testing.T) {
	for _, b := range All {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestKeyBinding(t *testing.T) {
	b := Binding{ActionSelect, []string{" ", "enter"}, "Select", "pane"}
	kb := b.KeyBinding()

	if got := kb.Help().Key; got != "space" {
		t.Errorf("help key = %q, want %q", got, "space")
	}
	if got := kb.Help().Desc; got != "Select" {
		t.Errorf("help desc = %q, want %q", got, "Select")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, kb) {
		t.Error("enter should match the select binding")
	}
}

func TestHelpKeys(t *testing.T) {
	keys := HelpKeys("global", "pane")
	want := len(ByContext("global")) + len(ByContext("pane"))
	if len(keys) != want {
		t.Errorf("HelpKeys returned %d bindings, want %d", len(keys), want)
	}
}
