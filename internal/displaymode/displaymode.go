// Package displaymode maps an available width to one of three pane
// presentations using configurable breakpoints.
package displaymode

import (
	"fmt"
	"strings"
)

// Mode is the pane presentation.
type Mode int

const (
	// Minimal hides the pane; it slides in as an overlay drawer.
	Minimal Mode = iota
	// Medium shows an icon rail that can expand over the body.
	Medium
	// Expanded permanently shows the full pane with labels.
	Expanded
)

func (m Mode) String() string {
	switch m {
	case Medium:
		return "medium"
	case Expanded:
		return "expanded"
	default:
		return "minimal"
	}
}

// ParseMode parses a config value. The empty string is not a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimal", "compact":
		return Minimal, nil
	case "medium":
		return Medium, nil
	case "expanded":
		return Expanded, nil
	}
	return Minimal, fmt.Errorf("unknown display mode %q", s)
}

// MoreCompact reports whether m shows less of the pane than other.
func (m Mode) MoreCompact(other Mode) bool {
	return m < other
}

// Breakpoint is a width range. A nil bound is open-ended.
type Breakpoint struct {
	Start *float64
	End   *float64
}

// Contains reports whether width lies within the inclusive range.
func (b Breakpoint) Contains(width float64) bool {
	if b.Start != nil && width < *b.Start {
		return false
	}
	if b.End != nil && width > *b.End {
		return false
	}
	return b.Start != nil || b.End != nil
}

// Breakpoints holds the three ranges.
type Breakpoints struct {
	Compact  Breakpoint
	Medium   Breakpoint
	Expanded Breakpoint
}

// Bound is a convenience for building breakpoints.
func Bound(v float64) *float64 { return &v }

// Default returns compact (..600], medium [600..840], expanded [840..).
func Default() Breakpoints {
	return Breakpoints{
		Compact:  Breakpoint{End: Bound(600)},
		Medium:   Breakpoint{Start: Bound(600), End: Bound(840)},
		Expanded: Breakpoint{Start: Bound(840)},
	}
}

// Resolve returns override when non-nil. Otherwise it checks, in order,
// width <= compact end, the medium range, and width >= expanded start,
// falling back to Minimal when none match.
func Resolve(width float64, bps Breakpoints, override *Mode) Mode {
	if override != nil {
		return *override
	}
	if bps.Compact.End != nil && width <= *bps.Compact.End {
		return Minimal
	}
	if bps.Medium.Contains(width) {
		return Medium
	}
	if bps.Expanded.Start != nil && width >= *bps.Expanded.Start {
		return Expanded
	}
	return Minimal
}
