package displaymode

import (
	"fmt"
	"math"
)

// Warning describes a breakpoint configuration problem. Problems are never
// fatal: Resolve still falls back to Minimal.
type Warning struct {
	Breakpoint string
	Message    string
}

func (w Warning) String() string {
	return w.Breakpoint + ": " + w.Message
}

// Validate reports inconsistent breakpoints: missing bounds, inverted
// ranges, overlaps between adjacent ranges, and width gaps that no range
// covers.
func Validate(bps Breakpoints) []Warning {
	var warnings []Warning
	named := []struct {
		name string
		bp   Breakpoint
	}{
		{"compact", bps.Compact},
		{"medium", bps.Medium},
		{"expanded", bps.Expanded},
	}
	for _, n := range named {
		if n.bp.Start == nil && n.bp.End == nil {
			warnings = append(warnings, Warning{n.name, "needs at least one bound"})
			continue
		}
		if n.bp.Start != nil && n.bp.End != nil && *n.bp.Start > *n.bp.End {
			warnings = append(warnings, Warning{n.name, fmt.Sprintf("start %g is after end %g", *n.bp.Start, *n.bp.End)})
		}
	}

	for i := range len(named) - 1 {
		lo, hi := named[i], named[i+1]
		loEnd, hiStart := upper(lo.bp), lower(hi.bp)
		switch {
		case loEnd > hiStart:
			warnings = append(warnings, Warning{hi.name, fmt.Sprintf("overlaps %s (%g > %g)", lo.name, loEnd, hiStart)})
		case loEnd < hiStart:
			warnings = append(warnings, Warning{hi.name, fmt.Sprintf("widths between %g and %g fall back to minimal", loEnd, hiStart)})
		}
	}
	return warnings
}

func lower(b Breakpoint) float64 {
	if b.Start == nil {
		return math.Inf(-1)
	}
	return *b.Start
}

func upper(b Breakpoint) float64 {
	if b.End == nil {
		return math.Inf(1)
	}
	return *b.End
}
