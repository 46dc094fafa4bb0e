// Package layout provides pure functions for shell geometry: the status
// strip, app bar, pane, and body rectangles.
package layout

import (
	"math"

	"github.com/llehouerou/navshell/internal/displaymode"
)

// Defaults used when a width or height has not been measured yet.
const (
	DefaultAppBarHeight = 56.0
	DefaultCompactWidth = 80.0
	DefaultOpenWidth    = 304.0
	DefaultHandleWidth  = 20.0
)

// Direction is the text direction. The pane always sits on the start edge.
type Direction int

const (
	LTR Direction = iota
	RTL
)

// Size is a viewport size.
type Size struct {
	W, H float64
}

// Insets are safe-area paddings.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Overlaps reports whether two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Cells is a rectangle snapped to whole terminal cells.
type Cells struct {
	X, Y, W, H int
}

// Round snaps edges (not sizes) to the nearest cell so that rectangles that
// touch before rounding still touch after.
func (r Rect) Round() Cells {
	x0, y0 := int(math.Round(r.X)), int(math.Round(r.Y))
	x1, y1 := int(math.Round(r.Right())), int(math.Round(r.Bottom()))
	return Cells{X: x0, Y: y0, W: max(x1-x0, 0), H: max(y1-y0, 0)}
}

// Input holds everything the compositor depends on. It is comparable, so
// hosts can skip a layout pass when the input is unchanged.
type Input struct {
	Mode      displaymode.Mode
	Progress  float64 // pane open progress, including drags in flight
	Direction Direction
	Viewport  Size
	Insets    Insets
	// BottomInset is an extra bottom obstruction such as an on-screen keyboard.
	BottomInset  float64
	AppBarHeight float64
	CompactWidth float64
	OpenWidth    float64
}

// Rects is the result of a layout pass.
type Rects struct {
	StatusBar Rect
	AppBar    Rect
	Pane      Rect
	Body      Rect
	// PaneReserved is the width taken from the body by the pane.
	PaneReserved float64
	// PaneOverlay is true when the pane draws over the body (minimal mode).
	PaneOverlay bool
}

// Compose computes the shell rectangles.
func Compose(in Input) Rects {
	w, h := max(in.Viewport.W, 0), max(in.Viewport.H, 0)

	statusH := clamp(in.Insets.Top, 0, h)
	appBarH := in.AppBarHeight
	if appBarH <= 0 {
		appBarH = DefaultAppBarHeight
	}
	appBarH = clamp(appBarH, 0, h-statusH)
	contentTop := statusH + appBarH
	bottom := max(contentTop, h-max(in.Insets.Bottom, in.BottomInset))
	contentH := bottom - contentTop

	innerLeft := clamp(in.Insets.Left, 0, w)
	innerRight := max(innerLeft, w-max(in.Insets.Right, 0))
	innerW := innerRight - innerLeft

	paneW := PaneWidth(in)
	overlay := in.Mode == displaymode.Minimal

	var pane Rect
	reserved := 0.0
	if overlay {
		paneW = min(paneW, w)
		x := 0.0
		if in.Direction == RTL {
			x = w - paneW
		}
		pane = Rect{X: x, Y: contentTop, W: paneW, H: contentH}
	} else {
		paneW = min(paneW, innerW)
		reserved = paneW
		x := innerLeft
		if in.Direction == RTL {
			x = innerRight - paneW
		}
		pane = Rect{X: x, Y: contentTop, W: paneW, H: contentH}
	}

	bodyX := innerLeft
	if in.Direction == LTR {
		bodyX += reserved
	}
	body := Rect{X: bodyX, Y: contentTop, W: innerW - reserved, H: contentH}

	return Rects{
		StatusBar:    Rect{X: 0, Y: 0, W: w, H: statusH},
		AppBar:       Rect{X: 0, Y: statusH, W: w, H: appBarH},
		Pane:         pane,
		Body:         body,
		PaneReserved: reserved,
		PaneOverlay:  overlay,
	}
}

// PaneWidth returns the pane width for the mode and progress: it grows with
// progress in minimal mode, interpolates between compact and open widths in
// medium mode, and stays at the open width in expanded mode.
func PaneWidth(in Input) float64 {
	compact, open := in.CompactWidth, in.OpenWidth
	if compact <= 0 {
		compact = DefaultCompactWidth
	}
	if open <= 0 {
		open = DefaultOpenWidth
	}
	p := clamp(in.Progress, 0, 1)
	switch in.Mode {
	case displaymode.Medium:
		return compact + (open-compact)*p
	case displaymode.Expanded:
		return open
	default:
		return p * open
	}
}

// DragHandle returns the strip along the pane's inner edge that accepts
// drag gestures. In RTL it mirrors to the pane's left edge.
func DragHandle(in Input, rects Rects, handleW float64) Rect {
	if handleW <= 0 {
		handleW = DefaultHandleWidth
	}
	w := max(in.Viewport.W, 0)
	p := rects.Pane
	var x float64
	if in.Direction == RTL {
		x = clamp(p.X-handleW/2, 0, max(w-handleW, 0))
	} else {
		x = clamp(p.Right()-handleW/2, 0, max(w-handleW, 0))
	}
	return Rect{X: x, Y: p.Y, W: handleW, H: p.H}
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}
