// Package cursor tracks keyboard focus over the rows of a scrollable list
// where some rows cannot take focus.
package cursor

// Cursor is a focus position plus scroll offset. The row count, viewport
// height and focusability are passed in rather than stored since they
// change as the pane animates.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above/below the focus
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the focused row.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible row.
func (c Cursor) Offset() int { return c.offset }

// Focusable reports whether row i can take focus.
type Focusable func(i int) bool

func all(int) bool { return true }

// Move steps focus by delta rows, skipping rows that cannot take focus.
// When no focusable row lies in that direction the focus stays put.
func (c *Cursor) Move(delta, n, height int, ok Focusable) {
	if n == 0 || delta == 0 {
		return
	}
	if ok == nil {
		ok = all
	}
	step := 1
	if delta < 0 {
		step = -1
		delta = -delta
	}
	pos := c.pos
	for i := clamp(pos+step, n-1); delta > 0; i += step {
		if i < 0 || i >= n {
			break
		}
		if ok(i) {
			pos = i
			delta--
		}
	}
	c.pos = pos
	c.EnsureVisible(n, height)
}

// JumpStart focuses the first focusable row.
func (c *Cursor) JumpStart(n, height int, ok Focusable) {
	c.jumpFrom(0, 1, n, height, ok)
}

// JumpEnd focuses the last focusable row.
func (c *Cursor) JumpEnd(n, height int, ok Focusable) {
	c.jumpFrom(n-1, -1, n, height, ok)
}

// Jump focuses row pos, or the nearest focusable row after it, or failing
// that the nearest one before it.
func (c *Cursor) Jump(pos, n, height int, ok Focusable) {
	if n == 0 {
		return
	}
	if !c.jumpFrom(clamp(pos, n-1), 1, n, height, ok) {
		c.jumpFrom(clamp(pos, n-1), -1, n, height, ok)
	}
}

func (c *Cursor) jumpFrom(start, step, n, height int, ok Focusable) bool {
	if ok == nil {
		ok = all
	}
	for i := start; i >= 0 && i < n; i += step {
		if ok(i) {
			c.pos = i
			c.EnsureVisible(n, height)
			return true
		}
	}
	return false
}

// EnsureVisible adjusts the scroll offset to keep the focus visible.
func (c *Cursor) EnsureVisible(n, height int) {
	if height <= 0 || n == 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(n-height, 0))
}

// Clamp keeps the focus inside a list that may have shrunk. It returns
// true if the focus moved.
func (c *Cursor) Clamp(n, height int) bool {
	old := c.pos
	if n == 0 {
		c.pos, c.offset = 0, 0
		return old != 0
	}
	c.pos = clamp(c.pos, n-1)
	c.EnsureVisible(n, height)
	return c.pos != old
}

// VisibleRange returns the visible rows [start, end).
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
