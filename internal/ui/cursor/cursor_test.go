package cursor

import "testing"

func TestNew(t *testing.T) {
	c := New(2)
	if c.Pos() != 0 {
		t.Errorf("New() pos = %d, want 0", c.Pos())
	}
	if c.Offset() != 0 {
		t.Errorf("New() offset = %d, want 0", c.Offset())
	}
}

func skip(rows ...int) Focusable {
	return func(i int) bool {
		for _, r := range rows {
			if r == i {
				return false
			}
		}
		return true
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		n          int
		height     int
		ok         Focusable
		wantPos    int
		wantOffset int
	}{
		{
			name:    "move down within bounds no scroll",
			margin:  1,
			initial: 0, delta: 1, n: 10, height: 5,
			wantPos: 1, wantOffset: 0,
		},
		{
			name:    "move down triggers scroll with margin",
			margin:  1,
			initial: 0, delta: 4, n: 10, height: 5,
			wantPos: 4, wantOffset: 1,
		},
		{
			name:    "move up clamps to first row",
			margin:  0,
			initial: 1, delta: -5, n: 10, height: 5,
			wantPos: 0, wantOffset: 0,
		},
		{
			name:    "move down clamps to last row",
			margin:  0,
			initial: 8, delta: 5, n: 10, height: 5,
			wantPos: 9, wantOffset: 5,
		},
		{
			name:    "skips unfocusable rows",
			initial: 0, delta: 1, n: 5, height: 5, ok: skip(1, 2),
			wantPos: 3, wantOffset: 0,
		},
		{
			name:    "stays when nothing focusable below",
			initial: 2, delta: 1, n: 5, height: 5, ok: skip(3, 4),
			wantPos: 2, wantOffset: 0,
		},
		{
			name:    "skips upward",
			initial: 4, delta: -1, n: 5, height: 5, ok: skip(3),
			wantPos: 2, wantOffset: 0,
		},
		{
			name:    "empty list is a no-op",
			initial: 0, delta: 1, n: 0, height: 5,
			wantPos: 0, wantOffset: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.initial
			c.Move(tt.delta, tt.n, tt.height, tt.ok)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestJumps(t *testing.T) {
	ok := skip(0, 5)

	c := New(0)
	c.JumpEnd(6, 3, ok)
	if c.Pos() != 4 {
		t.Errorf("JumpEnd pos = %d, want 4", c.Pos())
	}
	if c.Offset() != 2 {
		t.Errorf("JumpEnd offset = %d, want 2", c.Offset())
	}

	c.JumpStart(6, 3, ok)
	if c.Pos() != 1 {
		t.Errorf("JumpStart pos = %d, want 1", c.Pos())
	}
	if c.Offset() != 1 {
		t.Errorf("JumpStart offset = %d, want 1", c.Offset())
	}

	c.Jump(5, 6, 3, ok)
	if c.Pos() != 4 {
		t.Errorf("Jump(5) pos = %d, want 4 (nearest focusable before)", c.Pos())
	}

	c.Jump(2, 6, 3, nil)
	if c.Pos() != 2 {
		t.Errorf("Jump(2) pos = %d, want 2", c.Pos())
	}
}

func TestClamp(t *testing.T) {
	c := New(0)
	c.pos = 7

	if !c.Clamp(4, 10) {
		t.Error("Clamp should report a move")
	}
	if c.Pos() != 3 {
		t.Errorf("pos = %d, want 3", c.Pos())
	}
	if c.Clamp(4, 10) {
		t.Error("second Clamp should not move")
	}
	c.Clamp(0, 10)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty Clamp = (%d,%d), want (0,0)", c.Pos(), c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.offset = 3

	start, end := c.VisibleRange(10, 4)
	if start != 3 || end != 7 {
		t.Errorf("VisibleRange = [%d,%d), want [3,7)", start, end)
	}
	start, end = c.VisibleRange(5, 4)
	if start != 3 || end != 5 {
		t.Errorf("VisibleRange short list = [%d,%d), want [3,5)", start, end)
	}
	start, end = c.VisibleRange(0, 4)
	if start != 0 || end != 0 {
		t.Errorf("VisibleRange empty = [%d,%d), want [0,0)", start, end)
	}
}
