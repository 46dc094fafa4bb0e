package motion

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const frame = 16 * time.Millisecond

func runFrames(c *Controller, limit int) int {
	n := 0
	for c.Advance(frame) {
		n++
		if n > limit {
			break
		}
	}
	return n
}

func TestOpenCompletes(t *testing.T) {
	c := New(Options{})
	c.Open()
	assert.True(t, c.Animating())

	runFrames(c, 100)

	assert.Equal(t, 1.0, c.Progress())
	assert.True(t, c.IsOpen())
	assert.Equal(t, Idle, c.Status())
}

func TestOpenCloseRoundTrip(t *testing.T) {
	c := New(Options{})
	c.Open()
	c.Settle()
	c.Close()
	c.Settle()

	assert.Equal(t, 0.0, c.Progress())
	assert.False(t, c.IsOpen())
}

func TestDurationScalesWithDistance(t *testing.T) {
	c := New(Options{InitialProgress: 0.5})
	c.Open()

	// half the travel takes half the default duration
	assert.True(t, c.Advance(DefaultDuration/2-time.Millisecond))
	assert.False(t, c.Advance(2*time.Millisecond))
	assert.Equal(t, 1.0, c.Progress())
}

func TestWithDuration(t *testing.T) {
	c := New(Options{})
	c.Open(WithDuration(time.Second), WithCurve(Linear))

	c.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
}

func TestSupersedingAnimationChangesGeneration(t *testing.T) {
	c := New(Options{})
	c.Open()
	first := c.Generation()
	c.Advance(frame)

	c.Close()
	assert.NotEqual(t, first, c.Generation())
	assert.Equal(t, 0.0, c.Target())

	c.Settle()
	assert.Equal(t, 0.0, c.Progress())
}

func TestToggle(t *testing.T) {
	c := New(Options{})
	c.Toggle()
	c.Settle()
	assert.True(t, c.IsOpen())

	c.Toggle()
	c.Settle()
	assert.False(t, c.IsOpen())
}

func TestSnap(t *testing.T) {
	c := New(Options{})
	notified := 0
	c.Subscribe(func() { notified++ })

	c.Open()
	c.SnapOpen()
	assert.Equal(t, 1.0, c.Progress())
	assert.False(t, c.Animating())

	c.SnapClosed()
	assert.Equal(t, 0.0, c.Progress())
	assert.Equal(t, 2, notified)
}

func TestFlingDirection(t *testing.T) {
	c := New(Options{InitialProgress: 0.3})
	c.Fling(2)
	c.Settle()
	assert.Equal(t, 1.0, c.Progress())

	c.Fling(-2)
	c.Settle()
	assert.Equal(t, 0.0, c.Progress())
}

func TestDragNotifiesOnBoundaryOnly(t *testing.T) {
	c := New(Options{})
	notified := 0
	c.Subscribe(func() { notified++ })

	c.BeginDrag()
	notified = 0

	assert.False(t, c.DragBy(40, 100, Orientation{}))
	assert.InDelta(t, 0.4, c.Progress(), 1e-9)
	assert.Equal(t, 0, notified)

	assert.True(t, c.DragBy(20, 100, Orientation{}))
	assert.True(t, c.IsOpen())
	assert.Equal(t, 1, notified)
}

func TestDragClampsAndMirrors(t *testing.T) {
	c := New(Options{})
	c.BeginDrag()
	c.DragBy(500, 100, Orientation{})
	assert.Equal(t, 1.0, c.Progress())

	// in RTL, rightward motion closes a start-aligned pane
	c.DragBy(30, 100, Orientation{RTL: true})
	assert.InDelta(t, 0.7, c.Progress(), 1e-9)

	c.DragBy(-900, 100, Orientation{AlignEnd: true})
	assert.Equal(t, 1.0, c.Progress())
}

func TestDragFallbackWidth(t *testing.T) {
	c := New(Options{FallbackWidth: 200})
	c.BeginDrag()
	c.DragBy(50, 0, Orientation{})
	assert.InDelta(t, 0.25, c.Progress(), 1e-9)
}

func TestEndDragSettlesToNearest(t *testing.T) {
	c := New(Options{})
	c.BeginDrag()
	c.DragBy(30, 100, Orientation{})
	c.EndDrag(10, 100, Orientation{})
	c.Settle()
	assert.Equal(t, 0.0, c.Progress())

	c.BeginDrag()
	c.DragBy(70, 100, Orientation{})
	c.EndDrag(-10, 100, Orientation{})
	c.Settle()
	assert.Equal(t, 1.0, c.Progress())
}

func TestEndDragFlingsAboveThreshold(t *testing.T) {
	c := New(Options{})
	c.BeginDrag()
	c.DragBy(30, 100, Orientation{})
	c.EndDrag(DefaultMinFlingVelocity+1, 100, Orientation{})
	assert.True(t, c.Animating())
	c.Settle()
	assert.Equal(t, 1.0, c.Progress())

	// RTL release toward the right closes
	c.BeginDrag()
	c.EndDrag(DefaultMinFlingVelocity*2, 100, Orientation{RTL: true})
	c.Settle()
	assert.Equal(t, 0.0, c.Progress())
}

func TestProgressStaysInRange(t *testing.T) {
	c := New(Options{})
	ops := []func(){
		func() { c.Open() },
		func() { c.Fling(50) },
		func() { c.DragBy(-1000, 10, Orientation{}) },
		func() { c.Close() },
		func() { c.Fling(-50) },
		func() { c.DragBy(1000, 10, Orientation{}) },
		func() { c.Fling(0) },
	}
	for i := range 200 {
		ops[i%len(ops)]()
		c.Advance(time.Duration(i%5) * frame)
		p := c.Progress()
		if p < 0 || p > 1 || math.IsNaN(p) {
			t.Fatalf("progress %v out of range after op %d", p, i)
		}
	}
}

func TestDispose(t *testing.T) {
	c := New(Options{})
	notified := 0
	c.Subscribe(func() { notified++ })
	c.Open()
	c.Dispose()

	assert.False(t, c.Advance(frame))
	c.Open()
	c.SnapOpen()
	assert.Equal(t, 0, notified)
	assert.False(t, c.Animating())
}

func TestCurvesEndpoints(t *testing.T) {
	for name, curve := range map[string]Curve{"linear": Linear, "easeOut": EaseOut, "easeInOut": EaseInOut} {
		assert.InDelta(t, 0.0, curve(0), 1e-12, name)
		assert.InDelta(t, 1.0, curve(1), 1e-12, name)
		assert.InDelta(t, 1.0, curve(2), 1e-12, name)
	}
}
