package dragctl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestTrackerDeltas(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	tr := New(c.now)

	assert.False(t, tr.Active())
	assert.Zero(t, tr.Move(5), "move without a gesture")

	tr.Begin(10)
	assert.True(t, tr.Active())
	c.advance(10 * time.Millisecond)
	assert.InDelta(t, 3.0, tr.Move(13), 1e-9)
	c.advance(10 * time.Millisecond)
	assert.InDelta(t, -1.0, tr.Move(12), 1e-9)
}

func TestTrackerVelocity(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	tr := New(c.now)

	tr.Begin(0)
	for i := 1; i <= 5; i++ {
		c.advance(20 * time.Millisecond)
		tr.Move(float64(i * 2))
	}
	delta, v := tr.End(10)
	assert.Zero(t, delta)
	// 10 columns over 100ms
	assert.InDelta(t, 100.0, v, 1e-6)
	assert.False(t, tr.Active())
}

func TestTrackerVelocityIgnoresOldSamples(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	tr := New(c.now)

	tr.Begin(0)
	c.advance(20 * time.Millisecond)
	tr.Move(30)
	// pointer rests, then moves slowly
	c.advance(500 * time.Millisecond)
	tr.Move(30)
	c.advance(50 * time.Millisecond)
	_, v := tr.End(31)
	assert.InDelta(t, 20.0, v, 1e-6)
}

func TestTrackerStationaryRelease(t *testing.T) {
	c := &clock{t: time.Unix(0, 0)}
	tr := New(c.now)

	tr.Begin(4)
	delta, v := tr.End(4)
	assert.Zero(t, delta)
	assert.Zero(t, v)

	delta, v = tr.End(8)
	assert.Zero(t, delta, "end without a gesture")
	assert.Zero(t, v)
}

func TestTrackerCancel(t *testing.T) {
	tr := New(nil)
	tr.Begin(1)
	tr.Cancel()
	assert.False(t, tr.Active())
	assert.Zero(t, tr.Move(9))
}
