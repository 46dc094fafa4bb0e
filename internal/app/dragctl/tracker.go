// Package dragctl turns pointer motion on the pane edge into drag deltas
// and a release velocity.
package dragctl

import "time"

// VelocityWindow is how far back samples count towards the release velocity.
const VelocityWindow = 100 * time.Millisecond

type sample struct {
	x  float64
	at time.Time
}

// Tracker follows one drag gesture at a time.
type Tracker struct {
	active  bool
	lastX   float64
	samples []sample
	now     func() time.Time
}

// New creates a Tracker. now defaults to time.Now.
func New(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return t.active }

// Begin starts a gesture at column x.
func (t *Tracker) Begin(x float64) {
	t.active = true
	t.lastX = x
	t.samples = append(t.samples[:0], sample{x: x, at: t.now()})
}

// Move records the pointer at x and returns the motion since the last event.
func (t *Tracker) Move(x float64) float64 {
	if !t.active {
		return 0
	}
	delta := x - t.lastX
	t.lastX = x
	t.record(x)
	return delta
}

// End finishes the gesture at x. It returns the remaining motion and the
// velocity in columns per second over the last VelocityWindow.
func (t *Tracker) End(x float64) (delta, velocity float64) {
	if !t.active {
		return 0, 0
	}
	delta = t.Move(x)
	t.active = false

	last := t.samples[len(t.samples)-1]
	first := last
	for _, s := range t.samples {
		if last.at.Sub(s.at) <= VelocityWindow {
			first = s
			break
		}
	}
	t.samples = t.samples[:0]

	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return delta, 0
	}
	return delta, (last.x - first.x) / dt
}

// Cancel drops the gesture without a release.
func (t *Tracker) Cancel() {
	t.active = false
	t.samples = t.samples[:0]
}

func (t *Tracker) record(x float64) {
	now := t.now()
	t.samples = append(t.samples, sample{x: x, at: now})
	// keep the slice short during long drags
	cut := 0
	for cut < len(t.samples)-1 && now.Sub(t.samples[cut].at) > VelocityWindow {
		cut++
	}
	if cut > 0 {
		t.samples = append(t.samples[:0], t.samples[cut:]...)
	}
}
