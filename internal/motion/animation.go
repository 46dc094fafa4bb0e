package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// animation is one running trajectory of the progress value.
type animation interface {
	// step advances by dt and returns the new value and whether the
	// trajectory has finished.
	step(dt time.Duration) (value float64, done bool)
	target() float64
}

// tween interpolates from -> to over a fixed duration.
type tween struct {
	from, to float64
	elapsed  time.Duration
	total    time.Duration
	curve    Curve
}

func (tw *tween) step(dt time.Duration) (float64, bool) {
	tw.elapsed += dt
	if tw.total <= 0 || tw.elapsed >= tw.total {
		return tw.to, true
	}
	t := float64(tw.elapsed) / float64(tw.total)
	return tw.from + (tw.to-tw.from)*tw.curve(t), false
}

func (tw *tween) target() float64 { return tw.to }

const (
	springFPS       = 60
	springFrequency = 14.0
	springDamping   = 1.0 // critically damped

	settlePosition = 0.001
	settleVelocity = 0.01
)

// fling carries the current velocity into a critically damped spring that
// settles on 0 or 1. The spring is stepped at a fixed rate and leftover
// time is carried to the next frame.
type fling struct {
	spring   harmonica.Spring
	pos, vel float64
	to       float64
	carry    time.Duration
}

var springStep = time.Second / springFPS

func newFling(from, velocity float64) *fling {
	to := 1.0
	switch {
	case velocity < 0:
		to = 0
	case velocity == 0 && from < 0.5:
		to = 0
	}
	return &fling{
		spring: harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),
		pos:    from,
		vel:    velocity,
		to:     to,
	}
}

func (f *fling) step(dt time.Duration) (float64, bool) {
	f.carry += dt
	for f.carry >= springStep {
		f.carry -= springStep
		f.pos, f.vel = f.spring.Update(f.pos, f.vel, f.to)
		if f.pos <= 0 || f.pos >= 1 {
			f.pos = clamp01(f.pos)
			if f.pos == f.to {
				return f.to, true
			}
			f.vel = 0
		}
		if math.Abs(f.pos-f.to) < settlePosition && math.Abs(f.vel) < settleVelocity {
			return f.to, true
		}
	}
	return f.pos, false
}

func (f *fling) target() float64 { return f.to }
