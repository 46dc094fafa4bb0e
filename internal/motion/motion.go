// Package motion drives the pane's open/close progress: a single value in
// [0,1] moved by timed tweens, velocity flings, or direct drag deltas.
//
// The controller has no clock of its own. The host calls Advance once per
// frame while Animating() is true and tags its frame callbacks with
// Generation() so that frames scheduled for a superseded animation are
// recognised and dropped.
package motion

import (
	"math"
	"time"

	"github.com/llehouerou/navshell/internal/observe"
)

// Status is the controller's activity state.
type Status int

const (
	// Idle means nothing is moving progress.
	Idle Status = iota
	// Animating means a tween or fling is moving progress toward a target.
	Animating
	// Dragging means a pointer drag owns progress until EndDrag.
	Dragging
)

func (s Status) String() string {
	switch s {
	case Animating:
		return "animating"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

const (
	// DefaultDuration is the time a full 0->1 travel takes.
	DefaultDuration = 300 * time.Millisecond
	// DefaultMinFlingVelocity is the release speed, in pixels per second,
	// above which a drag ends in a fling.
	DefaultMinFlingVelocity = 365.0
	// DefaultFallbackWidth is used to normalise drag deltas before the pane
	// has been measured.
	DefaultFallbackWidth = 304.0
)

// Options configures a Controller. Zero fields take the defaults above.
type Options struct {
	Duration         time.Duration
	InitialProgress  float64
	MinFlingVelocity float64
	FallbackWidth    float64
}

// Orientation describes where the pane sits, used to turn horizontal
// pointer motion into opening or closing motion.
type Orientation struct {
	AlignEnd bool // pane attached to the end edge instead of the start edge
	RTL      bool
}

// Sign returns +1 when rightward pointer motion opens the pane, -1 otherwise.
func (o Orientation) Sign() float64 {
	if o.AlignEnd != o.RTL {
		return -1
	}
	return 1
}

// Controller owns the pane progress.
type Controller struct {
	progress float64
	status   Status
	anim     animation
	gen      uint64
	disposed bool

	duration      time.Duration
	minFling      float64
	fallbackWidth float64

	listeners observe.List
}

// New creates a Controller.
func New(opts Options) *Controller {
	c := &Controller{
		progress:      clamp01(opts.InitialProgress),
		duration:      opts.Duration,
		minFling:      opts.MinFlingVelocity,
		fallbackWidth: opts.FallbackWidth,
	}
	if c.duration <= 0 {
		c.duration = DefaultDuration
	}
	if c.minFling <= 0 {
		c.minFling = DefaultMinFlingVelocity
	}
	if c.fallbackWidth <= 0 {
		c.fallbackWidth = DefaultFallbackWidth
	}
	return c
}

// Progress returns the open fraction in [0,1].
func (c *Controller) Progress() float64 { return c.progress }

// IsOpen reports whether the pane is more than half open.
func (c *Controller) IsOpen() bool { return c.progress > 0.5 }

// Status returns the activity state.
func (c *Controller) Status() Status { return c.status }

// Animating reports whether frames are needed.
func (c *Controller) Animating() bool { return c.status == Animating }

// Generation identifies the current animation. It changes whenever an
// animation starts or stops.
func (c *Controller) Generation() uint64 { return c.gen }

// Target returns where the running animation is heading, or the current
// progress when idle.
func (c *Controller) Target() float64 {
	if c.anim != nil {
		return c.anim.target()
	}
	return c.progress
}

// Subscribe registers a change listener.
func (c *Controller) Subscribe(fn func()) func() {
	return c.listeners.Subscribe(fn)
}

// --- Animated transitions ---

// AnimateOption customises Open, Close and AnimateTo.
type AnimateOption func(*animateConfig)

type animateConfig struct {
	duration time.Duration
	curve    Curve
}

// WithDuration sets the duration of the whole travel instead of scaling the
// default by distance.
func WithDuration(d time.Duration) AnimateOption {
	return func(cfg *animateConfig) { cfg.duration = d }
}

// WithCurve sets the easing curve.
func WithCurve(curve Curve) AnimateOption {
	return func(cfg *animateConfig) { cfg.curve = curve }
}

// Open animates toward fully open.
func (c *Controller) Open(opts ...AnimateOption) { c.AnimateTo(1, opts...) }

// Close animates toward fully closed.
func (c *Controller) Close(opts ...AnimateOption) { c.AnimateTo(0, opts...) }

// Toggle closes an open pane and opens a closed one.
func (c *Controller) Toggle(opts ...AnimateOption) {
	if c.IsOpen() {
		c.Close(opts...)
		return
	}
	c.Open(opts...)
}

// AnimateTo animates toward target, superseding any running animation.
func (c *Controller) AnimateTo(target float64, opts ...AnimateOption) {
	if c.disposed {
		return
	}
	target = clamp01(target)
	cfg := animateConfig{curve: EaseOut}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.duration <= 0 {
		cfg.duration = time.Duration(float64(c.duration) * math.Abs(target-c.progress))
	}

	c.stop()
	if c.progress == target {
		c.listeners.Notify()
		return
	}
	c.start(&tween{from: c.progress, to: target, total: cfg.duration, curve: cfg.curve})
}

// Fling continues motion with velocity in progress units per second. The
// sign picks the destination: positive opens, negative closes.
func (c *Controller) Fling(velocity float64) {
	if c.disposed {
		return
	}
	c.stop()
	c.start(newFling(c.progress, velocity))
}

// SnapOpen jumps to fully open without animating.
func (c *Controller) SnapOpen() { c.snap(1) }

// SnapClosed jumps to fully closed without animating.
func (c *Controller) SnapClosed() { c.snap(0) }

func (c *Controller) snap(v float64) {
	if c.disposed {
		return
	}
	c.stop()
	c.progress = v
	c.listeners.Notify()
}

// Advance steps the running animation by dt. It returns true while more
// frames are needed.
func (c *Controller) Advance(dt time.Duration) bool {
	if c.disposed || c.status != Animating || c.anim == nil {
		return false
	}
	value, done := c.anim.step(dt)
	c.progress = clamp01(value)
	if done {
		c.stop()
	}
	c.listeners.Notify()
	return !done
}

// Settle runs the current animation to completion immediately.
func (c *Controller) Settle() {
	for c.Advance(time.Second) {
	}
}

// --- Drag ---

// BeginDrag stops any animation and hands the value to the pointer.
func (c *Controller) BeginDrag() {
	if c.disposed {
		return
	}
	c.stop()
	c.status = Dragging
	c.listeners.Notify()
}

// DragBy moves progress by deltaPx normalised by paneWidth (the fallback
// width when paneWidth is not yet known). Listeners are only notified when
// the drag crosses the open/closed boundary; the return value reports that.
func (c *Controller) DragBy(deltaPx, paneWidth float64, o Orientation) bool {
	if c.disposed {
		return false
	}
	if c.status != Dragging {
		c.stop()
		c.status = Dragging
	}
	wasOpen := c.IsOpen()
	c.progress = clamp01(c.progress + o.Sign()*deltaPx/c.width(paneWidth))
	if c.IsOpen() != wasOpen {
		c.listeners.Notify()
		return true
	}
	return false
}

// EndDrag finishes a drag. A release faster than the minimum fling velocity
// flings in the gesture's direction; otherwise the pane settles to whichever
// end is closer.
func (c *Controller) EndDrag(velocityPx, paneWidth float64, o Orientation) {
	if c.disposed {
		return
	}
	c.status = Idle
	if math.Abs(velocityPx) >= c.minFling {
		c.Fling(o.Sign() * velocityPx / c.width(paneWidth))
		return
	}
	if c.progress < 0.5 {
		c.Close()
		return
	}
	c.Open()
}

// Dispose stops animation and drops listeners. Later calls are no-ops.
func (c *Controller) Dispose() {
	c.stop()
	c.listeners.Dispose()
	c.disposed = true
}

func (c *Controller) width(paneWidth float64) float64 {
	if paneWidth <= 0 {
		return c.fallbackWidth
	}
	return paneWidth
}

func (c *Controller) start(a animation) {
	c.anim = a
	c.status = Animating
	c.gen++
}

func (c *Controller) stop() {
	if c.anim != nil {
		c.gen++
	}
	c.anim = nil
	c.status = Idle
}
