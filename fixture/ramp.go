package fixture

import (
	"time"

	"github.com/fogleman/ease"
)

// Ramp eases an axis value toward its most recently set target instead of
// snapping, so a hard fader throw doesn't slam a motor from full reverse to full
// forward in one frame. A zero ramp time disables smoothing entirely.
type Ramp struct {
	start   float64
	current float64
	target  float64

	rampTime time.Duration
	elapsed  time.Duration
	easing   ease.Function
}

// NewRamp creates a ramp resting at initial. rampTime is how long a move takes
// regardless of distance; zero means snap.
func NewRamp(initial float64, rampTime time.Duration) *Ramp {
	return &Ramp{
		start:    initial,
		current:  initial,
		target:   initial,
		rampTime: rampTime,
		easing:   ease.InOutQuad,
	}
}

// SetTarget starts a new move from wherever the ramp currently is.
func (r *Ramp) SetTarget(v float64) {
	if r.rampTime == 0 {
		r.start, r.current, r.target = v, v, v
		return
	}
	r.start = r.current
	r.target = v
	r.elapsed = 0
}

// Update advances the ramp by delta.
func (r *Ramp) Update(delta time.Duration) {
	if r.rampTime == 0 || r.current == r.target {
		return
	}
	r.elapsed += delta
	if r.elapsed >= r.rampTime {
		r.current = r.target
		r.start = r.target
		return
	}
	p := float64(r.elapsed) / float64(r.rampTime)
	r.current = r.start + (r.target-r.start)*r.easing(p)
}

// Current returns the smoothed value.
func (r *Ramp) Current() float64 {
	return r.current
}

// Target returns the last applied target value.
func (r *Ramp) Target() float64 {
	return r.target
}

// Snap jumps the ramp straight to v, abandoning any move in flight.
func (r *Ramp) Snap(v float64) {
	r.start, r.current, r.target = v, v, v
	r.elapsed = 0
}
