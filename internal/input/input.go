// Package input holds the latest input-device state. Device events overwrite
// the previous value and the frame update reads without consuming; there is
// no queueing.
package input

import "math"

// Vector is a normalized 2D input with both components in [-1, 1].
type Vector struct {
	X, Y float64
}

// Zero reports whether the vector carries no input.
func (v Vector) Zero() bool {
	return v.X == 0 && v.Y == 0
}

// Joystick tracks the active stick vector. Out-of-range input is clamped,
// never rejected.
type Joystick struct {
	vec Vector
}

// Move records a new stick vector, clamping each component to [-1, 1].
func (j *Joystick) Move(x, y float64) {
	j.vec = Vector{X: clamp(x, -1, 1), Y: clamp(y, -1, 1)}
}

// MovePolar records a stick position given as angle and magnitude, the form
// some virtual joysticks report.
func (j *Joystick) MovePolar(angle, magnitude float64) {
	m := clamp(magnitude, 0, 1)
	j.Move(m*math.Cos(angle), m*math.Sin(angle))
}

// End zeroes the vector when the stick is released.
func (j *Joystick) End() {
	j.vec = Vector{}
}

// Vector returns the current stick state.
func (j *Joystick) Vector() Vector {
	return j.vec
}

// Pointer accumulates mouse/touch gestures for one frame: drag rotates,
// scroll zooms, pan translates. The frame update takes and clears them.
type Pointer struct {
	drag   Vector
	scroll float64
	pan    Vector
}

func (p *Pointer) Drag(dx, dy float64)  { p.drag.X += dx; p.drag.Y += dy }
func (p *Pointer) Scroll(delta float64) { p.scroll += delta }
func (p *Pointer) Pan(dx, dy float64)   { p.pan.X += dx; p.pan.Y += dy }

// Take returns the gestures recorded since the last call and resets them.
func (p *Pointer) Take() (drag Vector, scroll float64, pan Vector) {
	drag, scroll, pan = p.drag, p.scroll, p.pan
	p.drag, p.scroll, p.pan = Vector{}, 0, Vector{}
	return drag, scroll, pan
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
