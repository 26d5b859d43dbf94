// Package camera maps input vectors to a view of the scene. Two controllers
// are provided: Orbit, a joystick-driven spherical orbit around a fixed
// target, and Free, a damped trackball for pointer input. Both keep the
// polar angle strictly inside (-pi/2, pi/2) so the look-at basis never
// degenerates at the poles.
package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/input"
	"github.com/san-kum/orrery/internal/viz"
)

// PolarEpsilon keeps the polar angle away from the exact vertical.
const PolarEpsilon = 0.01

// MaxPolar is the clamp bound for the polar angle.
const MaxPolar = math.Pi/2 - PolarEpsilon

// Viewport carries projection parameters shared by both controllers.
// Resizing updates the aspect ratio only; scene state is untouched.
type Viewport struct {
	Width, Height int
}

func (v *Viewport) SetViewport(w, h int) {
	v.Width, v.Height = w, h
}

func (v *Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

// Orbit is the spherical-orbit controller. Each frame the stick vector
// nudges azimuth and polar; the position is recomputed from the angles at a
// fixed radius and the camera always looks at Target, so no drift can
// accumulate. Pushing the stick right decreases azimuth, pushing it up
// raises the camera.
type Orbit struct {
	Viewport

	Target      viz.Vec3
	Azimuth     float64
	Polar       float64
	Radius      float64
	Sensitivity float64
}

func NewOrbit(radius float64) *Orbit {
	return &Orbit{Radius: radius, Sensitivity: 0.05}
}

// Update applies one frame of stick input. A zero vector leaves the camera
// exactly where it is.
func (c *Orbit) Update(in input.Vector) {
	c.Azimuth -= in.X * c.Sensitivity
	c.Polar += in.Y * c.Sensitivity
	c.Polar = clamp(c.Polar, -MaxPolar, MaxPolar)
}

// Position converts the spherical angles to a world position around Target.
func (c *Orbit) Position() viz.Vec3 {
	cp := math.Cos(c.Polar)
	return c.Target.Add(viz.Vec3{
		X: c.Radius * cp * math.Sin(c.Azimuth),
		Y: c.Radius * math.Sin(c.Polar),
		Z: c.Radius * cp * math.Cos(c.Azimuth),
	})
}

// LookAt returns the fixed look-at target.
func (c *Orbit) LookAt() viz.Vec3 {
	return c.Target
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
