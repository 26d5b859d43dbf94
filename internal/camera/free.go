package camera

import (
	"math"

	"github.com/san-kum/orrery/internal/input"
	"github.com/san-kum/orrery/internal/viz"
)

// velocityFloor snaps a decayed angular velocity to zero so the camera
// actually stops instead of creeping forever.
const velocityFloor = 1e-5

// Free is the damped-orbit controller for pointer input: drag rotates with
// inertia, scroll zooms within distance bounds, and a secondary-button drag
// pans the target within PanBound of the origin.
type Free struct {
	Viewport

	Target   viz.Vec3
	Azimuth  float64
	Polar    float64
	Distance float64

	MinDistance float64
	MaxDistance float64
	PanBound    float64

	Damping     float64
	RotateSpeed float64
	ZoomSpeed   float64
	PanSpeed    float64

	velAzimuth float64
	velPolar   float64
}

func NewFree(distance float64) *Free {
	return &Free{
		Distance:    distance,
		MinDistance: 10,
		MaxDistance: 400,
		PanBound:    60,
		Damping:     0.1,
		RotateSpeed: 0.004,
		ZoomSpeed:   4,
		PanSpeed:    0.05,
	}
}

// Update applies one frame of pointer gestures. With all inputs zero the
// angular velocity decays toward zero and is floored, so a resting camera
// holds still.
func (c *Free) Update(drag input.Vector, scroll float64, pan input.Vector) {
	c.velAzimuth = c.velAzimuth*(1-c.Damping) + (-drag.X*c.RotateSpeed)*c.Damping
	c.velPolar = c.velPolar*(1-c.Damping) + (drag.Y*c.RotateSpeed)*c.Damping
	if math.Abs(c.velAzimuth) < velocityFloor {
		c.velAzimuth = 0
	}
	if math.Abs(c.velPolar) < velocityFloor {
		c.velPolar = 0
	}

	c.Azimuth += c.velAzimuth
	c.Polar = clamp(c.Polar+c.velPolar, -MaxPolar, MaxPolar)

	if scroll != 0 {
		c.Distance = clamp(c.Distance-scroll*c.ZoomSpeed, c.MinDistance, c.MaxDistance)
	}

	if !pan.Zero() {
		right, up := c.basis()
		c.Target = c.Target.
			Add(right.Scale(-pan.X * c.PanSpeed)).
			Add(up.Scale(pan.Y * c.PanSpeed))
		c.Target.X = clamp(c.Target.X, -c.PanBound, c.PanBound)
		c.Target.Y = clamp(c.Target.Y, -c.PanBound, c.PanBound)
		c.Target.Z = clamp(c.Target.Z, -c.PanBound, c.PanBound)
	}
}

// Position converts the spherical angles to a world position around Target.
func (c *Free) Position() viz.Vec3 {
	cp := math.Cos(c.Polar)
	return c.Target.Add(viz.Vec3{
		X: c.Distance * cp * math.Sin(c.Azimuth),
		Y: c.Distance * math.Sin(c.Polar),
		Z: c.Distance * cp * math.Cos(c.Azimuth),
	})
}

// LookAt returns the current pan target.
func (c *Free) LookAt() viz.Vec3 {
	return c.Target
}

// Moving reports whether residual inertia is still turning the camera.
func (c *Free) Moving() bool {
	return c.velAzimuth != 0 || c.velPolar != 0
}

// basis returns the camera's right and up vectors for pan translation.
func (c *Free) basis() (right, up viz.Vec3) {
	fwd := c.Target.Sub(c.Position()).Normalize()
	worldUp := viz.Vec3{Y: 1}
	right = fwd.Cross(worldUp).Normalize()
	up = right.Cross(fwd).Normalize()
	return right, up
}
