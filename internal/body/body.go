// Package body implements the orbital model: a strict tree of celestial
// bodies whose positions are composed from parent-relative transforms.
package body

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orrery/internal/viz"
)

// ReferenceRate is the frame rate the catalog speeds are tuned for. Stepping
// with real elapsed seconds multiplies by this rate, so motion looks the same
// at any display refresh rate.
const ReferenceRate = 60.0

// Body is one celestial body. Distance and OrbitSpeed are relative to the
// parent; the root (the sun) keeps both at zero. Angle and Spin accumulate
// without wraparound: only their sine/cosine are ever consumed.
type Body struct {
	Name       string
	Distance   float64
	Radius     float64
	Color      colorful.Color
	OrbitSpeed float64
	SpinSpeed  float64
	Angle      float64
	Spin       float64
	Satellites []Body
}

// local returns the body's position in its parent's frame. Orbits are planar
// on y=0 by design; this is a display model, not celestial mechanics.
func (b *Body) local() viz.Vec3 {
	return viz.Vec3{
		X: b.Distance * math.Cos(b.Angle),
		Z: b.Distance * math.Sin(b.Angle),
	}
}

// System owns the body tree and the animation clock.
type System struct {
	Root       Body
	SpeedScale float64
	Elapsed    float64
}

func NewSystem(root Body) *System {
	return &System{Root: root, SpeedScale: 1.0}
}

// Step advances every orbit and spin angle by dt seconds. A zero dt is a
// no-op and negative speeds simply run their orbits backwards.
func (s *System) Step(dt float64) {
	s.Elapsed += dt
	stepBody(&s.Root, dt*ReferenceRate*s.SpeedScale)
}

func stepBody(b *Body, scaled float64) {
	b.Angle += b.OrbitSpeed * scaled
	b.Spin += b.SpinSpeed * scaled
	for i := range b.Satellites {
		stepBody(&b.Satellites[i], scaled)
	}
}

// Count returns the number of bodies in the tree.
func (s *System) Count() int {
	return countBody(&s.Root)
}

func countBody(b *Body) int {
	n := 1
	for i := range b.Satellites {
		n += countBody(&b.Satellites[i])
	}
	return n
}

// State is a body's resolved world placement for one frame. Center is the
// parent's world position, which together with Distance describes the orbit
// ring the body travels on.
type State struct {
	Name     string
	World    viz.Vec3
	Center   viz.Vec3
	Distance float64
	Radius   float64
	Color    colorful.Color
	Spin     float64
	Depth    int
}

// Snapshot resolves world positions root-to-leaf and returns them as a flat
// list, sun first. Renderers consume the snapshot without touching the tree.
func (s *System) Snapshot() []State {
	out := make([]State, 0, s.Count())
	collect(&s.Root, viz.Vec3{}, 0, &out)
	return out
}

func collect(b *Body, origin viz.Vec3, depth int, out *[]State) {
	world := origin.Add(b.local())
	*out = append(*out, State{
		Name:     b.Name,
		World:    world,
		Center:   origin,
		Distance: b.Distance,
		Radius:   b.Radius,
		Color:    b.Color,
		Spin:     b.Spin,
		Depth:    depth,
	})
	for i := range b.Satellites {
		collect(&b.Satellites[i], world, depth+1, out)
	}
}
