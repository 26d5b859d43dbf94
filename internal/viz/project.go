package viz

import (
	"math"
	"sort"
)

// Projector maps world coordinates to canvas sub-pixels. The view is a
// rotate-then-project scheme: the whole scene is rotated by Pitch/Yaw around
// the origin, scaled by Zoom, and projected with a fixed-distance perspective
// divide. The terminal view keeps the sun at the origin, so rotating the
// scene is equivalent to orbiting a camera around it.
type Projector struct {
	Pitch, Yaw float64
	Zoom       float64
	Distance   float64
	Near       float64
}

func NewProjector() *Projector {
	return &Projector{Pitch: 0.5, Zoom: 1.0, Distance: 120, Near: 0.1}
}

func (p *Projector) ZoomIn()  { p.Zoom = math.Min(10, p.Zoom*1.2) }
func (p *Projector) ZoomOut() { p.Zoom = math.Max(0.1, p.Zoom/1.2) }

// rotate applies pitch about X then yaw about Y.
func (p *Projector) rotate(v Vec3) Vec3 {
	cx, sx := math.Cos(p.Pitch), math.Sin(p.Pitch)
	v.Y, v.Z = v.Y*cx-v.Z*sx, v.Y*sx+v.Z*cx
	cy, sy := math.Cos(p.Yaw), math.Sin(p.Yaw)
	v.X, v.Z = v.X*cy+v.Z*sy, -v.X*sy+v.Z*cy
	return v
}

// Project converts a world position to sub-pixel coordinates on a canvas of
// pw x ph pixels. Returns x, y, depth, and whether the point is drawable.
func (p *Projector) Project(v Vec3, pw, ph int) (int, int, float64, bool) {
	rot := p.rotate(v).Scale(p.Zoom)
	if rot.Z >= p.Distance-p.Near {
		return 0, 0, 0, false
	}
	scale := p.Distance / (p.Distance - rot.Z)
	minDim := float64(ph)
	if float64(pw) < minDim {
		minDim = float64(pw)
	}
	px := minDim / 3.0
	sx := int(rot.X*scale*px/40) + pw/2
	// Terminal cells are taller than wide; the 0.5 factor keeps circles round.
	sy := int(-rot.Y*scale*px/40*0.5) + ph/2
	return sx, sy, rot.Z, sx >= 0 && sx < pw && sy >= 0 && sy < ph
}

// Dot is a projected point with depth, ready for painter's-algorithm output.
type Dot struct {
	X, Y  int
	Depth float64
	Size  int
}

// SortDots orders dots back-to-front so nearer bodies overdraw farther ones.
func SortDots(dots []Dot) {
	sort.Slice(dots, func(i, j int) bool { return dots[i].Depth < dots[j].Depth })
}

// DrawDot fills a rough disc of the given sub-pixel radius.
func DrawDot(c *Canvas, d Dot) {
	if d.Size <= 0 {
		c.Set(d.X, d.Y)
		return
	}
	for dy := -d.Size; dy <= d.Size; dy++ {
		for dx := -d.Size; dx <= d.Size; dx++ {
			if dx*dx+dy*dy <= d.Size*d.Size {
				c.Set(d.X+dx, d.Y+dy)
			}
		}
	}
}
