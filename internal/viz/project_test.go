package viz

import (
	"math"
	"testing"
)

func TestProjector_OriginCentered(t *testing.T) {
	p := NewProjector()
	p.Pitch = 0

	x, y, _, ok := p.Project(Vec3{}, 160, 96)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 80 || y != 48 {
		t.Errorf("origin projected to (%d,%d), want (80,48)", x, y)
	}
}

func TestProjector_BehindCameraCulled(t *testing.T) {
	p := NewProjector()
	p.Pitch = 0
	p.Yaw = 0

	if _, _, _, ok := p.Project(Vec3{Z: p.Distance * 2}, 160, 96); ok {
		t.Error("point beyond the projection plane should be culled")
	}
}

func TestProjector_ZoomClamped(t *testing.T) {
	p := NewProjector()
	for i := 0; i < 100; i++ {
		p.ZoomIn()
	}
	if p.Zoom > 10 {
		t.Errorf("zoom exceeded max: %f", p.Zoom)
	}
	for i := 0; i < 100; i++ {
		p.ZoomOut()
	}
	if p.Zoom < 0.1 {
		t.Errorf("zoom under min: %f", p.Zoom)
	}
}

func TestProjector_RotationPreservesLength(t *testing.T) {
	p := NewProjector()
	p.Pitch = 0.7
	p.Yaw = 1.3

	v := Vec3{X: 3, Y: 4, Z: 12}
	if got := p.rotate(v).Length(); math.Abs(got-v.Length()) > 1e-9 {
		t.Errorf("rotation changed length: %f != %f", got, v.Length())
	}
}

func TestSortDots(t *testing.T) {
	dots := []Dot{{Depth: 5}, {Depth: -3}, {Depth: 1}}
	SortDots(dots)
	if dots[0].Depth != -3 || dots[2].Depth != 5 {
		t.Errorf("dots not depth ordered: %+v", dots)
	}
}

func TestDrawDot(t *testing.T) {
	c := NewCanvas(10, 5)
	DrawDot(c, Dot{X: 10, Y: 10, Size: 2})

	set := 0
	for _, row := range c.grid {
		for _, cell := range row {
			if cell != 0x2800 {
				set++
			}
		}
	}
	if set == 0 {
		t.Error("dot drew nothing")
	}
}
