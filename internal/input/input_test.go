package input

import (
	"math"
	"testing"
)

func TestJoystick_MoveClamps(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"in range", 0.5, -0.25, 0.5, -0.25},
		{"over max", 3.0, 1.5, 1.0, 1.0},
		{"under min", -2.0, -9.0, -1.0, -1.0},
		{"zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j Joystick
			j.Move(tt.x, tt.y)
			if v := j.Vector(); v.X != tt.wantX || v.Y != tt.wantY {
				t.Errorf("Vector() = %+v, want {%v %v}", v, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestJoystick_End(t *testing.T) {
	var j Joystick
	j.Move(1, 1)
	j.End()
	if !j.Vector().Zero() {
		t.Errorf("End() should zero the vector, got %+v", j.Vector())
	}
}

func TestJoystick_MovePolar(t *testing.T) {
	var j Joystick
	j.MovePolar(math.Pi/2, 1)
	v := j.Vector()
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-1) > 1e-12 {
		t.Errorf("polar (pi/2, 1) = %+v, want {0 1}", v)
	}

	j.MovePolar(0, 5) // magnitude clamped to 1
	if v := j.Vector(); v.X != 1 || v.Y != 0 {
		t.Errorf("polar (0, 5) = %+v, want {1 0}", v)
	}
}

func TestPointer_TakeResets(t *testing.T) {
	var p Pointer
	p.Drag(2, 3)
	p.Drag(1, -1)
	p.Scroll(-0.5)
	p.Pan(4, 0)

	drag, scroll, pan := p.Take()
	if drag != (Vector{3, 2}) || scroll != -0.5 || pan != (Vector{4, 0}) {
		t.Errorf("Take() = %+v %v %+v", drag, scroll, pan)
	}

	drag, scroll, pan = p.Take()
	if !drag.Zero() || scroll != 0 || !pan.Zero() {
		t.Error("second Take() should be empty")
	}
}
