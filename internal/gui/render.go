package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	colBg   = rl.NewColor(8, 10, 18, 255)
	colRing = rl.NewColor(90, 95, 110, 120)
	colStar = rl.NewColor(200, 205, 220, 160)
	colHUD  = rl.NewColor(180, 185, 200, 255)
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	cam := a.camera3D()
	rl.BeginMode3D(cam)

	for _, s := range a.stars {
		rl.DrawPoint3D(toVector3(s), colStar)
	}

	states := a.sys.Snapshot()
	for i, s := range states {
		if a.rings && s.Distance > 0 {
			rl.DrawCircle3D(toVector3(s.Center), float32(s.Distance), rl.NewVector3(1, 0, 0), 90, colRing)
		}
		col := toColor(s.Color)
		rl.DrawSphere(toVector3(s.World), float32(s.Radius), col)
		if i == a.focus {
			rl.DrawSphereWires(toVector3(s.World), float32(s.Radius)*1.3, 8, 8, rl.ColorAlpha(col, 0.6))
			// Equator marker makes the body's spin visible.
			marker := s.World.Add(viz.Vec3{
				X: math.Cos(s.Spin) * s.Radius * 1.1,
				Z: math.Sin(s.Spin) * s.Radius * 1.1,
			})
			rl.DrawSphere(toVector3(marker), float32(s.Radius)*0.15, rl.White)
		}
	}

	rl.EndMode3D()

	a.drawHUD(states)
	rl.EndDrawing()
}

// camera3D maps the active controller onto raylib's camera.
func (a *App) camera3D() rl.Camera3D {
	var pos, at viz.Vec3
	if a.useFree {
		pos, at = a.free.Position(), a.free.LookAt()
	} else {
		pos, at = a.orbit.Position(), a.orbit.LookAt()
	}
	return rl.NewCamera3D(toVector3(pos), toVector3(at), rl.NewVector3(0, 1, 0), 45.0, rl.CameraPerspective)
}

func (a *App) drawHUD(states []body.State) {
	mode := "orbit"
	if a.useFree {
		mode = "free"
	}
	status := fmt.Sprintf("%s camera  |  t=%.1fs  |  x%.1f", mode, a.sys.Elapsed, a.sys.SpeedScale)
	if a.paused {
		status += "  |  paused"
	}
	rl.DrawText(status, 12, 12, 20, colHUD)

	if a.focus >= 0 && a.focus < len(states) {
		rl.DrawText("focus: "+states[a.focus].Name, 12, 38, 20, colHUD)
	}

	help := "[drag/stick] rotate  [wheel] zoom  [c] camera  [f] focus  [o] rings  [space] pause  [q] quit"
	rl.DrawText(help, 12, int32(rl.GetScreenHeight())-28, 16, rl.ColorAlpha(colHUD, 0.6))
	rl.DrawFPS(int32(rl.GetScreenWidth())-96, 12)
}

func toVector3(v viz.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func toColor(c colorful.Color) rl.Color {
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}
