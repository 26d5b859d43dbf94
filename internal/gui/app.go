// Package gui is the raylib front end: a resizable window running the orbit
// model and camera controllers at the display rate, with gamepad and mouse
// input.
package gui

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/input"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/viz"
)

// stickDeadzone filters gamepad axis noise around center.
const stickDeadzone = 0.15

const numStars = 1500

type App struct {
	cfg *config.Config
	log *logging.Logger

	sys     *body.System
	orbit   *camera.Orbit
	free    *camera.Free
	useFree bool

	stick   input.Joystick
	pointer input.Pointer

	stars  []viz.Vec3
	focus  int
	rings  bool
	paused bool
}

func NewApp(cfg *config.Config, logger *logging.Logger) (*App, error) {
	sys, err := cfg.Scene()
	if err != nil {
		return nil, err
	}

	orbit := camera.NewOrbit(cfg.Camera.Distance)
	orbit.Sensitivity = cfg.Camera.Sensitivity
	orbit.SetViewport(cfg.Window.Width, cfg.Window.Height)

	free := camera.NewFree(cfg.Camera.Distance)
	free.MinDistance = cfg.Camera.MinDistance
	free.MaxDistance = cfg.Camera.MaxDistance
	free.Damping = cfg.Camera.Damping
	free.SetViewport(cfg.Window.Width, cfg.Window.Height)

	app := &App{
		cfg:     cfg,
		log:     logger,
		sys:     sys,
		orbit:   orbit,
		free:    free,
		useFree: cfg.Camera.Mode == "free",
		rings:   true,
	}

	// Static starfield well outside the outermost orbit.
	rng := rand.New(rand.NewSource(42))
	app.stars = make([]viz.Vec3, numStars)
	for i := range app.stars {
		v := viz.Vec3{
			X: rng.Float64() - 0.5,
			Y: rng.Float64() - 0.5,
			Z: rng.Float64() - 0.5,
		}
		app.stars[i] = v.Normalize().Scale(600 + rng.Float64()*200)
	}

	return app, nil
}

// Run opens the window and blocks until the user closes it.
func Run(cfg *config.Config, logger *logging.Logger) error {
	app, err := NewApp(cfg, logger)
	if err != nil {
		return err
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "orrery")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FrameRate))
	rl.SetExitKey(rl.KeyQ)

	logger.Info("window open: %dx%d, camera mode %s", cfg.Window.Width, cfg.Window.Height, cfg.Camera.Mode)

	for !rl.WindowShouldClose() {
		app.Update(float64(rl.GetFrameTime()))
		app.Draw()
	}
	return nil
}

// Update polls input and advances the scene by dt seconds.
func (a *App) Update(dt float64) {
	if rl.IsWindowResized() {
		w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
		a.orbit.SetViewport(w, h)
		a.free.SetViewport(w, h)
		a.log.Debug("viewport resized to %dx%d (aspect %.3f)", w, h, a.orbit.Aspect())
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.useFree = !a.useFree
		a.log.Debug("camera mode: free=%v", a.useFree)
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.rings = !a.rings
	}
	if rl.IsKeyPressed(rl.KeyF) {
		a.focus = (a.focus + 1) % a.sys.Count()
	}

	a.pollStick()
	a.pollPointer()

	if !a.paused {
		a.sys.Step(dt)
	}

	if a.useFree {
		drag, scroll, pan := a.pointer.Take()
		a.free.Update(drag, scroll, pan)
	} else {
		a.orbit.Update(a.stick.Vector())
		// Wheel zoom moves the orbit radius within the configured bounds.
		if wheel := float64(rl.GetMouseWheelMove()); wheel != 0 {
			r := a.orbit.Radius - wheel*4
			a.orbit.Radius = math.Max(a.cfg.Camera.MinDistance, math.Min(a.cfg.Camera.MaxDistance, r))
		}
	}
}

// pollStick merges the gamepad left stick and the arrow keys into one
// virtual joystick; the last writer wins and release zeroes it.
func (a *App) pollStick() {
	if rl.IsGamepadAvailable(0) {
		x := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftX))
		y := float64(rl.GetGamepadAxisMovement(0, rl.GamepadAxisLeftY))
		if math.Abs(x) > stickDeadzone || math.Abs(y) > stickDeadzone {
			// Raylib reports stick up as negative Y; up should raise the camera.
			a.stick.Move(x, -y)
			return
		}
	}

	x, y := 0.0, 0.0
	if rl.IsKeyDown(rl.KeyRight) {
		x += 1
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		x -= 1
	}
	if rl.IsKeyDown(rl.KeyUp) {
		y += 1
	}
	if rl.IsKeyDown(rl.KeyDown) {
		y -= 1
	}
	if x != 0 || y != 0 {
		a.stick.Move(x, y)
		return
	}
	a.stick.End()
}

func (a *App) pollPointer() {
	if !a.useFree {
		return
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.pointer.Drag(float64(delta.X), float64(delta.Y))
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.pointer.Pan(float64(delta.X), float64(delta.Y))
	}
	if wheel := float64(rl.GetMouseWheelMove()); wheel != 0 {
		a.pointer.Scroll(wheel)
	}
}
