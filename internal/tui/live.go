// Package tui renders the orrery live in the terminal on a Braille canvas.
//
// Key bindings:
//
//	h/l, left/right - orbit the view (azimuth)
//	j/k, down/up    - tilt the view (polar)
//	+/-             - zoom
//	f               - cycle focused body
//	o               - toggle orbit rings
//	space           - pause
//	r               - reset the clock and view
//	q               - quit
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/camera"
	"github.com/san-kum/orrery/internal/input"
	"github.com/san-kum/orrery/internal/loop"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	hudLines      = 4
	// ringSamples points per orbit ring; rings are drawn by projecting the
	// world-space circle, so they stay correct under any view rotation.
	ringSamples = 96
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model drives the simulation and the terminal view.
type Model struct {
	sys    *body.System
	cam    *camera.Orbit
	proj   *viz.Projector
	canvas *viz.Canvas
	stick  input.Joystick

	width, height int
	running       bool
	showRings     bool
	focus         int
	clock         loop.Clock
	rate          int
}

func NewModel(sys *body.System, cam *camera.Orbit, rate int) Model {
	if rate <= 0 {
		rate = 60
	}
	return Model{
		sys:       sys,
		cam:       cam,
		proj:      viz.NewProjector(),
		canvas:    viz.NewCanvas(defaultWidth, defaultHeight-hudLines),
		width:     defaultWidth,
		height:    defaultHeight,
		running:   true,
		showRings: true,
		rate:      rate,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - hudLines
		if h < 4 {
			h = 4
		}
		m.canvas = viz.NewCanvas(msg.Width, h)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sys.Elapsed = 0
			m.cam.Azimuth, m.cam.Polar = 0, 0
			m.proj = viz.NewProjector()
		case "o":
			m.showRings = !m.showRings
		case "f":
			m.focus = (m.focus + 1) % m.sys.Count()
		case "h", "left":
			m.stick.Move(-1, 0)
		case "l", "right":
			m.stick.Move(1, 0)
		case "k", "up":
			m.stick.Move(0, 1)
		case "j", "down":
			m.stick.Move(0, -1)
		case "+", "=":
			m.proj.ZoomIn()
		case "-", "_":
			m.proj.ZoomOut()
		}

	case TickMsg:
		dt := m.clock.Delta(time.Time(msg))

		if m.running {
			m.sys.Step(dt)
		}

		// Keyboard acts as a one-frame joystick nudge.
		m.cam.Update(m.stick.Vector())
		m.stick.End()
		m.proj.Yaw = m.cam.Azimuth
		m.proj.Pitch = m.cam.Polar

		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.draw()

	var b strings.Builder
	b.WriteString(headerStyle.Render("ORRERY"))
	if !m.running {
		b.WriteString("  " + focusStyle.Render("PAUSED"))
	}
	b.WriteString("\n")
	b.WriteString(canvasStyle.Render(m.canvas.String()))
	b.WriteString("\n")
	b.WriteString(m.hud())
	return b.String()
}

func (m Model) draw() {
	m.canvas.Clear()
	pw, ph := m.canvas.PixelSize()
	snap := m.sys.Snapshot()

	if m.showRings {
		for _, s := range snap {
			m.drawRing(s, pw, ph)
		}
	}

	dots := make([]viz.Dot, 0, len(snap))
	var labelX, labelY int
	var labelName string
	for i, s := range snap {
		x, y, depth, ok := m.proj.Project(s.World, pw, ph)
		if !ok {
			continue
		}
		size := int(s.Radius * m.proj.Zoom / 2)
		dots = append(dots, viz.Dot{X: x, Y: y, Depth: depth, Size: size})
		if i == m.focus {
			labelX, labelY, labelName = x, y, s.Name
		}
	}
	viz.SortDots(dots)
	for _, d := range dots {
		viz.DrawDot(m.canvas, d)
	}

	// Focused label in cell space, next to the marker.
	if labelName != "" {
		m.canvas.Label(labelX/2+2, labelY/4, "◄ "+labelName)
	}
}

func (m Model) drawRing(s body.State, pw, ph int) {
	if s.Distance == 0 {
		return
	}
	for i := 0; i < ringSamples; i++ {
		theta := 2 * math.Pi * float64(i) / ringSamples
		p := s.Center.Add(viz.Vec3{
			X: s.Distance * math.Cos(theta),
			Z: s.Distance * math.Sin(theta),
		})
		if x, y, _, ok := m.proj.Project(p, pw, ph); ok {
			m.canvas.Set(x, y)
		}
	}
}

func (m Model) hud() string {
	snap := m.sys.Snapshot()
	focus := snap[m.focus%len(snap)]

	var b strings.Builder
	b.WriteString(focusStyle.Render(fmt.Sprintf("◆ %s", focus.Name)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("orbit r: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", focus.Distance)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("from sun: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f", focus.World.Length())))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("t: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1fs", m.sys.Elapsed)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("zoom: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2fx", m.proj.Zoom)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("h/j/k/l orbit  +/- zoom  f focus  o rings  space pause  r reset  q quit"))
	return b.String()
}
