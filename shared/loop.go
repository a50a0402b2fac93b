package shared

import (
	"log/slog"

	"github.com/EngoEngine/glm"
)

// Surface is the window side of the frame loop.
type Surface interface {
	ShouldClose() bool
	EscapePressed() bool
	Time() float64 // seconds since the window layer was initialized
	PollEvents()
}

// Renderer draws the scene with one draw call per frame.
type Renderer interface {
	Render(transform glm.Mat4) error
	Present()
	Release()
}

type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	}
	return "unknown"
}

type Loop struct {
	Surface    Surface
	Renderer   Renderer
	Orbit      Orbit
	Projection glm.Mat4
	Log        *slog.Logger

	state        State
	frames       int
	lastReport   float64
	reportFrames int
}

func NewLoop(surface Surface, renderer Renderer, orbit Orbit, lens Lens, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.Default()
	}
	return &Loop{
		Surface:    surface,
		Renderer:   renderer,
		Orbit:      orbit,
		Projection: lens.Projection(),
		Log:        log,
		lastReport: surface.Time(),
	}
}

func (l *Loop) State() State {
	return l.state
}

func (l *Loop) Frames() int {
	return l.frames
}

// Step draws one frame, polls events and evaluates the exit test.
// It does nothing once the loop is terminating.
func (l *Loop) Step() (State, error) {
	if l.state == Terminating {
		return l.state, nil
	}

	now := l.Surface.Time()
	transform := l.Orbit.Transform(now, &l.Projection)
	if err := l.Renderer.Render(transform); err != nil {
		l.state = Terminating
		return l.state, err
	}
	l.Renderer.Present()
	l.Surface.PollEvents()
	l.frames++
	l.report(now)

	if l.Surface.EscapePressed() || l.Surface.ShouldClose() {
		l.state = Terminating
	}
	return l.state, nil
}

func (l *Loop) Run() error {
	for l.state == Running {
		if _, err := l.Step(); err != nil {
			return err
		}
	}
	l.Log.Debug("frame loop finished", "frames", l.frames)
	return nil
}

func (l *Loop) report(now float64) {
	elapsed := now - l.lastReport
	if elapsed < 1 {
		return
	}
	fps := float64(l.frames-l.reportFrames) / elapsed
	l.Log.Debug("frame rate", "fps", fps, "frames", l.frames)
	l.lastReport = now
	l.reportFrames = l.frames
}
