// Package app runs one demo program: it opens the window, builds the
// selected renderer for a scene and drives the frame loop until the user
// closes the window or presses escape.
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hw01/config"
	"hw01/render/opengl"
	"hw01/render/webgpu"
	"hw01/shared"
)

// ExitFailure is the process status for fatal bootstrap errors.
const ExitFailure = -1

type Program struct {
	Scene   *shared.Scene
	Config  config.Config
	Shaders fs.FS // embedded shader sources

	Stdout io.Writer
	Stderr io.Writer

	// open brings up glfw and the window; nil means bootstrap.
	open func(config.Config) (*glfw.Window, func(), error)
}

// Main parses flags from args and runs the program, returning its exit status.
func (p *Program) Main(args []string) int {
	if p.Stdout == nil {
		p.Stdout = os.Stdout
	}
	if p.Stderr == nil {
		p.Stderr = os.Stderr
	}

	cfg, err := p.parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(p.Stderr, err)
		return 2
	}
	return p.Run(cfg)
}

func (p *Program) parseFlags(args []string) (config.Config, error) {
	flags := flag.NewFlagSet(p.Scene.Name, flag.ContinueOnError)
	flags.SetOutput(p.Stderr)
	configPath := flags.String("config", "", "YAML file overriding the built-in settings")
	backend := flags.String("backend", "", "renderer backend: opengl or webgpu")
	shaders := flags.String("shaders", "", "read shader sources from this directory instead of the embedded copies")
	verbose := flags.Bool("v", false, "debug logging")
	if err := flags.Parse(args); err != nil {
		return p.Config, err
	}

	cfg, err := config.Load(*configPath, p.Config)
	if err != nil {
		return cfg, err
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *shaders != "" {
		cfg.Shaders.Dir = *shaders
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, cfg.Validate()
}

// Run opens the window and draws frames until the loop terminates.
func (p *Program) Run(cfg config.Config) int {
	log := shared.NewLogger(p.Stderr, cfg.LogLevel)

	open := p.open
	if open == nil {
		open = bootstrap
	}
	window, closeWindow, err := open(cfg)
	switch {
	case errors.Is(err, errInit):
		fmt.Fprintln(p.Stdout, "Failed to initialize GLFW")
		log.Debug("glfw init", "err", err)
		return ExitFailure
	case err != nil:
		fmt.Fprintln(p.Stdout, "Failed to open GLFW window")
		log.Debug("create window", "err", err)
		return ExitFailure
	}
	defer closeWindow()

	for _, setting := range cfg.Ignored() {
		log.Warn("setting has no effect on this backend", "backend", cfg.Backend, "setting", setting)
	}

	renderer, err := p.newRenderer(cfg, window)
	if err != nil {
		fmt.Fprintf(p.Stdout, "Failed to initialize %s: %v\n", apiName(cfg.Backend), err)
		return ExitFailure
	}
	defer renderer.Release()

	log.Info("running", "scene", p.Scene.Name, "backend", cfg.Backend,
		"vertices", p.Scene.VertexCount(), "indices", p.Scene.IndexCount())

	orbit := shared.Orbit{Frequency: cfg.Camera.Frequency, Radius: cfg.Camera.Radius}
	lens := shared.Lens{FOV: cfg.Camera.FOV, Aspect: cfg.Aspect(), Near: cfg.Camera.Near, Far: cfg.Camera.Far}
	loop := shared.NewLoop(glfwSurface{window}, renderer, orbit, lens, log)
	if err := loop.Run(); err != nil {
		log.Error("render", "err", err, "frames", loop.Frames())
		return ExitFailure
	}
	return 0
}

func apiName(backend string) string {
	if backend == config.BackendWebGPU {
		return "WebGPU"
	}
	return "OpenGL"
}

type resizer interface {
	Resize(width, height int)
}

func (p *Program) newRenderer(cfg config.Config, window *glfw.Window) (shared.Renderer, error) {
	var (
		renderer shared.Renderer
		err      error
	)
	switch cfg.Backend {
	case config.BackendWebGPU:
		renderer, err = webgpu.New(window, p.Scene)
	default:
		if err := opengl.Init(); err != nil {
			return nil, err
		}
		shaders := p.Shaders
		if cfg.Shaders.Dir != "" {
			shaders = os.DirFS(cfg.Shaders.Dir)
		}
		renderer, err = opengl.New(window, p.Scene, shaders, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	}
	if err != nil {
		return nil, err
	}
	if r, ok := renderer.(resizer); ok {
		window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
			r.Resize(width, height)
		})
	}
	return renderer, nil
}
