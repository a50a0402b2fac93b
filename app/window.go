package app

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hw01/config"
)

var (
	errInit   = errors.New("glfw is not initialized")
	errWindow = errors.New("glfw window not created")
)

// bootstrap initializes glfw and opens the window. glfw only logs some
// platform errors from Init (a missing display among them) and then panics
// on the next call, so those panics are turned back into errors here.
func bootstrap(cfg config.Config) (window *glfw.Window, closeWindow func(), err error) {
	initialized := false
	defer func() {
		if r := recover(); r != nil {
			err = bootstrapPanic(r, initialized)
			if initialized {
				glfw.Terminate()
			}
			window, closeWindow = nil, nil
		}
	}()

	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errInit, err)
	}
	initialized = true

	window, err = openWindow(cfg)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("%w: %v", errWindow, err)
	}
	return window, func() {
		window.Destroy()
		glfw.Terminate()
	}, nil
}

// bootstrapPanic maps a panic raised while opening the window to errInit
// when glfw never came up and to errWindow otherwise.
func bootstrapPanic(r any, initialized bool) error {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	var glfwErr *glfw.Error
	if !initialized || (errors.As(err, &glfwErr) && glfwErr.Code == glfw.NotInitialized) {
		return fmt.Errorf("%w: %v", errInit, err)
	}
	return fmt.Errorf("%w: %v", errWindow, err)
}

func openWindow(cfg config.Config) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	switch cfg.Backend {
	case config.BackendWebGPU:
		glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	default:
		glfw.WindowHint(glfw.Samples, cfg.Window.Samples)
		glfw.WindowHint(glfw.ContextVersionMajor, 3)
		glfw.WindowHint(glfw.ContextVersionMinor, 3)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	if cfg.Backend != config.BackendWebGPU {
		window.MakeContextCurrent()
	}

	// so an escape press between polls is still seen by the exit test
	window.SetInputMode(glfw.StickyKeysMode, glfw.True)
	return window, nil
}

type glfwSurface struct {
	window *glfw.Window
}

func (s glfwSurface) ShouldClose() bool {
	return s.window.ShouldClose()
}

func (s glfwSurface) EscapePressed() bool {
	return s.window.GetKey(glfw.KeyEscape) == glfw.Press
}

func (glfwSurface) Time() float64 {
	return glfw.GetTime()
}

func (glfwSurface) PollEvents() {
	glfw.PollEvents()
}
