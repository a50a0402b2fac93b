package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func orbiting() Config {
	c := Default()
	c.Window.Title = "Test"
	c.Camera.Frequency = 0.1
	c.Camera.Radius = 5
	return c
}

func TestDefault(t *testing.T) {
	c := orbiting()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Window.Width != 1024 || c.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 1024x768", c.Window.Width, c.Window.Height)
	}
	if got, want := c.Aspect(), float32(1024)/768; got != want {
		t.Errorf("aspect = %v, want %v", got, want)
	}
	if c.Backend != BackendOpenGL {
		t.Errorf("backend = %q", c.Backend)
	}
	if c.Shaders.Vertex != "VertexShader.glsl" || c.Shaders.Fragment != "FragmentShader.glsl" {
		t.Errorf("shaders = %+v", c.Shaders)
	}
}

func TestParseOverlay(t *testing.T) {
	data := []byte(`
backend: webgpu
window:
  width: 800
camera:
  radius: 7.5
`)
	c, err := Parse(data, orbiting())
	if err != nil {
		t.Fatal(err)
	}
	if c.Backend != BackendWebGPU {
		t.Errorf("backend = %q", c.Backend)
	}
	if c.Window.Width != 800 || c.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 800x768", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Radius != 7.5 || c.Camera.Frequency != 0.1 {
		t.Errorf("camera = %+v", c.Camera)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"backend", "backend: vulkan"},
		{"width", "window: {width: 0}"},
		{"samples", "window: {samples: -1}"},
		{"radius", "camera: {radius: 0}"},
		{"fov", "camera: {fov: 180}"},
		{"clip", "camera: {near: 10, far: 1}"},
		{"shader", "shaders: {vertex: \"\"}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), orbiting())
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	base := orbiting()
	c, err := Parse([]byte("window: [1, 2"), base)
	if err == nil {
		t.Fatal("expected error")
	}
	if c != base {
		t.Errorf("config changed on parse error: %+v", c)
	}
}

func TestLoad(t *testing.T) {
	base := orbiting()
	c, err := Load("", base)
	if err != nil || c != base {
		t.Fatalf("Load(\"\") = %+v, %v", c, err)
	}

	path := filepath.Join(t.TempDir(), "demo.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path, base)
	if err != nil {
		t.Fatal(err)
	}
	if c.LogLevel != "debug" {
		t.Errorf("log level = %q", c.LogLevel)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), base); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestIgnored(t *testing.T) {
	c := orbiting()
	c.Shaders.Dir = "glsl"
	if got := c.Ignored(); len(got) != 0 {
		t.Errorf("opengl ignores %v", got)
	}

	c.Backend = BackendWebGPU
	got := c.Ignored()
	if len(got) != 2 || got[0] != "window.samples" || got[1] != "shaders.dir" {
		t.Errorf("webgpu ignores %v, want [window.samples shaders.dir]", got)
	}

	c.Window.Samples = 1
	c.Shaders.Dir = ""
	if got := c.Ignored(); len(got) != 0 {
		t.Errorf("webgpu with single sampling ignores %v", got)
	}
}
