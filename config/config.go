// Package config holds the tunables of the demo programs. The zero-flag
// defaults give the stock demo behavior; a YAML file can
// override any of them.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	BackendOpenGL = "opengl"
	BackendWebGPU = "webgpu"
)

var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Samples int    `yaml:"samples"`
}

type Camera struct {
	Frequency float32 `yaml:"frequency"` // rotations per second
	Radius    float32 `yaml:"radius"`
	FOV       float32 `yaml:"fov"` // degrees
	Near      float32 `yaml:"near"`
	Far       float32 `yaml:"far"`
}

type Shaders struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
	// Dir switches shader loading from the embedded copies to a directory.
	Dir string `yaml:"dir"`
}

type Config struct {
	Backend  string  `yaml:"backend"`
	LogLevel string  `yaml:"log_level"`
	Window   Window  `yaml:"window"`
	Camera   Camera  `yaml:"camera"`
	Shaders  Shaders `yaml:"shaders"`
}

// Default returns the settings shared by both programs. Callers fill in
// the title and camera orbit.
func Default() Config {
	return Config{
		Backend:  BackendOpenGL,
		LogLevel: "info",
		Window: Window{
			Width:   1024,
			Height:  768,
			Samples: 4,
		},
		Camera: Camera{
			FOV:  45,
			Near: 0.1,
			Far:  100,
		},
		Shaders: Shaders{
			Vertex:   "VertexShader.glsl",
			Fragment: "FragmentShader.glsl",
		},
	}
}

func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

// Load overlays the YAML file at path onto base. An empty path returns base.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	return Parse(data, base)
}

func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendOpenGL, BackendWebGPU:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		return fmt.Errorf("%w: %d samples", ErrInvalid, c.Window.Samples)
	}
	if c.Camera.Radius <= 0 {
		return fmt.Errorf("%w: camera radius %v", ErrInvalid, c.Camera.Radius)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: field of view %v", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		return fmt.Errorf("%w: clip planes %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("%w: shader paths must be set", ErrInvalid)
	}
	return nil
}

// Ignored lists the settings the selected backend does not use. The wgpu
// renderer draws single-sampled with its embedded WGSL module.
func (c Config) Ignored() []string {
	if c.Backend != BackendWebGPU {
		return nil
	}
	var ignored []string
	if c.Window.Samples > 1 {
		ignored = append(ignored, "window.samples")
	}
	if c.Shaders.Dir != "" {
		ignored = append(ignored, "shaders.dir")
	}
	return ignored
}
