package main

import (
	"io/fs"
	"testing"

	"hw01/shared"
)

func TestSceneTables(t *testing.T) {
	if err := scene.Validate(); err != nil {
		t.Fatal(err)
	}
	if scene.VertexCount() != 6 {
		t.Errorf("vertices = %d, want 6", scene.VertexCount())
	}
	if scene.Indexed() {
		t.Error("triangles scene should draw arrays")
	}
	if scene.DepthTest || !scene.Blend {
		t.Errorf("depth %v blend %v", scene.DepthTest, scene.Blend)
	}
	for i := 3; i < len(colorData); i += 4 {
		if colorData[i] != 0.8 {
			t.Errorf("vertex %d alpha = %v, want 0.8", i/4, colorData[i])
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.Frequency != 0.3 || cfg.Camera.Radius != 3 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 || cfg.Window.Title != "Triangles" {
		t.Errorf("window = %+v", cfg.Window)
	}

	orbit := shared.Orbit{Frequency: cfg.Camera.Frequency, Radius: cfg.Camera.Radius}
	eye := orbit.Eye(1 / 0.3)
	if eye[0] > 0.001 || eye[0] < -0.001 || eye[2] < 2.999 || eye[2] > 3.001 {
		t.Errorf("eye after one orbit = %v, want (0, 0, 3)", eye)
	}
}

func TestEmbeddedShaders(t *testing.T) {
	cfg := defaultConfig()
	for _, name := range []string{cfg.Shaders.Vertex, cfg.Shaders.Fragment} {
		if _, err := fs.Stat(shaders, name); err != nil {
			t.Errorf("%s not embedded: %v", name, err)
		}
	}
}

func TestSceneLiterals(t *testing.T) {
	positions := []float32{
		-0.8, -0.8, 0.0, -0.2, 0.2, 0.0, 0.8, 0.0, 0.0,
		0.0, 0.8, 0.0, 0.8, 0.8, 0.0, 0.4, -0.4, 0.0,
	}
	colors := []float32{
		1.0, 0.0, 0.0, 0.8, 1.0, 0.0, 0.0, 0.8, 1.0, 0.0, 0.0, 0.8,
		0.0, 1.0, 0.0, 0.8, 0.0, 1.0, 0.0, 0.8, 0.0, 1.0, 0.0, 0.8,
	}

	if len(scene.Positions) != len(positions) {
		t.Fatalf("positions len = %d, want %d", len(scene.Positions), len(positions))
	}
	for i, want := range positions {
		if scene.Positions[i] != want {
			t.Errorf("positions[%d] = %v, want %v", i, scene.Positions[i], want)
		}
	}
	if len(scene.Colors) != len(colors) {
		t.Fatalf("colors len = %d, want %d", len(scene.Colors), len(colors))
	}
	for i, want := range colors {
		if scene.Colors[i] != want {
			t.Errorf("colors[%d] = %v, want %v", i, scene.Colors[i], want)
		}
	}
	if len(scene.Indices) != 0 {
		t.Errorf("indices = %v, want none", scene.Indices)
	}
	if want := [4]float32{0.9, 1.0, 1.0, 0.0}; scene.ClearColor != want {
		t.Errorf("clear color = %v, want %v", scene.ClearColor, want)
	}
}
