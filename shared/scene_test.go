package shared

import (
	"errors"
	"testing"
	"testing/fstest"
)

func triangle() Scene {
	return Scene{
		Name:      "tri",
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Colors:    []float32{1, 0, 0, 1, 0, 1, 0, 1, 0, 0, 1, 1},
	}
}

func TestSceneValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Scene)
		want   error
	}{
		{"ok", func(*Scene) {}, nil},
		{"indexed", func(s *Scene) { s.Indices = []uint32{0, 1, 2, 2, 1, 0} }, nil},
		{"empty", func(s *Scene) { s.Positions = nil }, ErrEmptyScene},
		{"partial position", func(s *Scene) { s.Positions = s.Positions[:8] }, ErrRaggedTable},
		{"partial color", func(s *Scene) { s.Colors = s.Colors[:11] }, ErrRaggedTable},
		{"missing color", func(s *Scene) { s.Colors = s.Colors[:8] }, ErrRaggedTable},
		{"partial triangle", func(s *Scene) { s.Indices = []uint32{0, 1} }, ErrRaggedTable},
		{"index range", func(s *Scene) { s.Indices = []uint32{0, 1, 3} }, ErrIndexRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := triangle()
			tt.modify(&s)
			err := s.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSceneCounts(t *testing.T) {
	s := triangle()
	if s.VertexCount() != 3 || s.IndexCount() != 0 || s.Indexed() {
		t.Errorf("array scene: vertices %d indices %d indexed %v", s.VertexCount(), s.IndexCount(), s.Indexed())
	}
	s.Indices = []uint32{0, 1, 2}
	if s.IndexCount() != 3 || !s.Indexed() {
		t.Errorf("indexed scene: indices %d indexed %v", s.IndexCount(), s.Indexed())
	}
}

func TestReadShaderSources(t *testing.T) {
	fsys := fstest.MapFS{
		"VertexShader.glsl":   {Data: []byte("vertex")},
		"FragmentShader.glsl": {Data: []byte("fragment")},
	}
	src, err := ReadShaderSources(fsys, "VertexShader.glsl", "FragmentShader.glsl")
	if err != nil {
		t.Fatal(err)
	}
	if src.Vertex != "vertex" || src.Fragment != "fragment" {
		t.Errorf("sources = %+v", src)
	}

	if _, err := ReadShaderSources(fsys, "VertexShader.glsl", "missing.glsl"); err == nil {
		t.Error("expected error for missing fragment shader")
	}
	if _, err := ReadShaderSources(fsys, "missing.glsl", "FragmentShader.glsl"); err == nil {
		t.Error("expected error for missing vertex shader")
	}
}
