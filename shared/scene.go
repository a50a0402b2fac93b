package shared

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyScene  = errors.New("scene has no vertices")
	ErrRaggedTable = errors.New("scene table has a partial entry")
	ErrIndexRange  = errors.New("scene index out of range")
)

// Scene is static geometry uploaded once and drawn every frame.
// Positions hold xyz triples and Colors hold rgba quadruples, one per vertex.
// Indices, when present, select vertex triples for an indexed draw.
type Scene struct {
	Name       string
	Positions  []float32
	Colors     []float32
	Indices    []uint32
	ClearColor [4]float32
	DepthTest  bool
	Blend      bool
}

func (s *Scene) VertexCount() int {
	return len(s.Positions) / 3
}

func (s *Scene) IndexCount() int {
	return len(s.Indices)
}

func (s *Scene) Indexed() bool {
	return len(s.Indices) > 0
}

func (s *Scene) Validate() error {
	if len(s.Positions) == 0 {
		return fmt.Errorf("%s: %w", s.Name, ErrEmptyScene)
	}
	if len(s.Positions)%3 != 0 {
		return fmt.Errorf("%s: %d position floats: %w", s.Name, len(s.Positions), ErrRaggedTable)
	}
	if len(s.Colors)%4 != 0 {
		return fmt.Errorf("%s: %d color floats: %w", s.Name, len(s.Colors), ErrRaggedTable)
	}
	if n := len(s.Colors) / 4; n != s.VertexCount() {
		return fmt.Errorf("%s: %d colors for %d vertices: %w", s.Name, n, s.VertexCount(), ErrRaggedTable)
	}
	if len(s.Indices)%3 != 0 {
		return fmt.Errorf("%s: %d indices: %w", s.Name, len(s.Indices), ErrRaggedTable)
	}
	for i, idx := range s.Indices {
		if int(idx) >= s.VertexCount() {
			return fmt.Errorf("%s: index %d at %d: %w", s.Name, idx, i, ErrIndexRange)
		}
	}
	return nil
}
