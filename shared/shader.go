package shared

import (
	"fmt"
	"io/fs"
)

// ShaderSources holds the text of a vertex/fragment shader pair.
type ShaderSources struct {
	Vertex   string
	Fragment string
}

func ReadShaderSources(fsys fs.FS, vertexPath, fragmentPath string) (ShaderSources, error) {
	vertex, err := fs.ReadFile(fsys, vertexPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("read vertex shader: %w", err)
	}
	fragment, err := fs.ReadFile(fsys, fragmentPath)
	if err != nil {
		return ShaderSources{}, fmt.Errorf("read fragment shader: %w", err)
	}
	return ShaderSources{Vertex: string(vertex), Fragment: string(fragment)}, nil
}
