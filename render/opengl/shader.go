package opengl

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"hw01/shared"
)

// LoadShaders reads a vertex and fragment shader from fsys and links them
// into a program.
func LoadShaders(fsys fs.FS, vertexPath, fragmentPath string) (uint32, error) {
	src, err := shared.ReadShaderSources(fsys, vertexPath, fragmentPath)
	if err != nil {
		return 0, err
	}

	vertexShader, err := compileShader(src.Vertex, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", vertexPath, err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(src.Fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", fragmentPath, err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %v", strings.TrimRight(log, "\x00"))
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
