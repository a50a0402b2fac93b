// Package opengl draws a shared.Scene through an OpenGL 3.3 core context.
package opengl

import (
	"fmt"
	"io/fs"
	"unsafe"

	"github.com/EngoEngine/glm"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"hw01/shared"
)

const (
	positionLocation = 0
	colorLocation    = 1
)

// Init loads the GL entry points for the current context.
func Init() error {
	return gl.Init()
}

type Renderer struct {
	window       *glfw.Window
	scene        *shared.Scene
	program      uint32
	transformLoc int32
	vertexArray  uint32
	vertexBuf    uint32
	colorBuf     uint32
	elementBuf   uint32
}

// New uploads the scene and links its shader program. The window's context
// must be current and Init must have succeeded.
func New(window *glfw.Window, scene *shared.Scene, shaders fs.FS, vertexPath, fragmentPath string) (r *Renderer, err error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	r = &Renderer{window: window, scene: scene}
	defer func() {
		if err != nil {
			r.Release()
			r = nil
		}
	}()

	c := scene.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	if scene.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
	}
	if scene.Blend {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	r.program, err = LoadShaders(shaders, vertexPath, fragmentPath)
	if err != nil {
		return r, err
	}
	r.transformLoc = gl.GetUniformLocation(r.program, gl.Str("transform\x00"))

	gl.GenVertexArrays(1, &r.vertexArray)
	gl.BindVertexArray(r.vertexArray)

	r.vertexBuf = newBuffer(gl.ARRAY_BUFFER, len(scene.Positions)*4, gl.Ptr(scene.Positions))
	gl.VertexAttribPointerWithOffset(positionLocation, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(positionLocation)

	r.colorBuf = newBuffer(gl.ARRAY_BUFFER, len(scene.Colors)*4, gl.Ptr(scene.Colors))
	gl.VertexAttribPointerWithOffset(colorLocation, 4, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(colorLocation)

	if scene.Indexed() {
		// the element binding is recorded in the vertex array
		r.elementBuf = newBuffer(gl.ELEMENT_ARRAY_BUFFER, len(scene.Indices)*4, gl.Ptr(scene.Indices))
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return r, fmt.Errorf("upload %s: gl error 0x%x", scene.Name, code)
	}
	return r, nil
}

func newBuffer(target uint32, size int, data unsafe.Pointer) uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(target, buf)
	gl.BufferData(target, size, data, gl.STATIC_DRAW)
	return buf
}

func (r *Renderer) Render(transform glm.Mat4) error {
	if r.scene.DepthTest {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	} else {
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.transformLoc, 1, false, &transform[0])
	gl.BindVertexArray(r.vertexArray)
	if r.scene.Indexed() {
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(r.scene.IndexCount()), gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, int32(r.scene.VertexCount()))
	}
	gl.BindVertexArray(0)
	return nil
}

func (r *Renderer) Present() {
	r.window.SwapBuffers()
}

// Resize keeps the viewport in step with the framebuffer.
func (r *Renderer) Resize(width, height int) {
	if width > 0 && height > 0 {
		gl.Viewport(0, 0, int32(width), int32(height))
	}
}

func (r *Renderer) Release() {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.vertexBuf != 0 {
		gl.DeleteBuffers(1, &r.vertexBuf)
		r.vertexBuf = 0
	}
	if r.colorBuf != 0 {
		gl.DeleteBuffers(1, &r.colorBuf)
		r.colorBuf = 0
	}
	if r.elementBuf != 0 {
		gl.DeleteBuffers(1, &r.elementBuf)
		r.elementBuf = 0
	}
	if r.vertexArray != 0 {
		gl.DeleteVertexArrays(1, &r.vertexArray)
		r.vertexArray = 0
	}
}
