package shared

import (
	gomath "math"

	"github.com/EngoEngine/glm"
	"github.com/EngoEngine/math"
)

type Camera struct {
	Position glm.Vec3 // Camera position
	Target   glm.Vec3 // Point the camera looks at
	Up       glm.Vec3
}

func (c *Camera) View() glm.Mat4 {
	return glm.LookAtV(&c.Position, &c.Target, &c.Up)
}

// Orbit moves a camera around the origin in the XZ plane.
type Orbit struct {
	Frequency float32 // rotations per second
	Radius    float32
}

// Eye returns the camera position t seconds after start.
func (o Orbit) Eye(t float64) glm.Vec3 {
	phase := gomath.Mod(2*gomath.Pi*float64(o.Frequency)*t, 2*gomath.Pi)
	angle := float32(phase)
	return glm.Vec3{math.Sin(angle) * o.Radius, 0, math.Cos(angle) * o.Radius}
}

func (o Orbit) Camera(t float64) Camera {
	return Camera{
		Position: o.Eye(t),
		Target:   glm.Vec3{0, 0, 0},
		Up:       glm.Vec3{0, 1, 0},
	}
}

// Transform is the per-frame uniform for an identity model matrix.
func (o Orbit) Transform(t float64, projection *glm.Mat4) glm.Mat4 {
	camera := o.Camera(t)
	view := camera.View()
	model := glm.Ident4()
	return Transform(projection, &view, &model)
}

type Lens struct {
	FOV    float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32
}

func (l Lens) Projection() glm.Mat4 {
	return glm.Perspective(l.FOV*gomath.Pi/180, l.Aspect, l.Near, l.Far)
}

func Transform(projection, view, model *glm.Mat4) glm.Mat4 {
	pv := projection.Mul4(view)
	return pv.Mul4(model)
}
