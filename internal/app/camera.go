package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/orbit"
)

// Camera adapts a raylib camera to the orbit controls
type Camera struct {
	camera   rl.Camera3D
	view     orbit.View
	distance float64
}

// NewCamera creates a perspective camera looking down -Z
func NewCamera() *Camera {
	return &Camera{
		camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 0, Z: 1},
			Target:     rl.Vector3{},
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       float32(orbit.FieldOfView),
			Projection: rl.CameraPerspective,
		},
	}
}

// SetClipPlanes stores the clip planes applied when 3D mode begins
func (c *Camera) SetClipPlanes(near, far float64) {
	c.view.Near = near
	c.view.Far = far
}

// SetDistance stores the distance from the pivot
func (c *Camera) SetDistance(distance float64) {
	c.distance = distance
}

// update places the camera at the view published by the controls
func (c *Camera) update(view orbit.View) {
	c.view = view
	c.camera.Position = toVector3(view.Eye)
	c.camera.Target = toVector3(view.Target)
	c.camera.Up = toVector3(view.Up)
}

// begin enters 3D mode with a projection using the object's clip planes
func (c *Camera) begin() {
	rl.BeginMode3D(c.camera)

	aspect := float64(rl.GetScreenWidth()) / float64(max(rl.GetScreenHeight(), 1))
	rl.SetMatrixProjection(toMatrix(c.view.Projection(aspect)))
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v[0]), Y: float32(v[1]), Z: float32(v[2])}
}

// toMatrix converts a column-major mgl64 matrix to raylib's row-named fields
func toMatrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M4: float32(m[4]), M8: float32(m[8]), M12: float32(m[12]),
		M1: float32(m[1]), M5: float32(m[5]), M9: float32(m[9]), M13: float32(m[13]),
		M2: float32(m[2]), M6: float32(m[6]), M10: float32(m[10]), M14: float32(m[14]),
		M3: float32(m[3]), M7: float32(m[7]), M11: float32(m[11]), M15: float32(m[15]),
	}
}
