package orbit

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Pivot is the transform the camera orbits around
type Pivot struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// View is the camera placement published by the last Advance
type View struct {
	Eye      mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Distance float64
	Near     float64
	Far      float64
}

// Advance publishes rotation, pan and zoom to the pivot and the camera.
// Hosts call it once per frame; it does nothing before Init.
func (c *Controls) Advance() {
	if !c.ready {
		return
	}
	c.pivot.Orientation = c.rotation.current.Quat()
	c.pivot.Position = c.pan.offset
	c.distance = c.zoom.current
	c.camera.SetDistance(c.distance)
}

// Pivot returns the pivot transform as of the last Advance
func (c *Controls) Pivot() Pivot {
	return c.pivot
}

// View returns the eye, target and up vectors as of the last Advance
func (c *Controls) View() View {
	near, far := c.metrics.ClipPlanes()
	return View{
		Eye:      c.pivot.Position.Add(c.pivot.Orientation.Rotate(mgl64.Vec3{0, 0, c.distance})),
		Target:   c.pivot.Position,
		Up:       c.pivot.Orientation.Rotate(mgl64.Vec3{0, 1, 0}),
		Distance: c.distance,
		Near:     near,
		Far:      far,
	}
}

// Matrix returns the world to camera transform
func (v View) Matrix() mgl64.Mat4 {
	return mgl64.LookAtV(v.Eye, v.Target, v.Up)
}

// Projection returns a perspective projection matching the recommended distance fit
func (v View) Projection(aspect float64) mgl64.Mat4 {
	near, far := v.Near, v.Far
	// flat or empty objects have no usable extent
	if far <= 0 {
		near, far = 0.01, 1000
	}
	if near <= 0 {
		near = far * 1e-6
	}
	return mgl64.Perspective(mgl64.DegToRad(FieldOfView), aspect, near, far)
}
