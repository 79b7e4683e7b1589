package viewer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/orbit"
)

// screenMargin bounds normalized coordinates so rasterizing stays cheap
const screenMargin = 4

// Camera is the software camera attached to the orbit pivot
type Camera struct {
	Near     float64
	Far      float64
	Distance float64
}

// SetClipPlanes stores the clip planes chosen for the object
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
}

// SetDistance stores the distance from the pivot
func (c *Camera) SetDistance(distance float64) {
	c.Distance = distance
}

// Projector maps world points to pixel coordinates for one frame
type Projector struct {
	transform mgl64.Mat4
	eye       mgl64.Vec3
	width     float64
	height    float64
}

// NewProjector builds the view-projection transform for a viewport
func NewProjector(view orbit.View, width, height float64) Projector {
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	return Projector{
		transform: view.Projection(aspect).Mul4(view.Matrix()),
		eye:       view.Eye,
		width:     width,
		height:    height,
	}
}

// Project returns the pixel position and depth in [0,1] of a point.
// ok is false for points behind the camera, outside the clip planes or far
// off screen.
func (p Projector) Project(point mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.transform.Mul4x1(point.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}

	ndc := clip.Vec3().Mul(1 / clip[3])
	x = (ndc[0] + 1) / 2 * p.width
	y = (1 - ndc[1]) / 2 * p.height
	depth = (ndc[2] + 1) / 2
	ok = ndc[2] >= -1 && ndc[2] <= 1 &&
		math.Abs(ndc[0]) <= screenMargin && math.Abs(ndc[1]) <= screenMargin
	return x, y, depth, ok
}

// Eye returns the camera position the projector was built from
func (p Projector) Eye() mgl64.Vec3 {
	return p.eye
}
