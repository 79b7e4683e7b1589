package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
)

const eps = 1e-9

type fakeCamera struct {
	near, far     float64
	distance      float64
	clipCalls     int
	distanceCalls int
}

func (f *fakeCamera) SetClipPlanes(near, far float64) {
	f.near, f.far = near, far
	f.clipCalls++
}

func (f *fakeCamera) SetDistance(distance float64) {
	f.distance = distance
	f.distanceCalls++
}

type boxObject geometry.Box

func (b boxObject) BoundingBox() geometry.Box {
	return geometry.Box(b)
}

// centeredBox returns an object of the given size around the origin
func centeredBox(x, y, z float64) boxObject {
	half := mgl64.Vec3{x, y, z}.Mul(0.5)
	return boxObject(geometry.BoxFromPoints(half.Mul(-1), half))
}

// newReadyControls returns controls initialised on a 10x20x30 box in an 800x600 viewport
func newReadyControls(t *testing.T, settings Settings, opts ...Option) (*Controls, *fakeCamera) {
	t.Helper()
	cam := &fakeCamera{}
	c := New(settings, append([]Option{WithViewport(800, 600)}, opts...)...)
	c.Init(cam, centeredBox(10, 20, 30), nil)
	return c, cam
}

func approx(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

// approxVec compares by distance; mgl64's ApproxEqualThreshold is relative and
// rejects rounding noise next to an exact zero component
func approxVec(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() <= eps
}

type intentRecorder []Intent

func (r *intentRecorder) record(i Intent) {
	*r = append(*r, i)
}
