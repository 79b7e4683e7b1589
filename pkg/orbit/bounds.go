package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
)

// FieldOfView is the vertical field of view in degrees the recommended distance is fitted to
const FieldOfView = 50.0

// fitMargin leaves a little room around the object at the recommended distance
const fitMargin = 1.125

// BoundingMetrics holds the scalar extents of the controlled object
type BoundingMetrics struct {
	MaxExtent           float64
	MinExtent           float64
	AvgExtent           float64
	RecommendedDistance float64
}

// Analyze reduces a bounding box to its metrics
func Analyze(box geometry.Box) BoundingMetrics {
	size := box.Size()
	return BoundingMetrics{
		MaxExtent:           math.Max(size[0], math.Max(size[1], size[2])),
		MinExtent:           math.Min(size[0], math.Min(size[1], size[2])),
		AvgExtent:           (size[0] + size[1] + size[2]) / 3,
		RecommendedDistance: RecommendedDistance(size),
	}
}

// RecommendedDistance returns the distance at which a box of the given size fills the field of view
func RecommendedDistance(size mgl64.Vec3) float64 {
	halfDiagonal := math.Hypot(math.Hypot(size[0], size[1]), size[2]) / 2
	return halfDiagonal / math.Tan(mgl64.DegToRad(FieldOfView/2)) * fitMargin
}

// ClipPlanes returns near and far planes that keep the object visible at any zoom
func (m BoundingMetrics) ClipPlanes() (near, far float64) {
	return m.MinExtent / 100, m.MaxExtent * 100
}
