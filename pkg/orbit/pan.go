package orbit

import "github.com/go-gl/mathgl/mgl64"

// panSpeed is the world distance, in average extents, of a drag across the viewport at the recommended distance
const panSpeed = 2.0

type panState struct {
	offset mgl64.Vec3
}

// translate moves the pivot along its local X/Y axes by a normalised screen delta
func (p *panState) translate(orientation mgl64.Quat, delta mgl64.Vec2, zoom float64, m BoundingMetrics, falloff bool) {
	if m.RecommendedDistance <= 0 {
		return
	}
	k := m.AvgExtent * panSpeed * (zoom / m.RecommendedDistance)
	if falloff {
		k *= PanFalloff(p.offset.Len(), m.MaxExtent)
	}
	// screen y grows downwards
	local := mgl64.Vec3{-delta.X() * k, delta.Y() * k, 0}
	p.offset = p.offset.Add(orientation.Rotate(local))
}

func (p *panState) reset() {
	p.offset = mgl64.Vec3{}
}
