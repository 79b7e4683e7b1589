package geometry

import "github.com/go-gl/mathgl/mgl64"

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     mgl64.Vec3
	V1, V2, V3 mgl64.Vec3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 mgl64.Vec3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the facet normal from the winding order
func (t Triangle) CalculateNormal() mgl64.Vec3 {
	n := t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}

// Vertices returns the three corners in winding order
func (t Triangle) Vertices() [3]mgl64.Vec3 {
	return [3]mgl64.Vec3{t.V1, t.V2, t.V3}
}

// Translate returns the triangle moved by offset
func (t Triangle) Translate(offset mgl64.Vec3) Triangle {
	return Triangle{
		Normal: t.Normal,
		V1:     t.V1.Add(offset),
		V2:     t.V2.Add(offset),
		V3:     t.V3.Add(offset),
	}
}
