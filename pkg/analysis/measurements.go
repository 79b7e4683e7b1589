package analysis

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
)

// Report summarises an object and the camera fit derived from it
type Report struct {
	Name          string
	Kind          scene.Kind
	BoundingBox   geometry.Box
	Dimensions    mgl64.Vec3
	Metrics       orbit.BoundingMetrics
	Near          float64
	Far           float64
	TriangleCount int
	PointCount    int
	SurfaceArea   float64
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Analyze inspects a loaded object
func Analyze(obj *scene.Object) *Report {
	box := obj.BoundingBox()
	report := &Report{
		Name:        obj.Name(),
		Kind:        obj.Kind,
		BoundingBox: box,
		Dimensions:  box.Size(),
		Metrics:     orbit.Analyze(box),
	}
	report.Near, report.Far = report.Metrics.ClipPlanes()

	switch obj.Kind {
	case scene.KindMesh:
		report.TriangleCount = obj.Mesh.TriangleCount()
		report.measureEdges(obj.Mesh.Triangles)
	case scene.KindPointCloud:
		report.PointCount = obj.Cloud.Len()
	}
	return report
}

// measureEdges collects area and edge length statistics
func (r *Report) measureEdges(triangles []geometry.Triangle) {
	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, t := range triangles {
		r.SurfaceArea += TriangleArea(t)

		v := t.Vertices()
		for i := 0; i < 3; i++ {
			length := v[i].Sub(v[(i+1)%3]).Len()
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
			r.EdgeCount++
		}
	}

	if r.EdgeCount > 0 {
		r.MinEdgeLength = minLength
		r.MaxEdgeLength = maxLength
		r.AvgEdgeLength = totalLength / float64(r.EdgeCount)
	}
}

// TriangleArea returns the area of a facet
func TriangleArea(t geometry.Triangle) float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Len() / 2
}

// FormatVector formats a 3D vector
func FormatVector(v mgl64.Vec3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v[0], v[1], v[2])
}
