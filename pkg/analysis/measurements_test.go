package analysis

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/pointcloud"
	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/philipparndt/orbitview/pkg/stl"
)

func TestTriangleArea(t *testing.T) {
	tri := geometry.NewTriangle(mgl64.Vec3{},
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0, 0}, mgl64.Vec3{0, 3, 0})

	if got := TriangleArea(tri); math.Abs(got-6) > 1e-10 {
		t.Errorf("TriangleArea failed: expected 6, got %v", got)
	}
}

func TestAnalyzeMesh(t *testing.T) {
	model := stl.NewModel("right")
	model.AddTriangle(geometry.NewTriangle(mgl64.Vec3{},
		mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0, 0}, mgl64.Vec3{0, 3, 0}))

	report := Analyze(scene.FromMesh(model))

	if report.TriangleCount != 1 {
		t.Errorf("Analyze failed: expected 1 triangle, got %d", report.TriangleCount)
	}
	if report.EdgeCount != 3 {
		t.Errorf("Analyze failed: expected 3 edges, got %d", report.EdgeCount)
	}
	if math.Abs(report.MinEdgeLength-3) > 1e-10 || math.Abs(report.MaxEdgeLength-5) > 1e-10 {
		t.Errorf("Analyze failed: expected edges 3..5, got %v..%v", report.MinEdgeLength, report.MaxEdgeLength)
	}
	if math.Abs(report.AvgEdgeLength-4) > 1e-10 {
		t.Errorf("Analyze failed: expected average edge 4, got %v", report.AvgEdgeLength)
	}
	if report.Metrics.MaxExtent != 4 {
		t.Errorf("Analyze failed: expected max extent 4, got %v", report.Metrics.MaxExtent)
	}
	if report.Far != 400 {
		t.Errorf("Analyze failed: expected far plane 400, got %v", report.Far)
	}
}

func TestAnalyzeCloud(t *testing.T) {
	cloud := &pointcloud.Cloud{Points: []mgl64.Vec3{{0, 0, 0}, {1, 2, 3}}}

	report := Analyze(scene.FromCloud(cloud))

	if report.PointCount != 2 {
		t.Errorf("Analyze failed: expected 2 points, got %d", report.PointCount)
	}
	if report.TriangleCount != 0 || report.EdgeCount != 0 {
		t.Errorf("Analyze failed: expected no mesh statistics, got %d/%d", report.TriangleCount, report.EdgeCount)
	}
}

func TestFormatVector(t *testing.T) {
	if got := FormatVector(mgl64.Vec3{1, 2.5, -3}); got != "(1.000000, 2.500000, -3.000000)" {
		t.Errorf("FormatVector failed: got %s", got)
	}
}
