package geometry

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTriangleCalculateNormal(t *testing.T) {
	tri := NewTriangle(
		mgl64.Vec3{},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{3, 0, 0},
		mgl64.Vec3{0, 4, 0},
	)

	normal := tri.CalculateNormal()
	expected := mgl64.Vec3{0, 0, 1}
	if normal.Sub(expected).Len() > 1e-10 {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleDegenerateNormal(t *testing.T) {
	tri := NewTriangle(
		mgl64.Vec3{},
		mgl64.Vec3{1, 1, 1},
		mgl64.Vec3{1, 1, 1},
		mgl64.Vec3{1, 1, 1},
	)

	normal := tri.CalculateNormal()
	if math.IsNaN(normal[0]) || normal.Len() != 0 {
		t.Errorf("Degenerate triangle must have zero normal, got %v", normal)
	}
}

func TestTriangleTranslate(t *testing.T) {
	tri := NewTriangle(
		mgl64.Vec3{0, 0, 1},
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{0, 1, 0},
	)

	moved := tri.Translate(mgl64.Vec3{1, 2, 3})
	if moved.V1 != (mgl64.Vec3{1, 2, 3}) || moved.V3 != (mgl64.Vec3{1, 3, 3}) {
		t.Errorf("Translate failed: got %v", moved)
	}
	if moved.Normal != tri.Normal {
		t.Errorf("Translate must keep the normal, got %v", moved.Normal)
	}
}
