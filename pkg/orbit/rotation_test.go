package orbit

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDegreesHalfTurns(t *testing.T) {
	r := Degrees{Vertical: 370, Horizontal: 0}.HalfTurns()
	if !approx(r.Vertical, 10.0/180) {
		t.Errorf("370 degrees must normalise to 10, got %v half-turns", r.Vertical)
	}

	r = Degrees{Vertical: -540, Horizontal: 90}.HalfTurns()
	if !approx(r.Vertical, -1) || !approx(r.Horizontal, 0.5) {
		t.Errorf("Expected (-1, 0.5), got %v", r)
	}

	d := Rotation{Vertical: 0.25, Horizontal: -1}.Degrees()
	if !approx(d.Vertical, 45) || !approx(d.Horizontal, -180) {
		t.Errorf("Expected (45, -180), got %v", d)
	}
}

func TestHorizontalCorrection(t *testing.T) {
	tests := []struct {
		vertical float64
		expected float64
	}{
		{0, 1},
		{0.5, 1},
		{0.51, -1},
		{1, -1},
		{-1, -1},
		{1.5, 1},
		{2, 1},
		{3, -1},
	}

	for _, tt := range tests {
		if got := horizontalCorrection(tt.vertical); got != tt.expected {
			t.Errorf("horizontalCorrection(%v) failed: expected %v, got %v", tt.vertical, tt.expected, got)
		}
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{-0.5, 0.5}
	if v := r.Clamp(-1); v != -0.5 {
		t.Errorf("Expected -0.5, got %v", v)
	}
	if v := r.Clamp(0.2); v != 0.2 {
		t.Errorf("Expected 0.2, got %v", v)
	}
	if v := r.Clamp(3); v != 0.5 {
		t.Errorf("Expected 0.5, got %v", v)
	}
	if v := Unbounded.Clamp(1e9); v != 1e9 {
		t.Errorf("Unbounded must not clamp, got %v", v)
	}
}

func TestDegreeRange(t *testing.T) {
	if r := degreeRange([2]float64{90, -90}); r != (Range{0.5, -0.5}) {
		t.Errorf("Reversed range must keep its order, got %v", r)
	}
	if r := degreeRange([2]float64{math.Inf(-1), 180}); !math.IsInf(r[0], -1) || r[1] != 1 {
		t.Errorf("Expected [-Inf, 1], got %v", r)
	}
}

func TestReversedLimitsClampToMax(t *testing.T) {
	c, _ := newReadyControls(t, Settings{
		MaxRotation: RotationLimits{Vertical: &[2]float64{45, -45}},
	})

	for _, v := range []float64{0, 30, -90} {
		c.SetCurrentRotation(Degrees{Vertical: v})
		if got := c.CurrentRotation().Vertical; !approx(got, -45) {
			t.Errorf("SetCurrentRotation(%v) failed: expected -45, got %v", v, got)
		}
	}
}

func TestRotationQuat(t *testing.T) {
	forward := mgl64.Vec3{0, 0, 1}

	yaw := Rotation{Horizontal: 0.5}.Quat().Rotate(forward)
	if !approxVec(yaw, mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Quarter turn yaw failed: expected (1, 0, 0), got %v", yaw)
	}

	pitch := Rotation{Vertical: 0.5}.Quat().Rotate(forward)
	if !approxVec(pitch, mgl64.Vec3{0, -1, 0}) {
		t.Errorf("Quarter turn pitch failed: expected (0, -1, 0), got %v", pitch)
	}

	// pitch is applied first, then yaw
	both := Rotation{Vertical: 0.5, Horizontal: 0.5}.Quat().Rotate(mgl64.Vec3{0, 1, 0})
	if !approxVec(both, mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Combined rotation failed: expected (1, 0, 0), got %v", both)
	}
}

func TestRotationStateClampsOnSet(t *testing.T) {
	s := newRotationState()
	s.limits.Vertical = Range{-0.25, 0.25}
	s.set(Rotation{Vertical: 1, Horizontal: 7})

	if s.current.Vertical != 0.25 {
		t.Errorf("Vertical failed: expected 0.25, got %v", s.current.Vertical)
	}
	if s.current.Horizontal != 7 {
		t.Errorf("Horizontal failed: expected 7, got %v", s.current.Horizontal)
	}
}
