package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestBoxExtend(t *testing.T) {
	bbox := NewBox()

	bbox.Extend(mgl64.Vec3{1, 2, 3})
	bbox.Extend(mgl64.Vec3{4, 5, 6})
	bbox.Extend(mgl64.Vec3{-1, 0, 2})

	expectedMin := mgl64.Vec3{-1, 0, 2}
	expectedMax := mgl64.Vec3{4, 5, 6}

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoxEmpty(t *testing.T) {
	bbox := NewBox()
	if !bbox.IsEmpty() {
		t.Error("New box must be empty")
	}
	if size := bbox.Size(); size != (mgl64.Vec3{}) {
		t.Errorf("Size of empty box: expected zero, got %v", size)
	}
	if c := bbox.Center(); c != (mgl64.Vec3{}) {
		t.Errorf("Center of empty box: expected zero, got %v", c)
	}

	bbox.Extend(mgl64.Vec3{1, 1, 1})
	if bbox.IsEmpty() {
		t.Error("Box with a single point must not be empty")
	}
}

func TestBoxSizeAndCenter(t *testing.T) {
	bbox := BoxFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 20, 30})

	if size := bbox.Size(); size != (mgl64.Vec3{10, 20, 30}) {
		t.Errorf("Size failed: expected %v, got %v", mgl64.Vec3{10, 20, 30}, size)
	}
	if center := bbox.Center(); center != (mgl64.Vec3{5, 10, 15}) {
		t.Errorf("Center failed: expected %v, got %v", mgl64.Vec3{5, 10, 15}, center)
	}
}

func TestBoxTranslateAndUnion(t *testing.T) {
	a := BoxFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	b := a.Translate(mgl64.Vec3{2, 0, 0})

	if b.Min != (mgl64.Vec3{2, 0, 0}) || b.Max != (mgl64.Vec3{3, 1, 1}) {
		t.Errorf("Translate failed: got %v", b)
	}

	u := a.Union(b)
	if u.Min != (mgl64.Vec3{0, 0, 0}) || u.Max != (mgl64.Vec3{3, 1, 1}) {
		t.Errorf("Union failed: got %v", u)
	}
	if got := a.Union(NewBox()); got != a {
		t.Errorf("Union with empty box must be identity, got %v", got)
	}
}

func TestBoxCorners(t *testing.T) {
	bbox := BoxFromPoints(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 2, 3})
	corners := bbox.Corners()
	for _, e := range BoxEdges {
		d := corners[e[0]].Sub(corners[e[1]])
		nonZero := 0
		for i := 0; i < 3; i++ {
			if d[i] != 0 {
				nonZero++
			}
		}
		if nonZero != 1 {
			t.Errorf("Edge %v must be axis aligned, delta %v", e, d)
		}
	}
}
