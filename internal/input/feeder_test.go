package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/orbit"
)

type nopCamera struct{}

func (nopCamera) SetClipPlanes(near, far float64) {}
func (nopCamera) SetDistance(distance float64)    {}

type box struct{}

func (box) BoundingBox() geometry.Box {
	return geometry.BoxFromPoints(mgl64.Vec3{-5, -10, -15}, mgl64.Vec3{5, 10, 15})
}

func newFeeder(t *testing.T) (*Feeder, *orbit.Controls, *[]orbit.Intent) {
	t.Helper()
	var intents []orbit.Intent
	c := orbit.New(orbit.Settings{}, orbit.WithIntentHandler(func(i orbit.Intent) {
		intents = append(intents, i)
	}))
	c.Init(nopCamera{}, box{}, nil)
	return NewFeeder(c), c, &intents
}

func frame(x, y float64) Snapshot {
	return Snapshot{Width: 800, Height: 600, Inside: true, X: x, Y: y}
}

func TestFeedMouseRotation(t *testing.T) {
	f, c, _ := newFeeder(t)

	s := frame(100, 100)
	s.Pressed = []orbit.Button{orbit.ButtonPrimary}
	f.Feed(s)
	if c.Gesture() != orbit.GestureRotating {
		t.Fatalf("Feed failed: expected rotating, got %v", c.Gesture())
	}

	f.Feed(frame(100, 160))
	if c.CurrentRotation().Vertical == 0 {
		t.Error("Feed failed: expected a vertical rotation after dragging")
	}

	s = frame(100, 160)
	s.Released = []orbit.Button{orbit.ButtonPrimary}
	f.Feed(s)
	if c.Gesture() != orbit.GestureIdle {
		t.Errorf("Feed failed: expected idle after release, got %v", c.Gesture())
	}
}

func TestFeedPressOutsideIgnored(t *testing.T) {
	f, c, _ := newFeeder(t)

	s := frame(100, 100)
	s.Inside = false
	s.Pressed = []orbit.Button{orbit.ButtonSecondary}
	s.Wheel = 1
	before := c.CurrentZoom()
	f.Feed(s)

	if c.Gesture() != orbit.GestureIdle {
		t.Errorf("Feed failed: expected no gesture outside the view, got %v", c.Gesture())
	}
	if c.CurrentZoom() != before {
		t.Errorf("Feed failed: expected zoom %v outside the view, got %v", before, c.CurrentZoom())
	}
}

func TestFeedFocusIntents(t *testing.T) {
	f, _, intents := newFeeder(t)

	f.Feed(frame(10, 10))
	s := frame(10, 10)
	s.Inside = false
	f.Feed(s)

	want := []orbit.Intent{orbit.IntentFocusAcquire, orbit.IntentFocusRelease}
	if len(*intents) != len(want) {
		t.Fatalf("Feed failed: expected intents %v, got %v", want, *intents)
	}
	for i := range want {
		if (*intents)[i] != want[i] {
			t.Errorf("Feed failed: intent %d expected %v, got %v", i, want[i], (*intents)[i])
		}
	}
}

func TestFeedWheelZoomsIn(t *testing.T) {
	f, c, _ := newFeeder(t)
	before := c.CurrentZoom()

	s := frame(0, 0)
	s.Wheel = 1
	f.Feed(s)

	if c.CurrentZoom() >= before {
		t.Errorf("Feed failed: expected zoom below %v, got %v", before, c.CurrentZoom())
	}
}

func TestFeedTouches(t *testing.T) {
	f, c, _ := newFeeder(t)

	s := frame(0, 0)
	s.Touches = []orbit.Touch{{ID: 1, X: 100, Y: 100}}
	f.Feed(s)
	if c.Gesture() != orbit.GestureTouchRotating {
		t.Fatalf("Feed failed: expected touch rotation, got %v", c.Gesture())
	}

	s.Touches = []orbit.Touch{{ID: 1, X: 100, Y: 100}, {ID: 2, X: 200, Y: 100}}
	f.Feed(s)
	if c.Gesture() != orbit.GestureTouchZoomPan {
		t.Fatalf("Feed failed: expected zoom-pan, got %v", c.Gesture())
	}

	before := c.CurrentZoom()
	s.Touches = []orbit.Touch{{ID: 1, X: 50, Y: 100}, {ID: 2, X: 250, Y: 100}}
	f.Feed(s)
	if c.CurrentZoom() >= before {
		t.Errorf("Feed failed: spreading should zoom in, %v >= %v", c.CurrentZoom(), before)
	}

	s.Touches = []orbit.Touch{{ID: 2, X: 250, Y: 100}}
	f.Feed(s)
	if c.Gesture() != orbit.GestureTouchRotating {
		t.Errorf("Feed failed: expected rotation with one contact left, got %v", c.Gesture())
	}

	s.Touches = nil
	f.Feed(s)
	if c.Gesture() != orbit.GestureIdle {
		t.Errorf("Feed failed: expected idle after lifting all contacts, got %v", c.Gesture())
	}
}
