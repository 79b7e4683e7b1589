package orbit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestInitConfiguresCamera(t *testing.T) {
	cam := &fakeCamera{}
	c := New(Settings{})
	readyCalls := 0

	c.Init(cam, centeredBox(10, 20, 30), func() { readyCalls++ })

	if !c.Ready() {
		t.Fatal("Controls must be ready after Init")
	}
	if readyCalls != 1 {
		t.Errorf("onReady failed: expected 1 call, got %d", readyCalls)
	}
	if !approx(cam.near, 0.1) || !approx(cam.far, 3000) {
		t.Errorf("Clip planes failed: expected 0.1/3000, got %v/%v", cam.near, cam.far)
	}

	rec := c.Metrics().RecommendedDistance
	if cam.distance != rec {
		t.Errorf("Camera distance failed: expected %v, got %v", rec, cam.distance)
	}
	if c.CurrentZoom() != rec {
		t.Errorf("CurrentZoom failed: expected %v, got %v", rec, c.CurrentZoom())
	}
	if min, max := c.ZoomRange(); min != 0 || !approx(max, 3*rec) {
		t.Errorf("ZoomRange failed: expected 0..%v, got %v..%v", 3*rec, min, max)
	}
}

func TestInitIsOneShot(t *testing.T) {
	c, cam := newReadyControls(t, Settings{})
	metrics := c.Metrics()

	called := false
	c.Init(cam, centeredBox(1, 1, 1), func() { called = true })

	if called {
		t.Error("Second Init must not call onReady")
	}
	if c.Metrics() != metrics {
		t.Errorf("Second Init must not change metrics, got %v", c.Metrics())
	}
	if cam.clipCalls != 1 {
		t.Errorf("Clip planes must be set once, got %d calls", cam.clipCalls)
	}
}

func TestSetCurrentZoomWithinLimits(t *testing.T) {
	c, _ := newReadyControls(t, Settings{})
	min, max := c.ZoomRange()

	for _, f := range []float64{0, 0.125, 0.25, 0.5, 0.75, 1} {
		v := min + (max-min)*f
		c.SetCurrentZoom(Distance(v))
		if got := c.CurrentZoom(); got != v {
			t.Errorf("SetCurrentZoom(%v) failed: got %v", v, got)
		}
	}
}

func TestSetCurrentZoomClamps(t *testing.T) {
	c, _ := newReadyControls(t, Settings{MaxZoom: ZoomLimits{In: Distance(5)}})
	min, max := c.ZoomRange()

	c.SetCurrentZoom(Distance(min - 1))
	if got := c.CurrentZoom(); got != min {
		t.Errorf("Below minimum failed: expected %v, got %v", min, got)
	}

	c.SetCurrentZoom(Distance(max + 1))
	if got := c.CurrentZoom(); got != max {
		t.Errorf("Above maximum failed: expected %v, got %v", max, got)
	}
}

func TestSetCurrentZoomPercent(t *testing.T) {
	c, _ := newReadyControls(t, Settings{})
	rec := c.Metrics().RecommendedDistance

	c.SetCurrentZoom(Percent("50%"))
	if got := c.CurrentZoom(); !approx(got, rec/2) {
		t.Errorf("Expected %v, got %v", rec/2, got)
	}

	c.SetCurrentZoom(Percent("half"))
	if got := c.CurrentZoom(); !approx(got, rec) {
		t.Errorf("Malformed percentage must fall back to 100%%, expected %v, got %v", rec, got)
	}
}

func TestSettingsAppliedOnInit(t *testing.T) {
	c, _ := newReadyControls(t, Settings{
		MaxZoom:         ZoomLimits{In: Percent("50%"), Out: Percent("200%")},
		MaxRotation:     RotationLimits{Vertical: &[2]float64{-45, 45}},
		CurrentZoom:     Distance(10),
		CurrentRotation: RotationSetting{Vertical: Float(90), Horizontal: Float(30)},
	})
	rec := c.Metrics().RecommendedDistance

	min, max := c.ZoomRange()
	if !approx(min, rec/2) || !approx(max, 2*rec) {
		t.Errorf("ZoomRange failed: expected %v..%v, got %v..%v", rec/2, 2*rec, min, max)
	}
	if got := c.CurrentZoom(); !approx(got, rec/2) {
		t.Errorf("Initial zoom must be clamped to %v, got %v", rec/2, got)
	}

	rot := c.CurrentRotation()
	if !approx(rot.Vertical, 45) || !approx(rot.Horizontal, 30) {
		t.Errorf("Initial rotation failed: expected (45, 30), got %v", rot)
	}
}

func TestCurrentZoomBeforeInit(t *testing.T) {
	if got := New(Settings{}).CurrentZoom(); got != 0 {
		t.Errorf("Expected 0 before Init, got %v", got)
	}
	if got := New(Settings{CurrentZoom: Distance(12)}).CurrentZoom(); got != 12 {
		t.Errorf("Expected configured distance before Init, got %v", got)
	}
}

func TestDeferredBeforeInit(t *testing.T) {
	cam := &fakeCamera{}
	c := New(Settings{})

	c.SetCurrentZoom(Percent("50%"))
	c.SetCurrentRotation(Degrees{Vertical: 90, Horizontal: 45})
	c.ResetRotation()
	c.SetCurrentRotation(Degrees{Horizontal: 20})

	if c.Pending() != 4 {
		t.Fatalf("Expected 4 pending mutations, got %d", c.Pending())
	}
	if c.CurrentRotation() != (Degrees{}) {
		t.Errorf("Rotation must not change before Init, got %v", c.CurrentRotation())
	}

	c.Advance()
	if cam.distanceCalls != 0 {
		t.Error("Advance before Init must not touch the camera")
	}

	c.Init(cam, centeredBox(10, 20, 30), nil)

	if c.Pending() != 0 {
		t.Errorf("Pending mutations must be flushed, got %d", c.Pending())
	}
	rec := c.Metrics().RecommendedDistance
	if got := c.CurrentZoom(); !approx(got, rec/2) {
		t.Errorf("Deferred zoom failed: expected %v, got %v", rec/2, got)
	}
	if got := c.CurrentRotation(); !approx(got.Vertical, 0) || !approx(got.Horizontal, 20) {
		t.Errorf("Deferred rotations must apply in call order, got %v", got)
	}
	if !approx(cam.distance, rec/2) {
		t.Errorf("Init must publish the deferred zoom, got %v", cam.distance)
	}
}

func TestResets(t *testing.T) {
	c, _ := newReadyControls(t, Settings{})
	rec := c.Metrics().RecommendedDistance

	c.SetCurrentRotation(Degrees{Vertical: 30, Horizontal: 60})
	c.SetCurrentZoom(Distance(rec * 2))
	c.PointerDown(PointerEvent{Button: ButtonSecondary})
	c.PointerMove(PointerEvent{Button: ButtonSecondary, X: 100, Y: 50})
	c.PointerUp(PointerEvent{Button: ButtonSecondary})

	if c.PanOffset() == (mgl64.Vec3{}) {
		t.Fatal("Pan must move the pivot")
	}

	c.ResetRotation()
	if c.CurrentRotation() != (Degrees{}) {
		t.Errorf("ResetRotation failed: got %v", c.CurrentRotation())
	}

	c.ResetPosition()
	if c.PanOffset() != (mgl64.Vec3{}) {
		t.Errorf("ResetPosition failed: got %v", c.PanOffset())
	}

	c.ResetZoom()
	if c.CurrentZoom() != rec {
		t.Errorf("ResetZoom failed: expected %v, got %v", rec, c.CurrentZoom())
	}
}

func TestPermissionDefaults(t *testing.T) {
	c := New(Settings{})
	p := c.Permissions()

	if !p.CanRotate || !p.CanPan || !p.CanZoom || !p.FocusDisplay {
		t.Errorf("Gestures must be enabled by default, got %+v", p)
	}
	if p.EnablePanFalloff || !p.EnableZoomFalloff {
		t.Errorf("Falloff defaults failed, got %+v", p)
	}

	c.SetCanRotate(false)
	c.SetCanPan(false)
	c.SetCanZoom(false)
	c.SetFocusDisplay(false)
	if c.CanRotate() || c.CanPan() || c.CanZoom() || c.FocusDisplay() {
		t.Errorf("Setters failed, got %+v", c.Permissions())
	}
}
