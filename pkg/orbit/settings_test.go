package orbit

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const settingsYAML = `
maxZoom:
  in: 50%
  out: 400
maxRotation:
  vertical: [-90, 90]
currentZoom: 75%
currentRotation:
  horizontal: 45
canPan: false
enablePanFalloff: true
`

func TestParseSettings(t *testing.T) {
	s, err := ParseSettings([]byte(settingsYAML))
	if err != nil {
		t.Fatal(err)
	}

	if s.MaxZoom.In != Percent("50%") || s.MaxZoom.Out != Distance(400) {
		t.Errorf("MaxZoom failed: got %v / %v", s.MaxZoom.In, s.MaxZoom.Out)
	}
	if s.CurrentZoom != Percent("75%") {
		t.Errorf("CurrentZoom failed: got %v", s.CurrentZoom)
	}

	limits := s.Limits()
	if limits.Vertical != (Range{-0.5, 0.5}) {
		t.Errorf("Vertical limits failed: got %v", limits.Vertical)
	}
	if !math.IsInf(limits.Horizontal[0], -1) || !math.IsInf(limits.Horizontal[1], 1) {
		t.Errorf("Horizontal limits must stay unbounded, got %v", limits.Horizontal)
	}

	if rot := s.Rotation(); rot != (Degrees{Horizontal: 45}) {
		t.Errorf("Rotation failed: got %v", rot)
	}

	p := s.Permissions()
	expected := Permissions{
		CanRotate:         true,
		CanPan:            false,
		CanZoom:           true,
		FocusDisplay:      true,
		EnablePanFalloff:  true,
		EnableZoomFalloff: true,
	}
	if p != expected {
		t.Errorf("Permissions failed: expected %+v, got %+v", expected, p)
	}
}

func TestDefaultSettingsMatchUnspecified(t *testing.T) {
	a, _ := newReadyControls(t, DefaultSettings())
	b, _ := newReadyControls(t, Settings{})

	if a.Permissions() != b.Permissions() {
		t.Errorf("Permissions differ: %+v vs %+v", a.Permissions(), b.Permissions())
	}
	if a.Limits() != b.Limits() {
		t.Errorf("Limits differ: %v vs %v", a.Limits(), b.Limits())
	}

	aMin, aMax := a.ZoomRange()
	bMin, bMax := b.ZoomRange()
	if !approx(aMin, bMin) || !approx(aMax, bMax) || !approx(a.CurrentZoom(), b.CurrentZoom()) {
		t.Errorf("Zoom differs: %v..%v@%v vs %v..%v@%v",
			aMin, aMax, a.CurrentZoom(), bMin, bMax, b.CurrentZoom())
	}
}

func TestSettingsMarshal(t *testing.T) {
	data, err := DefaultSettings().Marshal()
	if err != nil {
		t.Fatal(err)
	}

	s, err := ParseSettings(data)
	if err != nil {
		t.Fatalf("Marshalled settings must parse: %v\n%s", err, data)
	}
	if s.MaxZoom.Out != Percent("300%") {
		t.Errorf("MaxZoom.Out failed: got %v", s.MaxZoom.Out)
	}
	if s.Limits() != UnboundedLimits() {
		t.Errorf("Infinite limits must survive YAML, got %v", s.Limits())
	}
	if s.Permissions() != DefaultSettings().Permissions() {
		t.Errorf("Permissions failed: got %+v", s.Permissions())
	}
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "camera.yaml")
	if err := os.WriteFile(path, []byte(settingsYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.CanPan == nil || *s.CanPan {
		t.Errorf("canPan failed: got %v", s.CanPan)
	}

	if _, err := LoadSettings(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Missing file must be reported")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("maxZoom: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(bad); err == nil {
		t.Error("YAML syntax errors must be reported")
	}
}
