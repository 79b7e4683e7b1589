package orbit

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ZoomLimits bounds the camera distance
type ZoomLimits struct {
	In  ZoomSpec `yaml:"in,omitempty"`
	Out ZoomSpec `yaml:"out,omitempty"`
}

// RotationLimits bounds each rotation axis, [min, max] in degrees
type RotationLimits struct {
	Vertical   *[2]float64 `yaml:"vertical,omitempty"`
	Horizontal *[2]float64 `yaml:"horizontal,omitempty"`
}

// RotationSetting is an initial rotation in degrees; nil axes default to zero
type RotationSetting struct {
	Vertical   *float64 `yaml:"vertical,omitempty"`
	Horizontal *float64 `yaml:"horizontal,omitempty"`
}

// Settings configures Controls. Every field is optional.
type Settings struct {
	MaxZoom           ZoomLimits      `yaml:"maxZoom,omitempty"`
	MaxRotation       RotationLimits  `yaml:"maxRotation,omitempty"`
	CurrentZoom       ZoomSpec        `yaml:"currentZoom,omitempty"`
	CurrentRotation   RotationSetting `yaml:"currentRotation,omitempty"`
	CanRotate         *bool           `yaml:"canRotate,omitempty"`
	CanZoom           *bool           `yaml:"canZoom,omitempty"`
	CanPan            *bool           `yaml:"canPan,omitempty"`
	EnablePanFalloff  *bool           `yaml:"enablePanFalloff,omitempty"`
	EnableZoomFalloff *bool           `yaml:"enableZoomFalloff,omitempty"`
	FocusDisplay      *bool           `yaml:"focusDisplay,omitempty"`
}

// Permissions gate which gestures may change the camera
type Permissions struct {
	CanRotate         bool
	CanPan            bool
	CanZoom           bool
	FocusDisplay      bool
	EnablePanFalloff  bool
	EnableZoomFalloff bool
}

// DefaultSettings returns every setting filled with its default value
func DefaultSettings() Settings {
	unbounded := [2]float64{math.Inf(-1), math.Inf(1)}
	zero := 0.0
	return Settings{
		MaxZoom:           ZoomLimits{In: Distance(0), Out: Percent("300%")},
		MaxRotation:       RotationLimits{Vertical: &unbounded, Horizontal: &unbounded},
		CurrentZoom:       Percent("100%"),
		CurrentRotation:   RotationSetting{Vertical: &zero, Horizontal: &zero},
		CanRotate:         Bool(true),
		CanZoom:           Bool(true),
		CanPan:            Bool(true),
		EnablePanFalloff:  Bool(false),
		EnableZoomFalloff: Bool(true),
		FocusDisplay:      Bool(true),
	}
}

// Bool returns a pointer to b for optional settings
func Bool(b bool) *bool {
	return &b
}

// Float returns a pointer to f for optional settings
func Float(f float64) *float64 {
	return &f
}

// LoadSettings reads settings from a YAML file
func LoadSettings(filename string) (Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes settings from YAML
func ParseSettings(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return s, nil
}

// Marshal encodes the settings as YAML
func (s Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Permissions resolves the permission flags with their defaults
func (s Settings) Permissions() Permissions {
	return Permissions{
		CanRotate:         boolOr(s.CanRotate, true),
		CanPan:            boolOr(s.CanPan, true),
		CanZoom:           boolOr(s.CanZoom, true),
		FocusDisplay:      boolOr(s.FocusDisplay, true),
		EnablePanFalloff:  boolOr(s.EnablePanFalloff, false),
		EnableZoomFalloff: boolOr(s.EnableZoomFalloff, true),
	}
}

// Limits resolves the rotation limits in half-turns
func (s Settings) Limits() Limits {
	limits := UnboundedLimits()
	if s.MaxRotation.Vertical != nil {
		limits.Vertical = degreeRange(*s.MaxRotation.Vertical)
	}
	if s.MaxRotation.Horizontal != nil {
		limits.Horizontal = degreeRange(*s.MaxRotation.Horizontal)
	}
	return limits
}

// Rotation resolves the initial rotation in degrees
func (s Settings) Rotation() Degrees {
	return Degrees{
		Vertical:   floatOr(s.CurrentRotation.Vertical, 0),
		Horizontal: floatOr(s.CurrentRotation.Horizontal, 0),
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
