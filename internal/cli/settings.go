package cli

import (
	"fmt"

	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/spf13/cobra"
)

// SettingsFlags are the camera options shared by every front end
type SettingsFlags struct {
	File       string
	Zoom       string
	NoRotate   bool
	NoPan      bool
	NoZoom     bool
	PanFalloff bool
	NoFocus    bool
}

// Register adds the flags to a command
func (f *SettingsFlags) Register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.File, "settings", "s", "", "YAML file with camera settings")
	flags.StringVarP(&f.Zoom, "zoom", "z", "", "initial zoom, a distance (120) or a percentage of the fitted distance (50%)")
	flags.BoolVar(&f.NoRotate, "no-rotate", false, "disable rotation")
	flags.BoolVar(&f.NoPan, "no-pan", false, "disable panning")
	flags.BoolVar(&f.NoZoom, "no-zoom", false, "disable zooming")
	flags.BoolVar(&f.PanFalloff, "pan-falloff", false, "slow panning down far from the object")
	flags.BoolVar(&f.NoFocus, "no-focus", false, "do not highlight the view while hovered")
}

// Load reads the settings file, if any, and applies the flags on top
func (f *SettingsFlags) Load() (orbit.Settings, error) {
	var settings orbit.Settings
	if f.File != "" {
		s, err := orbit.LoadSettings(f.File)
		if err != nil {
			return orbit.Settings{}, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = s
	}
	return f.Apply(settings), nil
}

// Apply overrides settings with the flags that were given
func (f *SettingsFlags) Apply(settings orbit.Settings) orbit.Settings {
	if f.Zoom != "" {
		settings.CurrentZoom = orbit.ParseZoomSpec(f.Zoom)
	}
	if f.NoRotate {
		settings.CanRotate = orbit.Bool(false)
	}
	if f.NoPan {
		settings.CanPan = orbit.Bool(false)
	}
	if f.NoZoom {
		settings.CanZoom = orbit.Bool(false)
	}
	if f.PanFalloff {
		settings.EnablePanFalloff = orbit.Bool(true)
	}
	if f.NoFocus {
		settings.FocusDisplay = orbit.Bool(false)
	}
	return settings
}

// Reload re-reads the settings file and pushes it, with the flags on top, into
// running controls. Zoom and rotation limits are fixed by Init and keep their
// values. Current zoom and rotation change only when the file sets them, and a
// rotation axis the file leaves out keeps its current angle.
func (f *SettingsFlags) Reload(c *orbit.Controls) error {
	file, err := orbit.LoadSettings(f.File)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings := f.Apply(file)

	p := settings.Permissions()
	c.SetCanRotate(p.CanRotate)
	c.SetCanPan(p.CanPan)
	c.SetCanZoom(p.CanZoom)
	c.SetFocusDisplay(p.FocusDisplay)
	c.SetPanFalloff(p.EnablePanFalloff)
	c.SetZoomFalloff(p.EnableZoomFalloff)

	if !file.CurrentZoom.IsZero() {
		c.SetCurrentZoom(settings.CurrentZoom)
	}
	if rot := file.CurrentRotation; rot.Vertical != nil || rot.Horizontal != nil {
		current := c.CurrentRotation()
		if rot.Vertical != nil {
			current.Vertical = *rot.Vertical
		}
		if rot.Horizontal != nil {
			current.Horizontal = *rot.Horizontal
		}
		c.SetCurrentRotation(current)
	}
	return nil
}
