package app

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/orbitview/version"
)

const (
	panelWidth  = float32(200)
	panelHeight = float32(390)
	rowHeight   = float32(24)
	rowSpacing  = float32(6)
)

var focusColor = rl.NewColor(80, 140, 255, 255)

// panelBounds returns the control panel area in the top-right corner
func (app *App) panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rl.GetScreenWidth()) - panelWidth - 10,
		Y:      10,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

// drawPanel draws the raygui control panel and applies its changes
func (app *App) drawPanel() {
	bounds := app.panelBounds()
	gui.Panel(bounds, "Camera")

	y := bounds.Y + 32
	row := func() rl.Rectangle {
		r := rl.Rectangle{X: bounds.X + 10, Y: y, Width: bounds.Width - 20, Height: rowHeight}
		y += rowHeight + rowSpacing
		return r
	}
	check := func() rl.Rectangle {
		r := row()
		r.Width = rowHeight
		return r
	}

	if gui.Button(row(), "Reset rotation") {
		app.Controls.ResetRotation()
	}
	if gui.Button(row(), "Reset position") {
		app.Controls.ResetPosition()
	}
	if gui.Button(row(), "Reset zoom") {
		app.Controls.ResetZoom()
	}
	y += rowSpacing

	c := app.Controls
	if v := gui.CheckBox(check(), "Rotate", c.CanRotate()); v != c.CanRotate() {
		c.SetCanRotate(v)
	}
	if v := gui.CheckBox(check(), "Pan", c.CanPan()); v != c.CanPan() {
		c.SetCanPan(v)
	}
	if v := gui.CheckBox(check(), "Zoom", c.CanZoom()); v != c.CanZoom() {
		c.SetCanZoom(v)
	}
	if v := gui.CheckBox(check(), "Focus highlight", c.FocusDisplay()); v != c.FocusDisplay() {
		c.SetFocusDisplay(v)
	}
	y += rowSpacing

	app.View.showFilled = gui.CheckBox(check(), "Filled (F)", app.View.showFilled)
	app.View.showWireframe = gui.CheckBox(check(), "Wireframe (W)", app.View.showWireframe)
	app.View.showBoundingBox = gui.CheckBox(check(), "Bounding box (O)", app.View.showBoundingBox)
}

// drawUI draws the status overlay, panel and focus highlight
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)
	line := func(text string, size int32, color rl.Color) {
		rl.DrawText(text, 10, y, size, color)
		y += lineHeight
	}

	obj := app.Model.object
	rotation := app.Controls.CurrentRotation()
	pan := app.Controls.PanOffset()
	minZoom, maxZoom := app.Controls.ZoomRange()

	line("Model:", 16, rl.Yellow)
	line(fmt.Sprintf("  %s (%s, %d)", obj.Name(), obj.Kind, obj.Size()), 14, rl.White)
	y += lineHeight / 2

	line("Camera:", 16, rl.Yellow)
	line(fmt.Sprintf("  Distance: %.2f (%.2f .. %.2f)", app.Camera.distance, minZoom, maxZoom), 14, rl.White)
	line(fmt.Sprintf("  Rotation: %.1f / %.1f deg", rotation.Vertical, rotation.Horizontal), 14, rl.White)
	line(fmt.Sprintf("  Pan: (%.2f, %.2f, %.2f)", pan[0], pan[1], pan[2]), 14, rl.White)
	line(fmt.Sprintf("  Gesture: %s", app.Controls.Gesture()), 14, rl.White)
	y += lineHeight / 2

	line("Navigate:", 16, rl.Yellow)
	line("  Left Drag: Rotate | Right Drag: Pan", 14, rl.LightGray)
	line("  Mouse Wheel: Zoom", 14, rl.LightGray)
	line("  Ctrl+Left/Right/Middle: Reset rotation/pan/zoom", 14, rl.LightGray)
	line("  Home: Reset | T/B: Top/Bottom | 1-4: Sides", 14, rl.LightGray)
	line("  W/F/O: Wireframe/Fill/Box | H: Toggle panel", 14, rl.LightGray)

	if app.FileWatch.isLoading {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		line(fmt.Sprintf("Loading... (%.1fs)", elapsed), 16, rl.Yellow)
	}

	// Version and FPS in bottom-left corner
	bottomY := int32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawText(versionText, 10, bottomY, 12, rl.Gray)
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10+rl.MeasureText(versionText, 12)+15, bottomY, 12, rl.Lime)

	app.drawAxesGizmo()

	if app.View.showPanel {
		app.drawPanel()
	}

	if app.UI.focused {
		screen := rl.Rectangle{Width: float32(rl.GetScreenWidth()), Height: float32(rl.GetScreenHeight())}
		rl.DrawRectangleLinesEx(screen, 2, focusColor)
	}
}
