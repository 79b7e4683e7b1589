package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/orbitview/internal/input"
	"github.com/philipparndt/orbitview/pkg/orbit"
)

// viewPresets are camera rotations in degrees bound to keys
var viewPresets = []struct {
	key  int32
	view orbit.Degrees
}{
	{rl.KeyOne, orbit.Degrees{}},                  // front
	{rl.KeyTwo, orbit.Degrees{Horizontal: 180}},   // back
	{rl.KeyThree, orbit.Degrees{Horizontal: -90}}, // left
	{rl.KeyFour, orbit.Degrees{Horizontal: 90}},   // right
	{rl.KeyT, orbit.Degrees{Vertical: -90}},       // top
	{rl.KeyB, orbit.Degrees{Vertical: 90}},        // bottom
}

// handleInput polls raylib and forwards the frame's input to the controls
func (app *App) handleInput() {
	app.handleKeys()

	mouse := rl.GetMousePosition()
	app.Input.overPanel = app.View.showPanel && rl.CheckCollisionPointRec(mouse, app.panelBounds())

	s := input.Snapshot{
		Width:    float64(rl.GetScreenWidth()),
		Height:   float64(rl.GetScreenHeight()),
		Inside:   rl.IsCursorOnScreen() && !app.Input.overPanel,
		X:        float64(mouse.X),
		Y:        float64(mouse.Y),
		Modifier: rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Wheel:    float64(rl.GetMouseWheelMove()),
	}
	buttons := []struct {
		pressed, released bool
		button            orbit.Button
	}{
		{rl.IsMouseButtonPressed(rl.MouseLeftButton), rl.IsMouseButtonReleased(rl.MouseLeftButton), orbit.ButtonPrimary},
		{rl.IsMouseButtonPressed(rl.MouseMiddleButton), rl.IsMouseButtonReleased(rl.MouseMiddleButton), orbit.ButtonTertiary},
		{rl.IsMouseButtonPressed(rl.MouseRightButton), rl.IsMouseButtonReleased(rl.MouseRightButton), orbit.ButtonSecondary},
	}
	for _, b := range buttons {
		if b.pressed {
			s.Pressed = append(s.Pressed, b.button)
		}
		if b.released {
			s.Released = append(s.Released, b.button)
		}
	}
	app.feeder.Feed(s)
}

// handleKeys processes keyboard shortcuts
func (app *App) handleKeys() {
	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.Controls.ResetRotation()
		app.Controls.ResetPosition()
		app.Controls.ResetZoom()
	}
	for _, preset := range viewPresets {
		if rl.IsKeyPressed(preset.key) {
			app.Controls.SetCurrentRotation(preset.view)
		}
	}

	// Display toggles
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyO) {
		app.View.showBoundingBox = !app.View.showBoundingBox
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showPanel = !app.View.showPanel
	}
}

// handleIntent reacts to presentation hints from the controls
func (app *App) handleIntent(intent orbit.Intent) {
	switch intent {
	case orbit.IntentDragStart:
		app.setCursor(rl.MouseCursorResizeAll)
	case orbit.IntentDragEnd:
		app.setCursor(rl.MouseCursorDefault)
	case orbit.IntentFocusAcquire:
		app.UI.focused = true
	case orbit.IntentFocusRelease:
		app.UI.focused = false
	}
}

func (app *App) setCursor(cursor int32) {
	if app.UI.cursor != cursor {
		app.UI.cursor = cursor
		rl.SetMouseCursor(cursor)
	}
}
