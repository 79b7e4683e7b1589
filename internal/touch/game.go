// Package touch hosts the orbit controls in an ebiten window with multi-touch input.
package touch

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/philipparndt/orbitview/internal/input"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/philipparndt/orbitview/pkg/viewer"
	"github.com/philipparndt/orbitview/version"
	"golang.org/x/image/font/basicfont"
)

var (
	hudColor   = color.RGBA{220, 220, 220, 255}
	pinchColor = color.RGBA{255, 200, 60, 255}
	hudFace    = text.NewGoXFace(basicfont.Face7x13)
)

var keyPresets = []struct {
	key  ebiten.Key
	view orbit.Degrees
}{
	{ebiten.Key1, orbit.Degrees{}},
	{ebiten.Key2, orbit.Degrees{Horizontal: 180}},
	{ebiten.Key3, orbit.Degrees{Horizontal: -90}},
	{ebiten.Key4, orbit.Degrees{Horizontal: 90}},
	{ebiten.KeyT, orbit.Degrees{Vertical: -90}},
	{ebiten.KeyB, orbit.Degrees{Vertical: 90}},
}

var mouseButtons = []struct {
	mouse  ebiten.MouseButton
	button orbit.Button
}{
	{ebiten.MouseButtonLeft, orbit.ButtonPrimary},
	{ebiten.MouseButtonMiddle, orbit.ButtonTertiary},
	{ebiten.MouseButtonRight, orbit.ButtonSecondary},
}

// Game renders the object with the software rasterizer and feeds ebiten input to the controls
type Game struct {
	controls *orbit.Controls
	feeder   *input.Feeder
	camera   *viewer.Camera
	object   *scene.Object
	options  viewer.Options

	width, height int
	screen        *ebiten.Image
	lastView      orbit.View
	dirty         bool

	touchIDs []ebiten.TouchID
	touches  []orbit.Touch
}

// NewGame creates a game for obj; the controls initialise on the first layout
func NewGame(obj *scene.Object, settings orbit.Settings) *Game {
	g := &Game{
		camera:  &viewer.Camera{},
		object:  obj,
		options: viewer.DefaultOptions(),
		dirty:   true,
	}
	g.controls = orbit.New(settings, orbit.WithIntentHandler(g.handleIntent))
	g.feeder = input.NewFeeder(g.controls)
	return g
}

// Controls returns the orbit controls driven by the game
func (g *Game) Controls() *orbit.Controls {
	return g.controls
}

// Update polls input and advances the controls once per tick
func (g *Game) Update() error {
	if g.width == 0 || g.height == 0 {
		return nil
	}
	if !g.controls.Ready() {
		g.controls.Init(g.camera, g.object, func() {
			fmt.Printf("Recommended distance: %.2f\n", g.controls.Metrics().RecommendedDistance)
		})
	}

	g.handleKeys()
	g.feeder.Feed(g.snapshot())
	g.controls.Advance()

	if view := g.controls.View(); view != g.lastView {
		g.lastView = view
		g.dirty = true
	}
	return nil
}

func (g *Game) snapshot() input.Snapshot {
	x, y := ebiten.CursorPosition()
	_, wheel := ebiten.Wheel()
	s := input.Snapshot{
		Width:    float64(g.width),
		Height:   float64(g.height),
		Inside:   ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height,
		X:        float64(x),
		Y:        float64(y),
		Modifier: ebiten.IsKeyPressed(ebiten.KeyControl),
		// ebiten reports scrolling away from the user as positive
		Wheel: wheel,
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.mouse) {
			s.Pressed = append(s.Pressed, b.button)
		}
		if inpututil.IsMouseButtonJustReleased(b.mouse) {
			s.Released = append(s.Released, b.button)
		}
	}

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.touches = g.touches[:0]
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		g.touches = append(g.touches, orbit.Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	s.Touches = g.touches
	return s
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.controls.ResetRotation()
		g.controls.ResetPosition()
		g.controls.ResetZoom()
	}
	for _, p := range keyPresets {
		if inpututil.IsKeyJustPressed(p.key) {
			g.controls.SetCurrentRotation(p.view)
		}
	}

	toggles := []struct {
		key ebiten.Key
		opt *bool
	}{
		{ebiten.KeyW, &g.options.Wireframe},
		{ebiten.KeyF, &g.options.Filled},
		{ebiten.KeyO, &g.options.BoundingBox},
	}
	for _, t := range toggles {
		if inpututil.IsKeyJustPressed(t.key) {
			*t.opt = !*t.opt
			g.dirty = true
		}
	}
}

func (g *Game) handleIntent(intent orbit.Intent) {
	switch intent {
	case orbit.IntentDragStart:
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	case orbit.IntentDragEnd:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	case orbit.IntentFocusAcquire:
		g.options.Focused = true
		g.dirty = true
	case orbit.IntentFocusRelease:
		g.options.Focused = false
		g.dirty = true
	}
}

// Draw blits the last rendered frame and draws the pinch line and HUD on top
func (g *Game) Draw(screen *ebiten.Image) {
	if g.width == 0 || g.height == 0 || !g.controls.Ready() {
		return
	}
	if g.screen == nil || g.screen.Bounds().Dx() != g.width || g.screen.Bounds().Dy() != g.height {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(g.width, g.height)
		g.dirty = true
	}
	if g.dirty {
		img := viewer.Render(g.object, g.lastView, g.width, g.height, g.options)
		g.screen.WritePixels(img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.screen, nil)

	if len(g.touches) == 2 {
		a, b := g.touches[0], g.touches[1]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, pinchColor, true)
	}
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	rotation := g.controls.CurrentRotation()
	lines := []string{
		fmt.Sprintf("%s (%s)", g.object.Name(), g.object.Kind),
		fmt.Sprintf("Distance: %.2f", g.controls.CurrentZoom()),
		fmt.Sprintf("Rotation: %.1f / %.1f deg", rotation.Vertical, rotation.Horizontal),
		fmt.Sprintf("Gesture: %s  Touches: %d", g.controls.Gesture(), len(g.touches)),
		fmt.Sprintf("FPS: %.0f  v%s", ebiten.ActualFPS(), version.GetVersion()),
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(hudColor)
	for _, line := range lines {
		text.Draw(screen, line, hudFace, op)
		op.GeoM.Translate(0, 16)
	}
}

// Layout uses the window size so projection and touch coordinates share one pixel space
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
	}
	return outsideWidth, outsideHeight
}
