package viewer

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
)

// OrbitView renders an object and lets the user orbit, pan and zoom it
type OrbitView struct {
	widget.BaseWidget
	Controls *orbit.Controls

	object    *scene.Object
	camera    *Camera
	options   Options
	raster    *canvas.Raster
	animation *fyne.Animation
	cursor    desktop.Cursor
	lastView  orbit.View
	onReady   func()
}

var (
	_ desktop.Mouseable  = (*OrbitView)(nil)
	_ desktop.Hoverable  = (*OrbitView)(nil)
	_ desktop.Cursorable = (*OrbitView)(nil)
	_ fyne.Draggable     = (*OrbitView)(nil)
	_ fyne.Scrollable    = (*OrbitView)(nil)
)

// NewOrbitView creates the widget; the controls initialise once the widget has a size.
// onReady may be nil.
func NewOrbitView(object *scene.Object, settings orbit.Settings, onReady func()) *OrbitView {
	v := &OrbitView{
		object:  object,
		camera:  &Camera{},
		options: DefaultOptions(),
		cursor:  desktop.DefaultCursor,
		onReady: onReady,
	}
	v.Controls = orbit.New(settings, orbit.WithIntentHandler(v.handleIntent))
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the camera driven by the controls
func (v *OrbitView) Camera() *Camera {
	return v.camera
}

// Start begins advancing the controls every frame
func (v *OrbitView) Start() {
	if v.animation != nil {
		return
	}
	v.animation = fyne.NewAnimation(time.Second, func(float32) {
		v.tick()
	})
	v.animation.Curve = fyne.AnimationLinear
	v.animation.RepeatCount = fyne.AnimationRepeatForever
	v.animation.Start()
}

// Stop halts the frame loop
func (v *OrbitView) Stop() {
	if v.animation != nil {
		v.animation.Stop()
		v.animation = nil
	}
}

// tick advances the controls and redraws when the view changed
func (v *OrbitView) tick() {
	v.Controls.Advance()
	if view := v.Controls.View(); view != v.lastView {
		v.lastView = view
		v.raster.Refresh()
	}
}

// SetWireframe toggles triangle edges
func (v *OrbitView) SetWireframe(on bool) {
	v.options.Wireframe = on
	v.raster.Refresh()
}

// SetFilled toggles shaded faces
func (v *OrbitView) SetFilled(on bool) {
	v.options.Filled = on
	v.raster.Refresh()
}

// SetBoundingBox toggles the bounding box overlay
func (v *OrbitView) SetBoundingBox(on bool) {
	v.options.BoundingBox = on
	v.raster.Refresh()
}

// SetObject swaps the displayed object, keeping the current camera
func (v *OrbitView) SetObject(obj *scene.Object) {
	v.object = obj
	v.raster.Refresh()
}

// Options returns the current display options
func (v *OrbitView) Options() Options {
	return v.options
}

// mount initialises the controls the first time the widget has an area
func (v *OrbitView) mount(size fyne.Size) {
	v.Controls.SetViewport(float64(size.Width), float64(size.Height))
	if v.Controls.Ready() || size.Width <= 0 || size.Height <= 0 || v.object == nil {
		return
	}
	v.Controls.Init(v.camera, v.object, v.onReady)
}

func (v *OrbitView) draw(w, h int) image.Image {
	if !v.Controls.Ready() || w <= 0 || h <= 0 {
		return newFrame(max(w, 1), max(h, 1), backgroundColor).img
	}
	return Render(v.object, v.Controls.View(), w, h, v.options)
}

func (v *OrbitView) handleIntent(intent orbit.Intent) {
	switch intent {
	case orbit.IntentDragStart:
		v.cursor = desktop.CrosshairCursor
	case orbit.IntentDragEnd:
		v.cursor = desktop.DefaultCursor
	case orbit.IntentFocusAcquire:
		v.options.Focused = true
		v.raster.Refresh()
	case orbit.IntentFocusRelease:
		v.options.Focused = false
		v.raster.Refresh()
	}
}

func pointerEvent(e *desktop.MouseEvent) orbit.PointerEvent {
	button := orbit.ButtonPrimary
	switch e.Button {
	case desktop.MouseButtonSecondary:
		button = orbit.ButtonSecondary
	case desktop.MouseButtonTertiary:
		button = orbit.ButtonTertiary
	}
	return orbit.PointerEvent{
		Button:   button,
		X:        float64(e.Position.X),
		Y:        float64(e.Position.Y),
		Modifier: e.Modifier&fyne.KeyModifierControl != 0,
	}
}

// MouseDown starts a rotation or pan gesture
func (v *OrbitView) MouseDown(e *desktop.MouseEvent) {
	v.Controls.PointerDown(pointerEvent(e))
}

// MouseUp ends the current gesture
func (v *OrbitView) MouseUp(e *desktop.MouseEvent) {
	v.Controls.PointerUp(pointerEvent(e))
}

// MouseIn acquires display focus
func (v *OrbitView) MouseIn(*desktop.MouseEvent) {
	v.Controls.PointerEnter()
}

// MouseMoved feeds hover movement
func (v *OrbitView) MouseMoved(e *desktop.MouseEvent) {
	v.Controls.PointerMove(pointerEvent(e))
}

// MouseOut releases display focus unless a button is held
func (v *OrbitView) MouseOut() {
	v.Controls.PointerLeave()
}

// Dragged feeds movement while a button is held
func (v *OrbitView) Dragged(e *fyne.DragEvent) {
	v.Controls.PointerMove(orbit.PointerEvent{X: float64(e.Position.X), Y: float64(e.Position.Y)})
}

// DragEnd ends the gesture when the release happens outside the widget
func (v *OrbitView) DragEnd() {
	v.Controls.PointerUp(orbit.PointerEvent{})
}

// Scrolled zooms; scrolling towards the user zooms out
func (v *OrbitView) Scrolled(e *fyne.ScrollEvent) {
	v.Controls.Wheel(orbit.WheelEvent{DeltaY: -float64(e.Scrolled.DY)})
}

// Cursor shows a crosshair while panning
func (v *OrbitView) Cursor() desktop.Cursor {
	return v.cursor
}

// CreateRenderer creates the renderer for the widget
func (v *OrbitView) CreateRenderer() fyne.WidgetRenderer {
	return &orbitViewRenderer{
		view:    v,
		objects: []fyne.CanvasObject{v.raster},
	}
}

// orbitViewRenderer implements fyne.WidgetRenderer
type orbitViewRenderer struct {
	view    *OrbitView
	objects []fyne.CanvasObject
}

func (r *orbitViewRenderer) Layout(size fyne.Size) {
	r.view.raster.Resize(size)
	r.view.mount(size)
}

func (r *orbitViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *orbitViewRenderer) Refresh() {
	r.view.raster.Refresh()
}

func (r *orbitViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *orbitViewRenderer) Destroy() {
	r.view.Stop()
}
