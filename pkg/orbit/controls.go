// Package orbit implements an orbit, pan and zoom camera controller.
//
// Controls is a single-threaded state machine: hosts feed pointer, wheel and
// touch events from their UI goroutine and call Advance once per frame.
package orbit

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
)

// Camera is the externally owned camera attached to the pivot
type Camera interface {
	SetClipPlanes(near, far float64)
	SetDistance(distance float64)
}

// Object is the controlled object
type Object interface {
	BoundingBox() geometry.Box
}

// Option configures Controls
type Option func(*Controls)

// WithIntentHandler receives presentation intents such as drag start/end
func WithIntentHandler(fn func(Intent)) Option {
	return func(c *Controls) {
		c.onIntent = fn
	}
}

// WithViewport sets the initial viewport size in pixels
func WithViewport(width, height float64) Option {
	return func(c *Controls) {
		c.SetViewport(width, height)
	}
}

// Controls drives the camera around one object
type Controls struct {
	settings    Settings
	permissions Permissions
	onIntent    func(Intent)

	camera  Camera
	metrics BoundingMetrics
	ready   bool
	pending []func()

	rotation rotationState
	zoom     zoomState
	pan      panState

	pivot    Pivot
	distance float64

	viewport    mgl64.Vec2
	session     gestureSession
	pointerDown bool
	inside      bool
	focused     bool
}

// New creates controls from settings; zoom settings are resolved in Init
func New(settings Settings, opts ...Option) *Controls {
	c := &Controls{
		settings:    settings,
		permissions: settings.Permissions(),
		rotation:    newRotationState(),
		pivot:       Pivot{Orientation: mgl64.QuatIdent()},
	}
	c.rotation.limits = settings.Limits()
	c.rotation.set(settings.Rotation().HalfTurns())
	// numeric zoom is known before the object is
	c.zoom.current = settings.CurrentZoom.Resolve(0, 0)

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init analyses the object, configures the camera and applies pending mutations.
// onReady may be nil. Only the first call has an effect.
func (c *Controls) Init(camera Camera, object Object, onReady func()) {
	if c.ready {
		return
	}
	c.camera = camera
	c.metrics = Analyze(object.BoundingBox())
	camera.SetClipPlanes(c.metrics.ClipPlanes())

	rec := c.metrics.RecommendedDistance
	c.zoom.min = c.settings.MaxZoom.In.Resolve(rec, 0)
	c.zoom.max = c.settings.MaxZoom.Out.Resolve(rec, 3*rec)
	c.zoom.set(c.settings.CurrentZoom.Resolve(rec, rec))

	c.ready = true
	c.flush()
	c.Advance()

	if onReady != nil {
		onReady()
	}
}

// Ready reports whether Init has run
func (c *Controls) Ready() bool {
	return c.ready
}

// Metrics returns the bounding metrics computed by Init
func (c *Controls) Metrics() BoundingMetrics {
	return c.metrics
}

// CurrentZoom returns the camera distance from the pivot
func (c *Controls) CurrentZoom() float64 {
	return c.zoom.current
}

// SetCurrentZoom sets the camera distance, clamped to the zoom limits
func (c *Controls) SetCurrentZoom(spec ZoomSpec) {
	c.apply(func() {
		rec := c.metrics.RecommendedDistance
		c.zoom.set(spec.Resolve(rec, rec))
	})
}

// ZoomRange returns the minimum and maximum camera distance
func (c *Controls) ZoomRange() (min, max float64) {
	return c.zoom.min, c.zoom.max
}

// CurrentRotation returns the orbit rotation in degrees
func (c *Controls) CurrentRotation() Degrees {
	return c.rotation.current.Degrees()
}

// SetCurrentRotation sets the orbit rotation, clamped to the rotation limits
func (c *Controls) SetCurrentRotation(d Degrees) {
	c.apply(func() {
		c.rotation.set(d.HalfTurns())
	})
}

// Rotation returns the orbit rotation in half-turns
func (c *Controls) Rotation() Rotation {
	return c.rotation.current
}

// Limits returns the rotation limits in half-turns
func (c *Controls) Limits() Limits {
	return c.rotation.limits
}

// PanOffset returns the pivot offset from the origin
func (c *Controls) PanOffset() mgl64.Vec3 {
	return c.pan.offset
}

// Gesture returns the active gesture
func (c *Controls) Gesture() Gesture {
	return c.session.state
}

// ResetRotation turns the camera back to the front view
func (c *Controls) ResetRotation() {
	c.apply(func() {
		c.rotation.set(Rotation{})
	})
}

// ResetPosition moves the pivot back to the origin
func (c *Controls) ResetPosition() {
	c.apply(func() {
		c.pan.reset()
	})
}

// ResetZoom moves the camera back to the recommended distance
func (c *Controls) ResetZoom() {
	c.apply(func() {
		c.zoom.set(c.metrics.RecommendedDistance)
	})
}

// Permissions returns the current permission flags
func (c *Controls) Permissions() Permissions {
	return c.permissions
}

// CanRotate reports whether dragging rotates the camera
func (c *Controls) CanRotate() bool {
	return c.permissions.CanRotate
}

// SetCanRotate enables or disables rotation
func (c *Controls) SetCanRotate(v bool) {
	c.permissions.CanRotate = v
}

// CanPan reports whether dragging pans the camera
func (c *Controls) CanPan() bool {
	return c.permissions.CanPan
}

// SetCanPan enables or disables panning
func (c *Controls) SetCanPan(v bool) {
	c.permissions.CanPan = v
}

// CanZoom reports whether wheel and pinch input zoom the camera
func (c *Controls) CanZoom() bool {
	return c.permissions.CanZoom
}

// SetCanZoom enables or disables zooming
func (c *Controls) SetCanZoom(v bool) {
	c.permissions.CanZoom = v
}

func (c *Controls) FocusDisplay() bool {
	return c.permissions.FocusDisplay
}

// SetFocusDisplay toggles focus intents; disabling it while focused releases focus
func (c *Controls) SetFocusDisplay(v bool) {
	c.permissions.FocusDisplay = v
	if !v {
		c.releaseFocus()
	}
}

// SetPanFalloff toggles damping of pans far from the object
func (c *Controls) SetPanFalloff(v bool) {
	c.permissions.EnablePanFalloff = v
}

// SetZoomFalloff toggles distance scaled wheel steps
func (c *Controls) SetZoomFalloff(v bool) {
	c.permissions.EnableZoomFalloff = v
}

func (c *Controls) emit(i Intent) {
	if c.onIntent != nil {
		c.onIntent(i)
	}
}
