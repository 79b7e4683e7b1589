package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// maxTouches is the number of contacts a gesture tracks; later contacts are ignored
const maxTouches = 2

// gestureSession holds the anchors of one continuous interaction
type gestureSession struct {
	state      Gesture
	normalize  float64
	start      mgl64.Vec2
	rotation   Rotation
	correction float64
	last       mgl64.Vec2
	distance   float64
	zoom       float64
	touches    []Touch
}

// SetViewport records the viewport size in pixels used to normalise drags
func (c *Controls) SetViewport(width, height float64) {
	c.viewport = mgl64.Vec2{width, height}
}

// normalizeSize is the shorter viewport side, never below one pixel
func (c *Controls) normalizeSize() float64 {
	return math.Max(math.Min(c.viewport.X(), c.viewport.Y()), 1)
}

// beginRotation anchors a rotation drag at the given screen position
func (c *Controls) beginRotation(state Gesture, at mgl64.Vec2) {
	c.session.state = state
	c.session.normalize = c.normalizeSize()
	c.session.start = at
	c.session.rotation = c.rotation.current
	c.session.correction = horizontalCorrection(c.rotation.current.Vertical)
}

func (c *Controls) dragRotation(at mgl64.Vec2) {
	if !c.permissions.CanRotate {
		return
	}
	delta := at.Sub(c.session.start).Mul(1 / c.session.normalize)
	c.rotation.drag(c.session.rotation, delta, c.session.correction)
}

func (c *Controls) dragPan(at mgl64.Vec2) {
	delta := at.Sub(c.session.last).Mul(1 / c.session.normalize)
	c.session.last = at
	if !c.permissions.CanPan {
		return
	}
	c.pan.translate(c.pivot.Orientation, delta, c.zoom.current, c.metrics, c.permissions.EnablePanFalloff)
}

// PointerDown starts a mouse gesture
func (c *Controls) PointerDown(e PointerEvent) {
	if !c.ready {
		return
	}
	c.endGesture()
	c.pointerDown = true

	if e.Modifier {
		switch e.Button {
		case ButtonPrimary:
			c.ResetRotation()
		case ButtonTertiary:
			c.ResetZoom()
		case ButtonSecondary:
			c.ResetPosition()
		}
	}

	at := mgl64.Vec2{e.X, e.Y}
	switch e.Button {
	case ButtonPrimary:
		c.beginRotation(GestureRotating, at)
	case ButtonSecondary:
		if !c.permissions.CanPan {
			return
		}
		c.session.state = GesturePanning
		c.session.normalize = c.normalizeSize()
		c.session.last = at
		c.emit(IntentDragStart)
	}
}

// PointerMove feeds a mouse move into the active gesture
func (c *Controls) PointerMove(e PointerEvent) {
	at := mgl64.Vec2{e.X, e.Y}
	switch c.session.state {
	case GestureRotating:
		c.dragRotation(at)
	case GesturePanning:
		c.dragPan(at)
	}
}

// PointerUp ends any mouse gesture
func (c *Controls) PointerUp(PointerEvent) {
	c.pointerDown = false
	c.endGesture()
	if !c.inside {
		c.releaseFocus()
	}
}

// PointerEnter marks the pointer as over the viewport
func (c *Controls) PointerEnter() {
	c.inside = true
	if c.permissions.FocusDisplay && !c.focused {
		c.focused = true
		c.emit(IntentFocusAcquire)
	}
}

// PointerLeave marks the pointer as outside; focus is kept until an active drag ends
func (c *Controls) PointerLeave() {
	c.inside = false
	if c.pointerDown {
		return
	}
	c.releaseFocus()
}

func (c *Controls) releaseFocus() {
	if c.focused {
		c.focused = false
		c.emit(IntentFocusRelease)
	}
}

// Wheel zooms one step in the scroll direction
func (c *Controls) Wheel(e WheelEvent) {
	if !c.ready || !c.permissions.CanZoom || e.DeltaY == 0 {
		return
	}
	sign := 1.0
	if e.DeltaY < 0 {
		sign = -1
	}
	c.zoom.step(sign, c.metrics, c.permissions.EnableZoomFalloff)
}

// TouchStart adds new contacts; only the first two are tracked
func (c *Controls) TouchStart(changed ...Touch) {
	if !c.ready {
		return
	}
	for _, t := range changed {
		if len(c.session.touches) >= maxTouches || c.touchIndex(t.ID) >= 0 {
			continue
		}
		c.session.touches = append(c.session.touches, t)
		switch len(c.session.touches) {
		case 1:
			c.beginRotation(GestureTouchRotating, mgl64.Vec2{t.X, t.Y})
		case 2:
			c.beginZoomPan()
		}
	}
}

func (c *Controls) beginZoomPan() {
	c.session.state = GestureTouchZoomPan
	c.session.normalize = c.normalizeSize()
	c.session.distance = c.touchDistance()
	c.session.zoom = c.zoom.current
	c.session.last = c.touchMidpoint()
}

// TouchMove updates tracked contacts and applies the active gesture
func (c *Controls) TouchMove(touches ...Touch) {
	updated := false
	for _, t := range touches {
		if i := c.touchIndex(t.ID); i >= 0 {
			c.session.touches[i] = t
			updated = true
		}
	}
	if !updated {
		return
	}

	switch c.session.state {
	case GestureTouchRotating:
		t := c.session.touches[0]
		c.dragRotation(mgl64.Vec2{t.X, t.Y})
	case GestureTouchZoomPan:
		if c.permissions.CanZoom && c.session.distance > 0 {
			c.zoom.pinch(c.session.zoom, c.touchDistance()/c.session.distance)
		}
		c.dragPan(c.touchMidpoint())
	}
}

// TouchEnd removes contacts; a single remaining contact continues as a rotation
func (c *Controls) TouchEnd(changed ...Touch) {
	removed := false
	for _, t := range changed {
		if i := c.touchIndex(t.ID); i >= 0 {
			c.session.touches = append(c.session.touches[:i], c.session.touches[i+1:]...)
			removed = true
		}
	}
	if !removed {
		return
	}
	switch len(c.session.touches) {
	case 0:
		c.endGesture()
	case 1:
		t := c.session.touches[0]
		c.beginRotation(GestureTouchRotating, mgl64.Vec2{t.X, t.Y})
	}
}

// TouchCancel drops every contact
func (c *Controls) TouchCancel() {
	c.endGesture()
}

func (c *Controls) endGesture() {
	if c.session.state == GesturePanning {
		c.emit(IntentDragEnd)
	}
	c.session = gestureSession{}
}

func (c *Controls) touchIndex(id int) int {
	for i, t := range c.session.touches {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *Controls) touchDistance() float64 {
	a, b := c.session.touches[0], c.session.touches[1]
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func (c *Controls) touchMidpoint() mgl64.Vec2 {
	a, b := c.session.touches[0], c.session.touches[1]
	return mgl64.Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}
