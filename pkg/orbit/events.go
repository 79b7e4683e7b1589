package orbit

// Button identifies a pointer button using DOM numbering
type Button int

const (
	ButtonPrimary   Button = 0
	ButtonTertiary  Button = 1 // middle
	ButtonSecondary Button = 2 // right
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonTertiary:
		return "middle"
	case ButtonSecondary:
		return "secondary"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse or pen event in viewport pixels
type PointerEvent struct {
	Button Button
	X, Y   float64
	// Modifier is set while the shortcut key (ctrl) is held
	Modifier bool
}

// WheelEvent carries the vertical scroll delta; positive scrolls away from the object
type WheelEvent struct {
	DeltaY float64
}

// Touch is one active contact with a stable identifier
type Touch struct {
	ID   int
	X, Y float64
}

// Intent is a presentation hint for the embedding application
type Intent int

const (
	// IntentDragStart is emitted when a pan drag begins
	IntentDragStart Intent = iota
	// IntentDragEnd is emitted when that drag ends
	IntentDragEnd
	// IntentFocusAcquire asks the host to capture scrolling while the pointer is over the view
	IntentFocusAcquire
	// IntentFocusRelease hands scrolling back to the host
	IntentFocusRelease
)

func (i Intent) String() string {
	switch i {
	case IntentDragStart:
		return "drag-start"
	case IntentDragEnd:
		return "drag-end"
	case IntentFocusAcquire:
		return "focus-acquire"
	case IntentFocusRelease:
		return "focus-release"
	default:
		return "unknown"
	}
}

// Gesture is the state of the input state machine
type Gesture int

const (
	GestureIdle Gesture = iota
	GestureRotating
	GesturePanning
	GestureTouchRotating
	GestureTouchZoomPan
)

func (g Gesture) String() string {
	switch g {
	case GestureIdle:
		return "idle"
	case GestureRotating:
		return "rotating"
	case GesturePanning:
		return "panning"
	case GestureTouchRotating:
		return "touch-rotating"
	case GestureTouchZoomPan:
		return "touch-zoom-pan"
	default:
		return "unknown"
	}
}
