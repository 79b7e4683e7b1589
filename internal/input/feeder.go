// Package input turns polled per-frame input state into orbit control events.
//
// Game-loop hosts such as raylib and ebiten expose input as a snapshot each
// frame rather than as events; Feeder diffs consecutive snapshots.
package input

import (
	"sort"

	"github.com/philipparndt/orbitview/pkg/orbit"
)

// Snapshot is the raw input state of one frame
type Snapshot struct {
	Width, Height float64

	// Inside reports whether the pointer is over the 3D view
	Inside   bool
	X, Y     float64
	Pressed  []orbit.Button // buttons that went down this frame
	Released []orbit.Button // buttons that went up this frame
	Modifier bool

	// Wheel is the scroll amount; positive scrolls away from the user
	Wheel float64

	// Touches lists every active contact
	Touches []orbit.Touch
}

// Feeder forwards snapshot differences to the controls
type Feeder struct {
	controls *orbit.Controls
	inside   bool
	x, y     float64
	touches  map[int]orbit.Touch
}

// NewFeeder creates a feeder for controls
func NewFeeder(controls *orbit.Controls) *Feeder {
	return &Feeder{
		controls: controls,
		touches:  make(map[int]orbit.Touch),
	}
}

// Feed applies one frame of input
func (f *Feeder) Feed(s Snapshot) {
	c := f.controls
	c.SetViewport(s.Width, s.Height)

	if s.Inside != f.inside {
		f.inside = s.Inside
		if s.Inside {
			c.PointerEnter()
		} else {
			c.PointerLeave()
		}
	}

	if s.X != f.x || s.Y != f.y {
		f.x, f.y = s.X, s.Y
		c.PointerMove(orbit.PointerEvent{X: s.X, Y: s.Y})
	}

	for _, b := range s.Released {
		c.PointerUp(f.pointer(b, s.Modifier))
	}
	if s.Inside {
		for _, b := range s.Pressed {
			c.PointerDown(f.pointer(b, s.Modifier))
		}
		// Hosts report scrolling away from the user as positive
		if s.Wheel != 0 {
			c.Wheel(orbit.WheelEvent{DeltaY: -s.Wheel})
		}
	}

	f.feedTouches(s.Touches)
}

func (f *Feeder) pointer(b orbit.Button, modifier bool) orbit.PointerEvent {
	return orbit.PointerEvent{Button: b, X: f.x, Y: f.y, Modifier: modifier}
}

// feedTouches reports ended, started and moved contacts in that order
func (f *Feeder) feedTouches(touches []orbit.Touch) {
	current := make(map[int]orbit.Touch, len(touches))
	for _, t := range touches {
		current[t.ID] = t
	}

	var ended, started, moved []orbit.Touch
	for id, t := range f.touches {
		if _, ok := current[id]; !ok {
			ended = append(ended, t)
		}
	}
	for _, t := range touches {
		prev, ok := f.touches[t.ID]
		switch {
		case !ok:
			started = append(started, t)
		case prev != t:
			moved = append(moved, t)
		}
	}
	f.touches = current

	// Map iteration order is random; keep events deterministic
	sort.Slice(ended, func(i, j int) bool { return ended[i].ID < ended[j].ID })

	if len(ended) > 0 {
		f.controls.TouchEnd(ended...)
	}
	if len(started) > 0 {
		f.controls.TouchStart(started...)
	}
	if len(moved) > 0 {
		f.controls.TouchMove(moved...)
	}
}
