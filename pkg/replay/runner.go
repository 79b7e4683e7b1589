package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/orbit"
)

// ErrUnknownAction is returned for steps that name no known action
var ErrUnknownAction = errors.New("unknown action")

var errArgumentNumber = errors.New("invalid number of arguments")

// Camera records what Controls publish
type Camera struct {
	Near     float64
	Far      float64
	Distance float64
}

// SetClipPlanes records the clip planes
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near, c.Far = near, far
}

// SetDistance records the camera distance
func (c *Camera) SetDistance(distance float64) {
	c.Distance = distance
}

// Result is the controller state after a replay
type Result struct {
	Zoom     float64       `yaml:"zoom"`
	Rotation orbit.Degrees `yaml:"rotation"`
	Pan      [3]float64    `yaml:"pan"`
	Gesture  string        `yaml:"gesture"`
	Distance float64       `yaml:"distance"`
	Frames   int           `yaml:"frames"`
	Intents  []string      `yaml:"intents,omitempty"`
}

// Runner feeds script steps into Controls
type Runner struct {
	Controls *orbit.Controls
	Camera   *Camera

	object  orbit.Object
	frames  int
	intents []string
}

// NewRunner creates controls for the script; they are initialised by the first
// "init" step, or before the first step when the script has none
func NewRunner(s *Script, object orbit.Object) *Runner {
	r := &Runner{Camera: &Camera{}, object: object}
	r.Controls = orbit.New(s.Settings,
		orbit.WithViewport(s.Viewport[0], s.Viewport[1]),
		orbit.WithIntentHandler(func(i orbit.Intent) {
			r.intents = append(r.intents, i.String())
		}),
	)
	return r
}

// Run replays every step of the script
func Run(s *Script) (*Result, error) {
	object, err := s.Object()
	if err != nil {
		return nil, err
	}

	r := NewRunner(s, object)
	if !hasInit(s.Steps) {
		r.init()
	}
	for i, step := range s.Steps {
		if err := r.Exec(step); err != nil {
			return nil, fmt.Errorf("step %d %q: %w", i+1, step, err)
		}
	}
	return r.Result(), nil
}

func hasInit(steps []string) bool {
	for _, step := range steps {
		if fields := strings.Fields(step); len(fields) > 0 && fields[0] == "init" {
			return true
		}
	}
	return false
}

func (r *Runner) init() {
	r.Controls.Init(r.Camera, r.object, nil)
}

// Exec runs a single step such as "down primary 10 20" or "wheel -1"
func (r *Runner) Exec(step string) error {
	fields := strings.Fields(step)
	if len(fields) == 0 {
		return nil
	}
	fn, ok := actions[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, fields[0])
	}
	return fn(r, fields[1:])
}

// Result returns the current controller state
func (r *Runner) Result() *Result {
	c := r.Controls
	pan := c.PanOffset()
	return &Result{
		Zoom:     c.CurrentZoom(),
		Rotation: c.CurrentRotation(),
		Pan:      [3]float64(pan),
		Gesture:  c.Gesture().String(),
		Distance: r.Camera.Distance,
		Frames:   r.frames,
		Intents:  r.intents,
	}
}

var actions = map[string]func(r *Runner, args []string) error{
	"init": func(r *Runner, args []string) error {
		if len(args) != 0 {
			return errArgumentNumber
		}
		r.init()
		return nil
	},
	"tick": func(r *Runner, args []string) error {
		n := 1
		switch len(args) {
		case 0:
		case 1:
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			n = v
		default:
			return errArgumentNumber
		}
		for i := 0; i < n; i++ {
			r.Controls.Advance()
			r.frames++
		}
		return nil
	},
	"viewport": func(r *Runner, args []string) error {
		v, err := floats(args, 2)
		if err != nil {
			return err
		}
		r.Controls.SetViewport(v[0], v[1])
		return nil
	},
	"down": func(r *Runner, args []string) error {
		return pointerDown(r, args, false)
	},
	"ctrl-down": func(r *Runner, args []string) error {
		return pointerDown(r, args, true)
	},
	"move": func(r *Runner, args []string) error {
		v, err := floats(args, 2)
		if err != nil {
			return err
		}
		r.Controls.PointerMove(orbit.PointerEvent{X: v[0], Y: v[1]})
		return nil
	},
	"up": func(r *Runner, args []string) error {
		if len(args) != 0 {
			return errArgumentNumber
		}
		r.Controls.PointerUp(orbit.PointerEvent{})
		return nil
	},
	"enter": func(r *Runner, args []string) error {
		r.Controls.PointerEnter()
		return nil
	},
	"leave": func(r *Runner, args []string) error {
		r.Controls.PointerLeave()
		return nil
	},
	"wheel": func(r *Runner, args []string) error {
		v, err := floats(args, 1)
		if err != nil {
			return err
		}
		r.Controls.Wheel(orbit.WheelEvent{DeltaY: v[0]})
		return nil
	},
	"touch-start": func(r *Runner, args []string) error {
		touches, err := parseTouches(args)
		if err != nil {
			return err
		}
		r.Controls.TouchStart(touches...)
		return nil
	},
	"touch-move": func(r *Runner, args []string) error {
		touches, err := parseTouches(args)
		if err != nil {
			return err
		}
		r.Controls.TouchMove(touches...)
		return nil
	},
	"touch-end": func(r *Runner, args []string) error {
		var touches []orbit.Touch
		for _, a := range args {
			id, err := strconv.Atoi(a)
			if err != nil {
				return err
			}
			touches = append(touches, orbit.Touch{ID: id})
		}
		r.Controls.TouchEnd(touches...)
		return nil
	},
	"touch-cancel": func(r *Runner, args []string) error {
		r.Controls.TouchCancel()
		return nil
	},
	"zoom": func(r *Runner, args []string) error {
		if len(args) != 1 {
			return errArgumentNumber
		}
		r.Controls.SetCurrentZoom(orbit.ParseZoomSpec(args[0]))
		return nil
	},
	"rotation": func(r *Runner, args []string) error {
		v, err := floats(args, 2)
		if err != nil {
			return err
		}
		r.Controls.SetCurrentRotation(orbit.Degrees{Vertical: v[0], Horizontal: v[1]})
		return nil
	},
	"reset": func(r *Runner, args []string) error {
		if len(args) != 1 {
			return errArgumentNumber
		}
		switch args[0] {
		case "rotation":
			r.Controls.ResetRotation()
		case "position":
			r.Controls.ResetPosition()
		case "zoom":
			r.Controls.ResetZoom()
		default:
			return fmt.Errorf("cannot reset %q", args[0])
		}
		return nil
	},
	"allow": func(r *Runner, args []string) error {
		if len(args) != 2 {
			return errArgumentNumber
		}
		on, err := strconv.ParseBool(args[1])
		if err != nil {
			return err
		}
		switch args[0] {
		case "rotate":
			r.Controls.SetCanRotate(on)
		case "pan":
			r.Controls.SetCanPan(on)
		case "zoom":
			r.Controls.SetCanZoom(on)
		case "focus":
			r.Controls.SetFocusDisplay(on)
		default:
			return fmt.Errorf("unknown permission %q", args[0])
		}
		return nil
	},
}

func pointerDown(r *Runner, args []string, modifier bool) error {
	if len(args) != 3 {
		return errArgumentNumber
	}
	button, err := parseButton(args[0])
	if err != nil {
		return err
	}
	v, err := floats(args[1:], 2)
	if err != nil {
		return err
	}
	r.Controls.PointerDown(orbit.PointerEvent{Button: button, X: v[0], Y: v[1], Modifier: modifier})
	return nil
}

func parseButton(s string) (orbit.Button, error) {
	switch s {
	case "primary", "left":
		return orbit.ButtonPrimary, nil
	case "middle", "tertiary":
		return orbit.ButtonTertiary, nil
	case "secondary", "right":
		return orbit.ButtonSecondary, nil
	default:
		return 0, fmt.Errorf("unknown button %q", s)
	}
}

// parseTouches reads "id x y" triples
func parseTouches(args []string) ([]orbit.Touch, error) {
	if len(args) == 0 || len(args)%3 != 0 {
		return nil, errArgumentNumber
	}
	var touches []orbit.Touch
	for i := 0; i < len(args); i += 3 {
		id, err := strconv.Atoi(args[i])
		if err != nil {
			return nil, err
		}
		v, err := floats(args[i+1:i+3], 2)
		if err != nil {
			return nil, err
		}
		touches = append(touches, orbit.Touch{ID: id, X: v[0], Y: v[1]})
	}
	return touches, nil
}

func floats(args []string, n int) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if len(args) != n {
		return v, errArgumentNumber
	}
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
