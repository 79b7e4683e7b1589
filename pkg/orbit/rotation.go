package orbit

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Degrees is an orbit rotation in degrees
type Degrees struct {
	Vertical   float64 `yaml:"vertical"`
	Horizontal float64 `yaml:"horizontal"`
}

// HalfTurns normalises both angles modulo 360 and converts them to half-turns
func (d Degrees) HalfTurns() Rotation {
	return Rotation{
		Vertical:   math.Mod(d.Vertical, 360) / 180,
		Horizontal: math.Mod(d.Horizontal, 360) / 180,
	}
}

// Rotation is an orbit rotation in half-turns, 1.0 is 180 degrees
type Rotation struct {
	Vertical   float64
	Horizontal float64
}

// Degrees converts the rotation to degrees
func (r Rotation) Degrees() Degrees {
	return Degrees{Vertical: r.Vertical * 180, Horizontal: r.Horizontal * 180}
}

// Quat returns the pivot orientation: yaw around Y applied after pitch around X
func (r Rotation) Quat() mgl64.Quat {
	pitch := mgl64.QuatRotate(r.Vertical*math.Pi, mgl64.Vec3{1, 0, 0})
	yaw := mgl64.QuatRotate(r.Horizontal*math.Pi, mgl64.Vec3{0, 1, 0})
	return yaw.Mul(pitch)
}

// Range is an inclusive [min, max] interval
type Range [2]float64

// Unbounded accepts every value
var Unbounded = Range{math.Inf(-1), math.Inf(1)}

// Clamp limits v to the range
func (r Range) Clamp(v float64) float64 {
	if v < r[0] {
		v = r[0]
	}
	if v > r[1] {
		v = r[1]
	}
	return v
}

// Limits holds per-axis rotation ranges in half-turns
type Limits struct {
	Vertical   Range
	Horizontal Range
}

// UnboundedLimits allows free rotation on both axes
func UnboundedLimits() Limits {
	return Limits{Vertical: Unbounded, Horizontal: Unbounded}
}

// degreeRange converts a [min, max] pair in degrees to half-turns.
// Reversed pairs are kept; Clamp then settles on max.
func degreeRange(r [2]float64) Range {
	return Range{r[0] / 180, r[1] / 180}
}

type rotationState struct {
	current Rotation
	limits  Limits
}

func newRotationState() rotationState {
	return rotationState{limits: UnboundedLimits()}
}

func (s *rotationState) set(r Rotation) {
	s.current = r
	s.clamp()
}

func (s *rotationState) clamp() {
	s.current.Vertical = s.limits.Vertical.Clamp(s.current.Vertical)
	s.current.Horizontal = s.limits.Horizontal.Clamp(s.current.Horizontal)
}

// drag applies a normalised screen delta relative to the rotation at gesture start
func (s *rotationState) drag(anchor Rotation, delta mgl64.Vec2, correction float64) {
	s.set(Rotation{
		Vertical:   anchor.Vertical - delta.Y(),
		Horizontal: anchor.Horizontal - delta.X()*correction,
	})
}

// horizontalCorrection flips horizontal drags once the camera has orbited past a pole
func horizontalCorrection(vertical float64) float64 {
	check := math.Mod(math.Abs(vertical), 2)
	if check > 0.5 && check < 1.5 {
		return -1
	}
	return 1
}
