package orbit

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type zoomKind uint8

const (
	zoomUnspecified zoomKind = iota
	zoomDistance
	zoomPercent
)

// ZoomSpec is a zoom distance given either absolutely or as a percentage of the recommended distance.
// The zero value is unspecified.
type ZoomSpec struct {
	kind     zoomKind
	distance float64
	percent  string
}

// Distance returns an absolute zoom spec
func Distance(v float64) ZoomSpec {
	return ZoomSpec{kind: zoomDistance, distance: v}
}

// Percent returns a spec relative to the recommended distance, e.g. "50%"
func Percent(s string) ZoomSpec {
	return ZoomSpec{kind: zoomPercent, percent: s}
}

// ParseZoomSpec turns command line or config text into a spec.
// Plain numbers are absolute distances, anything else is read as a percentage.
func ParseZoomSpec(s string) ZoomSpec {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZoomSpec{}
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Distance(v)
	}
	return Percent(s)
}

// IsZero reports whether the spec is unspecified
func (z ZoomSpec) IsZero() bool {
	return z.kind == zoomUnspecified
}

// Resolve converts the spec to an absolute distance
func (z ZoomSpec) Resolve(recommended, unspecified float64) float64 {
	switch z.kind {
	case zoomDistance:
		return z.distance
	case zoomPercent:
		return recommended * percentOf(z.percent) / 100
	default:
		return unspecified
	}
}

// percentOf returns the digits of "<digits>%", falling back to 100 for anything else
func percentOf(s string) float64 {
	body, ok := strings.CutSuffix(s, "%")
	if !ok || body == "" {
		return 100
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return 100
		}
	}
	v, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 100
	}
	return v
}

func (z ZoomSpec) String() string {
	switch z.kind {
	case zoomDistance:
		return strconv.FormatFloat(z.distance, 'g', -1, 64)
	case zoomPercent:
		return z.percent
	default:
		return ""
	}
}

// MarshalYAML writes distances as numbers and percentages as strings
func (z ZoomSpec) MarshalYAML() (interface{}, error) {
	switch z.kind {
	case zoomDistance:
		return z.distance, nil
	case zoomPercent:
		return z.percent, nil
	default:
		return nil, nil
	}
}

// UnmarshalYAML accepts a number, a percentage string or null
func (z *ZoomSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: zoom must be a number or a percentage", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*z = ZoomSpec{}
	case "!!int", "!!float":
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid zoom distance: %w", node.Line, err)
		}
		*z = Distance(v)
	default:
		*z = Percent(node.Value)
	}
	return nil
}
