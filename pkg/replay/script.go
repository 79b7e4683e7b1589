package replay

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
	"gopkg.in/yaml.v3"
)

// Script is a recorded interaction replayed against Controls
type Script struct {
	// Viewport is the width and height in pixels
	Viewport [2]float64 `yaml:"viewport"`
	// Model is a file loaded with scene.Load; Box is used when it is empty
	Model    string         `yaml:"model,omitempty"`
	Box      [3]float64     `yaml:"box,omitempty"`
	Settings orbit.Settings `yaml:"settings,omitempty"`
	Steps    []string       `yaml:"steps"`
}

// LoadScript reads a script from a YAML file
func LoadScript(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a script from YAML
func ParseScript(data []byte) (*Script, error) {
	s := &Script{Viewport: [2]float64{800, 600}}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return s, nil
}

// Object returns the object the script orbits
func (s *Script) Object() (orbit.Object, error) {
	if s.Model != "" {
		obj, err := scene.Load(s.Model)
		if err != nil {
			return nil, err
		}
		return obj, nil
	}
	half := mgl64.Vec3(s.Box).Mul(0.5)
	return boxObject(geometry.BoxFromPoints(half.Mul(-1), half)), nil
}

type boxObject geometry.Box

func (b boxObject) BoundingBox() geometry.Box {
	return geometry.Box(b)
}
