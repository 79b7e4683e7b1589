package scene

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/openscad"
	"github.com/philipparndt/orbitview/pkg/pointcloud"
	"github.com/philipparndt/orbitview/pkg/stl"
)

// ErrUnsupportedFormat is returned for files that are not STL, OpenSCAD or PCD
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Kind identifies the object representation
type Kind int

const (
	KindMesh Kind = iota
	KindPointCloud
)

func (k Kind) String() string {
	if k == KindPointCloud {
		return "point cloud"
	}
	return "mesh"
}

// Object is a loaded model centred on the origin
type Object struct {
	Path  string
	Kind  Kind
	Mesh  *stl.Model
	Cloud *pointcloud.Cloud
	// Offset is the translation applied to centre the model
	Offset mgl64.Vec3

	box geometry.Box
}

// Load reads a model file, choosing the parser by extension
func Load(path string) (*Object, error) {
	obj := &Object{Path: path}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		obj.Kind = KindMesh
		obj.Mesh = model
	case ".scad":
		model, err := renderSCAD(path)
		if err != nil {
			return nil, err
		}
		obj.Kind = KindMesh
		obj.Mesh = model
	case ".pcd":
		cloud, err := pointcloud.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse PCD file: %w", err)
		}
		obj.Kind = KindPointCloud
		obj.Cloud = cloud
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	obj.center()
	return obj, nil
}

func renderSCAD(path string) (*stl.Model, error) {
	stlFile, err := openscad.Render(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}
	defer os.Remove(stlFile)

	model, err := stl.Parse(stlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	return model, nil
}

// Sources returns the files path is built from; for OpenSCAD models this
// includes every used or included file
func Sources(path string) []string {
	if strings.ToLower(filepath.Ext(path)) == ".scad" {
		if deps, err := openscad.Dependencies(path); err == nil {
			return deps
		}
	}
	return []string{path}
}

// FromMesh wraps an already parsed mesh
func FromMesh(model *stl.Model) *Object {
	obj := &Object{Path: model.Name, Kind: KindMesh, Mesh: model}
	obj.center()
	return obj
}

// FromCloud wraps an already parsed point cloud
func FromCloud(cloud *pointcloud.Cloud) *Object {
	obj := &Object{Path: cloud.Name, Kind: KindPointCloud, Cloud: cloud}
	obj.center()
	return obj
}

// center moves the geometry so its bounding box is centred on the origin
func (o *Object) center() {
	box := o.sourceBox()
	o.Offset = box.Center().Mul(-1)
	switch o.Kind {
	case KindMesh:
		o.Mesh.Translate(o.Offset)
	case KindPointCloud:
		o.Cloud.Translate(o.Offset)
	}
	o.box = box.Translate(o.Offset)
}

func (o *Object) sourceBox() geometry.Box {
	if o.Kind == KindPointCloud {
		return o.Cloud.BoundingBox()
	}
	return o.Mesh.BoundingBox()
}

// BoundingBox returns the centred bounding box
func (o *Object) BoundingBox() geometry.Box {
	return o.box
}

// Name returns the file name without directory
func (o *Object) Name() string {
	return filepath.Base(o.Path)
}

// Size returns the number of triangles or points
func (o *Object) Size() int {
	if o.Kind == KindPointCloud {
		return o.Cloud.Len()
	}
	return o.Mesh.TriangleCount()
}
