package scene

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/openscad"
	"github.com/philipparndt/orbitview/pkg/pointcloud"
)

const offsetTriangle = `solid offset
facet normal 0 0 1
  outer loop
    vertex 10 10 10
    vertex 14 10 10
    vertex 10 16 12
  endloop
endfacet
endsolid offset
`

func TestLoadSTLCentersModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.STL")
	if err := os.WriteFile(path, []byte(offsetTriangle), 0o644); err != nil {
		t.Fatal(err)
	}

	obj, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if obj.Kind != KindMesh || obj.Size() != 1 {
		t.Errorf("Expected a mesh with one triangle, got %v with %d", obj.Kind, obj.Size())
	}
	if obj.Offset != (mgl64.Vec3{-12, -13, -11}) {
		t.Errorf("Offset failed: got %v", obj.Offset)
	}

	box := obj.BoundingBox()
	if box.Center() != (mgl64.Vec3{}) {
		t.Errorf("Box must be centred, got center %v", box.Center())
	}
	if box.Size() != (mgl64.Vec3{4, 6, 2}) {
		t.Errorf("Box size failed: got %v", box.Size())
	}
	if obj.Mesh.Triangles[0].V1 != (mgl64.Vec3{-2, -3, -1}) {
		t.Errorf("Geometry must be moved with the box, got %v", obj.Mesh.Triangles[0].V1)
	}
}

func TestLoadPCD(t *testing.T) {
	cloud := &pointcloud.Cloud{Points: []mgl64.Vec3{{1, 1, 1}, {3, 5, 9}}}
	var buf bytes.Buffer
	if err := cloud.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "scan.pcd")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	obj, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if obj.Kind != KindPointCloud || obj.Size() != 2 {
		t.Errorf("Expected a cloud with two points, got %v with %d", obj.Kind, obj.Size())
	}
	if c := obj.BoundingBox().Center(); c != (mgl64.Vec3{}) {
		t.Errorf("Box must be centred, got %v", c)
	}
	if obj.Name() != "scan.pcd" {
		t.Errorf("Name failed: got %q", obj.Name())
	}
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("model.obj")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.stl"))
	if err == nil || errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected a parse error, got %v", err)
	}
}

func TestLoadSCADWithoutOpenSCAD(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.scad")
	if err := os.WriteFile(path, []byte("cube(10);\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", t.TempDir())

	if _, err := Load(path); !errors.Is(err, openscad.ErrNotInstalled) {
		t.Errorf("Load failed: expected ErrNotInstalled, got %v", err)
	}
}

func TestSources(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.scad")
	lib := filepath.Join(dir, "lib.scad")
	if err := os.WriteFile(main, []byte("use <lib.scad>\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(lib, []byte("module part() {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	sources := Sources(main)
	if len(sources) != 2 || sources[0] != main || sources[1] != lib {
		t.Errorf("Sources failed: expected [%s %s], got %v", main, lib, sources)
	}

	if sources := Sources("model.stl"); len(sources) != 1 || sources[0] != "model.stl" {
		t.Errorf("Sources failed: expected [model.stl], got %v", sources)
	}
}
