package pointcloud

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/seqsense/pcgol/pc"
)

func TestFromAccessor(t *testing.T) {
	cloud := FromAccessor(pc.Vec3Slice{
		{10, -20, 3},
		{1, 2, 4},
		{15, 21, 0},
	})

	if cloud.Len() != 3 {
		t.Fatalf("Len failed: expected 3, got %d", cloud.Len())
	}

	bbox := cloud.BoundingBox()
	if bbox.Min != (mgl64.Vec3{1, -20, 0}) {
		t.Errorf("BoundingBox min failed: got %v", bbox.Min)
	}
	if bbox.Max != (mgl64.Vec3{15, 21, 4}) {
		t.Errorf("BoundingBox max failed: got %v", bbox.Max)
	}
}

func TestEncodeDecode(t *testing.T) {
	in := &Cloud{Points: []mgl64.Vec3{
		{1, 2, 3},
		{-4, 5, 6.5},
	}}

	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	out, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.Len() != in.Len() {
		t.Fatalf("Expected %d points, got %d", in.Len(), out.Len())
	}
	for i := range in.Points {
		if in.Points[i].Sub(out.Points[i]).Len() > 1e-6 {
			t.Errorf("Point %d: expected %v, got %v", i, in.Points[i], out.Points[i])
		}
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.pcd")
	in := &Cloud{Points: []mgl64.Vec3{{0, 0, 0}, {2, 4, 8}}}

	var buf bytes.Buffer
	if err := in.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	cloud, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if size := cloud.BoundingBox().Size(); size != (mgl64.Vec3{2, 4, 8}) {
		t.Errorf("BoundingBox size failed: expected (2, 4, 8), got %v", size)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(t.TempDir(), "missing.pcd")); err == nil {
		t.Error("Missing file must be reported")
	}
}

func TestTranslate(t *testing.T) {
	cloud := FromAccessor(pc.Vec3Slice{{1, 1, 1}, {3, 3, 3}})
	cloud.Translate(mgl64.Vec3{-2, -2, -2})

	if c := cloud.BoundingBox().Center(); c != (mgl64.Vec3{}) {
		t.Errorf("Translate failed: expected centered cloud, got center %v", c)
	}
}
