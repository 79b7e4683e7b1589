package pointcloud

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// Cloud is a point cloud reduced to its xyz positions
type Cloud struct {
	Name   string
	Points []mgl64.Vec3
}

// Parse reads a PCD file
func Parse(filename string) (*Cloud, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	cloud, err := Decode(file)
	if err != nil {
		return nil, err
	}
	cloud.Name = filename
	return cloud, nil
}

// Decode reads a PCD stream in any encoding pcgol understands
func Decode(r io.Reader) (*Cloud, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode point cloud: %w", err)
	}
	return FromPointCloud(pp)
}

// FromPointCloud extracts the xyz fields of a decoded point cloud
func FromPointCloud(pp *pc.PointCloud) (*Cloud, error) {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("point cloud has no xyz fields: %w", err)
	}
	return FromAccessor(it), nil
}

// FromAccessor copies points out of any pcgol random accessor
func FromAccessor(ra pc.Vec3RandomAccessor) *Cloud {
	cloud := &Cloud{Points: make([]mgl64.Vec3, ra.Len())}
	for i := range cloud.Points {
		cloud.Points[i] = toVec3(ra.Vec3At(i))
	}
	return cloud
}

// Len returns the number of points
func (c *Cloud) Len() int {
	return len(c.Points)
}

// BoundingBox calculates the bounding box of all points
func (c *Cloud) BoundingBox() geometry.Box {
	return geometry.BoxFromPoints(c.Points...)
}

// Translate moves every point by offset in place
func (c *Cloud) Translate(offset mgl64.Vec3) {
	for i := range c.Points {
		c.Points[i] = c.Points[i].Add(offset)
	}
}

// Encode writes the cloud as a binary xyz PCD stream
func (c *Cloud) Encode(w io.Writer) error {
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   len(c.Points),
			Height:  1,
		},
		Points: len(c.Points),
	}
	pp.Data = make([]byte, len(c.Points)*pp.Stride())

	if len(c.Points) > 0 {
		it, err := pp.Vec3Iterator()
		if err != nil {
			return err
		}
		for _, p := range c.Points {
			it.SetVec3(mat.Vec3{float32(p[0]), float32(p[1]), float32(p[2])})
			it.Incr()
		}
	}

	if err := pc.Marshal(pp, w); err != nil {
		return fmt.Errorf("failed to encode point cloud: %w", err)
	}
	return nil
}

func toVec3(v mat.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
