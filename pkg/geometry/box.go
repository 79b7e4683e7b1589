package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box represents an axis-aligned bounding box
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBox creates an empty bounding box that any point will extend
func NewBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

// BoxFromPoints creates the smallest box containing all points
func BoxFromPoints(points ...mgl64.Vec3) Box {
	b := NewBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// IsEmpty reports whether the box contains no point
func (b Box) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend expands the box to include a point
func (b *Box) Extend(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

// Union returns a box containing both boxes
func (b Box) Union(other Box) Box {
	if other.IsEmpty() {
		return b
	}
	out := b
	out.Extend(other.Min)
	out.Extend(other.Max)
	return out
}

// Size returns the edge lengths of the box; an empty box has zero size
func (b Box) Size() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{
		math.Abs(b.Max[0] - b.Min[0]),
		math.Abs(b.Max[1] - b.Min[1]),
		math.Abs(b.Max[2] - b.Min[2]),
	}
}

// Center returns the center point of the box
func (b Box) Center() mgl64.Vec3 {
	if b.IsEmpty() {
		return mgl64.Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the box diagonal
func (b Box) Diagonal() float64 {
	return b.Size().Len()
}

// Translate returns the box moved by offset
func (b Box) Translate(offset mgl64.Vec3) Box {
	if b.IsEmpty() {
		return b
	}
	return Box{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// Corners returns the eight corners, bottom face first
func (b Box) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{b.Min[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Min[2]},
		{b.Max[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Min[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Min[2]},
		{b.Max[0], b.Max[1], b.Max[2]},
		{b.Min[0], b.Max[1], b.Max[2]},
	}
}

// BoxEdges lists corner index pairs forming the twelve box edges
var BoxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
