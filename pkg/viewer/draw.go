package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/orbit"
	"github.com/philipparndt/orbitview/pkg/scene"
)

var (
	backgroundColor = color.RGBA{15, 18, 25, 255}
	wireColor       = color.RGBA{100, 100, 100, 255}
	boxColor        = color.RGBA{255, 200, 0, 255}
	focusColor      = color.RGBA{80, 140, 255, 255}
)

// Options selects what a frame shows
type Options struct {
	Filled      bool
	Wireframe   bool
	BoundingBox bool
	Focused     bool
}

// DefaultOptions shows filled faces only
func DefaultOptions() Options {
	return Options{Filled: true}
}

// Render draws the object as seen from view into a width x height image
func Render(obj *scene.Object, view orbit.View, width, height int, opts Options) *image.RGBA {
	f := newFrame(width, height, backgroundColor)
	p := NewProjector(view, float64(width), float64(height))

	if obj != nil {
		switch obj.Kind {
		case scene.KindMesh:
			drawMesh(f, p, obj, opts)
		case scene.KindPointCloud:
			drawCloud(f, p, obj)
		}
		if opts.BoundingBox {
			drawBox(f, p, obj.BoundingBox())
		}
	}

	if opts.Focused {
		f.border(2, focusColor)
	}
	return f.img
}

func drawMesh(f *frame, p Projector, obj *scene.Object, opts Options) {
	for _, t := range obj.Mesh.Triangles {
		var pts [3]vertex
		visible := true
		for i, v := range t.Vertices() {
			x, y, z, ok := p.Project(v)
			if !ok {
				visible = false
				break
			}
			pts[i] = vertex{x, y, z}
		}
		if !visible {
			continue
		}

		if opts.Filled {
			f.fillTriangle(pts[0], pts[1], pts[2], shade(t, p.Eye()))
		}
		if opts.Wireframe {
			f.line(pts[0], pts[1], wireColor)
			f.line(pts[1], pts[2], wireColor)
			f.line(pts[2], pts[0], wireColor)
		}
	}
}

// shade lights a facet with a headlight at the eye
func shade(t geometry.Triangle, eye mgl64.Vec3) color.RGBA {
	normal := t.CalculateNormal()
	toEye := eye.Sub(t.V1)
	if toEye.Len() > 0 {
		toEye = toEye.Normalize()
	}

	// Min 30% ambient, max 100% diffuse
	intensity := math.Max(0.3, math.Abs(normal.Dot(toEye)))
	base := 200.0
	return color.RGBA{
		R: uint8(base * intensity * 0.5),
		G: uint8(base * intensity * 0.6),
		B: uint8(base * intensity),
		A: 255,
	}
}

func drawCloud(f *frame, p Projector, obj *scene.Object) {
	box := obj.BoundingBox()
	height := box.Size()[1]

	for _, pt := range obj.Cloud.Points {
		x, y, z, ok := p.Project(pt)
		if !ok {
			continue
		}
		t := 0.5
		if height > 0 {
			t = (pt[1] - box.Min[1]) / height
		}
		f.point(vertex{x, y, z}, 2, heightColor(t))
	}
}

// heightColor maps 0..1 from blue to red
func heightColor(t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	return color.RGBA{
		R: uint8(255 * t),
		G: uint8(255 * (1 - math.Abs(2*t-1))),
		B: uint8(255 * (1 - t)),
		A: 255,
	}
}

func drawBox(f *frame, p Projector, box geometry.Box) {
	if box.IsEmpty() {
		return
	}
	var pts [8]vertex
	var ok [8]bool
	for i, c := range box.Corners() {
		x, y, z, visible := p.Project(c)
		pts[i] = vertex{x, y, z}
		ok[i] = visible
	}
	for _, e := range geometry.BoxEdges {
		if ok[e[0]] && ok[e[1]] {
			f.overlay(pts[e[0]], pts[e[1]], boxColor)
		}
	}
}
