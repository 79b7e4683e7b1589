package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/geometry"
	"github.com/philipparndt/orbitview/pkg/stl"
)

var (
	wireframeColor = rl.NewColor(100, 100, 100, 200)
	boundsColor    = rl.NewColor(255, 200, 0, 255)
)

// meshEdges lists every triangle edge once, in either direction
func meshEdges(model *stl.Model) [][2]rl.Vector3 {
	seen := make(map[[2]mgl64.Vec3]struct{}, len(model.Triangles)*3/2)
	edges := make([][2]rl.Vector3, 0, len(model.Triangles)*3/2)

	for _, triangle := range model.Triangles {
		v := triangle.Vertices()
		for i := 0; i < 3; i++ {
			a, b := v[i], v[(i+1)%3]
			if _, ok := seen[[2]mgl64.Vec3{b, a}]; ok {
				continue
			}
			key := [2]mgl64.Vec3{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, [2]rl.Vector3{toVector3(a), toVector3(b)})
		}
	}
	return edges
}

// drawWireframe renders the model edges
func (app *App) drawWireframe() {
	for _, edge := range app.Model.edges {
		rl.DrawLine3D(edge[0], edge[1], wireframeColor)
	}
}

// drawBoundingBox outlines the object's bounding box
func (app *App) drawBoundingBox() {
	box := app.Model.object.BoundingBox()
	if box.IsEmpty() {
		return
	}
	corners := box.Corners()
	for _, e := range geometry.BoxEdges {
		rl.DrawLine3D(toVector3(corners[e[0]]), toVector3(corners[e[1]]), boundsColor)
	}
}
