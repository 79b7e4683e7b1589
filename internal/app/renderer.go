package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/orbitview/pkg/scene"
	"github.com/philipparndt/orbitview/pkg/stl"
)

// maxCloudPoints caps the points drawn per frame for large clouds
const maxCloudPoints = 200000

// stlToRaylibMesh converts an STL model to a Raylib mesh with baked lighting
func stlToRaylibMesh(model *stl.Model) rl.Mesh {
	triangleCount := len(model.Triangles)
	vertexCount := triangleCount * 3

	mesh := rl.Mesh{
		VertexCount:   int32(vertexCount),
		TriangleCount: int32(triangleCount),
	}

	vertices := make([]float32, vertexCount*3)
	normals := make([]float32, vertexCount*3)
	texcoords := make([]float32, vertexCount*2)
	colors := make([]uint8, vertexCount*4)

	// Light direction for baked lighting
	lightDir := mgl64.Vec3{-0.5, -1.0, -0.5}.Normalize()

	idx := 0
	for _, triangle := range model.Triangles {
		normal := triangle.CalculateNormal()

		// Min 30% ambient, max 100% diffuse
		lightIntensity := math.Max(0.3, -normal.Dot(lightDir))
		baseColor := 200.0
		color := [4]uint8{
			uint8(baseColor * lightIntensity * 0.5),
			uint8(baseColor * lightIntensity * 0.6),
			uint8(baseColor * lightIntensity),
			255,
		}

		for _, v := range triangle.Vertices() {
			for axis := 0; axis < 3; axis++ {
				vertices[idx*3+axis] = float32(v[axis])
				normals[idx*3+axis] = float32(normal[axis])
			}
			copy(colors[idx*4:idx*4+4], color[:])
			idx++
		}
	}

	if vertexCount > 0 {
		mesh.Vertices = &vertices[0]
		mesh.Normals = &normals[0]
		mesh.Texcoords = &texcoords[0]
		mesh.Colors = &colors[0]
	}

	// Upload mesh data to GPU
	rl.UploadMesh(&mesh, false)

	return mesh
}

// setObject prepares GPU and draw data for an object; call on the main thread
func (app *App) setObject(obj *scene.Object) {
	app.unloadModel()
	app.Model.object = obj
	app.Model.edges = nil
	app.Model.points = nil
	app.Model.colors = nil

	switch obj.Kind {
	case scene.KindMesh:
		app.Model.mesh = stlToRaylibMesh(obj.Mesh)
		app.Model.hasMesh = true
		app.Model.edges = meshEdges(obj.Mesh)
	case scene.KindPointCloud:
		app.Model.points, app.Model.colors = cloudPoints(obj)
	}
}

// unloadModel releases the GPU mesh
func (app *App) unloadModel() {
	if app.Model.hasMesh {
		rl.UnloadMesh(&app.Model.mesh)
		app.Model.hasMesh = false
	}
}

// cloudPoints samples a point cloud down to maxCloudPoints and colors it by height
func cloudPoints(obj *scene.Object) ([]rl.Vector3, []rl.Color) {
	src := obj.Cloud.Points
	step := 1
	if len(src) > maxCloudPoints {
		step = (len(src) + maxCloudPoints - 1) / maxCloudPoints
	}

	box := obj.BoundingBox()
	height := box.Size()[1]

	points := make([]rl.Vector3, 0, len(src)/step+1)
	colors := make([]rl.Color, 0, len(src)/step+1)
	for i := 0; i < len(src); i += step {
		p := src[i]
		t := 0.5
		if height > 0 {
			t = (p[1] - box.Min[1]) / height
		}
		points = append(points, toVector3(p))
		colors = append(colors, rl.NewColor(uint8(255*t), uint8(255*(1-math.Abs(2*t-1))), uint8(255*(1-t)), 255))
	}
	return points, colors
}

// drawModel renders the object inside 3D mode
func (app *App) drawModel() {
	if app.Model.hasMesh && app.View.showFilled {
		rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
	}
	if app.View.showWireframe {
		app.drawWireframe()
	}
	for i, p := range app.Model.points {
		rl.DrawPoint3D(p, app.Model.colors[i])
	}
	if app.View.showBoundingBox {
		app.drawBoundingBox()
	}
}
