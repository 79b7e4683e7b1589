package app

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	gizmoSize   = float32(40) // pixels
	gizmoOffset = float32(30)
)

type gizmoAxis struct {
	dir   mgl64.Vec3
	label string
	color rl.Color
}

var gizmoAxes = []gizmoAxis{
	{mgl64.Vec3{1, 0, 0}, "X", rl.NewColor(230, 70, 70, 255)},
	{mgl64.Vec3{0, 1, 0}, "Y", rl.NewColor(80, 200, 80, 255)},
	{mgl64.Vec3{0, 0, 1}, "Z", rl.NewColor(80, 130, 240, 255)},
}

// drawAxesGizmo draws the world axes as seen from the camera in the bottom-right corner
func (app *App) drawAxesGizmo() {
	origin := rl.Vector2{
		X: float32(rl.GetScreenWidth()) - gizmoSize - gizmoOffset,
		Y: float32(rl.GetScreenHeight()) - gizmoSize - gizmoOffset,
	}
	toCamera := app.Controls.Pivot().Orientation.Inverse()

	type projected struct {
		axis  gizmoAxis
		end   rl.Vector2
		depth float64
	}
	axes := make([]projected, 0, len(gizmoAxes))
	for _, a := range gizmoAxes {
		v := toCamera.Rotate(a.dir)
		axes = append(axes, projected{
			axis: a,
			// screen Y grows downwards
			end:   rl.Vector2{X: origin.X + float32(v[0])*gizmoSize, Y: origin.Y - float32(v[1])*gizmoSize},
			depth: v[2],
		})
	}

	// Axes pointing at the viewer are drawn last
	sort.Slice(axes, func(i, j int) bool { return axes[i].depth < axes[j].depth })

	for _, p := range axes {
		col := p.axis.color
		if p.depth < 0 {
			col = rl.ColorAlpha(col, 0.5)
		}
		rl.DrawLineEx(origin, p.end, 2, col)
		rl.DrawCircleV(p.end, 3, col)
		rl.DrawText(p.axis.label, int32(p.end.X)+4, int32(p.end.Y)-6, 12, col)
	}
}
