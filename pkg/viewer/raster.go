package viewer

import (
	"image"
	"image/color"
	"math"
)

// vertex is a projected point: pixel position plus depth
type vertex struct {
	X, Y, Z float64
}

// frame is an RGBA image with a depth buffer
type frame struct {
	img   *image.RGBA
	depth []float64
}

func newFrame(width, height int, background color.RGBA) *frame {
	f := &frame{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		depth: make([]float64, width*height),
	}
	for i := range f.depth {
		f.depth[i] = math.Inf(1)
	}
	for i := 0; i < len(f.img.Pix); i += 4 {
		f.img.Pix[i+0] = background.R
		f.img.Pix[i+1] = background.G
		f.img.Pix[i+2] = background.B
		f.img.Pix[i+3] = background.A
	}
	return f
}

// plot writes a pixel if it is closer than what is already there
func (f *frame) plot(x, y int, z float64, col color.RGBA) {
	bounds := f.img.Bounds()
	if x < 0 || y < 0 || x >= bounds.Max.X || y >= bounds.Max.Y {
		return
	}
	idx := y*bounds.Max.X + x
	if z < f.depth[idx] {
		f.depth[idx] = z
		f.img.SetRGBA(x, y, col)
	}
}

// fillTriangle fills a triangle with a scanline pass and depth testing
func (f *frame) fillTriangle(a, b, c vertex, col color.RGBA) {
	// Sort vertices by Y coordinate (top to bottom)
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}

	bounds := f.img.Bounds()
	edges := [3][2]vertex{{a, b}, {b, c}, {a, c}}

	for y := int(math.Max(0, math.Ceil(a.Y))); y <= int(math.Min(float64(bounds.Max.Y-1), c.Y)); y++ {
		fy := float64(y)

		var span [2]vertex
		found := 0
		for _, e := range edges {
			if found == 2 {
				break
			}
			top, bottom := e[0], e[1]
			if top.Y == bottom.Y || fy < top.Y || fy > bottom.Y {
				continue
			}
			t := (fy - top.Y) / (bottom.Y - top.Y)
			span[found] = vertex{
				X: top.X + t*(bottom.X-top.X),
				Z: top.Z + t*(bottom.Z-top.Z),
			}
			found++
		}
		if found < 2 {
			continue
		}

		left, right := span[0], span[1]
		if left.X > right.X {
			left, right = right, left
		}

		for x := int(math.Max(0, math.Ceil(left.X))); x <= int(math.Min(float64(bounds.Max.X-1), right.X)); x++ {
			t := 0.0
			if right.X != left.X {
				t = (float64(x) - left.X) / (right.X - left.X)
			}
			f.plot(x, y, left.Z+t*(right.Z-left.Z), col)
		}
	}
}

// line draws a depth tested line using Bresenham's algorithm
func (f *frame) line(a, b vertex, col color.RGBA) {
	x1, y1 := int(math.Round(a.X)), int(math.Round(a.Y))
	x2, y2 := int(math.Round(b.X)), int(math.Round(b.Y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := math.Max(float64(max(dx, dy)), 1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		// Lines sit slightly in front of the faces they outline
		z := a.Z + (b.Z-a.Z)*float64(i)/steps - 1e-4
		f.plot(x1, y1, z, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// overlay draws a line ignoring the depth buffer
func (f *frame) overlay(a, b vertex, col color.RGBA) {
	f.line(vertex{X: a.X, Y: a.Y, Z: -1}, vertex{X: b.X, Y: b.Y, Z: -1}, col)
}

// point draws a square splat centred on p
func (f *frame) point(p vertex, size int, col color.RGBA) {
	cx, cy := int(math.Round(p.X)), int(math.Round(p.Y))
	half := size / 2
	for y := cy - half; y <= cy+half; y++ {
		for x := cx - half; x <= cx+half; x++ {
			f.plot(x, y, p.Z, col)
		}
	}
}

// border outlines the frame, used as the focus highlight
func (f *frame) border(width int, col color.RGBA) {
	bounds := f.img.Bounds()
	for i := 0; i < width; i++ {
		for x := 0; x < bounds.Max.X; x++ {
			f.img.SetRGBA(x, i, col)
			f.img.SetRGBA(x, bounds.Max.Y-1-i, col)
		}
		for y := 0; y < bounds.Max.Y; y++ {
			f.img.SetRGBA(i, y, col)
			f.img.SetRGBA(bounds.Max.X-1-i, y, col)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
