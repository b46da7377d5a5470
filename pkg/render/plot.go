// Package render draws projectile trajectories to the terminal.
package render

import (
	"image/color"
	"math"

	"github.com/taigrr/tracer/pkg/math3d"
)

// Plot is a 2D grid of pixels that can be drawn to the terminal.
// Height is twice the terminal rows, one pixel per half-block.
type Plot struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewPlot creates a plot of the given size.
func NewPlot(width, height int) *Plot {
	return &Plot{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the plot with a solid color.
func (pl *Plot) Clear(c color.RGBA) {
	for i := range pl.Pixels {
		pl.Pixels[i] = c
	}
}

// SetPixel sets the pixel at (x, y). Out of bounds writes are dropped.
func (pl *Plot) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= pl.Width || y < 0 || y >= pl.Height {
		return
	}
	pl.Pixels[y*pl.Width+x] = c
}

// GetPixel returns the color at (x, y), or transparent black if out of bounds.
func (pl *Plot) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= pl.Width || y < 0 || y >= pl.Height {
		return color.RGBA{}
	}
	return pl.Pixels[y*pl.Width+x]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (pl *Plot) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		pl.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Bounds is the x/y extent of a set of points. Z is ignored.
type Bounds struct {
	Min, Max math3d.Point
}

// BoundsOf returns the smallest bounds holding every point, always
// including the ground line y = 0. Empty input gives unit bounds at the origin.
func BoundsOf(points []math3d.Point) Bounds {
	minX, minY := 0.0, 0.0
	maxX, maxY := 1.0, 1.0
	for i, p := range points {
		if i == 0 {
			minX, maxX = p.X, p.X
			minY, maxY = math.Min(0, p.Y), math.Max(0, p.Y)
			continue
		}
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	// Flat extents would divide by zero in Project.
	if maxX-minX < math3d.Epsilon {
		maxX = minX + 1
	}
	if maxY-minY < math3d.Epsilon {
		maxY = minY + 1
	}
	return Bounds{Min: math3d.P(minX, minY, 0), Max: math3d.P(maxX, maxY, 0)}
}

// Size returns the extent as a vector.
func (b Bounds) Size() math3d.Vector {
	return b.Min.VectorTo(b.Max)
}

// Project maps p into pixel coordinates on a w×h plot, with y pointing up.
func (b Bounds) Project(p math3d.Point, w, h int) (x, y int) {
	size := b.Size()
	rel := b.Min.VectorTo(p)
	fx := rel.X / size.X * float64(w-1)
	fy := rel.Y / size.Y * float64(h-1)
	return int(math.Round(fx)), h - 1 - int(math.Round(fy))
}

// DrawPath connects consecutive points with lines.
func (pl *Plot) DrawPath(points []math3d.Point, b Bounds, c color.RGBA) {
	for i, p := range points {
		x, y := b.Project(p, pl.Width, pl.Height)
		if i == 0 {
			pl.SetPixel(x, y, c)
			continue
		}
		px, py := b.Project(points[i-1], pl.Width, pl.Height)
		pl.DrawLine(px, py, x, y, c)
	}
}

// DrawMarker draws a plus-shaped marker centered on p.
func (pl *Plot) DrawMarker(p math3d.Point, b Bounds, c color.RGBA) {
	x, y := b.Project(p, pl.Width, pl.Height)
	pl.SetPixel(x, y, c)
	pl.SetPixel(x-1, y, c)
	pl.SetPixel(x+1, y, c)
	pl.SetPixel(x, y-1, c)
	pl.SetPixel(x, y+1, c)
}
