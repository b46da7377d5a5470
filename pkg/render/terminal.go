package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the plot to terminal cells and draws them on the screen.
// The plot height should be 2x the terminal height.
func (pl *Plot) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 plot rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < pl.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(pl.GetPixel(x, topY)),
					Bg: rgbaToColor(pl.GetPixel(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Colors used by the projectile viewer.
var (
	ColorBackground = color.RGBA{30, 30, 40, 255}
	ColorGround     = color.RGBA{34, 139, 34, 255}
	ColorPath       = color.RGBA{135, 206, 235, 255}
	ColorMarker     = color.RGBA{255, 255, 0, 255}
)
