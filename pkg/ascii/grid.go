package ascii

import (
	"image"
	"strings"
)

// Grid is an ASCII-art image: one string per row, one character per column.
// All rows have equal length. A Grid is immutable after creation.
type Grid []string

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid (0 for an empty grid).
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// String joins the grid rows with newlines.
func (g Grid) String() string {
	return strings.Join(g, "\n")
}

// FromGray quantizes every pixel of a grayscale image against the ramp,
// producing one grid row per pixel row in top-to-bottom order.
func FromGray(img *image.Gray, ramp Ramp) Grid {
	bounds := img.Bounds()
	grid := make(Grid, 0, bounds.Dy())

	var row strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row.Reset()
		row.Grow(bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			row.WriteByte(ramp.Char(img.GrayAt(x, y).Y))
		}
		grid = append(grid, row.String())
	}
	return grid
}
