package raster

import (
	"image"
	"image/draw"
	"math"
	"os"

	"github.com/golang/freetype"

	"github.com/lbeck/asciigram/pkg/ascii"
	"github.com/lbeck/asciigram/pkg/errors"
)

const (
	// fontSizeFactor scales the glyph point size relative to the smaller
	// cell edge. Glyph boxes overlap their neighbors slightly, which fills
	// the canvas the way the original block did.
	fontSizeFactor = 1.5

	renderDPI = 72
)

// Render draws grid in black onto a white width x height canvas using the
// TrueType font at fontPath. Cell dimensions are width/cols and
// height/rows, independent of the block factor used for downsampling: the
// grid is stretched back to the full canvas.
func Render(grid ascii.Grid, width, height int, fontPath string) (*image.RGBA, error) {
	rows, cols := grid.Rows(), grid.Cols()
	if rows == 0 || cols == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot render an empty grid")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas size %dx%d must be positive", width, height)
	}

	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "cannot read font %s", fontPath)
	}
	fnt, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontError, err, "cannot parse font %s", fontPath)
	}

	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)
	size := math.Floor(math.Min(cellW, cellH) * fontSizeFactor)
	if size < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"canvas %dx%d is too small for a %dx%d grid", width, height, cols, rows)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(renderDPI)
	c.SetFont(fnt)
	c.SetFontSize(size)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)

	baseline := int(size) // glyphs are anchored by their baseline, not their top edge
	for i, line := range grid {
		for j := 0; j < len(line); j++ {
			ch := line[j]
			if ch == ' ' {
				continue
			}
			pt := freetype.Pt(int(float64(j)*cellW), int(float64(i)*cellH)+baseline)
			if _, err := c.DrawString(string(ch), pt); err != nil {
				return nil, errors.Wrap(errors.ErrCodeRenderError, err, "cannot draw %q at cell (%d,%d)", ch, j, i)
			}
		}
	}
	return img, nil
}
