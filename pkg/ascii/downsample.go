package ascii

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/lbeck/asciigram/pkg/errors"
)

// Default block factor: the pixel width and height one character cell
// represents during downsampling. 6x12 approximates the aspect ratio of a
// monospaced glyph.
const (
	DefaultBlockWidth  = 6
	DefaultBlockHeight = 12
)

// Downsample shrinks src to one pixel per character block using box (area)
// resampling. The result has dimensions (width/blockW, height/blockH) with
// integer floor division. Inputs smaller than a single block in either axis
// are rejected rather than producing a degenerate zero-size grid.
func Downsample(src image.Image, blockW, blockH int) (*image.Gray, error) {
	if blockW <= 0 || blockH <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "block factor must be positive, got %dx%d", blockW, blockH)
	}

	bounds := src.Bounds()
	w := bounds.Dx() / blockW
	h := bounds.Dy() / blockH
	if w == 0 || h == 0 {
		return nil, errors.New(errors.ErrCodeInvalidImage,
			"image %dx%d is smaller than one %dx%d block", bounds.Dx(), bounds.Dy(), blockW, blockH)
	}

	small := imaging.Resize(src, w, h, imaging.Box)

	gray := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(gray, gray.Bounds(), small, small.Bounds().Min, draw.Src)
	return gray, nil
}
