// Package raster handles the image I/O ends of the pipeline: decoding
// arbitrary raster inputs to grayscale and drawing a character grid back
// onto a raster canvas with a TrueType font.
package raster

import (
	"image"
	"image/draw"
	"os"

	// Registered input codecs. Output encoding is dispatched explicitly in
	// encode.go.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/lbeck/asciigram/pkg/errors"
)

// DecodeGray reads the image file at path and returns it as 8-bit
// grayscale. Missing and undecodable files are reported with the same
// FILE_NOT_FOUND code, always carrying the path.
func DecodeGray(path string) (*image.Gray, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "image not found at %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot open image at %s", path)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot decode image at %s", path)
	}

	b := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray, nil
}
