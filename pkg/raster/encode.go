package raster

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/lbeck/asciigram/pkg/errors"
)

// SupportedFormat reports whether the output path has an extension the
// encoder can handle.
func SupportedFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// Save encodes img in the format implied by the path extension and writes
// the file. The image is encoded to memory first, so a failed encode never
// leaves a partial file behind.
func Save(img image.Image, path string) error {
	var buf bytes.Buffer
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = png.Encode(&buf, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(&buf, img, nil)
	case ".gif":
		err = gif.Encode(&buf, img, nil)
	case ".bmp":
		err = bmp.Encode(&buf, img)
	case ".tif", ".tiff":
		err = tiff.Encode(&buf, img, nil)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q for %s", ext, path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderError, err, "cannot encode %s", path)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderError, err, "cannot write %s", path)
	}
	return nil
}
