// Package pipeline provides the core conversion pipeline for asciigram.
//
// The pipeline chains the stages of a conversion in a single pass:
//
//  1. Decode: read the input file as 8-bit grayscale
//  2. Downsample: shrink by the block factor (one block per character)
//  3. Map: quantize intensities against the character ramp
//  4. Render: draw the grid onto a canvas sized to the original image and
//     write it to the output path
//
// There is no state between runs and no partial output: a run either writes
// the complete output file or fails with a structured error.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "photo.jpg",
//	    Output: "photo_ascii.png",
//	})
package pipeline

import (
	"path/filepath"

	"github.com/lbeck/asciigram/pkg/ascii"
	"github.com/lbeck/asciigram/pkg/errors"
	"github.com/lbeck/asciigram/pkg/raster"
)

// Defaults for the block factor. One character cell represents a
// DefaultBlockWidth x DefaultBlockHeight pixel region of the input.
const (
	DefaultBlockWidth  = ascii.DefaultBlockWidth
	DefaultBlockHeight = ascii.DefaultBlockHeight
)

// Options configures a single conversion run.
type Options struct {
	// Input is the path of the raster image to convert.
	Input string

	// Output is the path the rendered ASCII image is written to. The
	// encoding is inferred from the extension.
	Output string

	// FontPath overrides the platform default monospaced font. Empty means
	// resolve the default for the host.
	FontPath string

	// BlockWidth and BlockHeight set the downsampling block factor.
	// Zero values take the defaults.
	BlockWidth  int
	BlockHeight int
}

// SetDefaults fills in zero-valued options with their defaults.
func (o *Options) SetDefaults() {
	if o.BlockWidth == 0 {
		o.BlockWidth = DefaultBlockWidth
	}
	if o.BlockHeight == 0 {
		o.BlockHeight = DefaultBlockHeight
	}
}

// Validate checks the options before any work is done, so an unusable
// output path is rejected before decoding starts.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path cannot be empty")
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path cannot be empty")
	}
	if !raster.SupportedFormat(o.Output) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"unsupported output format %q for %s", filepath.Ext(o.Output), o.Output)
	}
	if o.BlockWidth <= 0 || o.BlockHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"block factor must be positive, got %dx%d", o.BlockWidth, o.BlockHeight)
	}
	return nil
}
