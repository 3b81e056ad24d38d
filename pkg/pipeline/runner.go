package pipeline

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lbeck/asciigram/pkg/ascii"
	"github.com/lbeck/asciigram/pkg/fonts"
	"github.com/lbeck/asciigram/pkg/raster"
)

// Runner executes the conversion pipeline.
type Runner struct {
	fonts  *fonts.Resolver
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil resolver uses the host
// platform's font resolver; a nil logger uses the package default.
func NewRunner(resolver *fonts.Resolver, logger *log.Logger) *Runner {
	if resolver == nil {
		resolver = fonts.NewResolver()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{fonts: resolver, logger: logger}
}

// Result holds the outcome of a conversion run.
type Result struct {
	// Grid is the intermediate ASCII grid.
	Grid ascii.Grid

	// Width and Height are the original input dimensions, which are also
	// the output canvas dimensions.
	Width  int
	Height int

	// OutputPath is the file the rendered image was written to.
	OutputPath string
}

// Execute runs the full decode → downsample → map → render pipeline.
// On any error the run aborts without writing an output file.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	src, err := raster.DecodeGray(opts.Input)
	if err != nil {
		return nil, err
	}
	width, height := src.Bounds().Dx(), src.Bounds().Dy()
	r.logger.Debugf("Decoded %s: %dx%d", opts.Input, width, height)

	small, err := ascii.Downsample(src, opts.BlockWidth, opts.BlockHeight)
	if err != nil {
		return nil, err
	}

	grid := ascii.FromGray(small, ascii.DefaultRamp)
	r.logger.Debugf("Mapped %dx%d character grid", grid.Cols(), grid.Rows())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fontPath := opts.FontPath
	if fontPath == "" {
		if fontPath, err = r.fonts.Default(); err != nil {
			return nil, err
		}
		r.logger.Debugf("Using font %s", fontPath)
	}

	img, err := raster.Render(grid, width, height, fontPath)
	if err != nil {
		return nil, err
	}
	if err := raster.Save(img, opts.Output); err != nil {
		return nil, err
	}

	r.logger.Debugf("Wrote %s (%dx%d canvas)", opts.Output, width, height)
	return &Result{
		Grid:       grid,
		Width:      width,
		Height:     height,
		OutputPath: opts.Output,
	}, nil
}
