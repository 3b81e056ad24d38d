package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lbeck/asciigram/pkg/errors"
	"github.com/lbeck/asciigram/pkg/pipeline"
)

// convertOpts holds the command-line flags for the conversion.
type convertOpts struct {
	input  string // path to the input image
	output string // path the rendered ASCII image is written to
	font   string // optional override for the platform default font
}

// runConvert merges flags with the optional config file and runs the
// conversion pipeline. Precedence: flag > config file > built-in default.
func runConvert(ctx context.Context, opts *convertOpts) error {
	logger := loggerFromContext(ctx)

	var cfg Config
	if path, err := configPath(); err == nil {
		if cfg, err = loadConfig(path); err != nil {
			return err
		}
	}

	pipeOpts := pipeline.Options{
		Input:       opts.input,
		Output:      opts.output,
		FontPath:    opts.font,
		BlockWidth:  cfg.BlockWidth,
		BlockHeight: cfg.BlockHeight,
	}
	if pipeOpts.FontPath == "" {
		pipeOpts.FontPath = cfg.Font
	}

	prog := newProgress(logger)
	spin := newSpinnerWithContext(ctx, "Converting "+filepath.Base(opts.input))
	spin.Start()

	result, err := pipeline.NewRunner(nil, logger).Execute(ctx, pipeOpts)
	if err != nil {
		spin.StopWithError(errors.UserMessage(err))
		return err
	}
	spin.Stop()

	prog.done(fmt.Sprintf("Converted %s into a %dx%d character grid",
		filepath.Base(opts.input), result.Grid.Cols(), result.Grid.Rows()))
	printSuccess("ASCII art saved to %s", result.OutputPath)
	return nil
}
