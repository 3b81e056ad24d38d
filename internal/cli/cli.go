// Package cli implements the asciigram command-line interface.
//
// asciigram is a single-command tool: it converts a raster image into an
// ASCII-art rendition and writes that rendition back out as a raster image.
// The package wires the flag surface, optional TOML configuration and
// terminal output around the conversion pipeline in pkg/pipeline.
//
// # Logging
//
// The command supports --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context via withLogger/loggerFromContext.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lbeck/asciigram/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "asciigram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. The tool has no subcommands:
// the root command itself performs the conversion.
func (c *CLI) RootCommand() *cobra.Command {
	var opts convertOpts

	root := &cobra.Command{
		Use:          appName,
		Short:        "Asciigram converts images into ASCII art and back into images",
		Long:         `Asciigram converts a raster image into an ASCII-art representation, then renders that text back onto a canvas of the original size and saves it as an image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.input, "input", "i", "", "path to the input image (required)")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "path to save the output ASCII art image (required)")
	root.Flags().StringVar(&opts.font, "font", "", "TrueType font file overriding the platform default")
	_ = root.MarkFlagRequired("input")
	_ = root.MarkFlagRequired("output")

	return root
}

// configPath returns the config file location using the XDG standard
// (~/.config/asciigram/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
