package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lbeck/asciigram/pkg/errors"
)

// Config holds optional user defaults loaded from the config file.
// All fields are optional; zero values fall back to built-in defaults, and
// command-line flags take precedence over everything here.
//
// Example ~/.config/asciigram/config.toml:
//
//	font = "/usr/share/fonts/truetype/hack/Hack-Regular.ttf"
//	block_width = 6
//	block_height = 12
type Config struct {
	Font        string `toml:"font"`
	BlockWidth  int    `toml:"block_width"`
	BlockHeight int    `toml:"block_height"`
}

// loadConfig reads the TOML config file at path. A missing file is not an
// error and yields a zero Config; a file that exists but does not parse is.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse config %s", path)
	}
	if cfg.BlockWidth < 0 || cfg.BlockHeight < 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig,
			"block factor in %s must be positive, got %dx%d", path, cfg.BlockWidth, cfg.BlockHeight)
	}
	return cfg, nil
}
