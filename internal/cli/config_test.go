package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lbeck/asciigram/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
font = "/fonts/Hack-Regular.ttf"
block_width = 8
block_height = 16
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Font != "/fonts/Hack-Regular.ttf" {
		t.Errorf("Font = %q", cfg.Font)
	}
	if cfg.BlockWidth != 8 || cfg.BlockHeight != 16 {
		t.Errorf("block = %dx%d, want 8x16", cfg.BlockWidth, cfg.BlockHeight)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not be an error, got %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero value", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `font = "/fonts/mono.ttf"`))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Font != "/fonts/mono.ttf" || cfg.BlockWidth != 0 || cfg.BlockHeight != 0 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", `font = `},
		{"negative block", `block_width = -6`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error = %v", err)
	}
	want := filepath.Join("/tmp/xdg", appName, "config.toml")
	if got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}
