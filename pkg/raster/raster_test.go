package raster

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lbeck/asciigram/pkg/ascii"
	"github.com/lbeck/asciigram/pkg/errors"
	"github.com/lbeck/asciigram/pkg/fonts"
)

// testFontPath returns a usable monospaced font or skips the test when the
// host has none.
func testFontPath(t *testing.T) string {
	t.Helper()
	path, err := fonts.NewResolver().Default()
	if err != nil {
		t.Skipf("no system font available: %v", err)
	}
	return path
}

func TestRenderCanvasSize(t *testing.T) {
	font := testFontPath(t)
	grid := ascii.Grid{"@@", "@@"}

	img, err := Render(grid, 60, 48, font)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := img.Bounds(); got.Dx() != 60 || got.Dy() != 48 {
		t.Errorf("canvas = %dx%d, want 60x48", got.Dx(), got.Dy())
	}
}

func TestRenderSpacesLeaveCanvasWhite(t *testing.T) {
	font := testFontPath(t)
	grid := ascii.Grid{"  ", "  "}

	img, err := Render(grid, 12, 24, font)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 24; y++ {
		for x := 0; x < 12; x++ {
			if img.RGBAAt(x, y) != white {
				t.Fatalf("pixel (%d,%d) = %v, want white", x, y, img.RGBAAt(x, y))
			}
		}
	}
}

func TestRenderDrawsInk(t *testing.T) {
	font := testFontPath(t)
	grid := ascii.Grid{"@"}

	img, err := Render(grid, 6, 12, font)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	white := color.RGBA{255, 255, 255, 255}
	inked := false
	for y := 0; y < 12 && !inked; y++ {
		for x := 0; x < 6; x++ {
			if img.RGBAAt(x, y) != white {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("rendering @ should leave non-white pixels on the canvas")
	}
}

func TestRenderEmptyGrid(t *testing.T) {
	_, err := Render(ascii.Grid{}, 60, 48, "unused")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}

func TestRenderMissingFont(t *testing.T) {
	_, err := Render(ascii.Grid{"@"}, 6, 12, filepath.Join(t.TempDir(), "nope.ttf"))
	if !errors.Is(err, errors.ErrCodeFontNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFontNotFound)
	}
}

func TestRenderBadFontData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("definitely not a font"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Render(ascii.Grid{"@"}, 6, 12, path)
	if !errors.Is(err, errors.ErrCodeFontError) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFontError)
	}
}

func TestSaveUnsupportedFormat(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	path := filepath.Join(t.TempDir(), "out.webp")

	err := Save(img, path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an unsupported format")
	}
}

func TestSaveAndReload(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 5))
	path := filepath.Join(t.TempDir(), "out.png")

	if err := Save(img, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := DecodeGray(path)
	if err != nil {
		t.Fatalf("DecodeGray() error = %v", err)
	}
	if b := got.Bounds(); b.Dx() != 7 || b.Dy() != 5 {
		t.Errorf("reloaded image = %dx%d, want 7x5", b.Dx(), b.Dy())
	}
}

func TestSupportedFormat(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"out.png", true},
		{"out.PNG", true},
		{"out.jpg", true},
		{"out.jpeg", true},
		{"out.gif", true},
		{"out.bmp", true},
		{"out.tiff", true},
		{"out.webp", false},
		{"out", false},
	}
	for _, tt := range tests {
		if got := SupportedFormat(tt.path); got != tt.want {
			t.Errorf("SupportedFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
