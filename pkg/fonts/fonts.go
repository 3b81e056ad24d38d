// Package fonts resolves a default monospaced font file for the host
// platform.
//
// The resolver knows a well-known monospaced font path for macOS, Windows
// and Linux. When the well-known file is missing (common on minimal Linux
// installs), it falls back to searching the system font directories. Any
// other platform requires an explicit font path from the caller.
package fonts

import (
	"os"
	"runtime"

	"github.com/flopp/go-findfont"

	"github.com/lbeck/asciigram/pkg/errors"
)

// Well-known monospaced font locations per platform.
const (
	darwinFont  = "/System/Library/Fonts/Supplemental/Menlo.ttc"
	windowsFont = `C:\Windows\Fonts\consola.ttf` // Consolas
	linuxFont   = "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf"
)

// searchNames are tried against the system font directories when the
// well-known path for the platform does not exist.
var searchNames = []string{"DejaVuSansMono.ttf", "Menlo.ttc", "consola.ttf", "LiberationMono-Regular.ttf"}

// Resolver locates a default monospaced font for a platform.
// The zero value is not usable; construct one with NewResolver.
type Resolver struct {
	goos string
	stat func(string) (os.FileInfo, error)
	find func(string) (string, error)
}

// NewResolver returns a resolver for the current platform.
func NewResolver() *Resolver {
	return &Resolver{
		goos: runtime.GOOS,
		stat: os.Stat,
		find: findfont.Find,
	}
}

// newResolverFor returns a resolver with injected platform and lookups.
// Used by tests to exercise platform branches without the host filesystem.
func newResolverFor(goos string, stat func(string) (os.FileInfo, error), find func(string) (string, error)) *Resolver {
	return &Resolver{goos: goos, stat: stat, find: find}
}

// Default returns the path of the default monospaced font for the
// resolver's platform. It returns an UNSUPPORTED_PLATFORM error for
// platforms without a known font location, and a FONT_NOT_FOUND error when
// neither the well-known path nor the font search turns up a usable file.
func (r *Resolver) Default() (string, error) {
	var path string
	switch r.goos {
	case "darwin":
		path = darwinFont
	case "windows":
		path = windowsFont
	case "linux":
		path = linuxFont
	default:
		return "", errors.New(errors.ErrCodeUnsupportedPlatform,
			"no default font for %s, specify a font path explicitly", r.goos)
	}

	if _, err := r.stat(path); err == nil {
		return path, nil
	}

	// Well-known file is missing, search the system font directories.
	for _, name := range searchNames {
		if found, err := r.find(name); err == nil {
			return found, nil
		}
	}

	return "", errors.New(errors.ErrCodeFontNotFound,
		"no monospaced font found on %s, specify a font path explicitly", r.goos)
}
