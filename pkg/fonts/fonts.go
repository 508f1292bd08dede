// Package fonts loads TrueType fonts and adapts them to the logo renderer.
//
// The Go fonts from golang.org/x/image/font/gofont are compiled into the
// binary and used whenever no font file is configured, so rendering works
// without external assets. Configured font files are checked by [Preflight]
// before any rendering starts.
package fonts

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
)

// Default font data used when no font file is configured.
var (
	DefaultBold    = gobold.TTF
	DefaultRegular = goregular.TTF
)

// Preflight verifies that every non-empty path names a readable file.
// It returns a MISSING_ASSET error with a remediation hint for the first
// path that does not.
func Preflight(paths ...string) error {
	for _, p := range paths {
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeMissingAsset, err, "font file not found: %s", p).
				WithRemediation("download the font to %s, or clear the path in the [fonts] section to use the embedded Go fonts", p)
		}
		if info.IsDir() {
			return apperrors.New(apperrors.ErrCodeMissingAsset, "font path is a directory: %s", p).
				WithRemediation("point the [fonts] entry at a .ttf file")
		}
	}
	return nil
}

// Load returns the contents of path, or fallback when path is empty.
func Load(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	if err := Preflight(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMissingAsset, err, "read font %s", path)
	}
	return data, nil
}

// Parse parses TrueType font data.
func Parse(data []byte) (*truetype.Font, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidAsset, err, "parse font")
	}
	return f, nil
}
