package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength bounds the animated label. Each character adds two frames
// (typing and sweep), so long labels produce very large artifacts.
const MaxLabelLength = 64

// ValidateLabel validates the animated label text.
//
// The validation rules are intentionally conservative:
//   - Valid UTF-8
//   - No control characters (including newlines)
//   - Maximum of MaxLabelLength characters
//
// An empty label is valid: the animation then skips the typing phase.
func ValidateLabel(label string) error {
	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidInput, "label is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(label); n > MaxLabelLength {
		return New(ErrCodeInvalidInput, "label too long (%d characters, max %d)", n, MaxLabelLength)
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "label contains invalid control characters")
		}
	}
	return nil
}

// ValidateOutputPath validates a path the artifact will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
//   - Extension must be .gif when present
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	if ext := filepath.Ext(path); ext != "" && !strings.EqualFold(ext, ".gif") {
		return New(ErrCodeInvalidPath, "unsupported output extension %q (must be .gif)", ext)
	}

	return nil
}
