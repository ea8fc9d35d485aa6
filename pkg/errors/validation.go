package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputPath validates a file path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - The base name must not be "." or ".."
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
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

	if base := filepath.Base(path); base == "." || base == ".." || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path must name a file: %q", path)
	}

	return nil
}

// ValidateCount validates the number of postcards requested for a batch render.
func ValidateCount(n int) error {
	const maxCount = 100000
	if n <= 0 {
		return New(ErrCodeInvalidInput, "count must be positive, got %d", n)
	}
	if n > maxCount {
		return New(ErrCodeInvalidInput, "count too large (max %d)", maxCount)
	}
	return nil
}

// ValidateFontSize validates the label font size in points.
func ValidateFontSize(size float64) error {
	if !(size > 0) || size > 512 {
		return New(ErrCodeInvalidInput, "font size must be in (0, 512], got %g", size)
	}
	return nil
}
