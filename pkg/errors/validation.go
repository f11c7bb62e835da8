package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateBounds checks tower dimensions before a tower is built from
// configuration or flags. Both must be strictly positive.
func ValidateBounds(width, maxHeight int) error {
	if width <= 0 {
		return New(ErrCodeInvalidConfig, "tower width must be positive, got %d", width)
	}
	if maxHeight <= 0 {
		return New(ErrCodeInvalidConfig, "tower max height must be positive, got %d", maxHeight)
	}
	return nil
}

// colorNameRegex matches palette names ("red", "dark-blue") and hex colors ("#ff0000").
var colorNameRegex = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|[a-zA-Z][a-zA-Z0-9_-]*)$`)

// ValidateColor validates a color token as accepted by the renderers.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if len(color) > 32 {
		return New(ErrCodeInvalidColor, "color too long (max 32 characters)")
	}
	if !colorNameRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color: %q", color)
	}
	return nil
}

// ValidatePath validates a user-supplied file path (scripts, outputs).
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
