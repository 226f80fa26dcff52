package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a relative output file name for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
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
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateToolName validates a tool name received from a transport.
// Tool names are lowercase identifiers such as "plot_line".
func ValidateToolName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "tool name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "tool name too long (max 64 characters)")
	}
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')) {
			return New(ErrCodeInvalidInput, "tool name contains invalid character %q", r)
		}
	}
	return nil
}

// ValidateColor rejects color strings that would break out of an SVG
// attribute value. It does not check that the color is known to renderers.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidConfig, "color cannot be empty")
	}
	if len(color) > 64 {
		return New(ErrCodeInvalidConfig, "color too long (max 64 characters)")
	}
	if strings.ContainsAny(color, "\"'<>&") {
		return New(ErrCodeInvalidConfig, "color %q contains invalid characters", color)
	}
	for _, r := range color {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "color contains control characters")
		}
	}
	return nil
}
