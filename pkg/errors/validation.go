package errors

import (
	"strings"
	"unicode"
)

// maxIconNameLength bounds icon names used as cache file names.
const maxIconNameLength = 200

// ValidateIconName validates an icon identifier before it is used as a file
// name inside the sprite cache.
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - No hidden names (leading dot)
//   - Maximum length of 200 characters
func ValidateIconName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidIconName, "icon name cannot be empty")
	}

	if len(name) > maxIconNameLength {
		return New(ErrCodeInvalidIconName, "icon name too long (max %d characters)", maxIconNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidIconName, "icon name %q contains whitespace or control characters", name)
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidIconName, "icon name %q cannot contain path separators", name)
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidIconName, "icon name %q cannot contain path traversal sequences (..)", name)
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidIconName, "icon name %q cannot start with a dot", name)
	}

	return nil
}

// ValidateURL validates a base URL used to build returned icon URLs.
// Only http(s) URLs and root-relative paths are accepted.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "URL cannot be empty")
	}

	if strings.HasPrefix(rawURL, "/") && !strings.HasPrefix(rawURL, "//") {
		return nil
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "URL %q must use http or https scheme or be root-relative", rawURL)
	}

	return nil
}
