package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ctxos/desktop/backend/internal/shared/id"
)

// Size limits (in bytes)
const (
	MaxJSONSize    = 1 * 1024 * 1024 // Request bodies
	MaxMessageSize = 16 * 1024       // Single stream message
)

// String length limits
const (
	MaxIDLength     = 128
	MaxPathLength   = 1024
	MaxQueryLength  = 256
	MaxPatternDepth = 32
)

// SafeIDPattern allows alphanumeric, hyphens, underscores
var SafeIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateID validates a window or app id
func ValidateID(value string, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	if len(value) > MaxIDLength {
		return fmt.Errorf("%s exceeds maximum length of %d", fieldName, MaxIDLength)
	}
	if !SafeIDPattern.MatchString(value) {
		return fmt.Errorf("%s contains invalid characters (allowed: a-z, A-Z, 0-9, _, -)", fieldName)
	}
	return nil
}

// ValidateWindowID checks that id has the shape of a generated window id
// ("win_" + ULID)
func ValidateWindowID(windowID string) error {
	if err := ValidateID(windowID, "window_id"); err != nil {
		return err
	}
	if !id.IsWindowID(windowID) {
		return fmt.Errorf("window_id %q is not a window id", windowID)
	}
	return nil
}

// ValidatePath validates a virtual file path. Resolution itself decides
// whether the path exists.
func ValidatePath(path string, fieldName string, required bool) error {
	if path == "" {
		if required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
	if len(path) > MaxPathLength {
		return fmt.Errorf("%s exceeds maximum length of %d", fieldName, MaxPathLength)
	}
	if !utf8.ValidString(path) {
		return fmt.Errorf("%s must be valid UTF-8", fieldName)
	}
	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("%s contains a NUL byte", fieldName)
	}
	return nil
}

// ValidatePattern validates a glob pattern
func ValidatePattern(pattern string) error {
	if err := ValidatePath(pattern, "pattern", true); err != nil {
		return err
	}
	if strings.Count(pattern, "/") > MaxPatternDepth {
		return fmt.Errorf("pattern exceeds maximum depth of %d", MaxPatternDepth)
	}
	return nil
}

// ValidateQuery validates a palette search query
func ValidateQuery(query string) error {
	if utf8.RuneCountInString(query) > MaxQueryLength {
		return fmt.Errorf("query exceeds maximum length of %d", MaxQueryLength)
	}
	if !utf8.ValidString(query) {
		return fmt.Errorf("query must be valid UTF-8")
	}
	return nil
}
