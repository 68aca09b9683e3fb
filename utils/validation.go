package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateRequiredString trims value and returns it, or an error naming the
// field when nothing remains.
func ValidateRequiredString(value, fieldName string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("%s is required", fieldName)
	}
	return trimmed, nil
}

// ValidateUUID returns value when it is UUID-shaped and "" otherwise. A
// missing or malformed value is "not provided"; required-field callers treat
// "" as a validation failure themselves.
func ValidateUUID(value string) string {
	if value == "" {
		return ""
	}
	if _, err := uuid.Parse(value); err != nil {
		return ""
	}
	return value
}

// ParseSupportResources normalizes a support-resources payload: either a
// newline-delimited string or an array of strings. Blank entries are
// dropped; an empty result is nil.
func ParseSupportResources(value any) []string {
	var raw []string
	switch v := value.(type) {
	case string:
		raw = strings.Split(v, "\n")
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil
	}

	var cleaned []string
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return cleaned
}
