package errors

import (
	"strings"
	"unicode"
)

// maxRuleNameLength bounds rewrite rule names so they stay readable in logs.
const maxRuleNameLength = 128

// ValidateRuleName validates a rewrite rule name.
//
// Names are used as report keys and log fields, so they must be non-empty,
// short, and free of control characters.
func ValidateRuleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidRule, "rule name cannot be empty")
	}

	if len(name) > maxRuleNameLength {
		return New(ErrCodeInvalidRule, "rule name too long (max %d characters)", maxRuleNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRule, "rule name contains invalid control characters")
		}
	}

	return nil
}

// ValidateFilePath validates a document path given on the command line.
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}
