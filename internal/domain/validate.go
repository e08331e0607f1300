package domain

import "strings"

// IsNonEmptyString reports whether s has a non-zero length after
// trimming surrounding whitespace.
func IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidEmail reports whether s looks like an email address.
// The check is deliberately weak: non-blank after trimming and
// containing an '@'. It is not an RFC 5322 validation.
func IsValidEmail(s string) bool {
	return IsNonEmptyString(s) && strings.Contains(s, "@")
}

// IsValidPassword reports whether s meets the minimum password length.
// Whitespace is significant and not trimmed.
func IsValidPassword(s string) bool {
	return len(s) >= 6
}

// OptionalText normalizes an optional free-text field: the trimmed
// value, or nil when the input is absent or blank. Optional fields are
// stored as explicit nulls rather than omitted.
func OptionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
