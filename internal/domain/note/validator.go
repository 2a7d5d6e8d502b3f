package note

import (
	"strings"
	"unicode/utf8"

	"noteshare/internal/domain/result"
)

// ValidateTitle rejects blank titles and titles longer than MaxTitleLength characters.
func ValidateTitle(title string) result.Validation {
	if strings.TrimSpace(title) == "" {
		return result.Invalid("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return result.Invalid("title must be at most 200 characters")
	}
	return result.Valid()
}
