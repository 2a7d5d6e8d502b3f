package user

import (
	"regexp"
	"unicode/utf8"

	"noteshare/internal/domain/result"
)

var passcodePattern = regexp.MustCompile(`^[0-9A-Za-z]{12}$`)

// ValidatePasscode checks that s is exactly 12 ASCII letters or digits.
func ValidatePasscode(s string) result.Validation {
	if s == "" {
		return result.Invalid("passcode is required")
	}
	if utf8.RuneCountInString(s) != PasscodeLength {
		return result.Invalid("passcode must be exactly 12 characters")
	}
	if !passcodePattern.MatchString(s) {
		return result.Invalid("passcode may contain only letters A-Z and digits 0-9")
	}
	return result.Valid()
}
