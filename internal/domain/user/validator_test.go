package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteshare/internal/domain/result"
)

func TestValidatePasscode(t *testing.T) {
	tests := []struct {
		name        string
		passcode    string
		wantValid   bool
		expectedMsg string
	}{
		{
			name:      "digits only",
			passcode:  "123456789012",
			wantValid: true,
		},
		{
			name:      "mixed case",
			passcode:  "AbCdEf123456",
			wantValid: true,
		},
		{
			name:        "empty",
			passcode:    "",
			expectedMsg: "passcode is required",
		},
		{
			name:        "too short",
			passcode:    "ABC123",
			expectedMsg: "passcode must be exactly 12 characters",
		},
		{
			name:        "too long",
			passcode:    "ABCDEF1234567",
			expectedMsg: "passcode must be exactly 12 characters",
		},
		{
			name:        "symbol",
			passcode:    "ABCDEF12345!",
			expectedMsg: "passcode may contain only letters A-Z and digits 0-9",
		},
		{
			name:        "space",
			passcode:    "ABCDEF 12345",
			expectedMsg: "passcode may contain only letters A-Z and digits 0-9",
		},
		{
			name:        "non ascii letters",
			passcode:    "ÄBCDEF123456",
			expectedMsg: "passcode may contain only letters A-Z and digits 0-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePasscode(tt.passcode)
			assert.Equal(t, tt.wantValid, got.IsValid)
			assert.Equal(t, tt.expectedMsg, got.Message)
		})
	}
}

func TestValidatePasscode_Err(t *testing.T) {
	require.NoError(t, ValidatePasscode("AAAAAAAAAAAA").Err())

	err := ValidatePasscode("short").Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, result.ErrInvalidInput)
}
