package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		wantValid bool
	}{
		{name: "empty", title: "", wantValid: false},
		{name: "whitespace only", title: "   ", wantValid: false},
		{name: "tabs and newlines", title: "\t\n", wantValid: false},
		{name: "single char", title: "a", wantValid: true},
		{name: "exactly 200", title: strings.Repeat("a", 200), wantValid: true},
		{name: "201 chars", title: strings.Repeat("a", 201), wantValid: false},
		{name: "200 multibyte chars", title: strings.Repeat("メ", 200), wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateTitle(tt.title)
			assert.Equal(t, tt.wantValid, got.IsValid)
			if tt.wantValid {
				assert.Empty(t, got.Message)
			} else {
				assert.NotEmpty(t, got.Message)
			}
		})
	}
}
