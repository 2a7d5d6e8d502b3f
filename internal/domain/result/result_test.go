package result

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type userErr struct{ msg string }

func (e *userErr) Error() string       { return "internal: " + e.msg }
func (e *userErr) UserMessage() string { return e.msg }

func TestFail(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{name: "nil error", err: nil, message: ""},
		{name: "plain error", err: errors.New("boom"), message: "boom"},
		{name: "wrapped user error", err: fmt.Errorf("login: %w", &userErr{msg: "quota"}), message: "quota"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Fail(tt.err)
			assert.False(t, r.Success)
			assert.Equal(t, tt.message, r.Message)
		})
	}
}

func TestResult_Err(t *testing.T) {
	assert.NoError(t, OK("done").Err())
	assert.EqualError(t, Fail(errors.New("boom")).Err(), "boom")
	assert.EqualError(t, Result{}.Err(), "operation failed")
}
