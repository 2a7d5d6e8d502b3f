// Package result holds the uniform outcome value returned by domain services.
// Services never hand raw errors to the UI layer: a failure is a Result with
// Success=false and a message fit for display.
package result

import "errors"

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK builds a successful result.
func OK(message string) Result {
	return Result{Success: true, Message: message}
}

// Fail builds a failed result carrying the user-facing part of err.
func Fail(err error) Result {
	if err == nil {
		return Result{Success: false}
	}
	var um interface{ UserMessage() string }
	if errors.As(err, &um) && um.UserMessage() != "" {
		return Result{Success: false, Message: um.UserMessage()}
	}
	return Result{Success: false, Message: err.Error()}
}

// Err returns nil for a successful result and an error with the message otherwise.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	if r.Message == "" {
		return errors.New("operation failed")
	}
	return errors.New(r.Message)
}

// DeleteResult is returned by bulk deletions.
type DeleteResult struct {
	Result
	DeletedCount int `json:"deleted_count"`
}

// Validation is the outcome of a pure input check.
type Validation struct {
	IsValid bool   `json:"is_valid"`
	Message string `json:"message"`
}

// Valid is the zero-message successful validation.
func Valid() Validation {
	return Validation{IsValid: true}
}

// Invalid builds a failed validation with a user-facing message.
func Invalid(message string) Validation {
	return Validation{IsValid: false, Message: message}
}

// Err converts a failed validation into an error wrapping ErrInvalidInput.
func (v Validation) Err() error {
	if v.IsValid {
		return nil
	}
	return &ValidationError{Message: v.Message}
}

var ErrInvalidInput = errors.New("invalid input")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string       { return "invalid input: " + e.Message }
func (e *ValidationError) UserMessage() string { return e.Message }
func (e *ValidationError) Unwrap() error       { return ErrInvalidInput }
