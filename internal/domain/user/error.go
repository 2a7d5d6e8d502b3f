package user

import "errors"

var (
	ErrNotFound      = errors.New("user not found")
	ErrQuotaExceeded = errors.New("account creation quota exceeded")
	ErrPasscodeTaken = errors.New("passcode already in use")
)

type DomainError struct {
	Err     error
	Message string
	Code    string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// UserMessage is what the UI shows for this error.
func (e *DomainError) UserMessage() string {
	return e.Message
}
