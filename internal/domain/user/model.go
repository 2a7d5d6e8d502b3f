package user

import "time"

const (
	PasscodeLength = 12

	// DailyCreationLimit is the number of accounts that may be created
	// within CreationWindow.
	DailyCreationLimit = 3
	CreationWindow     = 24 * time.Hour
)

type User struct {
	ID        string    `json:"id"`
	Passcode  string    `json:"passcode"`
	CreatedAt time.Time `json:"created_at"`
}
