package user

import (
	"context"
	"time"
)

type Repository interface {
	// FindByPasscode returns ErrNotFound when no user holds passcode.
	FindByPasscode(ctx context.Context, passcode string) (User, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int, error)
	Create(ctx context.Context, passcode string) (User, error)
	UpdatePasscode(ctx context.Context, userID, passcode string) error
	Delete(ctx context.Context, userID string) error
}
