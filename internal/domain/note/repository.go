package note

import (
	"context"
	"time"
)

type Repository interface {
	// ListByUser returns the notes of userID, most recently updated first.
	ListByUser(ctx context.Context, userID string) ([]Note, error)
	// Get returns ErrNotFound when no note has id.
	Get(ctx context.Context, id string) (Note, error)
	Create(ctx context.Context, draft Draft) (Note, error)
	Update(ctx context.Context, id string, draft Draft, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
	DeleteByUser(ctx context.Context, userID string) error
}
