package accesslog

import (
	"context"
	"time"

	"noteshare/internal/domain/note"
)

type Repository interface {
	Create(ctx context.Context, entry Entry) error
	// ListRecent returns up to limit entries of userID, newest first.
	ListRecent(ctx context.Context, userID string, limit int) ([]Entry, error)
	CountOlderThan(ctx context.Context, userID string, before time.Time) (int, error)
	DeleteOlderThan(ctx context.Context, userID string, before time.Time) error
}

// NoteFinder resolves note ids to notes for title enrichment.
type NoteFinder interface {
	Get(ctx context.Context, id string) (note.Note, error)
}

// IPResolver reports the public address of this client. Implementations
// return UnknownIP instead of failing.
type IPResolver interface {
	PublicIP(ctx context.Context) string
}
