package rest

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/domain/accesslog"
)

const accessLogsCollection = "access_logs"

type AccessLogRepository struct {
	client *Client
	log    *slog.Logger
}

func NewAccessLogRepository(client *Client, log *slog.Logger) *AccessLogRepository {
	return &AccessLogRepository{
		client: client,
		log:    log.With("component", "rest.access_logs"),
	}
}

// accessLogRow is the insert payload. id and created_at are assigned by
// the backend.
type accessLogRow struct {
	UserID    string `json:"user_id"`
	NoteID    string `json:"note_id"`
	Action    string `json:"action"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
	Device    string `json:"device,omitempty"`
}

func (r *AccessLogRepository) Create(ctx context.Context, entry accesslog.Entry) error {
	row := accessLogRow{
		UserID:    entry.UserID,
		NoteID:    entry.NoteID,
		Action:    entry.Action,
		IPAddress: entry.IPAddress,
		UserAgent: entry.UserAgent,
		Browser:   entry.Browser,
		OS:        entry.OS,
		Device:    entry.Device,
	}
	return r.client.Insert(ctx, accessLogsCollection, row, nil)
}

func (r *AccessLogRepository) ListRecent(ctx context.Context, userID string, limit int) ([]accesslog.Entry, error) {
	var entries []accesslog.Entry
	q := NewQuery().Eq("user_id", userID).Order("created_at", true).Limit(limit)
	if err := r.client.Select(ctx, accessLogsCollection, q, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *AccessLogRepository) CountOlderThan(ctx context.Context, userID string, before time.Time) (int, error) {
	return r.client.Count(ctx, accessLogsCollection, NewQuery().Eq("user_id", userID).Lt("created_at", before))
}

func (r *AccessLogRepository) DeleteOlderThan(ctx context.Context, userID string, before time.Time) error {
	r.log.Debug("pruning access logs", "user_id", userID, "before", Timestamp(before))
	return r.client.Delete(ctx, accessLogsCollection, NewQuery().Eq("user_id", userID).Lt("created_at", before))
}
