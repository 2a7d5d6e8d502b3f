package accesslog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"noteshare/internal/domain/note"
	"noteshare/internal/domain/result"
)

const defaultEnrichConcurrency = 8

type Servicer interface {
	Record(ctx context.Context, userID, noteID, action string) result.Result
	Recent(ctx context.Context, userID string) EntriesResult
	Prune(ctx context.Context, userID string) result.DeleteResult
}

type EntriesResult struct {
	result.Result
	Entries []Entry `json:"entries"`
}

type Config struct {
	// UserAgent is classified and stored with every entry.
	UserAgent string
	// EnrichConcurrency bounds parallel note lookups in Recent.
	EnrichConcurrency int
	// Now replaces time.Now for the retention cutoff.
	Now func() time.Time
}

type Service struct {
	repo  Repository
	notes NoteFinder
	ip    IPResolver
	cfg   Config
	log   *slog.Logger
	now   func() time.Time
}

func NewService(repo Repository, notes NoteFinder, ip IPResolver, cfg Config, log *slog.Logger) *Service {
	if cfg.EnrichConcurrency <= 0 {
		cfg.EnrichConcurrency = defaultEnrichConcurrency
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:  repo,
		notes: notes,
		ip:    ip,
		cfg:   cfg,
		log:   log.With("component", "accesslog_service"),
		now:   now,
	}
}

// Record appends an entry for action on noteID. A failed IP lookup is
// stored as UnknownIP and never aborts the insert.
func (s *Service) Record(ctx context.Context, userID, noteID, action string) result.Result {
	info := Classify(s.cfg.UserAgent)

	ip := UnknownIP
	if s.ip != nil {
		ip = s.ip.PublicIP(ctx)
	}

	entry := Entry{
		UserID:    userID,
		NoteID:    noteID,
		Action:    action,
		IPAddress: ip,
		UserAgent: info.UserAgent,
		Browser:   info.Browser,
		OS:        info.OS,
		Device:    info.Device,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Error("failed to record access", "user_id", userID, "note_id", noteID, "action", action, "error", err)
		return result.Fail(fmt.Errorf("record access: %w", err))
	}

	return result.OK("")
}

// Recent returns the newest RecentLimit entries of userID with note titles
// attached where the note still exists.
func (s *Service) Recent(ctx context.Context, userID string) EntriesResult {
	entries, err := s.repo.ListRecent(ctx, userID, RecentLimit)
	if err != nil {
		s.log.Error("failed to list access log", "user_id", userID, "error", err)
		return EntriesResult{Result: result.Fail(fmt.Errorf("list access log: %w", err)), Entries: []Entry{}}
	}
	if entries == nil {
		entries = []Entry{}
	}

	s.attachTitles(ctx, entries)

	return EntriesResult{Result: result.OK(""), Entries: entries}
}

// attachTitles looks up every referenced note concurrently. Each goroutine
// writes only its own slot, so the order of entries is untouched.
func (s *Service) attachTitles(ctx context.Context, entries []Entry) {
	if s.notes == nil {
		return
	}

	var g errgroup.Group
	g.SetLimit(s.cfg.EnrichConcurrency)

	for i := range entries {
		e := &entries[i]
		if e.NoteID == "" {
			continue
		}
		g.Go(func() error {
			n, err := s.notes.Get(ctx, e.NoteID)
			switch {
			case err == nil:
				e.NoteTitle = n.Title
			case !errors.Is(err, note.ErrNotFound):
				s.log.Warn("failed to resolve note title", "note_id", e.NoteID, "error", err)
			}
			return nil
		})
	}

	_ = g.Wait()
}

// Prune deletes entries of userID created strictly before now-Retention.
func (s *Service) Prune(ctx context.Context, userID string) result.DeleteResult {
	cutoff := s.now().Add(-Retention)

	count, err := s.repo.CountOlderThan(ctx, userID, cutoff)
	if err != nil {
		s.log.Error("failed to count old logs", "user_id", userID, "error", err)
		return result.DeleteResult{Result: result.Fail(fmt.Errorf("count old logs: %w", err))}
	}

	if count == 0 {
		return result.DeleteResult{Result: result.OK("no old logs to delete")}
	}

	if err := s.repo.DeleteOlderThan(ctx, userID, cutoff); err != nil {
		s.log.Error("failed to delete old logs", "user_id", userID, "error", err)
		return result.DeleteResult{Result: result.Fail(fmt.Errorf("delete old logs: %w", err))}
	}

	s.log.Info("old logs deleted", "user_id", userID, "count", count, "cutoff", cutoff)
	return result.DeleteResult{
		Result:       result.OK(fmt.Sprintf("deleted %d old log entries", count)),
		DeletedCount: count,
	}
}
