package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/domain/result"
)

type Servicer interface {
	List(ctx context.Context, userID string) ListResult
	Get(ctx context.Context, noteID string) NoteResult
	Create(ctx context.Context, userID, title, content string) NoteResult
	Update(ctx context.Context, noteID, title, content string) result.Result
	Delete(ctx context.Context, noteID string) result.Result
	DeleteAll(ctx context.Context, userID string) result.DeleteResult
}

type ListResult struct {
	result.Result
	Notes []Note `json:"notes"`
}

type NoteResult struct {
	result.Result
	Note *Note `json:"note,omitempty"`
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "note_service"),
		now:  time.Now,
	}
}

// List returns the notes of userID ordered by updated_at descending.
func (s *Service) List(ctx context.Context, userID string) ListResult {
	notes, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to list notes", "user_id", userID, "error", err)
		return ListResult{Result: result.Fail(fmt.Errorf("list notes: %w", err)), Notes: []Note{}}
	}
	if notes == nil {
		notes = []Note{}
	}
	return ListResult{Result: result.OK(""), Notes: notes}
}

func (s *Service) Get(ctx context.Context, noteID string) NoteResult {
	n, err := s.repo.Get(ctx, noteID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("failed to get note", "note_id", noteID, "error", err)
		}
		return NoteResult{Result: result.Fail(fmt.Errorf("get note: %w", err))}
	}
	return NoteResult{Result: result.OK(""), Note: &n}
}

// Create stores a new note. An empty content is stored as "".
func (s *Service) Create(ctx context.Context, userID, title, content string) NoteResult {
	if err := ValidateTitle(title).Err(); err != nil {
		return NoteResult{Result: result.Fail(err)}
	}

	n, err := s.repo.Create(ctx, Draft{UserID: userID, Title: title, Content: content})
	if err != nil {
		s.log.Error("failed to create note", "user_id", userID, "error", err)
		return NoteResult{Result: result.Fail(fmt.Errorf("create note: %w", err))}
	}

	s.log.Info("note created", "note_id", n.ID, "user_id", userID)
	return NoteResult{Result: result.OK("note created"), Note: &n}
}

// Update replaces title and content and stamps updated_at.
func (s *Service) Update(ctx context.Context, noteID, title, content string) result.Result {
	if err := ValidateTitle(title).Err(); err != nil {
		return result.Fail(err)
	}

	if err := s.repo.Update(ctx, noteID, Draft{Title: title, Content: content}, s.now()); err != nil {
		s.log.Error("failed to update note", "note_id", noteID, "error", err)
		return result.Fail(fmt.Errorf("update note: %w", err))
	}

	return result.OK("note saved")
}

func (s *Service) Delete(ctx context.Context, noteID string) result.Result {
	if err := s.repo.Delete(ctx, noteID); err != nil {
		s.log.Error("failed to delete note", "note_id", noteID, "error", err)
		return result.Fail(fmt.Errorf("delete note: %w", err))
	}

	s.log.Info("note deleted", "note_id", noteID)
	return result.OK("note deleted")
}

// DeleteAll removes every note of userID. Nothing is sent to the backend
// when the user has no notes.
func (s *Service) DeleteAll(ctx context.Context, userID string) result.DeleteResult {
	count, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		s.log.Error("failed to count notes", "user_id", userID, "error", err)
		return result.DeleteResult{Result: result.Fail(fmt.Errorf("count notes: %w", err))}
	}

	if count == 0 {
		return result.DeleteResult{Result: result.OK("no notes to delete")}
	}

	if err := s.repo.DeleteByUser(ctx, userID); err != nil {
		s.log.Error("failed to delete notes", "user_id", userID, "error", err)
		return result.DeleteResult{Result: result.Fail(fmt.Errorf("delete notes: %w", err))}
	}

	s.log.Info("notes deleted", "user_id", userID, "count", count)
	return result.DeleteResult{
		Result:       result.OK(fmt.Sprintf("deleted %d notes", count)),
		DeletedCount: count,
	}
}
