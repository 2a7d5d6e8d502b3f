package rest

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/domain/note"
)

const notesCollection = "notes"

type NoteRepository struct {
	client *Client
	log    *slog.Logger
}

func NewNoteRepository(client *Client, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		client: client,
		log:    log.With("component", "rest.notes"),
	}
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]note.Note, error) {
	var notes []note.Note
	q := NewQuery().Eq("user_id", userID).Order("updated_at", true)
	if err := r.client.Select(ctx, notesCollection, q, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NoteRepository) Get(ctx context.Context, id string) (note.Note, error) {
	var notes []note.Note
	if err := r.client.Select(ctx, notesCollection, NewQuery().Eq("id", id).Limit(1), &notes); err != nil {
		return note.Note{}, err
	}
	if len(notes) == 0 {
		return note.Note{}, note.ErrNotFound
	}
	return notes[0], nil
}

func (r *NoteRepository) Create(ctx context.Context, draft note.Draft) (note.Note, error) {
	var notes []note.Note
	if err := r.client.Insert(ctx, notesCollection, draft, &notes); err != nil {
		return note.Note{}, err
	}
	if len(notes) == 0 {
		r.log.Error("backend returned no row for created note", "user_id", draft.UserID)
		return note.Note{}, fmt.Errorf("insert note: empty representation")
	}
	r.log.Debug("note created", "note_id", notes[0].ID)
	return notes[0], nil
}

type notePatch struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at"`
}

func (r *NoteRepository) Update(ctx context.Context, id string, draft note.Draft, updatedAt time.Time) error {
	body := notePatch{
		Title:     draft.Title,
		Content:   draft.Content,
		UpdatedAt: Timestamp(updatedAt),
	}
	return r.client.Update(ctx, notesCollection, NewQuery().Eq("id", id), body, nil)
}

func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, notesCollection, NewQuery().Eq("id", id))
}

func (r *NoteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	return r.client.Count(ctx, notesCollection, NewQuery().Eq("user_id", userID))
}

func (r *NoteRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.log.Debug("deleting all notes", "user_id", userID)
	return r.client.Delete(ctx, notesCollection, NewQuery().Eq("user_id", userID))
}
