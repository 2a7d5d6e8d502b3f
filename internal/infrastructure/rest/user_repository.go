package rest

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/domain/user"
)

const usersCollection = "users"

type UserRepository struct {
	client *Client
	log    *slog.Logger
}

func NewUserRepository(client *Client, log *slog.Logger) *UserRepository {
	return &UserRepository{
		client: client,
		log:    log.With("component", "rest.users"),
	}
}

func (r *UserRepository) FindByPasscode(ctx context.Context, passcode string) (user.User, error) {
	var rows []user.User
	q := NewQuery().Eq("passcode", passcode).Limit(1)
	if err := r.client.Select(ctx, usersCollection, q, &rows); err != nil {
		return user.User{}, err
	}
	if len(rows) == 0 {
		return user.User{}, user.ErrNotFound
	}
	return rows[0], nil
}

func (r *UserRepository) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	return r.client.Count(ctx, usersCollection, NewQuery().Gte("created_at", since))
}

func (r *UserRepository) Create(ctx context.Context, passcode string) (user.User, error) {
	var rows []user.User
	body := map[string]string{"passcode": passcode}
	if err := r.client.Insert(ctx, usersCollection, body, &rows); err != nil {
		return user.User{}, err
	}
	if len(rows) == 0 {
		r.log.Error("backend returned no row for created user")
		return user.User{}, fmt.Errorf("insert user: empty representation")
	}
	r.log.Debug("user created", "user_id", rows[0].ID)
	return rows[0], nil
}

func (r *UserRepository) UpdatePasscode(ctx context.Context, userID, passcode string) error {
	r.log.Debug("updating passcode", "user_id", userID)
	body := map[string]string{"passcode": passcode}
	return r.client.Update(ctx, usersCollection, NewQuery().Eq("id", userID), body, nil)
}

// Delete removes the user row. Notes and access logs go with it through
// the backend's cascade.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	r.log.Debug("deleting user", "user_id", userID)
	return r.client.Delete(ctx, usersCollection, NewQuery().Eq("id", userID))
}
