package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"noteshare/internal/domain/result"
)

type Servicer interface {
	Login(ctx context.Context, passcode string) LoginResult
	UpdatePasscode(ctx context.Context, userID, newPasscode string) result.Result
	DeleteAccount(ctx context.Context, userID string) result.Result
}

type LoginResult struct {
	result.Result
	UserID  string `json:"user_id,omitempty"`
	Created bool   `json:"created"`
}

type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
		now:  time.Now,
	}
}

// Login signs in with an existing passcode or creates a new user for an
// unseen one. Creation is limited to DailyCreationLimit accounts per
// CreationWindow. The lookup, the quota count and the insert are separate
// requests; concurrent logins with the same new passcode can both insert
// unless the backend enforces uniqueness.
func (s *Service) Login(ctx context.Context, passcode string) LoginResult {
	if err := ValidatePasscode(passcode).Err(); err != nil {
		return LoginResult{Result: result.Fail(err)}
	}

	existing, err := s.repo.FindByPasscode(ctx, passcode)
	switch {
	case err == nil:
		s.log.Info("existing user logged in", "user_id", existing.ID)
		return LoginResult{
			Result: result.OK("logged in with existing user"),
			UserID: existing.ID,
		}
	case !errors.Is(err, ErrNotFound):
		s.log.Error("failed to find user", "error", err)
		return LoginResult{Result: result.Fail(fmt.Errorf("find user: %w", err))}
	}

	created := s.createdRecently(ctx)
	if created >= DailyCreationLimit {
		s.log.Warn("creation quota exceeded", "created", created)
		return LoginResult{Result: result.Fail(&DomainError{
			Err:     ErrQuotaExceeded,
			Message: fmt.Sprintf("daily limit of %d new passcodes reached, try again tomorrow", DailyCreationLimit),
			Code:    "quota_exceeded",
		})}
	}

	u, err := s.repo.Create(ctx, passcode)
	if err != nil {
		s.log.Error("failed to create user", "error", err)
		return LoginResult{Result: result.Fail(fmt.Errorf("create user: %w", err))}
	}

	s.log.Info("user created", "user_id", u.ID)
	return LoginResult{
		Result:  result.OK("new user created"),
		UserID:  u.ID,
		Created: true,
	}
}

// createdRecently counts users created inside the quota window. A failed
// count is treated as zero.
func (s *Service) createdRecently(ctx context.Context) int {
	since := s.now().Add(-CreationWindow)
	n, err := s.repo.CountCreatedSince(ctx, since)
	if err != nil {
		s.log.Warn("failed to count recent users", "since", since, "error", err)
		return 0
	}
	return n
}

// UpdatePasscode changes the passcode of userID unless another user holds it.
func (s *Service) UpdatePasscode(ctx context.Context, userID, newPasscode string) result.Result {
	if err := ValidatePasscode(newPasscode).Err(); err != nil {
		return result.Fail(err)
	}

	holder, err := s.repo.FindByPasscode(ctx, newPasscode)
	switch {
	case err == nil && holder.ID != userID:
		return result.Fail(&DomainError{
			Err:     ErrPasscodeTaken,
			Message: "this passcode is already in use",
			Code:    "passcode_taken",
		})
	case err != nil && !errors.Is(err, ErrNotFound):
		s.log.Error("failed to check passcode", "user_id", userID, "error", err)
		return result.Fail(fmt.Errorf("check passcode: %w", err))
	}

	if err := s.repo.UpdatePasscode(ctx, userID, newPasscode); err != nil {
		s.log.Error("failed to update passcode", "user_id", userID, "error", err)
		return result.Fail(fmt.Errorf("update passcode: %w", err))
	}

	s.log.Info("passcode updated", "user_id", userID)
	return result.OK("passcode changed")
}

// DeleteAccount removes the user row; notes and access logs go with it
// through the backend's cascading delete.
func (s *Service) DeleteAccount(ctx context.Context, userID string) result.Result {
	if err := s.repo.Delete(ctx, userID); err != nil {
		s.log.Error("failed to delete account", "user_id", userID, "error", err)
		return result.Fail(fmt.Errorf("delete account: %w", err))
	}

	s.log.Info("account deleted", "user_id", userID)
	return result.OK("account and all data deleted")
}
