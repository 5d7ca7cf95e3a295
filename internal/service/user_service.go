package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"surveywallet/internal/errors"
	"surveywallet/internal/model"
	"surveywallet/internal/repository"
)

// UserService exposes user directory operations.
type UserService interface {
	// Upsert creates the user on first contact or refreshes the mutable
	// profile fields on a returning one. Role is never touched here, so a
	// re-login cannot demote an admin.
	Upsert(ctx context.Context, profile *model.User) (*model.User, error)
	Get(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, email, role string) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Upsert implements find-by-natural-key then update-or-insert. Last writer
// wins on the mutable fields; there is no optimistic locking.
func (s *userService) Upsert(ctx context.Context, profile *model.User) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, profile.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if existing == nil {
		if profile.Role == "" {
			profile.Role = model.RoleMember
		}
		if err := s.repo.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return profile, nil
	}

	fields := map[string]interface{}{
		"last_login_ip": profile.LastLoginIP,
	}
	if profile.Name != "" {
		fields["name"] = profile.Name
	}
	if profile.PhotoURL != "" {
		fields["photo_url"] = profile.PhotoURL
	}
	if _, err := s.repo.UpdateFields(ctx, profile.Email, fields); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return s.repo.FindByEmail(ctx, profile.Email)
}

// Get retrieves a user by email.
func (s *userService) Get(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// List returns every user in the directory.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// UpdateRole changes a user's role. Only reachable through the admin gate.
func (s *userService) UpdateRole(ctx context.Context, email, role string) error {
	if role != model.RoleMember && role != model.RoleAdmin {
		return errors.ErrInvalidRole
	}
	rows, err := s.repo.UpdateFields(ctx, email, map[string]interface{}{"role": role})
	if err != nil {
		return err
	}
	if rows == 0 {
		// MySQL reports rows changed, not rows matched, so re-asserting the
		// current role looks identical to a missing user. Confirm absence
		// before reporting it.
		if _, err := s.repo.FindByEmail(ctx, email); err != nil {
			if err == gorm.ErrRecordNotFound {
				return errors.ErrUserNotFound
			}
			return err
		}
	}
	return nil
}
