package service

import (
	"context"
	"errors"

	"github.com/iliyamo/studio-booking/internal/metrics"
	"github.com/iliyamo/studio-booking/internal/model"
	"github.com/iliyamo/studio-booking/internal/repository"
)

var (
	// ErrInvalidCredentials covers an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotAdmin is returned for valid credentials of a non-admin user.
	ErrNotAdmin = errors.New("admin privileges required")
)

// AuthService checks admin credentials.  Passwords are stored and compared
// as plain text.
type AuthService struct {
	users repository.UserStore
}

func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Authenticate returns the admin user matching username and password.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		metrics.IncLogin("invalid")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		metrics.IncLogin("error")
		return nil, err
	}
	if u.Password != password {
		metrics.IncLogin("invalid")
		return nil, ErrInvalidCredentials
	}
	if !u.IsAdmin {
		metrics.IncLogin("forbidden")
		return nil, ErrNotAdmin
	}
	metrics.IncLogin("success")
	return u, nil
}
