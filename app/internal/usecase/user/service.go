package user

import (
	"context"
	"errors"
	"strings"

	dom "example.com/farm-retreat/app/internal/domain/user"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Service struct {
	repo   dom.Repository
	hasher PasswordHasher
}

func NewService(repo dom.Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// EnsureAdmin creates the admin account unless one with that username
// already exists. It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return false, dom.ErrInvalidCredential
	}

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, dom.ErrUserNotFound) {
		return false, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	if _, err := s.repo.Create(ctx, &dom.User{Username: username, PasswordHash: hash}); err != nil {
		return false, err
	}
	return true, nil
}
