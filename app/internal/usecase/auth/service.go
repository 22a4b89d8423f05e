package auth

import (
	"context"
	"errors"
	"strings"

	domuser "example.com/farm-retreat/app/internal/domain/user"
)

type PasswordComparer interface {
	Compare(hash string, password string) error
}

type Claims struct {
	UserID   int64
	Username string
}

type TokenService interface {
	GenerateToken(u *domuser.User) (string, error)
	ParseToken(token string) (*Claims, error)
}

type UserFinder interface {
	GetByUsername(ctx context.Context, username string) (*domuser.User, error)
}

type Service struct {
	users   UserFinder
	checker PasswordComparer
	tokens  TokenService
}

func NewService(users UserFinder, checker PasswordComparer, tokens TokenService) *Service {
	return &Service{
		users:   users,
		checker: checker,
		tokens:  tokens,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	Token string
	User  *domuser.User
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	username := strings.TrimSpace(strings.ToLower(in.Username))
	if username == "" || in.Password == "" {
		return nil, domuser.ErrInvalidCredential
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domuser.ErrUserNotFound) {
			return nil, domuser.ErrUnauthorized
		}
		return nil, err
	}

	if err := s.checker.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, domuser.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(u)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		User:  u,
	}, nil
}
