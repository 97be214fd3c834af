package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tokoku/store-api/internal/core/domain"
	"github.com/tokoku/store-api/internal/core/ports"
)

// AuthService verifies credentials against the stored password hash and
// issues access tokens.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login returns a signed access token on success. An unknown email and a
// wrong password both yield domain.ErrInvalidCredentials so callers cannot
// tell which check failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
