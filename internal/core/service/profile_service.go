package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tokoku/store-api/internal/core/domain"
	"github.com/tokoku/store-api/internal/core/ports"
)

// ProfileService handles self-service profile updates and the admin user listing.
type ProfileService struct {
	users ports.UserRepository
}

func NewProfileService(users ports.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// UpdateName changes the acting user's display name. Concurrent updates are
// serialized by the store; last write wins.
func (s *ProfileService) UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrNameRequired
	}

	updated, err := s.users.UpdateName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ListUsers returns every account. Gated to admins at the transport layer.
func (s *ProfileService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
