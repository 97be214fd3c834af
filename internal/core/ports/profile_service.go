package ports

import (
	"context"

	"github.com/tokoku/store-api/internal/core/domain"
)

// ProfileService covers self-service profile mutation and the admin user listing.
type ProfileService interface {
	UpdateName(ctx context.Context, userID int64, name string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
