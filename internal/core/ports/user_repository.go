package ports

import (
	"context"

	"github.com/tokoku/store-api/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
// Email uniqueness is enforced by the underlying store; Create returns
// domain.ErrUserExists on a duplicate email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
