package ports

import (
	"context"

	"github.com/tokoku/store-api/internal/core/domain"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	ListAll(ctx context.Context) ([]domain.Item, error)
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
}
