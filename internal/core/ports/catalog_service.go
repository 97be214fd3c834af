package ports

import (
	"context"

	"github.com/tokoku/store-api/internal/core/domain"
)

// AddItemInput carries the admin-supplied fields for a new catalog item.
type AddItemInput struct {
	Name  string
	Price int64
}

// CatalogService exposes the public item listing and the admin item creation.
type CatalogService interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	AddItem(ctx context.Context, in AddItemInput) (*domain.Item, error)
}
