package ports

import (
	"context"

	"github.com/tokoku/store-api/internal/core/domain"
)

// CatalogCache is a read-through cache for the item catalog. Get reports a
// miss with ok=false; a cache failure must never fail the request.
type CatalogCache interface {
	Get(ctx context.Context) (items []domain.Item, ok bool, err error)
	Set(ctx context.Context, items []domain.Item) error
	Invalidate(ctx context.Context) error
}
