package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tokoku/store-api/internal/core/domain"
	"github.com/tokoku/store-api/internal/core/ports"
)

// CatalogService serves the public item listing through a read-through cache
// and handles admin item creation.
type CatalogService struct {
	items ports.ItemRepository
	cache ports.CatalogCache // optional
	log   zerolog.Logger
}

func NewCatalogService(items ports.ItemRepository, cache ports.CatalogCache, log zerolog.Logger) *CatalogService {
	return &CatalogService{items: items, cache: cache, log: log}
}

// ListItems returns the full catalog. Cache failures degrade to a store read.
func (s *CatalogService) ListItems(ctx context.Context) ([]domain.Item, error) {
	if s.cache != nil {
		items, ok, err := s.cache.Get(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("catalog cache read failed")
		} else if ok {
			return items, nil
		}
	}

	items, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, items); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return items, nil
}

// AddItem creates a catalog item and invalidates the cached listing.
func (s *CatalogService) AddItem(ctx context.Context, in ports.AddItemInput) (*domain.Item, error) {
	if strings.TrimSpace(in.Name) == "" || in.Price < 0 {
		return nil, domain.ErrItemInvalid
	}

	created, err := s.items.Create(ctx, &domain.Item{Name: in.Name, Price: in.Price})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.log.Warn().Err(err).Msg("catalog cache invalidation failed")
		}
	}
	return created, nil
}
