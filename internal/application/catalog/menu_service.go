package catalog

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/infrastructure/cache"
	"github.com/quickbite/backend/internal/infrastructure/config"
)

// MenuService handles menu item reads and admin writes
type MenuService struct {
	itemRepo catalog.MenuItemRepository
	cache    cache.ReferenceCache
	cacheCfg config.CacheConfig
	logger   *zap.Logger
}

// NewMenuService creates a new menu service
func NewMenuService(itemRepo catalog.MenuItemRepository, refCache cache.ReferenceCache, cacheCfg config.CacheConfig, logger *zap.Logger) *MenuService {
	return &MenuService{
		itemRepo: itemRepo,
		cache:    refCache,
		cacheCfg: cacheCfg,
		logger:   logger,
	}
}

// List returns the restaurant's menu. The unfiltered listing is the hot
// path and is served from the cache; filtered queries always hit the store.
func (s *MenuService) List(ctx context.Context, filter catalog.MenuFilter) ([]catalog.MenuItem, error) {
	unfiltered := filter.Search == "" && filter.CategoryID == nil

	if unfiltered {
		if payload, ok, err := s.cache.Get(ctx, cacheKeyMenu); err == nil && ok {
			var items []catalog.MenuItem
			if err := json.Unmarshal(payload, &items); err == nil {
				return items, nil
			}
			// Corrupt entry; drop it and fall through to the store.
			_ = s.cache.Invalidate(ctx, cacheKeyMenu)
		}
	}

	items, err := s.itemRepo.FindAll(ctx, catalog.DefaultRestaurantID, filter)
	if err != nil {
		return nil, err
	}

	if unfiltered {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, cacheKeyMenu, payload, s.cacheCfg.MenuTTL); err != nil {
				s.logger.Warn("failed to cache menu listing", zap.Error(err))
			}
		}
	}
	return items, nil
}

// GetByID returns one menu item
func (s *MenuService) GetByID(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	return s.itemRepo.FindByID(ctx, id)
}

// Create adds a menu item and invalidates the menu cache
func (s *MenuService) Create(ctx context.Context, input MenuItemInput) (*catalog.MenuItem, error) {
	item := &catalog.MenuItem{
		RestaurantID: catalog.DefaultRestaurantID,
		CategoryID:   input.CategoryID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		ImageURL:     input.ImageURL,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("Menu item created", zap.Uint("item_id", item.ID), zap.String("name", item.Name))
	return item, nil
}

// Update changes a menu item and invalidates the menu cache
func (s *MenuService) Update(ctx context.Context, id uint, input MenuItemInput) (*catalog.MenuItem, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.CategoryID = input.CategoryID
	item.ImageURL = input.ImageURL

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

// Delete removes a menu item and invalidates the menu cache. Order lines in
// the order service keep referencing the deleted ID; its readers fall back
// to a placeholder name.
func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	s.logger.Info("Menu item deleted", zap.Uint("item_id", id))
	return nil
}

func (s *MenuService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, cacheKeyMenu); err != nil {
		s.logger.Warn("failed to invalidate menu cache", zap.Error(err))
	}
}
