package catalog

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/infrastructure/cache"
	"github.com/quickbite/backend/internal/infrastructure/config"
	"github.com/quickbite/backend/internal/infrastructure/remote"
)

// RestaurantService handles restaurant info and the cross-service review listing
type RestaurantService struct {
	restaurantRepo catalog.RestaurantRepository
	orderClient    *remote.OrderClient
	cache          cache.ReferenceCache
	cacheCfg       config.CacheConfig
	logger         *zap.Logger
}

// NewRestaurantService creates a new restaurant service
func NewRestaurantService(
	restaurantRepo catalog.RestaurantRepository,
	orderClient *remote.OrderClient,
	refCache cache.ReferenceCache,
	cacheCfg config.CacheConfig,
	logger *zap.Logger,
) *RestaurantService {
	return &RestaurantService{
		restaurantRepo: restaurantRepo,
		orderClient:    orderClient,
		cache:          refCache,
		cacheCfg:       cacheCfg,
		logger:         logger,
	}
}

// GetInfo returns the default restaurant record, served from cache when fresh
func (s *RestaurantService) GetInfo(ctx context.Context) (*catalog.Restaurant, error) {
	if payload, ok, err := s.cache.Get(ctx, cacheKeyRestaurant); err == nil && ok {
		var restaurant catalog.Restaurant
		if err := json.Unmarshal(payload, &restaurant); err == nil {
			return &restaurant, nil
		}
		_ = s.cache.Invalidate(ctx, cacheKeyRestaurant)
	}

	restaurant, err := s.restaurantRepo.FindByID(ctx, catalog.DefaultRestaurantID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(restaurant); err == nil {
		if err := s.cache.Set(ctx, cacheKeyRestaurant, payload, s.cacheCfg.RestaurantTTL); err != nil {
			s.logger.Warn("failed to cache restaurant info", zap.Error(err))
		}
	}
	return restaurant, nil
}

// GetByID returns a restaurant record by ID
func (s *RestaurantService) GetByID(ctx context.Context, id uint) (*catalog.Restaurant, error) {
	return s.restaurantRepo.FindByID(ctx, id)
}

// Update applies admin changes to the restaurant record
func (s *RestaurantService) Update(ctx context.Context, input RestaurantInput) (*catalog.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindByID(ctx, catalog.DefaultRestaurantID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		restaurant.Name = *input.Name
	}
	if input.Description != nil {
		restaurant.Description = *input.Description
	}
	if input.Address != nil {
		restaurant.Address = *input.Address
	}
	if input.Phone != nil {
		restaurant.Phone = *input.Phone
	}
	if input.OpeningHours != nil {
		restaurant.OpeningHours = *input.OpeningHours
	}

	if err := s.restaurantRepo.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(ctx, cacheKeyRestaurant); err != nil {
		s.logger.Warn("failed to invalidate restaurant cache", zap.Error(err))
	}
	s.logger.Info("Restaurant info updated")
	return restaurant, nil
}

// Reviews lists the restaurant's reviews from the order service. The field
// is optional enrichment: when the order service is down the listing
// degrades to empty instead of failing the page.
func (s *RestaurantService) Reviews(ctx context.Context) ([]remote.ReviewRef, error) {
	enrichment := remote.Enrichment[[]remote.ReviewRef]{Fallback: []remote.ReviewRef{}}
	reviews, err := enrichment.Resolve(ctx, func(ctx context.Context) ([]remote.ReviewRef, error) {
		return s.orderClient.GetReviews(ctx, catalog.DefaultRestaurantID)
	})
	if err != nil {
		return []remote.ReviewRef{}, nil
	}
	if reviews == nil {
		reviews = []remote.ReviewRef{}
	}
	return reviews, nil
}
