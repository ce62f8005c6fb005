package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/cache"
	"github.com/quickbite/backend/internal/infrastructure/config"
)

// CategoryService handles category reads and admin writes
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	cache        cache.ReferenceCache
	cacheCfg     config.CacheConfig
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo catalog.CategoryRepository, refCache cache.ReferenceCache, cacheCfg config.CacheConfig, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cache:        refCache,
		cacheCfg:     cacheCfg,
		logger:       logger,
	}
}

// List returns all categories, served from cache when fresh
func (s *CategoryService) List(ctx context.Context) ([]catalog.Category, error) {
	if payload, ok, err := s.cache.Get(ctx, cacheKeyCategories); err == nil && ok {
		var categories []catalog.Category
		if err := json.Unmarshal(payload, &categories); err == nil {
			return categories, nil
		}
		_ = s.cache.Invalidate(ctx, cacheKeyCategories)
	}

	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		if err := s.cache.Set(ctx, cacheKeyCategories, payload, s.cacheCfg.CategoriesTTL); err != nil {
			s.logger.Warn("failed to cache category listing", zap.Error(err))
		}
	}
	return categories, nil
}

// GetByID returns one category
func (s *CategoryService) GetByID(ctx context.Context, id uint) (*catalog.Category, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// Create adds a category; duplicate names are rejected
func (s *CategoryService) Create(ctx context.Context, input CategoryInput) (*catalog.Category, error) {
	category := &catalog.Category{Name: input.Name, Description: input.Description}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("CATEGORY_EXISTS", "Category with this name already exists")
		}
		return nil, err
	}
	s.invalidate(ctx)
	s.logger.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))
	return category, nil
}

// Update changes a category
func (s *CategoryService) Update(ctx context.Context, id uint, input CategoryInput) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = input.Name
	category.Description = input.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("CATEGORY_EXISTS", "Category with this name already exists")
		}
		return nil, err
	}
	s.invalidate(ctx)
	return category, nil
}

// Delete removes a category; items keep their dangling category_id
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *CategoryService) invalidate(ctx context.Context) {
	// Menu listings embed category IDs, so both entries go.
	if err := s.cache.Invalidate(ctx, cacheKeyCategories, cacheKeyMenu); err != nil {
		s.logger.Warn("failed to invalidate category cache", zap.Error(err))
	}
}
