package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/shared"
)

// GormMenuItemRepository implements catalog.MenuItemRepository using GORM
type GormMenuItemRepository struct {
	db *gorm.DB
}

// NewGormMenuItemRepository creates a new GormMenuItemRepository
func NewGormMenuItemRepository(db *gorm.DB) *GormMenuItemRepository {
	return &GormMenuItemRepository{db: db}
}

// Create inserts a new menu item
func (r *GormMenuItemRepository) Create(ctx context.Context, item *catalog.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update saves changes to an existing menu item
func (r *GormMenuItemRepository) Update(ctx context.Context, item *catalog.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a menu item
func (r *GormMenuItemRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&catalog.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a menu item by ID
func (r *GormMenuItemRepository) FindByID(ctx context.Context, id uint) (*catalog.MenuItem, error) {
	var item catalog.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll lists a restaurant's menu items matching the filter
func (r *GormMenuItemRepository) FindAll(ctx context.Context, restaurantID uint, filter catalog.MenuFilter) ([]catalog.MenuItem, error) {
	query := r.db.WithContext(ctx).
		Model(&catalog.MenuItem{}).
		Where("restaurant_id = ?", restaurantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ?", pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var items []catalog.MenuItem
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Ensure GormMenuItemRepository implements MenuItemRepository
var _ catalog.MenuItemRepository = (*GormMenuItemRepository)(nil)
