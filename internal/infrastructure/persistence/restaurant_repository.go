package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/shared"
)

// GormRestaurantRepository implements catalog.RestaurantRepository using GORM
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GormRestaurantRepository
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// FindByID finds the restaurant record by ID
func (r *GormRestaurantRepository) FindByID(ctx context.Context, id uint) (*catalog.Restaurant, error) {
	var restaurant catalog.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

// Update saves changes to the restaurant record
func (r *GormRestaurantRepository) Update(ctx context.Context, restaurant *catalog.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// EnsureDefault creates the single restaurant row on first startup so reads
// never hit an empty table.
func (r *GormRestaurantRepository) EnsureDefault(ctx context.Context, restaurant *catalog.Restaurant) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Restaurant{}).
		Where("id = ?", restaurant.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(restaurant).Error
}

// Ensure GormRestaurantRepository implements RestaurantRepository
var _ catalog.RestaurantRepository = (*GormRestaurantRepository)(nil)
