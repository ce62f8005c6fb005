package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// GormReviewRepository implements order.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a new review; the unique index on order_id makes a second
// review for the same order ErrAlreadyExists even under concurrency
func (r *GormReviewRepository) Create(ctx context.Context, review *order.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete removes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&order.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a review by ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uint) (*order.Review, error) {
	var review order.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByOrder finds the review for an order, if any
func (r *GormReviewRepository) FindByOrder(ctx context.Context, orderID uint) (*order.Review, error) {
	var review order.Review
	if err := r.db.WithContext(ctx).First(&review, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindAll lists reviews newest first, optionally scoped to a restaurant
// through the orders they belong to
func (r *GormReviewRepository) FindAll(ctx context.Context, restaurantID *uint) ([]order.Review, error) {
	query := r.db.WithContext(ctx).Model(&order.Review{})
	if restaurantID != nil {
		query = query.
			Joins("JOIN orders ON orders.id = reviews.order_id").
			Where("orders.restaurant_id = ?", *restaurantID)
	}

	var reviews []order.Review
	if err := query.Order("reviews.created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Ensure GormReviewRepository implements ReviewRepository
var _ order.ReviewRepository = (*GormReviewRepository)(nil)
