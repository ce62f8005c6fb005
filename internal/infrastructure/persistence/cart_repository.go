package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// GormCartRepository implements order.CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindOrCreateByUser returns the user's cart with items, creating an empty
// cart on first use. The unique index on user_id keeps concurrent first
// requests from creating two carts.
func (r *GormCartRepository) FindOrCreateByUser(ctx context.Context, userID uint) (*order.Cart, error) {
	var cart order.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cart = order.Cart{UserID: userID}
	if err := r.db.WithContext(ctx).Create(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race; fetch the winner's cart.
			var existing order.Cart
			if ferr := r.db.WithContext(ctx).
				Preload("Items").
				First(&existing, "user_id = ?", userID).Error; ferr != nil {
				return nil, ferr
			}
			return &existing, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem appends a line to a cart
func (r *GormCartRepository) AddItem(ctx context.Context, item *order.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateItemQuantity changes the quantity of one cart line
func (r *GormCartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&order.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// RemoveItem deletes one cart line
func (r *GormCartRepository) RemoveItem(ctx context.Context, cartID, itemID uint) error {
	result := r.db.WithContext(ctx).
		Delete(&order.CartItem{}, "id = ? AND cart_id = ?", itemID, cartID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Clear deletes all lines of a cart
func (r *GormCartRepository) Clear(ctx context.Context, cartID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&order.CartItem{}).Error
}

// Ensure GormCartRepository implements CartRepository
var _ order.CartRepository = (*GormCartRepository)(nil)
