package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// GormOrderRepository implements order.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// FindByUser lists a user's orders newest first
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID uint) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindAll lists orders matching the filter, newest first
func (r *GormOrderRepository) FindAll(ctx context.Context, filter order.OrderFilter) ([]order.Order, error) {
	query := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("restaurant_id = ?", filter.RestaurantID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var orders []order.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update saves changes to an existing order
func (r *GormOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Save(o).Error
}

// FindItems lists the lines of one order
func (r *GormOrderRepository) FindItems(ctx context.Context, orderID uint) ([]order.OrderItem, error) {
	var items []order.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindItemsByRestaurant lists every order line belonging to the restaurant's orders
func (r *GormOrderRepository) FindItemsByRestaurant(ctx context.Context, restaurantID uint) ([]order.OrderItem, error) {
	var items []order.OrderItem
	if err := r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByDay counts orders created within [dayStart, dayEnd)
func (r *GormOrderRepository) CountByDay(ctx context.Context, restaurantID uint, dayStart, dayEnd time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("restaurant_id = ? AND created_at >= ? AND created_at < ?", restaurantID, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatuses counts orders currently in any of the given statuses
func (r *GormOrderRepository) CountByStatuses(ctx context.Context, restaurantID uint, statuses []order.Status) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("restaurant_id = ? AND status IN ?", restaurantID, statuses).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateFromCart atomically creates the order with its lines and empties the
// cart. Either all of it commits or none of it does; a failed insert leaves
// the cart intact.
func (r *GormOrderRepository) CreateFromCart(ctx context.Context, o *order.Order, cart *order.Cart) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}

		items := make([]order.OrderItem, 0, len(cart.Items))
		for _, ci := range cart.Items {
			items = append(items, order.OrderItem{
				OrderID:    o.ID,
				MenuItemID: ci.MenuItemID,
				Quantity:   ci.Quantity,
				Price:      ci.Price,
			})
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return tx.Where("cart_id = ?", cart.ID).Delete(&order.CartItem{}).Error
	})
}

// Ensure GormOrderRepository implements OrderRepository
var _ order.OrderRepository = (*GormOrderRepository)(nil)
