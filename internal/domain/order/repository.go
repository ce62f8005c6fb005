package order

import (
	"context"
	"time"
)

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	RestaurantID uint
	Status       *Status
}

// OrderRepository defines persistence operations for orders and order items
type OrderRepository interface {
	FindByID(ctx context.Context, id uint) (*Order, error)
	FindByUser(ctx context.Context, userID uint) ([]Order, error)
	FindAll(ctx context.Context, filter OrderFilter) ([]Order, error)
	Update(ctx context.Context, o *Order) error
	FindItems(ctx context.Context, orderID uint) ([]OrderItem, error)
	// FindItemsByRestaurant returns every order line belonging to the
	// restaurant's orders, for statistics aggregation.
	FindItemsByRestaurant(ctx context.Context, restaurantID uint) ([]OrderItem, error)
	CountByDay(ctx context.Context, restaurantID uint, dayStart, dayEnd time.Time) (int64, error)
	CountByStatuses(ctx context.Context, restaurantID uint, statuses []Status) (int64, error)
	// CreateFromCart atomically creates the order with its items and clears
	// the cart. This is the unit of atomicity for order creation; anything
	// cross-service stays best-effort.
	CreateFromCart(ctx context.Context, o *Order, cart *Cart) error
}

// CartRepository defines persistence operations for carts
type CartRepository interface {
	// FindOrCreateByUser returns the user's cart with items, creating an
	// empty cart on first use.
	FindOrCreateByUser(ctx context.Context, userID uint) (*Cart, error)
	AddItem(ctx context.Context, item *CartItem) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, cartID, itemID uint) error
	Clear(ctx context.Context, cartID uint) error
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	Update(ctx context.Context, p *Payment) error
	FindByID(ctx context.Context, id uint) (*Payment, error)
}

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	Create(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Review, error)
	FindByOrder(ctx context.Context, orderID uint) (*Review, error)
	// FindAll lists reviews newest first, optionally scoped to a restaurant
	// through the orders the reviews belong to.
	FindAll(ctx context.Context, restaurantID *uint) ([]Review, error)
}
