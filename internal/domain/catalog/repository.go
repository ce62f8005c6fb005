package catalog

import "context"

// MenuFilter narrows menu listings; zero value lists everything.
type MenuFilter struct {
	Search     string
	CategoryID *uint
}

// MenuItemRepository defines persistence operations for menu items
type MenuItemRepository interface {
	Create(ctx context.Context, item *MenuItem) error
	Update(ctx context.Context, item *MenuItem) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*MenuItem, error)
	FindAll(ctx context.Context, restaurantID uint, filter MenuFilter) ([]MenuItem, error)
}

// CategoryRepository defines persistence operations for categories
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
}

// RestaurantRepository defines persistence operations for the restaurant record
type RestaurantRepository interface {
	FindByID(ctx context.Context, id uint) (*Restaurant, error)
	Update(ctx context.Context, restaurant *Restaurant) error
}
