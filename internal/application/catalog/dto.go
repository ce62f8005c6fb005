package catalog

// Cache keys for catalog reference data. Admin writes invalidate these;
// TTLs bound the staleness window if an invalidation is missed.
const (
	cacheKeyMenu       = "menu:all"
	cacheKeyCategories = "categories:all"
	cacheKeyRestaurant = "restaurant:info"
)

// MenuItemInput contains input for creating or updating a menu item
type MenuItemInput struct {
	Name        string
	Description string
	Price       int64
	CategoryID  *uint
	ImageURL    string
}

// CategoryInput contains input for creating or updating a category
type CategoryInput struct {
	Name        string
	Description string
}

// RestaurantInput contains input for updating the restaurant record.
// Nil fields are left unchanged.
type RestaurantInput struct {
	Name         *string
	Description  *string
	Address      *string
	Phone        *string
	OpeningHours *string
}
