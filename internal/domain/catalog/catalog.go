package catalog

// DefaultRestaurantID is the single restaurant the platform serves.
// Orders and menu items reference it, but only the catalog service owns the row.
const DefaultRestaurantID uint = 1

// Restaurant holds the public information about the restaurant.
type Restaurant struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"not null"`
	Description  string
	Address      string `gorm:"not null"`
	Phone        string
	OpeningHours string
}

// TableName implements the gorm table naming convention
func (Restaurant) TableName() string {
	return "restaurant_info"
}

// Category groups menu items.
type Category struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string
}

// MenuItem is a dish offered by the restaurant.
// Price is stored in cents; it is copied into cart and order lines at
// ordering time so menu edits never rewrite history.
type MenuItem struct {
	ID           uint  `gorm:"primaryKey;autoIncrement"`
	RestaurantID uint  `gorm:"not null;index"`
	CategoryID   *uint `gorm:"index"`
	Name         string
	Description  string
	Price        int64 `gorm:"not null"`
	ImageURL     string
}
