package order

import (
	"time"

	"github.com/quickbite/backend/internal/domain/order"
)

// AddCartItemInput contains input for adding a cart line
type AddCartItemInput struct {
	MenuItemID uint
	Quantity   int
	Price      int64
}

// CreateOrderInput contains input for placing an order
type CreateOrderInput struct {
	Address      string
	DeliveryTime *time.Time
}

// AdminOrderUpdateInput contains admin edits to an order.
// Nil fields are left unchanged.
type AdminOrderUpdateInput struct {
	Address         *string
	OperatorComment *string
}

// ReviewInput contains input for reviewing a delivered order
type ReviewInput struct {
	Rating  int
	Comment string
}

// AdminOrderItem is one order line enriched with the catalog item name
type AdminOrderItem struct {
	MenuItemID   uint   `json:"menu_item_id"`
	MenuItemName string `json:"menu_item_name"`
	Quantity     int    `json:"quantity"`
	Price        int64  `json:"price"`
	Subtotal     int64  `json:"subtotal"`
}

// AdminOrderDetail is the aggregated admin view of one order
type AdminOrderDetail struct {
	Order *order.Order
	Items []AdminOrderItem
}

// TopItem is one entry of the best-sellers ranking
type TopItem struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Orders int    `json:"orders"`
	Sold   int    `json:"sold"`
}

// StatsOverview is the admin dashboard summary. Money fields are in cents.
type StatsOverview struct {
	Orders       int64     `json:"orders"`
	Revenue      int64     `json:"revenue"`
	AverageOrder int64     `json:"average_order"`
	ActiveOrders int64     `json:"active_orders"`
	TopItems     []TopItem `json:"top_items"`
}

// DayCount is one day of the orders-by-day series
type DayCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
