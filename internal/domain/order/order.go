package order

import "time"

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusPreparing  Status = "preparing"
	StatusReady      Status = "ready"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus validates a status string.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusPreparing, StatusReady,
		StatusDelivering, StatusDelivered, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// ActiveStatuses are the states in which an order still needs attention.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusPreparing, StatusReady, StatusDelivering}
}

// Cancellable reports whether a client may still cancel the order.
func (s Status) Cancellable() bool {
	return s == StatusPending || s == StatusAccepted
}

// PaymentMethod is how an order is paid.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodOnline PaymentMethod = "online"
)

// PaymentStatus is the payment lifecycle state.
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// Order is a customer order. UserID and RestaurantID are remote references
// into the auth and catalog services; the local store enforces nothing about
// them and consumers must tolerate the referenced rows disappearing.
type Order struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	UserID          uint   `gorm:"not null;index"`
	RestaurantID    uint   `gorm:"not null;index"`
	Status          Status `gorm:"not null;default:pending;index"`
	DeliveryAddress string `gorm:"not null"`
	PaymentMethod   PaymentMethod
	TotalPrice      int64 `gorm:"not null;default:0"`
	DeliveryTime    *time.Time
	OperatorComment string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one line of an order. MenuItemID is a remote reference into
// the catalog service; Price is the unit price captured at ordering time.
type OrderItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	OrderID    uint `gorm:"not null;index"`
	MenuItemID uint `gorm:"not null;index"`
	Quantity   int  `gorm:"not null;default:1"`
	Price      int64
}

// Cart holds a user's pending selection; one cart per user.
type Cart struct {
	ID     uint       `gorm:"primaryKey;autoIncrement"`
	UserID uint       `gorm:"uniqueIndex;not null"`
	Items  []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// CartItem is one line in a cart. MenuItemID is a remote reference.
type CartItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement"`
	CartID     uint `gorm:"not null;index"`
	MenuItemID uint `gorm:"not null"`
	Quantity   int  `gorm:"not null;default:1"`
	Price      int64
}

// Total sums the cart lines in cents.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// Payment records a payment attempt for an order. Purely local bookkeeping;
// there is no external payment processor behind it.
type Payment struct {
	ID            uint          `gorm:"primaryKey;autoIncrement"`
	OrderID       uint          `gorm:"not null;uniqueIndex"`
	Amount        int64         `gorm:"not null"`
	Status        PaymentStatus `gorm:"not null;default:pending;index"`
	TransactionID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Review is customer feedback on a delivered order. UserID is a remote
// reference; OrderID is a local one-to-one reference.
type Review struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	OrderID   uint   `gorm:"not null;uniqueIndex"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Text      string `gorm:"not null"`
	CreatedAt time.Time
}
