package dto

// ErrorBody is the single error shape every endpoint uses
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an error body
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// UserResponse is the public view of a user
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// RegisterResponse is the body of a successful registration
type RegisterResponse struct {
	Message  string `json:"message"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// LoginResponse is the body of a successful login
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

// MenuItemResponse is the public view of a menu item
type MenuItemResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  *uint  `json:"category_id"`
	ImageURL    string `json:"image_url"`
}

// CategoryResponse is the public view of a category
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RestaurantResponse is the public view of the restaurant record
type RestaurantResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"opening_hours"`
}

// CartItemResponse is one line of a cart
type CartItemResponse struct {
	ID         uint  `json:"id"`
	MenuItemID uint  `json:"menu_item_id"`
	Quantity   int   `json:"quantity"`
	Price      int64 `json:"price"`
}

// CartResponse is the user's cart with its total
type CartResponse struct {
	ID    uint               `json:"id"`
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

// OrderResponse is the public view of an order
type OrderResponse struct {
	ID              uint   `json:"id"`
	UserID          uint   `json:"user_id"`
	Status          string `json:"status"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
	TotalPrice      int64  `json:"total_price"`
	DeliveryTime    string `json:"delivery_time,omitempty"`
	OperatorComment string `json:"operator_comment,omitempty"`
	CreatedAt       string `json:"created_at"`
}

// ReviewResponse is the public view of a review
type ReviewResponse struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	OrderID   uint   `json:"order_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// PaymentResponse is the public view of a payment
type PaymentResponse struct {
	ID            uint   `json:"id"`
	OrderID       uint   `json:"order_id"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id,omitempty"`
}
