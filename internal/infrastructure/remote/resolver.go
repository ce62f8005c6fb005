package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quickbite/backend/internal/domain/shared"
)

// UserRef is the auth service's public view of a user
type UserRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// MenuItemRef is the catalog service's public view of a menu item
type MenuItemRef struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	CategoryID  *uint  `json:"category_id"`
}

// RestaurantRef is the catalog service's public view of the restaurant
type RestaurantRef struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"opening_hours"`
}

// ReviewRef is the order service's public view of a review
type ReviewRef struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	OrderID   uint   `json:"order_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

// resolve translates call results into resolution outcomes: a 404 from the
// peer means the referenced row does not exist (ErrNotFound), which is never
// the same thing as the peer being down (ErrUpstreamUnavailable).
func resolve(err error) error {
	if err == nil {
		return nil
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
		return shared.ErrNotFound
	}
	return err
}

// AuthClient resolves user references against the auth service
type AuthClient struct {
	client *Client
}

// NewAuthClient creates an AuthClient on top of a remote client
func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

// GetUserByID resolves a user reference by ID
func (c *AuthClient) GetUserByID(ctx context.Context, id uint) (*UserRef, error) {
	var user UserRef
	if err := c.client.Get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, resolve(err)
	}
	return &user, nil
}

// GetUserByUsername resolves a user reference by username
func (c *AuthClient) GetUserByUsername(ctx context.Context, username string) (*UserRef, error) {
	var user UserRef
	path := "/users/username/" + url.PathEscape(username)
	if err := c.client.Get(ctx, path, &user); err != nil {
		return nil, resolve(err)
	}
	return &user, nil
}

// CatalogClient resolves menu and restaurant references against the catalog service
type CatalogClient struct {
	client *Client
}

// NewCatalogClient creates a CatalogClient on top of a remote client
func NewCatalogClient(client *Client) *CatalogClient {
	return &CatalogClient{client: client}
}

// GetMenuItem resolves a menu item reference by ID
func (c *CatalogClient) GetMenuItem(ctx context.Context, id uint) (*MenuItemRef, error) {
	var item MenuItemRef
	if err := c.client.Get(ctx, fmt.Sprintf("/menu/%d", id), &item); err != nil {
		return nil, resolve(err)
	}
	return &item, nil
}

// GetRestaurant resolves the restaurant record
func (c *CatalogClient) GetRestaurant(ctx context.Context, id uint) (*RestaurantRef, error) {
	var restaurant RestaurantRef
	if err := c.client.Get(ctx, fmt.Sprintf("/restaurant/%d", id), &restaurant); err != nil {
		return nil, resolve(err)
	}
	return &restaurant, nil
}

// OrderClient reads review data from the order service
type OrderClient struct {
	client *Client
}

// NewOrderClient creates an OrderClient on top of a remote client
func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

// GetReviews lists reviews for a restaurant
func (c *OrderClient) GetReviews(ctx context.Context, restaurantID uint) ([]ReviewRef, error) {
	var reviews []ReviewRef
	path := fmt.Sprintf("/reviews?restaurant_id=%d", restaurantID)
	if err := c.client.Get(ctx, path, &reviews); err != nil {
		return nil, resolve(err)
	}
	return reviews, nil
}
