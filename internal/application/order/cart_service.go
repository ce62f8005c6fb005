package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// CartService handles a user's cart. Menu item references are taken as-is;
// the catalog is never consulted here.
type CartService struct {
	cartRepo order.CartRepository
	logger   *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(cartRepo order.CartRepository, logger *zap.Logger) *CartService {
	return &CartService{cartRepo: cartRepo, logger: logger}
}

// Get returns the user's cart, creating it on first use
func (s *CartService) Get(ctx context.Context, userID uint) (*order.Cart, error) {
	return s.cartRepo.FindOrCreateByUser(ctx, userID)
}

// AddItem appends a line to the user's cart
func (s *CartService) AddItem(ctx context.Context, userID uint, input AddCartItemInput) (*order.Cart, error) {
	if input.MenuItemID == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "menu_item_id is required")
	}
	if input.Quantity < 1 {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be at least 1")
	}
	if input.Price < 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "price cannot be negative")
	}

	cart, err := s.cartRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := &order.CartItem{
		CartID:     cart.ID,
		MenuItemID: input.MenuItemID,
		Quantity:   input.Quantity,
		Price:      input.Price,
	}
	if err := s.cartRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return s.cartRepo.FindOrCreateByUser(ctx, userID)
}

// UpdateItem changes the quantity of one line in the user's cart
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*order.Cart, error) {
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_INPUT", "quantity must be at least 1")
	}

	cart, err := s.cartRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.FindOrCreateByUser(ctx, userID)
}

// RemoveItem deletes one line from the user's cart
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	cart, err := s.cartRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.RemoveItem(ctx, cart.ID, itemID)
}

// Clear empties the user's cart
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	cart, err := s.cartRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.Clear(ctx, cart.ID)
}
