package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/catalog"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
	"github.com/quickbite/backend/internal/infrastructure/notify"
	"github.com/quickbite/backend/internal/infrastructure/remote"
)

// OrderService handles order placement, lifecycle and the admin views
type OrderService struct {
	orderRepo     order.OrderRepository
	cartRepo      order.CartRepository
	catalogClient *remote.CatalogClient
	dispatcher    *notify.Dispatcher
	logger        *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo order.OrderRepository,
	cartRepo order.CartRepository,
	catalogClient *remote.CatalogClient,
	dispatcher *notify.Dispatcher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		cartRepo:      cartRepo,
		catalogClient: catalogClient,
		dispatcher:    dispatcher,
		logger:        logger,
	}
}

// Create places an order from the user's cart. Order, items and cart clear
// commit in one local transaction; everything cross-service around it stays
// best-effort. The admin notification goes out after commit and can never
// fail the order.
func (s *OrderService) Create(ctx context.Context, userID uint, input CreateOrderInput) (*order.Order, error) {
	if input.DeliveryTime != nil && input.DeliveryTime.Before(time.Now()) {
		return nil, shared.NewDomainError("INVALID_DELIVERY_TIME", "Delivery time cannot be in the past")
	}

	cart, err := s.cartRepo.FindOrCreateByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order with an empty cart")
	}

	o := &order.Order{
		UserID:          userID,
		RestaurantID:    catalog.DefaultRestaurantID,
		Status:          order.StatusPending,
		DeliveryAddress: input.Address,
		PaymentMethod:   order.PaymentMethodCard,
		TotalPrice:      cart.Total(),
		DeliveryTime:    input.DeliveryTime,
	}
	if err := s.orderRepo.CreateFromCart(ctx, o, cart); err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.Uint("order_id", o.ID),
		zap.Uint("user_id", userID),
		zap.Int64("total", o.TotalPrice))
	s.dispatcher.Dispatch(fmt.Sprintf("New order #%d: %d items, total %d.%02d, deliver to %s",
		o.ID, len(cart.Items), o.TotalPrice/100, o.TotalPrice%100, o.DeliveryAddress))
	return o, nil
}

// ListByUser returns the user's own orders
func (s *OrderService) ListByUser(ctx context.Context, userID uint) ([]order.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}

// GetOwn returns one order if it belongs to the user
func (s *OrderService) GetOwn(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrForbidden
	}
	return o, nil
}

// Cancel cancels the user's order while it is still pending or accepted
func (s *OrderService) Cancel(ctx context.Context, userID, orderID uint) (*order.Order, error) {
	o, err := s.GetOwn(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.Cancellable() {
		return nil, shared.NewDomainError("ORDER_NOT_CANCELLABLE",
			fmt.Sprintf("Order in status %q can no longer be cancelled", o.Status))
	}

	o.Status = order.StatusCancelled
	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order cancelled", zap.Uint("order_id", o.ID), zap.Uint("user_id", userID))
	s.dispatcher.Dispatch(fmt.Sprintf("Order #%d was cancelled by the customer", o.ID))
	return o, nil
}

// AdminList returns the restaurant's orders, optionally filtered by status
func (s *OrderService) AdminList(ctx context.Context, statusValue string) ([]order.Order, error) {
	filter := order.OrderFilter{RestaurantID: catalog.DefaultRestaurantID}
	if statusValue != "" {
		status, ok := order.ParseStatus(statusValue)
		if !ok {
			return nil, shared.NewDomainError("INVALID_STATUS",
				fmt.Sprintf("Unknown order status %q", statusValue))
		}
		filter.Status = &status
	}
	return s.orderRepo.FindAll(ctx, filter)
}

// AdminDetail returns the aggregated view of one order. Item names come
// from the catalog service; a name that cannot be resolved degrades to
// "Unknown" instead of failing the view, whether the item was deleted or
// the catalog is down.
func (s *OrderService) AdminDetail(ctx context.Context, orderID uint) (*AdminOrderDetail, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.FindItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	nameEnrichment := remote.Enrichment[string]{Fallback: "Unknown"}
	detail := &AdminOrderDetail{Order: o, Items: make([]AdminOrderItem, 0, len(items))}
	for _, item := range items {
		name, _ := nameEnrichment.Resolve(ctx, func(ctx context.Context) (string, error) {
			ref, err := s.catalogClient.GetMenuItem(ctx, item.MenuItemID)
			if err != nil {
				return "", err
			}
			return ref.Name, nil
		})
		detail.Items = append(detail.Items, AdminOrderItem{
			MenuItemID:   item.MenuItemID,
			MenuItemName: name,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Subtotal:     item.Price * int64(item.Quantity),
		})
	}
	return detail, nil
}

// AdminUpdateStatus moves an order to a new lifecycle state
func (s *OrderService) AdminUpdateStatus(ctx context.Context, orderID uint, statusValue string) (*order.Order, error) {
	status, ok := order.ParseStatus(statusValue)
	if !ok {
		return nil, shared.NewDomainError("INVALID_STATUS",
			fmt.Sprintf("Unknown order status %q", statusValue))
	}

	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	o.Status = status
	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.logger.Info("Order status changed",
		zap.Uint("order_id", o.ID),
		zap.String("status", string(status)))
	return o, nil
}

// AdminUpdate applies admin edits to an order
func (s *OrderService) AdminUpdate(ctx context.Context, orderID uint, input AdminOrderUpdateInput) (*order.Order, error) {
	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if input.Address != nil {
		o.DeliveryAddress = *input.Address
	}
	if input.OperatorComment != nil {
		o.OperatorComment = *input.OperatorComment
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
