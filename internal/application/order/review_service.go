package order

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/identity"
	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// ReviewService handles customer reviews of delivered orders
type ReviewService struct {
	reviewRepo order.ReviewRepository
	orderRepo  order.OrderRepository
	logger     *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo order.ReviewRepository, orderRepo order.OrderRepository, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		orderRepo:  orderRepo,
		logger:     logger,
	}
}

// CreateForOrder adds a review to the user's own delivered order. One review
// per order; the unique index decides under concurrency.
func (s *ReviewService) CreateForOrder(ctx context.Context, userID, orderID uint, input ReviewInput) (*order.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, shared.NewDomainError("INVALID_INPUT", "rating must be between 1 and 5")
	}

	o, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, shared.ErrForbidden
	}
	if o.Status != order.StatusDelivered {
		return nil, shared.NewDomainError("ORDER_NOT_DELIVERED", "Only delivered orders can be reviewed")
	}

	review := &order.Review{
		UserID:  userID,
		OrderID: orderID,
		Rating:  input.Rating,
		Text:    input.Comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("REVIEW_EXISTS", "This order has already been reviewed")
		}
		return nil, err
	}

	s.logger.Info("Review created",
		zap.Uint("review_id", review.ID),
		zap.Uint("order_id", orderID),
		zap.Int("rating", input.Rating))
	return review, nil
}

// GetForOrder returns the review of one order, if any
func (s *ReviewService) GetForOrder(ctx context.Context, orderID uint) (*order.Review, error) {
	return s.reviewRepo.FindByOrder(ctx, orderID)
}

// List returns reviews newest first, optionally scoped to a restaurant
func (s *ReviewService) List(ctx context.Context, restaurantID *uint) ([]order.Review, error) {
	return s.reviewRepo.FindAll(ctx, restaurantID)
}

// Delete removes a review. Only its author or a system admin may do so.
func (s *ReviewService) Delete(ctx context.Context, reviewID, userID uint, role identity.Role) error {
	review, err := s.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID && role != identity.RoleSystemAdmin {
		return shared.ErrForbidden
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}
