package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// PaymentService records payment attempts for orders. Purely local
// bookkeeping; there is no payment processor behind it.
type PaymentService struct {
	paymentRepo order.PaymentRepository
	orderRepo   order.OrderRepository
	logger      *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo order.PaymentRepository, orderRepo order.OrderRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// Create opens a payment for an existing order
func (s *PaymentService) Create(ctx context.Context, orderID uint, amount int64) (*order.Payment, error) {
	if amount <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "amount must be positive")
	}
	if _, err := s.orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, err
	}

	payment := &order.Payment{
		OrderID: orderID,
		Amount:  amount,
		Status:  order.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.NewDomainError("PAYMENT_EXISTS", "A payment already exists for this order")
		}
		return nil, err
	}
	return payment, nil
}

// Confirm marks a pending payment as completed
func (s *PaymentService) Confirm(ctx context.Context, paymentID uint) (*order.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != order.PaymentStatusPending && payment.Status != order.PaymentStatusProcessing {
		return nil, shared.NewDomainError("INVALID_PAYMENT_STATE",
			"Only pending payments can be confirmed")
	}

	payment.Status = order.PaymentStatusCompleted
	payment.TransactionID = uuid.NewString()
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment confirmed",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("order_id", payment.OrderID))
	return payment, nil
}

// Get returns one payment
func (s *PaymentService) Get(ctx context.Context, paymentID uint) (*order.Payment, error) {
	return s.paymentRepo.FindByID(ctx, paymentID)
}
