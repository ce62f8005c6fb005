package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/quickbite/backend/internal/domain/order"
	"github.com/quickbite/backend/internal/domain/shared"
)

// GormPaymentRepository implements order.PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create inserts a new payment; a second payment for the same order maps to
// ErrAlreadyExists through the unique index on order_id
func (r *GormPaymentRepository) Create(ctx context.Context, p *order.Payment) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update saves changes to an existing payment
func (r *GormPaymentRepository) Update(ctx context.Context, p *order.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

// FindByID finds a payment by ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uint) (*order.Payment, error) {
	var p order.Payment
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ order.PaymentRepository = (*GormPaymentRepository)(nil)
