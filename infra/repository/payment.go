package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/msaleh83/investo/pkg/domain"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a payment repository bound to the given session.
func NewPaymentRepository(db *gorm.DB) *paymentRepository {
	return &paymentRepository{db: db}
}

// Create implements repository.PaymentRepository.
func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if err := r.db.WithContext(ctx).Create(paymentToModel(p)).Error; err != nil {
		return fmt.Errorf("persist payment: %w", err)
	}
	return nil
}

// GetByTransaction implements repository.PaymentRepository.
func (r *paymentRepository) GetByTransaction(
	ctx context.Context,
	transactionID uuid.UUID,
) (*domain.Payment, error) {
	var m Payment
	err := r.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return paymentToDomain(&m), nil
}
