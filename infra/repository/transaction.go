package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/msaleh83/investo/pkg/domain"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository bound to the
// given session.
func NewTransactionRepository(db *gorm.DB) *transactionRepository {
	return &transactionRepository{db: db}
}

// Create implements repository.TransactionRepository.
func (r *transactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	if err := r.db.WithContext(ctx).Create(transactionToModel(t)).Error; err != nil {
		return fmt.Errorf("persist transaction: %w", err)
	}
	return nil
}

// UpdateStatus implements repository.TransactionRepository.
func (r *transactionRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.TransactionStatus,
) error {
	res := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update transaction status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// Get implements repository.TransactionRepository.
func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var m Transaction
	err := r.db.WithContext(ctx).
		Preload("Payment").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transactionToDomain(&m), nil
}

// ListByUser implements repository.TransactionRepository.
func (r *transactionRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Transaction, error) {
	var models []Transaction
	err := r.db.WithContext(ctx).
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Transaction, len(models))
	for i := range models {
		out[i] = transactionToDomain(&models[i])
	}
	return out, nil
}
