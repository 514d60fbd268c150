// Package repository defines the persistence boundary for the investment
// ledger. Implementations live in infra/repository; services depend only on
// these interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/domain"
)

// TransactionRepository persists investment ledger rows.
type TransactionRepository interface {
	// Create inserts a new ledger row.
	Create(ctx context.Context, tx *domain.Transaction) error

	// UpdateStatus moves a ledger row to the given status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TransactionStatus) error

	// Get returns a ledger row with its linked payment, if any.
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)

	// ListByUser returns all ledger rows owned by a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error)
}

// PaymentRepository persists settlement attempt records.
type PaymentRepository interface {
	// Create inserts a payment row linked to its transaction.
	Create(ctx context.Context, p *domain.Payment) error

	// GetByTransaction returns the payment linked to a transaction, or
	// nil when none exists.
	GetByTransaction(ctx context.Context, transactionID uuid.UUID) (*domain.Payment, error)
}

// UserRepository persists account holders.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UnitOfWork is the atomic scope for ledger mutations. Repositories obtained
// inside Do share one database transaction; returning a non-nil error from
// the callback rolls the scope back, returning nil commits it.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	TransactionRepository() TransactionRepository
	PaymentRepository() PaymentRepository
	UserRepository() UserRepository
}
