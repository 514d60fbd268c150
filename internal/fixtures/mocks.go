// Package fixtures provides testify mocks for the repository boundary.
package fixtures

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/pkg/repository"
)

// MockTransactionRepository is a testify mock for repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.TransactionStatus,
) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTransactionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByUser(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

// MockPaymentRepository is a testify mock for repository.PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByTransaction(
	ctx context.Context,
	transactionID uuid.UUID,
) (*domain.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUnitOfWork satisfies repository.UnitOfWork. Do runs the callback
// against the mock itself, so repositories seen inside and outside the scope
// are the same instances. Set DoErr to simulate a transaction manager
// failure (the callback is then never invoked).
type MockUnitOfWork struct {
	Transactions *MockTransactionRepository
	Payments     *MockPaymentRepository
	Users        *MockUserRepository

	DoErr error
	// DoCalls counts opened atomic scopes.
	DoCalls int
}

// NewMockUnitOfWork creates a MockUnitOfWork with fresh repository mocks.
func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Transactions: &MockTransactionRepository{},
		Payments:     &MockPaymentRepository{},
		Users:        &MockUserRepository{},
	}
}

func (m *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	m.DoCalls++
	if m.DoErr != nil {
		return m.DoErr
	}
	return fn(m)
}

func (m *MockUnitOfWork) TransactionRepository() repository.TransactionRepository {
	return m.Transactions
}

func (m *MockUnitOfWork) PaymentRepository() repository.PaymentRepository {
	return m.Payments
}

func (m *MockUnitOfWork) UserRepository() repository.UserRepository {
	return m.Users
}

// AssertExpectations asserts expectations on all contained mocks.
func (m *MockUnitOfWork) AssertExpectations(t mock.TestingT) {
	m.Transactions.AssertExpectations(t)
	m.Payments.AssertExpectations(t)
	m.Users.AssertExpectations(t)
}
