package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/msaleh83/investo/pkg/repository"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the scope's database
// transaction; outside a scope they run against the base connection.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// session returns the transaction when inside a scope, the base connection
// otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do runs fn inside a database transaction. Returning a non-nil error rolls
// the transaction back; returning nil commits it.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// TransactionRepository implements repository.UnitOfWork.
func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(u.session())
}

// PaymentRepository implements repository.UnitOfWork.
func (u *UoW) PaymentRepository() repository.PaymentRepository {
	return NewPaymentRepository(u.session())
}

// UserRepository implements repository.UnitOfWork.
func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.session())
}
