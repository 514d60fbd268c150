// Package repository implements the persistence boundary on GORM/Postgres.
package repository

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted account holder.
type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password   string    `gorm:"type:varchar(255);not null"`
	FirstName  string    `gorm:"type:varchar(255);not null"`
	LastName   string    `gorm:"type:varchar(255);not null"`
	IsVerified bool      `gorm:"not null"`

	KYCDocumentType   *string
	KYCDocumentNumber *string `gorm:"type:varchar(64)"`
	KYCStatus         *string `gorm:"type:varchar(16)"`
	KYCSubmittedAt    *time.Time

	LastLogin *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string {
	return "users"
}

// Transaction is the persisted investment ledger row.
type Transaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index"`
	OriginalAmount  float64   `gorm:"type:decimal(20,2);not null"`
	Currency        string    `gorm:"type:varchar(3);not null"`
	ConvertedAmount float64   `gorm:"type:decimal(20,2);not null"`
	ROIPercentage   float64   `gorm:"type:decimal(5,2);not null;column:roi_percentage"`
	MaturityDate    time.Time `gorm:"not null"`
	Status          string    `gorm:"type:varchar(16);not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Payment *Payment `gorm:"foreignKey:TransactionID"`
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// Payment is a persisted settlement attempt record.
type Payment struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	TransactionID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Provider          string    `gorm:"type:varchar(32);not null"`
	Amount            int64     `gorm:"not null"`
	Currency          string    `gorm:"type:varchar(3);not null"`
	Status            string    `gorm:"type:varchar(16);not null"`
	PaymentID         string    `gorm:"type:varchar(64);column:payment_id;index"`
	ProviderReference string    `gorm:"type:varchar(128)"`
	Attempts          int       `gorm:"not null"`
	CreatedAt         time.Time
}

// TableName specifies the table name for the Payment model.
func (Payment) TableName() string {
	return "payments"
}
