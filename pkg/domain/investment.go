// Package domain holds the investment ledger entities and the pure
// calculations performed on them. It has no I/O dependencies.
package domain

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/currency"
)

// TransactionStatus is the lifecycle state of an investment ledger row.
type TransactionStatus string

const (
	// TransactionPending is the initial state, set when the row is created
	// and kept when a payment outcome is recorded but not completed.
	TransactionPending TransactionStatus = "PENDING"

	// TransactionCompleted means the linked payment completed.
	TransactionCompleted TransactionStatus = "COMPLETED"

	// TransactionFailed is terminal: the payment attempt exhausted its
	// retries or an error escaped after the row was created.
	TransactionFailed TransactionStatus = "FAILED"
)

// PaymentCompleted is the provider outcome value that finalizes a transaction.
const PaymentCompleted = "COMPLETED"

// Transaction is the durable investment ledger row. It owns at most one
// Payment, created only after the row itself exists.
type Transaction struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"userId"`
	OriginalAmount  float64           `json:"originalAmount"`
	Currency        currency.Code     `json:"currency"`
	ConvertedAmount float64           `json:"convertedAmount"`
	ROIPercentage   float64           `json:"roiPercentage"`
	MaturityDate    time.Time         `json:"maturityDate"`
	Status          TransactionStatus `json:"status"`
	Payment         *Payment          `json:"payment,omitempty"`
	Created         time.Time         `json:"created"`
	Updated         time.Time         `json:"updated"`
}

// Payment records the settlement attempt that succeeded for a transaction.
// It is immutable after creation except for out-of-band verification refresh.
type Payment struct {
	ID                uuid.UUID     `json:"id"`
	TransactionID     uuid.UUID     `json:"transactionId"`
	Provider          string        `json:"provider"`
	Amount            int64         `json:"amount"` // smallest currency unit
	Currency          currency.Code `json:"currency"`
	Status            string        `json:"status"`
	PaymentID         string        `json:"paymentId"` // provider-issued id
	ProviderReference string        `json:"providerReference"`
	Attempts          int           `json:"attempts"`
	Created           time.Time     `json:"created"`
}

// NewTransaction creates a PENDING ledger row for the given principal,
// converted amount, and duration.
func NewTransaction(
	userID uuid.UUID,
	amount float64,
	code currency.Code,
	convertedAmount float64,
	durationMonths int,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		OriginalAmount:  amount,
		Currency:        code,
		ConvertedAmount: convertedAmount,
		ROIPercentage:   CalculateReturnPercentage(convertedAmount),
		MaturityDate:    now.AddDate(0, durationMonths, 0),
		Status:          TransactionPending,
		Created:         now,
		Updated:         now,
	}
}

// annualReturnRate is the fixed annual return applied to every investment.
const annualReturnRate = 0.10

// CalculateReturnPercentage returns the annual return rate as a percentage,
// rounded to 2 decimal places. A non-positive amount yields 0, not NaN.
//
// The scaled amount is divided by itself before the percentage scaling, so
// the result is the constant annual rate for any positive input. This
// mirrors the production formula; do not make it amount-sensitive without a
// product decision and a release note.
func CalculateReturnPercentage(convertedAmount float64) float64 {
	if convertedAmount <= 0 {
		return 0
	}
	roi := convertedAmount * annualReturnRate / convertedAmount * 100
	return math.Round(roi*100) / 100
}

// ProjectedValue is the ROI-adjusted value at maturity, rounded to 2
// decimal places.
func (t *Transaction) ProjectedValue() float64 {
	v := t.ConvertedAmount * (1 + t.ROIPercentage/100)
	return math.Round(v*100) / 100
}
