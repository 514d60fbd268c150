// Package provider defines the payment provider contract and its
// implementations. Providers execute and verify settlement attempts against
// an external payment network; everything above them treats a decline and a
// transport failure identically.
package provider

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/currency"
)

// PaymentRequest carries the fields a provider needs to execute a payment.
type PaymentRequest struct {
	UserID   uuid.UUID
	Amount   float64
	Currency currency.Code
}

// PaymentOutcome is a provider-reported settlement result.
type PaymentOutcome struct {
	PaymentID         string        `json:"paymentId"`
	Status            string        `json:"status"`
	Amount            int64         `json:"amount"` // smallest currency unit
	Currency          currency.Code `json:"currency"`
	Timestamp         time.Time     `json:"timestamp"`
	Provider          string        `json:"provider"`
	ProviderReference string        `json:"providerReference"`

	// Attempts is filled in by the orchestrator with the number of
	// attempts consumed before this outcome; providers leave it zero.
	Attempts int `json:"attempts"`
}

// PaymentProvider is the uniform adapter contract over payment services.
type PaymentProvider interface {
	// Name returns the provider's canonical name for selection and logging.
	Name() string

	// ProcessPayment executes a single settlement attempt. It is safe to
	// invoke repeatedly; any transport error or decline is returned as a
	// *domain.PaymentAttemptError.
	ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentOutcome, error)

	// VerifyPayment reads the provider-side state of a payment. Idempotent.
	VerifyPayment(ctx context.Context, paymentID string) (*PaymentOutcome, error)
}
