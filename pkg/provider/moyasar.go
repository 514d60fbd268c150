package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/msaleh83/investo/pkg/domain"
)

// MoyasarName is the canonical name of the Moyasar provider.
const MoyasarName = "MOYASAR"

// Moyasar simulates the Moyasar payment API. The network call is a latency
// sleep and payments decline with a fixed probability, which is enough to
// exercise the retry and failure paths end to end.
type Moyasar struct {
	apiKey  string
	logger  *slog.Logger
	latency func(context.Context) error
	decide  func() bool
}

// NewMoyasar creates a Moyasar provider with simulated latency and an 80%
// approval rate.
func NewMoyasar(apiKey string, logger *slog.Logger) *Moyasar {
	return &Moyasar{
		apiKey:  apiKey,
		logger:  logger,
		latency: simulateAPICall,
		decide:  func() bool { return rand.Float64() <= 0.8 },
	}
}

// NewDeterministicMoyasar creates a Moyasar provider with no latency and a
// caller-controlled approval decision. Used by tests and local development.
func NewDeterministicMoyasar(logger *slog.Logger, approve func() bool) *Moyasar {
	return &Moyasar{
		apiKey:  "test_api_key",
		logger:  logger,
		latency: func(context.Context) error { return nil },
		decide:  approve,
	}
}

// Name implements PaymentProvider.
func (m *Moyasar) Name() string {
	return MoyasarName
}

// ProcessPayment implements PaymentProvider.
func (m *Moyasar) ProcessPayment(ctx context.Context, req PaymentRequest) (*PaymentOutcome, error) {
	m.logger.Info("processing payment via Moyasar",
		"user", domain.HashID(req.UserID.String()),
		"currency", req.Currency,
	)

	// Moyasar takes amounts in the smallest currency unit.
	amount := int64(math.Round(req.Amount * 100))

	if err := m.latency(ctx); err != nil {
		return nil, &domain.PaymentAttemptError{Provider: m.Name(), Err: err}
	}

	if !m.decide() {
		err := &domain.PaymentAttemptError{
			Provider: m.Name(),
			Err:      errors.New("payment declined by Moyasar"),
		}
		m.logger.Error("Moyasar payment error", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	paymentID := fmt.Sprintf("MSR-%d-%04d", now.UnixMilli(), rand.Intn(10000))
	return &PaymentOutcome{
		PaymentID:         paymentID,
		Status:            domain.PaymentCompleted,
		Amount:            amount,
		Currency:          req.Currency,
		Timestamp:         now,
		Provider:          m.Name(),
		ProviderReference: "moyasar_" + paymentID,
	}, nil
}

// VerifyPayment implements PaymentProvider.
func (m *Moyasar) VerifyPayment(ctx context.Context, paymentID string) (*PaymentOutcome, error) {
	m.logger.Info("verifying Moyasar payment", "payment_id", paymentID)

	if err := m.latency(ctx); err != nil {
		return nil, &domain.PaymentAttemptError{Provider: m.Name(), Err: err}
	}

	return &PaymentOutcome{
		PaymentID:         paymentID,
		Status:            domain.PaymentCompleted,
		Timestamp:         time.Now().UTC(),
		Provider:          m.Name(),
		ProviderReference: "moyasar_" + paymentID,
	}, nil
}

// simulateAPICall sleeps 300-1000ms to mimic network latency, honoring
// context cancellation.
func simulateAPICall(ctx context.Context) error {
	delay := time.Duration(300+rand.Intn(700)) * time.Millisecond
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
