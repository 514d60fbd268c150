// Package payment wraps provider calls with a bounded retry and exponential
// backoff policy.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/pkg/provider"
)

const (
	defaultMaxAttempts    = 3
	defaultInitialBackoff = time.Second
)

// SleepFunc suspends between retry attempts. The production implementation
// honors context cancellation; tests inject a recording no-op.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Service executes payments through a resolved provider with retries.
type Service struct {
	registry       *provider.Registry
	logger         *slog.Logger
	sleep          SleepFunc
	maxAttempts    int
	initialBackoff time.Duration
}

// New creates a payment service using real wall-clock backoff. The retry
// policy comes from cfg; non-positive values fall back to 3 attempts with a
// 1s initial backoff.
func New(registry *provider.Registry, cfg config.PaymentConfig, logger *slog.Logger) *Service {
	return NewWithSleep(registry, cfg, logger, sleep)
}

// NewWithSleep creates a payment service with an injected backoff sleeper.
func NewWithSleep(
	registry *provider.Registry,
	cfg config.PaymentConfig,
	logger *slog.Logger,
	sleep SleepFunc,
) *Service {
	maxAttempts := cfg.MaxRetries
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	initialBackoff := cfg.InitialBackoff
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return &Service{
		registry:       registry,
		logger:         logger,
		sleep:          sleep,
		maxAttempts:    maxAttempts,
		initialBackoff: initialBackoff,
	}
}

// Resolve returns the provider for the requested name, falling back to the
// configured default when the name is empty.
func (s *Service) Resolve(providerName string) (provider.PaymentProvider, error) {
	return s.registry.Resolve(providerName)
}

// Execute runs a payment through the given provider with a bounded number
// of attempts (3 by default). The backoff starts at the configured initial
// value and doubles after each failed attempt; no backoff follows the final
// attempt. Attempts carry no idempotency key, so each one is an independent
// provider call.
//
// On success the returned outcome reports the attempts consumed. On
// exhaustion the error is a *domain.ExhaustedError wrapping the last
// attempt's failure.
func (s *Service) Execute(
	ctx context.Context,
	p provider.PaymentProvider,
	req provider.PaymentRequest,
) (*provider.PaymentOutcome, error) {
	hashedUser := domain.HashID(req.UserID.String())
	backoff := s.initialBackoff

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		s.logger.Info("payment attempt",
			"attempt", attempt,
			"user", hashedUser,
			"provider", p.Name(),
		)

		outcome, err := p.ProcessPayment(ctx, req)
		if err == nil {
			outcome.Attempts = attempt
			s.logger.Info("payment processed",
				"payment_id", outcome.PaymentID,
				"provider", p.Name(),
				"attempts", attempt,
			)
			return outcome, nil
		}
		lastErr = err

		if attempt == s.maxAttempts {
			break
		}
		s.logger.Warn("payment attempt failed, retrying",
			"attempt", attempt,
			"provider", p.Name(),
			"backoff", backoff,
		)
		if err := s.sleep(ctx, backoff); err != nil {
			lastErr = err
			break
		}
		backoff *= 2
	}

	s.logger.Error("payment failed after retries",
		"attempts", s.maxAttempts,
		"provider", p.Name(),
		"user", hashedUser,
	)
	return nil, &domain.ExhaustedError{Attempts: s.maxAttempts, LastErr: lastErr}
}

// Verify reads the provider-side state of a payment.
func (s *Service) Verify(
	ctx context.Context,
	providerName, paymentID string,
) (*provider.PaymentOutcome, error) {
	p, err := s.registry.Resolve(providerName)
	if err != nil {
		return nil, err
	}
	s.logger.Info("verifying payment", "payment_id", paymentID, "provider", p.Name())
	outcome, err := p.VerifyPayment(ctx, paymentID)
	if err != nil {
		s.logger.Error("payment verification failed", "error", err)
		return nil, err
	}
	return outcome, nil
}
