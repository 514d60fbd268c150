package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInvestmentRequest is returned when the investment request
	// carries a malformed currency, amount, or duration.
	ErrInvalidInvestmentRequest = errors.New("invalid investment request")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserNotVerified is returned when an unverified user attempts an investment.
	ErrUserNotVerified = errors.New("user verification required")

	// ErrUserUnauthorized is returned when credentials or token claims do not
	// resolve to a known user.
	ErrUserUnauthorized = errors.New("user unauthorized")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("user with this email already exists")

	// ErrProviderNotImplemented is returned when a payment provider is
	// unknown or declared but not implemented.
	ErrProviderNotImplemented = errors.New("payment provider not implemented")

	// ErrTransactionNotFound is returned when a ledger row cannot be found.
	ErrTransactionNotFound = errors.New("transaction not found")
)

// PaymentAttemptError reports a single failed payment attempt, either a
// transport error or a provider-side decline. The orchestrator retries it;
// callers only see it wrapped in an ExhaustedError.
type PaymentAttemptError struct {
	Provider string
	Err      error
}

func (e *PaymentAttemptError) Error() string {
	return fmt.Sprintf("payment attempt via %s failed: %v", e.Provider, e.Err)
}

func (e *PaymentAttemptError) Unwrap() error {
	return e.Err
}

// ExhaustedError is the terminal payment failure after the retry budget is
// spent. It carries the number of attempts made and the last attempt error.
type ExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("payment processing failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *ExhaustedError) Unwrap() error {
	return e.LastErr
}
