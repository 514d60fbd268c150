// Package investment implements the investment orchestration saga: currency
// conversion, return calculation, ledger writes, and payment settlement with
// a compensating mark-failed write on partial failure.
package investment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/currency"
	"github.com/msaleh83/investo/pkg/domain"
	paymentsvc "github.com/msaleh83/investo/pkg/service/payment"

	"github.com/msaleh83/investo/pkg/provider"
	"github.com/msaleh83/investo/pkg/repository"
)

// Request is an investment order as received from the authenticated caller.
type Request struct {
	Amount         float64
	Currency       string
	DurationMonths int
	ProviderName   string
}

// Projection is the caller-facing view of a finalized ledger row. The user
// identifier is hashed; the raw id never leaves the service.
type Projection struct {
	TransactionID   uuid.UUID       `json:"transactionId"`
	UserID          domain.HashedID `json:"userId"`
	OriginalAmount  float64         `json:"originalAmount"`
	Currency        string          `json:"currency"`
	ConvertedAmount float64         `json:"convertedAmount"`
	ROIPercentage   float64         `json:"roiPercentage"`
	ProjectedValue  float64         `json:"projectedValue"`
	MaturityDate    string          `json:"maturityDate"`
	Status          string          `json:"status"`
	PaymentID       string          `json:"paymentId,omitempty"`
}

// Service coordinates the end-to-end investment flow and owns the
// consistency contract between ledger state and payment outcome.
type Service struct {
	uow      repository.UnitOfWork
	payments *paymentsvc.Service
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an investment service.
func New(uow repository.UnitOfWork, payments *paymentsvc.Service, logger *slog.Logger) *Service {
	return &Service{uow: uow, payments: payments, logger: logger, now: time.Now}
}

// NewWithClock creates an investment service with an injected clock.
func NewWithClock(
	uow repository.UnitOfWork,
	payments *paymentsvc.Service,
	logger *slog.Logger,
	now func() time.Time,
) *Service {
	return &Service{uow: uow, payments: payments, logger: logger, now: now}
}

// ProcessInvestment validates the request, checks the user's verification
// precondition, then runs the settlement saga:
//
//	convert -> create PENDING row -> pay (with retries) -> finalize
//
// On payment failure the row is durably marked FAILED before the original
// error is returned; validation and precondition failures never touch
// persistence.
func (s *Service) ProcessInvestment(
	ctx context.Context,
	userID uuid.UUID,
	req Request,
) (*Projection, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user, err := s.uow.UserRepository().Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn("user not found", "user", domain.HashID(userID.String()))
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.IsVerified {
		s.logger.Warn("unverified user attempt", "user", domain.HashID(userID.String()))
		return nil, domain.ErrUserNotVerified
	}

	// Resolve the provider before anything is persisted so an unknown or
	// unimplemented name never creates a ledger row.
	prov, err := s.payments.Resolve(req.ProviderName)
	if err != nil {
		return nil, err
	}

	var (
		trx    *domain.Transaction
		payErr error
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		converted, err := currency.Convert(req.Amount, currency.Code(req.Currency))
		if err != nil {
			return err
		}

		trx = domain.NewTransaction(
			userID, req.Amount, currency.Code(req.Currency),
			converted, req.DurationMonths, s.now().UTC(),
		)
		if err := uow.TransactionRepository().Create(ctx, trx); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}

		outcome, err := s.payments.Execute(ctx, prov, provider.PaymentRequest{
			UserID:   userID,
			Amount:   req.Amount,
			Currency: currency.Code(req.Currency),
		})
		if err != nil {
			// The terminal FAILED write must land even though the
			// payment step failed, so it commits with the scope
			// instead of rolling back with it.
			if uerr := uow.TransactionRepository().UpdateStatus(ctx, trx.ID, domain.TransactionFailed); uerr != nil {
				return fmt.Errorf("mark transaction failed: %w", uerr)
			}
			trx.Status = domain.TransactionFailed
			payErr = err
			return nil
		}

		pay := &domain.Payment{
			ID:                uuid.New(),
			TransactionID:     trx.ID,
			Provider:          outcome.Provider,
			Amount:            outcome.Amount,
			Currency:          outcome.Currency,
			Status:            outcome.Status,
			PaymentID:         outcome.PaymentID,
			ProviderReference: outcome.ProviderReference,
			Attempts:          outcome.Attempts,
			Created:           s.now().UTC(),
		}
		if err := uow.PaymentRepository().Create(ctx, pay); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		trx.Payment = pay

		status := domain.TransactionPending
		if outcome.Status == domain.PaymentCompleted {
			status = domain.TransactionCompleted
		}
		if err := uow.TransactionRepository().UpdateStatus(ctx, trx.ID, status); err != nil {
			return fmt.Errorf("finalize transaction: %w", err)
		}
		trx.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	if payErr != nil {
		return nil, payErr
	}

	s.logger.Info("processed investment",
		"transaction", domain.HashID(trx.ID.String()),
		"status", trx.Status,
	)
	return project(trx), nil
}

// GetTransaction returns a ledger row owned by the given user, with its
// linked payment.
func (s *Service) GetTransaction(
	ctx context.Context,
	userID, transactionID uuid.UUID,
) (*Projection, error) {
	trx, err := s.uow.TransactionRepository().Get(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if trx.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	return project(trx), nil
}

// ListTransactions returns all ledger rows owned by the given user.
func (s *Service) ListTransactions(ctx context.Context, userID uuid.UUID) ([]*Projection, error) {
	trxs, err := s.uow.TransactionRepository().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	projections := make([]*Projection, len(trxs))
	for i, trx := range trxs {
		projections[i] = project(trx)
	}
	return projections, nil
}

func validate(req Request) error {
	code := currency.Code(req.Currency)
	if !code.IsValidFormat() {
		return fmt.Errorf("%w: invalid currency format", domain.ErrInvalidInvestmentRequest)
	}
	if req.Amount <= 0 || math.IsInf(req.Amount, 0) || math.IsNaN(req.Amount) {
		return fmt.Errorf("%w: invalid investment amount", domain.ErrInvalidInvestmentRequest)
	}
	if req.DurationMonths < 1 || req.DurationMonths > 60 {
		return fmt.Errorf("%w: duration must be between 1 and 60 months", domain.ErrInvalidInvestmentRequest)
	}
	return nil
}

func project(trx *domain.Transaction) *Projection {
	p := &Projection{
		TransactionID:   trx.ID,
		UserID:          domain.HashID(trx.UserID.String()),
		OriginalAmount:  trx.OriginalAmount,
		Currency:        trx.Currency.String(),
		ConvertedAmount: trx.ConvertedAmount,
		ROIPercentage:   trx.ROIPercentage,
		ProjectedValue:  trx.ProjectedValue(),
		MaturityDate:    trx.MaturityDate.Format("2006-01-02"),
		Status:          string(trx.Status),
	}
	if trx.Payment != nil {
		p.PaymentID = trx.Payment.ID.String()
	}
	return p
}

// IsRetryable reports whether the caller should treat the error as
// transient (try again later) rather than a bad request.
func IsRetryable(err error) bool {
	var exhausted *domain.ExhaustedError
	return errors.As(err, &exhausted)
}
