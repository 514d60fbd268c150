package provider

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msaleh83/investo/pkg/currency"
	"github.com/msaleh83/investo/pkg/domain"
)

func TestMoyasar_ProcessPayment_Approved(t *testing.T) {
	t.Parallel()
	m := NewDeterministicMoyasar(slog.Default(), func() bool { return true })

	outcome, err := m.ProcessPayment(context.Background(), PaymentRequest{
		UserID:   uuid.New(),
		Amount:   99.99,
		Currency: currency.USD,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentCompleted, outcome.Status)
	assert.Equal(t, int64(9999), outcome.Amount, "amount submitted in smallest unit")
	assert.Equal(t, currency.USD, outcome.Currency)
	assert.Equal(t, MoyasarName, outcome.Provider)
	assert.Contains(t, outcome.PaymentID, "MSR-")
	assert.Equal(t, "moyasar_"+outcome.PaymentID, outcome.ProviderReference)
}

func TestMoyasar_ProcessPayment_Declined(t *testing.T) {
	t.Parallel()
	m := NewDeterministicMoyasar(slog.Default(), func() bool { return false })

	_, err := m.ProcessPayment(context.Background(), PaymentRequest{
		UserID:   uuid.New(),
		Amount:   50,
		Currency: currency.EUR,
	})
	require.Error(t, err)

	var attemptErr *domain.PaymentAttemptError
	require.ErrorAs(t, err, &attemptErr)
	assert.Equal(t, MoyasarName, attemptErr.Provider)
}

func TestMoyasar_VerifyPayment(t *testing.T) {
	t.Parallel()
	m := NewDeterministicMoyasar(slog.Default(), func() bool { return true })

	outcome, err := m.VerifyPayment(context.Background(), "MSR-1-0001")
	require.NoError(t, err)
	assert.Equal(t, "MSR-1-0001", outcome.PaymentID)
	assert.Equal(t, domain.PaymentCompleted, outcome.Status)
}
