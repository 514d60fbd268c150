package provider

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msaleh83/investo/pkg/domain"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	moyasar := NewDeterministicMoyasar(slog.Default(), func() bool { return true })
	r, err := NewRegistry(MoyasarName, moyasar, NewStripe(), NewPaypal())
	require.NoError(t, err)
	return r
}

func TestRegistry_ResolveDefault(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	p, err := r.Resolve("")
	require.NoError(t, err)
	assert.Equal(t, MoyasarName, p.Name())
}

func TestRegistry_ResolveCaseInsensitive(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	for _, name := range []string{"moyasar", "Moyasar", "MOYASAR"} {
		p, err := r.Resolve(name)
		require.NoError(t, err, "name %q", name)
		assert.Equal(t, MoyasarName, p.Name())
	}
}

func TestRegistry_UnimplementedProviders(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t)

	for _, name := range []string{"STRIPE", "PAYPAL", "paypal", "APPLEPAY"} {
		_, err := r.Resolve(name)
		assert.ErrorIs(t, err, domain.ErrProviderNotImplemented, "name %q", name)
	}
}

func TestRegistry_RejectsUnimplementedDefault(t *testing.T) {
	t.Parallel()
	_, err := NewRegistry(StripeName, NewStripe())
	assert.ErrorIs(t, err, domain.ErrProviderNotImplemented)
}

func TestUnimplementedProvider_FailsFast(t *testing.T) {
	t.Parallel()
	stripe := NewStripe()

	_, err := stripe.ProcessPayment(context.Background(), PaymentRequest{})
	assert.ErrorIs(t, err, domain.ErrProviderNotImplemented)

	_, err = stripe.VerifyPayment(context.Background(), "pi_123")
	assert.ErrorIs(t, err, domain.ErrProviderNotImplemented)
}
