package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/msaleh83/investo/pkg/domain"
)

// Names of providers that are declared but have no implementation yet.
// Selecting one fails fast with domain.ErrProviderNotImplemented.
const (
	StripeName = "STRIPE"
	PaypalName = "PAYPAL"
)

// Registry holds the closed set of payment providers, resolved at startup.
// Name matching is case-insensitive.
type Registry struct {
	providers   map[string]PaymentProvider
	defaultName string
}

// NewRegistry builds a registry from the given providers with the given
// default. The default must be one of the registered providers.
func NewRegistry(defaultName string, providers ...PaymentProvider) (*Registry, error) {
	r := &Registry{
		providers:   make(map[string]PaymentProvider, len(providers)),
		defaultName: strings.ToUpper(defaultName),
	}
	for _, p := range providers {
		r.providers[strings.ToUpper(p.Name())] = p
	}
	if _, err := r.Resolve(r.defaultName); err != nil {
		return nil, fmt.Errorf("default provider: %w", err)
	}
	return r, nil
}

// Resolve returns the provider for the requested name, falling back to the
// default when the name is empty. Unknown or unimplemented names fail with
// domain.ErrProviderNotImplemented.
func (r *Registry) Resolve(name string) (PaymentProvider, error) {
	if name == "" {
		name = r.defaultName
	}
	p, ok := r.providers[strings.ToUpper(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotImplemented, name)
	}
	if _, declaredOnly := p.(*unimplemented); declaredOnly {
		return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotImplemented, p.Name())
	}
	return p, nil
}

// unimplemented is a declared provider variant with no backing integration.
type unimplemented struct {
	name string
}

// NewStripe returns the declared Stripe provider. Every call fails with
// domain.ErrProviderNotImplemented.
func NewStripe() PaymentProvider {
	return &unimplemented{name: StripeName}
}

// NewPaypal returns the declared PayPal provider. Every call fails with
// domain.ErrProviderNotImplemented.
func NewPaypal() PaymentProvider {
	return &unimplemented{name: PaypalName}
}

func (u *unimplemented) Name() string {
	return u.name
}

func (u *unimplemented) ProcessPayment(context.Context, PaymentRequest) (*PaymentOutcome, error) {
	return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotImplemented, u.name)
}

func (u *unimplemented) VerifyPayment(context.Context, string) (*PaymentOutcome, error) {
	return nil, fmt.Errorf("%w: %s", domain.ErrProviderNotImplemented, u.name)
}
