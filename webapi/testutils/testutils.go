// Package testutils provides a handler test harness: a full Fiber app wired
// over mocked repositories with a deterministic payment provider.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/msaleh83/investo/internal/fixtures"
	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/pkg/provider"
	authsvc "github.com/msaleh83/investo/pkg/service/auth"
	investmentsvc "github.com/msaleh83/investo/pkg/service/investment"
	paymentsvc "github.com/msaleh83/investo/pkg/service/payment"
	usersvc "github.com/msaleh83/investo/pkg/service/user"
	"github.com/msaleh83/investo/webapi"
)

// Harness bundles the app under test with its mocked persistence layer.
type Harness struct {
	App  *fiber.App
	UoW  *fixtures.MockUnitOfWork
	Auth *authsvc.Service
	Cfg  *config.AppConfig
}

// NewHarness builds a Fiber app over mocked repositories. The payment
// provider always approves and never sleeps between attempts.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uow := fixtures.NewMockUnitOfWork()

	cfg := &config.AppConfig{
		Jwt: config.JwtConfig{Secret: "test-secret", Expiry: time.Hour},
		Payment: config.PaymentConfig{
			DefaultProvider: provider.MoyasarName,
			MaxRetries:      3,
			InitialBackoff:  time.Second,
		},
	}

	moyasar := provider.NewDeterministicMoyasar(logger, func() bool { return true })
	registry, err := provider.NewRegistry(cfg.Payment.DefaultProvider, moyasar)
	require.NoError(t, err)
	payments := paymentsvc.NewWithSleep(registry, cfg.Payment, logger,
		func(ctx context.Context, d time.Duration) error {
			return nil
		})

	auth := authsvc.New(uow, cfg.Jwt, logger)
	deps := webapi.Deps{
		User:       usersvc.New(uow, logger),
		Auth:       auth,
		Investment: investmentsvc.New(uow, payments, logger),
		Payment:    payments,
		Config:     cfg,
	}
	return &Harness{App: webapi.NewApp(deps), UoW: uow, Auth: auth, Cfg: cfg}
}

// TokenFor issues a valid bearer token for the given user.
func (h *Harness) TokenFor(t *testing.T, u *domain.User) string {
	t.Helper()
	token, err := h.Auth.GenerateToken(u)
	require.NoError(t, err)
	return token
}

// MakeRequest performs a request against the app under test and returns the
// response. A non-empty token is sent as a bearer Authorization header.
func (h *Harness) MakeRequest(t *testing.T, method, target, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := h.App.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// VerifiedUser returns a verified user with a known password hash. The
// password is "password123".
func VerifiedUser(t *testing.T) *domain.User {
	t.Helper()
	u, err := domain.NewUser("investor@example.com", "password123", "Mo", "Saleh")
	require.NoError(t, err)
	u.IsVerified = true
	return u
}
