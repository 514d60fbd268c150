package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/msaleh83/investo/internal/fixtures"
	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/domain"
)

func newServiceWithMocks(t *testing.T) (*Service, *fixtures.MockUnitOfWork, *domain.User) {
	t.Helper()
	uow := fixtures.NewMockUnitOfWork()
	cfg := config.JwtConfig{Secret: "test-secret", Expiry: time.Hour}
	u, err := domain.NewUser("carol@example.com", "password123", "Carol", "King")
	require.NoError(t, err)
	return New(uow, cfg, slog.Default()), uow, u
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks(t)
	uow.Users.On("GetByEmail", mock.Anything, "carol@example.com").Return(u, nil)

	got, err := svc.Login(context.Background(), "Carol@Example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	svc, uow, u := newServiceWithMocks(t)
	uow.Users.On("GetByEmail", mock.Anything, "carol@example.com").Return(u, nil)

	_, err := svc.Login(context.Background(), "carol@example.com", "nope")
	assert.ErrorIs(t, err, domain.ErrUserUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()
	svc, uow, _ := newServiceWithMocks(t)
	uow.Users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "ghost@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrUserUnauthorized)
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Parallel()
	svc, _, u := newServiceWithMocks(t)

	signed, err := svc.GenerateToken(u)
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	id, err := svc.CurrentUserID(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
}

func TestCurrentUserID_MissingClaim(t *testing.T) {
	t.Parallel()
	svc, _, _ := newServiceWithMocks(t)

	token := jwt.New(jwt.SigningMethodHS256)
	_, err := svc.CurrentUserID(token)
	assert.ErrorIs(t, err, domain.ErrUserUnauthorized)
}
