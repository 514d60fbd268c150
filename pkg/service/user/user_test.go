package user

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/msaleh83/investo/internal/fixtures"
	"github.com/msaleh83/investo/pkg/domain"
)

func newServiceWithMocks() (*Service, *fixtures.MockUnitOfWork) {
	uow := fixtures.NewMockUnitOfWork()
	return New(uow, slog.Default()), uow
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	uow.Users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Create(context.Background(), "Alice@Example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email, "email is lowercased")
	assert.False(t, u.IsVerified)
	assert.True(t, u.CheckPassword("password123"))
	assert.NotEqual(t, "password123", u.Password)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, "bob@example.com").
		Return(&domain.User{ID: uuid.New(), Email: "bob@example.com"}, nil)

	_, err := svc.Create(context.Background(), "bob@example.com", "password123", "Bob", "Jones")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	uow.Users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_RepoError(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	uow.Users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Create(context.Background(), "x@example.com", "password123", "X", "Y")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	id := uuid.New()
	uow.Users.On("Get", mock.Anything, id).Return(&domain.User{ID: id}, nil)
	uow.Users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Verify(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, u.IsVerified)
}

func TestSubmitKYC(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	id := uuid.New()
	uow.Users.On("Get", mock.Anything, id).Return(&domain.User{ID: id}, nil)
	uow.Users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.SubmitKYC(context.Background(), id, "passport", "A1234567")
	require.NoError(t, err)
	require.NotNil(t, u.KYC)
	assert.Equal(t, domain.KYCPending, u.KYC.Status)
	assert.False(t, u.KYC.SubmittedAt.IsZero())
}

func TestUpdate_PartialFields(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	id := uuid.New()
	uow.Users.On("Get", mock.Anything, id).
		Return(&domain.User{ID: id, FirstName: "Old", LastName: "Name"}, nil)
	uow.Users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.Update(context.Background(), id, "New", "")
	require.NoError(t, err)
	assert.Equal(t, "New", u.FirstName)
	assert.Equal(t, "Name", u.LastName)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	svc, uow := newServiceWithMocks()
	uow.Users.On("Get", mock.Anything, mock.Anything).Return(nil, domain.ErrUserNotFound)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
