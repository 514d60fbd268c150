package investment_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/webapi/common"
	"github.com/msaleh83/investo/webapi/testutils"
)

func TestCreateInvestment(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)
	h.UoW.Users.On("Get", mock.Anything, u.ID).Return(u, nil)
	h.UoW.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)
	h.UoW.Payments.On("Create", mock.Anything, mock.Anything).Return(nil)
	h.UoW.Transactions.On("UpdateStatus", mock.Anything, mock.Anything, domain.TransactionCompleted).
		Return(nil)

	body := `{"amount":10000,"currency":"EUR","durationMonths":12}`
	resp := h.MakeRequest(t, "POST", "/investment", body, token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var envelope common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, 10800.0, data["convertedAmount"])
	require.Equal(t, 10.0, data["roiPercentage"])
	require.Equal(t, "COMPLETED", data["status"])
	// The raw user id must not appear in the response.
	require.NotEqual(t, u.ID.String(), data["userId"])
	h.UoW.AssertExpectations(t)
}

func TestCreateInvestmentValidation(t *testing.T) {
	testCases := []struct {
		desc string
		body string
	}{
		{desc: "zero amount", body: `{"amount":0,"currency":"USD","durationMonths":12}`},
		{desc: "negative amount", body: `{"amount":-100,"currency":"USD","durationMonths":12}`},
		{desc: "lowercase currency", body: `{"amount":100,"currency":"usd","durationMonths":12}`},
		{desc: "bad currency length", body: `{"amount":100,"currency":"USDT","durationMonths":12}`},
		{desc: "zero duration", body: `{"amount":100,"currency":"USD","durationMonths":0}`},
		{desc: "excessive duration", body: `{"amount":100,"currency":"USD","durationMonths":61}`},
		{desc: "not json", body: `amount=100`},
	}

	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			resp := h.MakeRequest(t, "POST", "/investment", tc.body, token)
			defer resp.Body.Close() //nolint:errcheck
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestCreateInvestmentUnsupportedCurrency(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)
	h.UoW.Users.On("Get", mock.Anything, u.ID).Return(u, nil)

	body := `{"amount":10000,"currency":"JPY","durationMonths":12}`
	resp := h.MakeRequest(t, "POST", "/investment", body, token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateInvestmentUnverifiedUser(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	u.IsVerified = false
	token := h.TokenFor(t, u)
	h.UoW.Users.On("Get", mock.Anything, u.ID).Return(u, nil)

	body := `{"amount":10000,"currency":"USD","durationMonths":12}`
	resp := h.MakeRequest(t, "POST", "/investment", body, token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateInvestmentUnimplementedProvider(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)
	h.UoW.Users.On("Get", mock.Anything, u.ID).Return(u, nil)

	body := `{"amount":10000,"currency":"USD","durationMonths":12,"providerName":"STRIPE"}`
	resp := h.MakeRequest(t, "POST", "/investment", body, token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	// No ledger row may exist for a provider that cannot charge.
	require.Zero(t, h.UoW.DoCalls)
}

func TestCreateInvestmentRequiresToken(t *testing.T) {
	h := testutils.NewHarness(t)

	// A missing Authorization header is a malformed request.
	body := `{"amount":10000,"currency":"USD","durationMonths":12}`
	resp := h.MakeRequest(t, "POST", "/investment", body, "")
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetInvestment(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)
	trx := ownedTransaction(u.ID)
	h.UoW.Transactions.On("Get", mock.Anything, trx.ID).Return(trx, nil)

	resp := h.MakeRequest(t, "GET", "/investment/"+trx.ID.String(), "", token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetInvestmentOwnedByAnother(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)
	trx := ownedTransaction(uuid.New())
	h.UoW.Transactions.On("Get", mock.Anything, trx.ID).Return(trx, nil)

	resp := h.MakeRequest(t, "GET", "/investment/"+trx.ID.String(), "", token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetInvestmentBadID(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)

	resp := h.MakeRequest(t, "GET", "/investment/not-a-uuid", "", token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListInvestments(t *testing.T) {
	h := testutils.NewHarness(t)
	u := testutils.VerifiedUser(t)
	token := h.TokenFor(t, u)
	h.UoW.Transactions.On("ListByUser", mock.Anything, u.ID).
		Return([]*domain.Transaction{ownedTransaction(u.ID), ownedTransaction(u.ID)}, nil)

	resp := h.MakeRequest(t, "GET", "/investment", "", token)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	data, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 2)
}

func ownedTransaction(userID uuid.UUID) *domain.Transaction {
	return domain.NewTransaction(userID, 10000, "EUR", 10800, 12, time.Now().UTC())
}
