// Package investment exposes the investment placement and inquiry endpoints.
package investment

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/pkg/middleware"
	authsvc "github.com/msaleh83/investo/pkg/service/auth"
	investmentsvc "github.com/msaleh83/investo/pkg/service/investment"
	"github.com/msaleh83/investo/webapi/common"
)

func Routes(
	app *fiber.App,
	investmentSvc *investmentsvc.Service,
	authSvc *authsvc.Service,
	cfg *config.AppConfig,
) {
	app.Post("/investment", middleware.JwtProtected(cfg.Jwt), CreateInvestment(investmentSvc, authSvc))
	app.Get("/investment", middleware.JwtProtected(cfg.Jwt), ListInvestments(investmentSvc, authSvc))
	app.Get("/investment/:id", middleware.JwtProtected(cfg.Jwt), GetInvestment(investmentSvc, authSvc))
}

// CreateInvestment places an investment for the authenticated user: the
// amount is converted to USD, a ledger row is created, and the payment is
// charged through the selected provider before the row is finalized.
// @Summary Place an investment
// @Description Convert, charge and record an investment for the authenticated user
// @Tags investments
// @Accept json
// @Produce json
// @Param request body InvestmentRequest true "Investment order"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Failure 503 {object} common.ProblemDetails
// @Router /investment [post]
// @Security Bearer
func CreateInvestment(investmentSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[InvestmentRequest](c)
		if input == nil {
			return err // error response already written
		}
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return err
		}
		projection, err := investmentSvc.ProcessInvestment(c.Context(), userID, investmentsvc.Request{
			Amount:         input.Amount,
			Currency:       input.Currency,
			DurationMonths: input.DurationMonths,
			ProviderName:   input.Provider,
		})
		if err != nil {
			if investmentsvc.IsRetryable(err) {
				return common.ProblemDetailsJSON(
					c, "Payment provider unavailable", err,
					"The payment could not be completed after several attempts; please try again later")
			}
			return common.ProblemDetailsJSON(c, "Couldn't place investment", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Investment placed", projection)
	}
}

// GetInvestment returns one of the authenticated user's investments.
// @Summary Get investment by ID
// @Description Retrieve a single investment owned by the authenticated user
// @Tags investments
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /investment/{id} [get]
// @Security Bearer
func GetInvestment(investmentSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			log.Errorf("Invalid transaction ID: %v", err)
			return common.ProblemDetailsJSON(
				c, "Invalid transaction ID", err, "Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return err
		}
		projection, err := investmentSvc.GetTransaction(c.Context(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Investment not found", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investment found", projection)
	}
}

// ListInvestments returns all investments owned by the authenticated user.
// @Summary List investments
// @Description List all investments owned by the authenticated user
// @Tags investments
// @Accept json
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /investment [get]
// @Security Bearer
func ListInvestments(investmentSvc *investmentsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c, authSvc)
		if err != nil {
			return err
		}
		projections, err := investmentSvc.ListTransactions(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list investments", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Investments listed", projections)
	}
}

func currentUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, common.ProblemDetailsJSON(
			c, "Unauthorized", domain.ErrUserUnauthorized, "missing user context", fiber.StatusUnauthorized)
	}
	userID, err := authSvc.CurrentUserID(token)
	if err != nil {
		log.Errorf("Failed to parse user ID from token: %v", err)
		return uuid.Nil, common.ProblemDetailsJSON(c, "Unauthorized", nil, "", fiber.StatusUnauthorized)
	}
	return userID, nil
}
