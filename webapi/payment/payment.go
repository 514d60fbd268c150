// Package payment exposes the provider-side payment verification endpoint.
package payment

import (
	"github.com/gofiber/fiber/v2"

	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/middleware"
	paymentsvc "github.com/msaleh83/investo/pkg/service/payment"
	"github.com/msaleh83/investo/webapi/common"
)

func Routes(app *fiber.App, paymentSvc *paymentsvc.Service, cfg *config.AppConfig) {
	app.Get("/payment/:id/verify", middleware.JwtProtected(cfg.Jwt), VerifyPayment(paymentSvc))
}

// VerifyPayment checks a payment's state directly against the provider.
// @Summary Verify a payment
// @Description Query the payment provider for the current state of a payment
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Provider payment ID"
// @Param provider query string false "Provider name (defaults to the configured provider)"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /payment/{id}/verify [get]
// @Security Bearer
func VerifyPayment(paymentSvc *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		paymentID := c.Params("id")
		providerName := c.Query("provider")
		outcome, err := paymentSvc.Verify(c.Context(), providerName, paymentID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't verify payment", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment verified", outcome)
	}
}
