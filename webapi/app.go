// Package webapi assembles the HTTP application from the service layer.
package webapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/msaleh83/investo/pkg/config"
	authsvc "github.com/msaleh83/investo/pkg/service/auth"
	investmentsvc "github.com/msaleh83/investo/pkg/service/investment"
	paymentsvc "github.com/msaleh83/investo/pkg/service/payment"
	usersvc "github.com/msaleh83/investo/pkg/service/user"
	"github.com/msaleh83/investo/webapi/auth"
	"github.com/msaleh83/investo/webapi/common"
	"github.com/msaleh83/investo/webapi/investment"
	"github.com/msaleh83/investo/webapi/payment"
	"github.com/msaleh83/investo/webapi/user"
)

// Deps carries the services the HTTP layer is built from.
type Deps struct {
	User       *usersvc.Service
	Auth       *authsvc.Service
	Investment *investmentsvc.Service
	Payment    *paymentsvc.Service
	Config     *config.AppConfig
}

// NewApp builds the Fiber application with rate limiting, panic recovery and
// all routes mounted.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, "", status)
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c, "Too Many Requests", nil, "Rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Investo is up 🚀")
	})

	auth.Routes(app, deps.Auth, deps.User)
	user.Routes(app, deps.User, deps.Auth, deps.Config)
	investment.Routes(app, deps.Investment, deps.Auth, deps.Config)
	payment.Routes(app, deps.Payment, deps.Config)

	return app
}
