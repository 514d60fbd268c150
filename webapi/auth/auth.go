package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	authsvc "github.com/msaleh83/investo/pkg/service/auth"
	usersvc "github.com/msaleh83/investo/pkg/service/user"
	"github.com/msaleh83/investo/webapi/common"
)

func Routes(app *fiber.App, authSvc *authsvc.Service, userSvc *usersvc.Service) {
	app.Post("/auth/login", Login(authSvc, userSvc))
}

// Login authenticates a user and returns a JWT.
// @Summary User login
// @Description Authenticate with email and password, receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service, userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			// Same response whether the email or the password was wrong
			return common.ProblemDetailsJSON(c, "Invalid credentials", nil, "", fiber.StatusUnauthorized)
		}
		token, err := authSvc.GenerateToken(u)
		if err != nil {
			log.Errorf("Failed to generate token: %v", err)
			return common.ProblemDetailsJSON(c, "Couldn't log in", err, "")
		}
		userSvc.RecordLogin(c.Context(), u.ID)
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Logged in", LoginResponse{Token: token})
	}
}
