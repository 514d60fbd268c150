package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/middleware"
	authsvc "github.com/msaleh83/investo/pkg/service/auth"
	usersvc "github.com/msaleh83/investo/pkg/service/user"
	"github.com/msaleh83/investo/webapi/common"
)

func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.AppConfig) {
	app.Post("/user", CreateUser(userSvc))
	app.Get("/user/:id", middleware.JwtProtected(cfg.Jwt), GetUser(userSvc, authSvc))
	app.Put("/user/:id", middleware.JwtProtected(cfg.Jwt), UpdateUser(userSvc, authSvc))
	app.Delete("/user/:id", middleware.JwtProtected(cfg.Jwt), DeleteUser(userSvc, authSvc))
	app.Post("/user/:id/kyc", middleware.JwtProtected(cfg.Jwt), SubmitKYC(userSvc, authSvc))
}

// CreateUser creates a new, unverified user account.
// @Summary Create a new user
// @Description Create a new user account with email, password and name
// @Tags users
// @Accept json
// @Produce json
// @Param request body NewUser true "User creation data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user [post]
func CreateUser(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[NewUser](c)
		if input == nil {
			return err // error response already written
		}
		u, err := userSvc.Create(c.Context(), input.Email, input.Password, input.FirstName, input.LastName)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create user", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Created user", u)
	}
}

// GetUser retrieves the authenticated user's own account.
// @Summary Get user by ID
// @Description Retrieve a user by their ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user/{id} [get]
// @Security Bearer
func GetUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireOwnUserID(c, authSvc)
		if err != nil {
			return err // error response already written
		}
		u, err := userSvc.Get(c.Context(), id)
		if err != nil || u == nil {
			// Generic error to prevent user enumeration
			return common.ProblemDetailsJSON(c, "Invalid credentials", nil, "", fiber.StatusUnauthorized)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "User found", u)
	}
}

// UpdateUser updates the authenticated user's profile fields.
// @Summary Update user
// @Description Update user information by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UpdateUserInput true "User update data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/{id} [put]
// @Security Bearer
func UpdateUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateUserInput](c)
		if input == nil {
			return err
		}
		id, err := requireOwnUserID(c, authSvc)
		if err != nil {
			return err
		}
		u, err := userSvc.Update(c.Context(), id, input.FirstName, input.LastName)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update user", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Updated user", u)
	}
}

// DeleteUser removes the authenticated user's account.
// @Summary Delete user
// @Description Delete a user account by ID
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/{id} [delete]
// @Security Bearer
func DeleteUser(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := requireOwnUserID(c, authSvc)
		if err != nil {
			return err
		}
		if err := userSvc.Delete(c.Context(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete user", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deleted user", nil)
	}
}

// SubmitKYC attaches identity documents to the authenticated user's account.
// @Summary Submit KYC documents
// @Description Submit identity documents for verification review
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body KYCInput true "KYC document data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /user/{id}/kyc [post]
// @Security Bearer
func SubmitKYC(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[KYCInput](c)
		if input == nil {
			return err
		}
		id, err := requireOwnUserID(c, authSvc)
		if err != nil {
			return err
		}
		u, err := userSvc.SubmitKYC(c.Context(), id, input.DocumentType, input.DocumentNumber)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't submit KYC", err, "")
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "KYC submitted", u)
	}
}

// requireOwnUserID parses the :id path param and checks it matches the
// authenticated token subject. On failure the error response is already
// written.
func requireOwnUserID(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		log.Errorf("Invalid user ID: %v", err)
		return uuid.Nil, common.ProblemDetailsJSON(
			c, "Invalid user ID", err, "User ID must be a valid UUID", fiber.StatusBadRequest)
	}
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, common.ProblemDetailsJSON(
			c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
	}
	tokenID, err := authSvc.CurrentUserID(token)
	if err != nil {
		log.Errorf("Failed to parse user ID from token: %v", err)
		return uuid.Nil, common.ProblemDetailsJSON(c, "Unauthorized", nil, "", fiber.StatusUnauthorized)
	}
	if id != tokenID {
		return uuid.Nil, common.ProblemDetailsJSON(
			c, "Forbidden", nil, "cannot act on another user's account", fiber.StatusForbidden)
	}
	return id, nil
}
