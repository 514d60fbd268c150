// Package auth issues and parses the JWTs that gate the API.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/pkg/repository"
)

// dummyHash keeps the bcrypt comparison on the missing-user path so login
// timing does not reveal whether an email exists.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service authenticates users and issues signed tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.JwtConfig
	logger *slog.Logger
}

// New creates an auth service.
func New(uow repository.UnitOfWork, cfg config.JwtConfig, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login checks credentials and returns the authenticated user.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, error) {
	u, err := s.uow.UserRepository().GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, domain.ErrUserUnauthorized
		}
		return nil, err
	}
	if !u.CheckPassword(password) {
		s.logger.Warn("failed login attempt", "user", domain.HashID(u.ID.String()))
		return nil, domain.ErrUserUnauthorized
	}
	return u, nil
}

// GenerateToken issues an HS256 JWT for the user.
func (s *Service) GenerateToken(u *domain.User) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = u.ID.String()
	claims["email"] = u.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentUserID extracts the authenticated user id from a parsed token.
func (s *Service) CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrUserUnauthorized
	}
	return id, nil
}
