// Package user provides account holder management: registration, profile
// updates, verification, and KYC submission.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/msaleh83/investo/pkg/domain"
	"github.com/msaleh83/investo/pkg/repository"
)

// Service provides user management operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a user service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create registers a new, unverified user. Emails are unique and stored
// lowercased.
func (s *Service) Create(
	ctx context.Context,
	email, password, firstName, lastName string,
) (*domain.User, error) {
	existing, err := s.uow.UserRepository().GetByEmail(ctx, strings.ToLower(email))
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	u, err := domain.NewUser(email, password, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if err := s.uow.UserRepository().Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("created new user", "user", domain.HashID(u.ID.String()))
	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.uow.UserRepository().Get(ctx, id)
}

// Update changes a user's profile fields. Empty fields are left untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, firstName, lastName string) (*domain.User, error) {
	u, err := s.uow.UserRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if firstName != "" {
		u.FirstName = firstName
	}
	if lastName != "" {
		u.LastName = lastName
	}
	u.Updated = time.Now().UTC()
	if err := s.uow.UserRepository().Update(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("updated user", "user", domain.HashID(id.String()))
	return u, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("removed user", "user", domain.HashID(id.String()))
	return nil
}

// Verify marks a user as verified, allowing them to invest.
func (s *Service) Verify(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, err := s.uow.UserRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsVerified = true
	u.Updated = time.Now().UTC()
	if err := s.uow.UserRepository().Update(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("verified user", "user", domain.HashID(id.String()))
	return u, nil
}

// SubmitKYC attaches a KYC document set to the user in PENDING review state.
func (s *Service) SubmitKYC(
	ctx context.Context,
	id uuid.UUID,
	documentType, documentNumber string,
) (*domain.User, error) {
	u, err := s.uow.UserRepository().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.KYC = &domain.KYCData{
		DocumentType:   documentType,
		DocumentNumber: documentNumber,
		Status:         domain.KYCPending,
		SubmittedAt:    time.Now().UTC(),
	}
	u.Updated = time.Now().UTC()
	if err := s.uow.UserRepository().Update(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info("KYC data submitted", "user", domain.HashID(id.String()))
	return u, nil
}

// RecordLogin stamps the user's last login time. Best effort.
func (s *Service) RecordLogin(ctx context.Context, id uuid.UUID) {
	u, err := s.uow.UserRepository().Get(ctx, id)
	if err != nil {
		return
	}
	now := time.Now().UTC()
	u.LastLogin = &now
	if err := s.uow.UserRepository().Update(ctx, u); err != nil {
		s.logger.Warn("failed to record login", "user", domain.HashID(id.String()), "error", err)
	}
}
