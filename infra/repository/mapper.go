package repository

import (
	"github.com/msaleh83/investo/pkg/currency"
	"github.com/msaleh83/investo/pkg/domain"
)

func userToModel(u *domain.User) *User {
	m := &User{
		ID:         u.ID,
		Email:      u.Email,
		Password:   u.Password,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.Created,
		UpdatedAt:  u.Updated,
	}
	if u.KYC != nil {
		status := string(u.KYC.Status)
		m.KYCDocumentType = &u.KYC.DocumentType
		m.KYCDocumentNumber = &u.KYC.DocumentNumber
		m.KYCStatus = &status
		m.KYCSubmittedAt = &u.KYC.SubmittedAt
	}
	return m
}

func userToDomain(m *User) *domain.User {
	u := &domain.User{
		ID:         m.ID,
		Email:      m.Email,
		Password:   m.Password,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		IsVerified: m.IsVerified,
		LastLogin:  m.LastLogin,
		Created:    m.CreatedAt,
		Updated:    m.UpdatedAt,
	}
	if m.KYCStatus != nil {
		u.KYC = &domain.KYCData{
			Status: domain.KYCStatus(*m.KYCStatus),
		}
		if m.KYCDocumentType != nil {
			u.KYC.DocumentType = *m.KYCDocumentType
		}
		if m.KYCDocumentNumber != nil {
			u.KYC.DocumentNumber = *m.KYCDocumentNumber
		}
		if m.KYCSubmittedAt != nil {
			u.KYC.SubmittedAt = *m.KYCSubmittedAt
		}
	}
	return u
}

func transactionToModel(t *domain.Transaction) *Transaction {
	return &Transaction{
		ID:              t.ID,
		UserID:          t.UserID,
		OriginalAmount:  t.OriginalAmount,
		Currency:        t.Currency.String(),
		ConvertedAmount: t.ConvertedAmount,
		ROIPercentage:   t.ROIPercentage,
		MaturityDate:    t.MaturityDate,
		Status:          string(t.Status),
		CreatedAt:       t.Created,
		UpdatedAt:       t.Updated,
	}
}

func transactionToDomain(m *Transaction) *domain.Transaction {
	t := &domain.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		OriginalAmount:  m.OriginalAmount,
		Currency:        currency.Code(m.Currency),
		ConvertedAmount: m.ConvertedAmount,
		ROIPercentage:   m.ROIPercentage,
		MaturityDate:    m.MaturityDate,
		Status:          domain.TransactionStatus(m.Status),
		Created:         m.CreatedAt,
		Updated:         m.UpdatedAt,
	}
	if m.Payment != nil {
		t.Payment = paymentToDomain(m.Payment)
	}
	return t
}

func paymentToModel(p *domain.Payment) *Payment {
	return &Payment{
		ID:                p.ID,
		TransactionID:     p.TransactionID,
		Provider:          p.Provider,
		Amount:            p.Amount,
		Currency:          p.Currency.String(),
		Status:            p.Status,
		PaymentID:         p.PaymentID,
		ProviderReference: p.ProviderReference,
		Attempts:          p.Attempts,
		CreatedAt:         p.Created,
	}
}

func paymentToDomain(m *Payment) *domain.Payment {
	return &domain.Payment{
		ID:                m.ID,
		TransactionID:     m.TransactionID,
		Provider:          m.Provider,
		Amount:            m.Amount,
		Currency:          currency.Code(m.Currency),
		Status:            m.Status,
		PaymentID:         m.PaymentID,
		ProviderReference: m.ProviderReference,
		Attempts:          m.Attempts,
		Created:           m.CreatedAt,
	}
}
