package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// KYCStatus tracks the review state of a submitted KYC document set.
type KYCStatus string

const (
	KYCPending  KYCStatus = "PENDING"
	KYCApproved KYCStatus = "APPROVED"
	KYCRejected KYCStatus = "REJECTED"
)

// KYCData holds a user's submitted identity documents.
type KYCData struct {
	DocumentType   string    `json:"documentType"`
	DocumentNumber string    `json:"documentNumber"`
	Status         KYCStatus `json:"status"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// User is an account holder. Only verified users may invest.
type User struct {
	ID         uuid.UUID  `json:"id"`
	Email      string     `json:"email"`
	Password   string     `json:"-"`
	FirstName  string     `json:"firstName"`
	LastName   string     `json:"lastName"`
	IsVerified bool       `json:"isVerified"`
	KYC        *KYCData   `json:"kyc,omitempty"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	Created    time.Time  `json:"created"`
	Updated    time.Time  `json:"updated"`
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// NewUser creates an unverified user with a bcrypt password hash and a
// lowercased email.
func NewUser(email, password, firstName, lastName string) (*User, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Email:     strings.ToLower(email),
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Created:   now,
		Updated:   now,
	}, nil
}

// CheckPassword compares a plain password with the stored bcrypt hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
