package user

// NewUser represents the request body for creating a new user.
type NewUser struct {
	Email     string `json:"email" validate:"required,email,max=100"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
}

// UpdateUserInput represents the request body for updating user information.
type UpdateUserInput struct {
	FirstName string `json:"firstName" validate:"max=50"`
	LastName  string `json:"lastName" validate:"max=50"`
}

// KYCInput represents the request body for submitting KYC documents.
type KYCInput struct {
	DocumentType   string `json:"documentType" validate:"required,oneof=PASSPORT NATIONAL_ID DRIVING_LICENSE"`
	DocumentNumber string `json:"documentNumber" validate:"required,min=4,max=30"`
}
