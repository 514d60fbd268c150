package investment

// InvestmentRequest represents the request body for placing an investment.
type InvestmentRequest struct {
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Currency       string  `json:"currency" validate:"required,len=3,alpha,uppercase"`
	DurationMonths int     `json:"durationMonths" validate:"required,min=1,max=60"`
	Provider       string  `json:"providerName" validate:"omitempty,max=30"`
}
