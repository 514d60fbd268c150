// Package currency defines the supported currency set and the static
// conversion table used to settle investments.
//
// Invariants:
//   - Codes are ISO 4217 (3 uppercase letters).
//   - Rates are multiplicative against the settlement base and immutable at
//     runtime.
package currency

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnsupportedCurrency is returned when no conversion rate exists for a code.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Code represents an ISO 4217 currency code (e.g., "USD", "EUR").
type Code string

// Supported currency codes.
const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	SAR Code = "SAR"
	AED Code = "AED"
)

// DefaultCode is the settlement base currency.
const DefaultCode = USD

// rates maps each supported code to its multiplicative conversion rate
// against the settlement base.
var rates = map[Code]float64{
	USD: 1.00,
	EUR: 1.08,
	GBP: 1.26,
	SAR: 0.27,
	AED: 0.27,
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// IsValidFormat reports whether the code is well-formed ISO 4217
// (3 uppercase letters). A well-formed code is not necessarily supported.
func (c Code) IsValidFormat() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// IsSupported reports whether a conversion rate exists for the code.
func IsSupported(c Code) bool {
	_, ok := rates[c]
	return ok
}

// Supported returns the supported currency codes.
func Supported() []Code {
	codes := make([]Code, 0, len(rates))
	for c := range rates {
		codes = append(codes, c)
	}
	return codes
}

// Rate returns the conversion rate for the given code.
func Rate(c Code) (float64, error) {
	rate, ok := rates[c]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, c)
	}
	return rate, nil
}

// Convert converts amount from the given currency into the settlement
// currency using the static rate table. The amount must be positive and
// finite; the result is rounded to 2 decimal places.
func Convert(amount float64, c Code) (float64, error) {
	if amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, fmt.Errorf("invalid amount %v: must be a positive finite number", amount)
	}
	rate, err := Rate(c)
	if err != nil {
		return 0, err
	}
	return math.Round(amount*rate*100) / 100, nil
}
