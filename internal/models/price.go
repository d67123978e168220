// Package models defines the product entity and the self-validating field values of a feed.
package models

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrValidation is the root of every field or product validation failure.
var ErrValidation = errors.New("validation error")

// Price validation errors.
var (
	ErrInvalidAmount   = fmt.Errorf("%w: amount must be a number with \".\" as decimal point", ErrValidation)
	ErrInvalidCurrency = fmt.Errorf("%w: currency must be an ISO 4217 alpha-3 code", ErrValidation)
)

var (
	amountPattern   = regexp.MustCompile(`^\d+(\.\d{2})?$`)
	currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Price is an amount of money in a given currency.
type Price struct {
	amount   string
	currency string
}

// NewPrice validates amount and currency and returns the price.
func NewPrice(amount, currency string) (Price, error) {
	if !amountPattern.MatchString(amount) {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if !currencyPattern.MatchString(currency) {
		return Price{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, currency)
	}

	return Price{amount: amount, currency: currency}, nil
}

// Amount returns the decimal amount, e.g. "19.99".
func (p Price) Amount() string {
	return p.amount
}

// Currency returns the ISO 4217 currency code.
func (p Price) Currency() string {
	return p.currency
}

// IsZero reports whether the price was never constructed.
func (p Price) IsZero() bool {
	return p.amount == ""
}

// String renders the price the way both marketplaces expect it: "19.99 USD".
func (p Price) String() string {
	return p.amount + " " + p.currency
}
