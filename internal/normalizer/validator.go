package normalizer

import (
	"fmt"
	"unicode/utf8"

	"feedbuilder/internal/models"
)

// Validation errors. All of them wrap models.ErrValidation.
var (
	ErrNilProduct          = fmt.Errorf("%w: product is nil", models.ErrValidation)
	ErrMissingID           = fmt.Errorf("%w: missing product id", models.ErrValidation)
	ErrMissingTitle        = fmt.Errorf("%w: missing product title", models.ErrValidation)
	ErrMissingDescription  = fmt.Errorf("%w: missing product description", models.ErrValidation)
	ErrMissingBrand        = fmt.Errorf("%w: missing product brand", models.ErrValidation)
	ErrMissingPrice        = fmt.Errorf("%w: missing product price", models.ErrValidation)
	ErrMissingLink         = fmt.Errorf("%w: missing product link", models.ErrValidation)
	ErrMissingImageLink    = fmt.Errorf("%w: missing product image link", models.ErrValidation)
	ErrUnknownAvailability = fmt.Errorf("%w: unknown availability specified", models.ErrValidation)
	ErrUnknownCondition    = fmt.Errorf("%w: unknown condition specified", models.ErrValidation)
	ErrIDTooLong           = fmt.Errorf("%w: product id is too long", models.ErrValidation)
	ErrTitleTooLong        = fmt.Errorf("%w: product title is too long", models.ErrValidation)
	ErrDescriptionTooLong  = fmt.Errorf("%w: product description is too long", models.ErrValidation)
)

// Limits are the maximum lengths, in characters, of the free-text fields.
type Limits struct {
	ID          int
	Title       int
	Description int
}

// FacebookLimits are the Commerce catalog limits.
var FacebookLimits = Limits{ID: 100, Title: 150, Description: 5000}

// Validator checks a product against required fields and length limits.
type Validator struct {
	limits Limits
}

// NewValidator creates a validator with the Facebook limits.
func NewValidator() *Validator {
	return NewValidatorWithLimits(FacebookLimits)
}

// NewValidatorWithLimits creates a validator with custom limits. A zero limit disables that check.
func NewValidatorWithLimits(limits Limits) *Validator {
	return &Validator{limits: limits}
}

// Validate returns the first violation found, or nil.
func (v *Validator) Validate(p *models.Product) error {
	if p == nil {
		return ErrNilProduct
	}

	if err := checkText(p.ID(), v.limits.ID, ErrMissingID, ErrIDTooLong); err != nil {
		return err
	}

	if err := checkText(p.Title(), v.limits.Title, ErrMissingTitle, ErrTitleTooLong); err != nil {
		return err
	}

	if err := checkText(p.Description(), v.limits.Description, ErrMissingDescription, ErrDescriptionTooLong); err != nil {
		return err
	}

	if !p.Availability().IsValid() {
		return ErrUnknownAvailability
	}

	if !p.Condition().IsValid() {
		return ErrUnknownCondition
	}

	if p.Price().IsZero() {
		return ErrMissingPrice
	}

	if p.Link().IsZero() {
		return ErrMissingLink
	}

	if p.ImageLink().IsZero() {
		return ErrMissingImageLink
	}

	if p.Brand() == "" {
		return ErrMissingBrand
	}

	return nil
}

func checkText(value string, limit int, errMissing, errTooLong error) error {
	if value == "" {
		return errMissing
	}

	if n := utf8.RuneCountInString(value); limit > 0 && n > limit {
		return fmt.Errorf("%w: %d characters, limit %d", errTooLong, n, limit)
	}

	return nil
}
