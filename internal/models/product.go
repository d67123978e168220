package models

import (
	"fmt"
)

// Product construction errors.
var (
	ErrInvalidInventory = fmt.Errorf("%w: inventory must be positive", ErrValidation)
	ErrMissingPrice     = fmt.Errorf("%w: price is required", ErrValidation)
	ErrMissingLink      = fmt.Errorf("%w: link is required", ErrValidation)
	ErrMissingImageLink = fmt.Errorf("%w: image link is required", ErrValidation)
)

// ProductInfo holds the fields every marketplace requires.
type ProductInfo struct {
	ID           string
	Title        string
	Description  string
	Availability Availability
	Condition    Condition
	Price        Price
	Link         URL
	ImageLink    URL
	Brand        string
}

// CustomField is an extra key/value pair copied verbatim into feeds that allow it.
type CustomField struct {
	Name  string
	Value string
}

// Product is a single feed element.
type Product struct {
	info                    ProductInfo
	salePrice               *Price
	facebookProductCategory Category
	googleProductCategory   Category
	internalProductCategory string
	inventory               *int
	salePriceEffectiveDate  *DateTimeRange
	customFields            []CustomField
}

// ProductOption sets an optional product field.
type ProductOption func(*Product) error

// WithSalePrice sets the discounted price.
func WithSalePrice(p Price) ProductOption {
	return func(pr *Product) error {
		pr.salePrice = &p
		return nil
	}
}

// WithSalePriceEffectiveDate sets the sale window.
func WithSalePriceEffectiveDate(r DateTimeRange) ProductOption {
	return func(pr *Product) error {
		pr.salePriceEffectiveDate = &r
		return nil
	}
}

// WithInventory sets the stock quantity, which must be at least 1.
func WithInventory(n int) ProductOption {
	return func(pr *Product) error {
		return pr.SetInventory(&n)
	}
}

// WithGoogleProductCategory sets the Google product taxonomy reference.
func WithGoogleProductCategory(c Category) ProductOption {
	return func(pr *Product) error {
		pr.googleProductCategory = c
		return nil
	}
}

// WithFacebookProductCategory sets the Facebook product taxonomy reference.
func WithFacebookProductCategory(c Category) ProductOption {
	return func(pr *Product) error {
		pr.facebookProductCategory = c
		return nil
	}
}

// WithInternalProductCategory sets the merchant's own category.
func WithInternalProductCategory(c string) ProductOption {
	return func(pr *Product) error {
		pr.internalProductCategory = c
		return nil
	}
}

// WithCustomField appends a custom field. Insertion order is kept.
func WithCustomField(name, value string) ProductOption {
	return func(pr *Product) error {
		if name == "" {
			return fmt.Errorf("%w: custom field name is empty", ErrValidation)
		}

		pr.customFields = append(pr.customFields, CustomField{Name: name, Value: value})

		return nil
	}
}

// validate checks the typed required fields. Free-text fields are checked by
// the platform normalizers, which also own their length limits.
func (info ProductInfo) validate() error {
	if !info.Availability.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownAvailability, info.Availability)
	}

	if !info.Condition.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownCondition, info.Condition)
	}

	if info.Price.IsZero() {
		return ErrMissingPrice
	}

	if info.Link.IsZero() {
		return ErrMissingLink
	}

	if info.ImageLink.IsZero() {
		return ErrMissingImageLink
	}

	return nil
}

// NewProduct builds a product from its required fields and options. Availability,
// condition, price and both links must be set.
func NewProduct(info ProductInfo, opts ...ProductOption) (*Product, error) {
	if err := info.validate(); err != nil {
		return nil, err
	}

	p := &Product{info: info}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ID returns the unique item id (usually the SKU).
func (p *Product) ID() string { return p.info.ID }

// Title returns the item title.
func (p *Product) Title() string { return p.info.Title }

// Description returns the item description.
func (p *Product) Description() string { return p.info.Description }

// Availability returns the stock status.
func (p *Product) Availability() Availability { return p.info.Availability }

// Condition returns the item condition.
func (p *Product) Condition() Condition { return p.info.Condition }

// Price returns the regular price.
func (p *Product) Price() Price { return p.info.Price }

// Link returns the product page URL.
func (p *Product) Link() URL { return p.info.Link }

// ImageLink returns the main image URL.
func (p *Product) ImageLink() URL { return p.info.ImageLink }

// Brand returns the brand, MPN or GTIN.
func (p *Product) Brand() string { return p.info.Brand }

// SalePrice returns the discounted price, or nil.
func (p *Product) SalePrice() *Price { return p.salePrice }

// SalePriceEffectiveDate returns the sale window, or nil.
func (p *Product) SalePriceEffectiveDate() *DateTimeRange { return p.salePriceEffectiveDate }

// GoogleProductCategory returns the Google taxonomy reference.
func (p *Product) GoogleProductCategory() Category { return p.googleProductCategory }

// FacebookProductCategory returns the Facebook taxonomy reference.
func (p *Product) FacebookProductCategory() Category { return p.facebookProductCategory }

// InternalProductCategory returns the merchant's own category.
func (p *Product) InternalProductCategory() string { return p.internalProductCategory }

// Inventory returns the stock quantity, or nil when untracked.
func (p *Product) Inventory() *int {
	if p.inventory == nil {
		return nil
	}

	n := *p.inventory

	return &n
}

// SetInventory replaces the stock quantity. nil clears it.
func (p *Product) SetInventory(n *int) error {
	if n == nil {
		p.inventory = nil
		return nil
	}

	if *n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidInventory, *n)
	}

	v := *n
	p.inventory = &v

	return nil
}

// CustomFields returns a copy of the custom fields in insertion order.
func (p *Product) CustomFields() []CustomField {
	out := make([]CustomField, len(p.customFields))
	copy(out, p.customFields)

	return out
}
