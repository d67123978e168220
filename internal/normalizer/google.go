package normalizer

import (
	"fmt"

	"feedbuilder/internal/models"
)

// GoogleNormalizer maps a product into Google Merchant item elements.
// Field names are the element names, "g:" prefixed where the Merchant namespace applies.
type GoogleNormalizer struct{}

// NewGoogleNormalizer creates a Google Merchant normalizer.
func NewGoogleNormalizer() *GoogleNormalizer {
	return &GoogleNormalizer{}
}

// Normalize returns the required item fields, then custom fields, then the
// optional ones that are set. The effective date is only emitted with a sale price.
func (n *GoogleNormalizer) Normalize(p *models.Product) (Record, error) {
	if p == nil {
		return nil, ErrNilProduct
	}

	if p.ID() == "" {
		return nil, fmt.Errorf("google normalization failed: %w", ErrMissingID)
	}

	rec := Record{
		{Name: "g:id", Value: p.ID()},
		{Name: "title", Value: p.Title()},
		{Name: "description", Value: p.Description()},
		{Name: "link", Value: p.Link().String()},
		{Name: "g:image_link", Value: p.ImageLink().String()},
		{Name: "g:availability", Value: p.Availability().String()},
		{Name: "g:price", Value: p.Price().String()},
		{Name: "g:brand", Value: p.Brand()},
		{Name: "g:condition", Value: p.Condition().String()},
	}

	for _, cf := range p.CustomFields() {
		rec = append(rec, Field{Name: cf.Name, Value: cf.Value})
	}

	if c := p.GoogleProductCategory(); c.IsSet() {
		rec = append(rec, Field{Name: "g:google_product_category", Value: c.String()})
	}

	if inv := p.Inventory(); inv != nil {
		rec = append(rec, Field{Name: "g:inventory", Value: *inv})
	}

	if sale := p.SalePrice(); sale != nil {
		rec = append(rec, Field{Name: "g:sale_price", Value: sale.String()})

		if window := p.SalePriceEffectiveDate(); window != nil {
			rec = append(rec, Field{Name: "g:sale_price_effective_date", Value: window.String()})
		}
	}

	return rec, nil
}

// IsSupported reports whether platform is "google", ignoring case.
func (n *GoogleNormalizer) IsSupported(platform string) bool {
	return matchesPlatform(platform, PlatformGoogle)
}
