package normalizer

import (
	"feedbuilder/internal/models"
)

// Transformer maps a validated product into the Facebook field layout.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform returns id, title, description, availability, condition, price,
// link, image_link and brand, in that order.
func (t *Transformer) Transform(p *models.Product) (Record, error) {
	if p == nil {
		return nil, ErrNilProduct
	}

	return Record{
		{Name: "id", Value: p.ID()},
		{Name: "title", Value: p.Title()},
		{Name: "description", Value: p.Description()},
		{Name: "availability", Value: p.Availability().String()},
		{Name: "condition", Value: p.Condition().String()},
		{Name: "price", Value: p.Price().String()},
		{Name: "link", Value: p.Link().String()},
		{Name: "image_link", Value: p.ImageLink().String()},
		{Name: "brand", Value: p.Brand()},
	}, nil
}
