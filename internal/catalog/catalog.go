// Package catalog loads product catalogs from YAML files into feeds.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/models"
	"feedbuilder/pkg/utils"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	ErrNoProducts        = errors.New("catalog has no products")
	ErrMissingCurrency   = fmt.Errorf("%w: price currency is required", models.ErrValidation)
	ErrInvalidCustomList = fmt.Errorf("%w: custom_fields must be a mapping of strings", models.ErrValidation)
)

// File is the on-disk catalog layout.
//
//	currency: UAH
//	products:
//	  - id: sku
//	    title: Dress
//	    price: 42.42
//	    ...
type File struct {
	Currency string        `yaml:"currency"`
	Products []ProductSpec `yaml:"products"`
}

// ProductSpec is one catalog entry before validation.
type ProductSpec struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	Availability string `yaml:"availability"`
	Condition    string `yaml:"condition"`
	// Price and SalePrice accept YAML numbers or strings.
	Price     yaml.Node `yaml:"price"`
	SalePrice yaml.Node `yaml:"sale_price"`
	// Currency overrides the catalog-wide currency.
	Currency  string `yaml:"currency"`
	Link      string `yaml:"link"`
	ImageLink string `yaml:"image_link"`
	Brand     string `yaml:"brand"`

	Inventory               *int       `yaml:"inventory"`
	GoogleProductCategory   any        `yaml:"google_product_category"`
	FacebookProductCategory any        `yaml:"facebook_product_category"`
	InternalProductCategory string     `yaml:"internal_product_category"`
	SalePriceEffectiveDate  *DateRange `yaml:"sale_price_effective_date"`
	// CustomFields is kept as a node so the mapping order survives decoding.
	CustomFields yaml.Node `yaml:"custom_fields"`
}

// DateRange is a sale window as written in the catalog.
type DateRange struct {
	From time.Time `yaml:"from"`
	To   time.Time `yaml:"to"`
}

// LoadFile reads and parses a catalog file.
func LoadFile(path string) (*feed.Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return Parse(data)
}

// Parse decodes a YAML catalog and builds a feed. The first invalid product
// aborts parsing.
func Parse(data []byte) (*feed.Feed, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if len(file.Products) == 0 {
		return nil, ErrNoProducts
	}

	products := make([]*models.Product, 0, len(file.Products))

	for i := range file.Products {
		p, err := file.Products[i].build(file.Currency)
		if err != nil {
			return nil, fmt.Errorf("product[%d]: %w", i, err)
		}

		products = append(products, p)
	}

	return feed.New(products...), nil
}

func (s *ProductSpec) build(defaultCurrency string) (*models.Product, error) {
	str := utils.NewStringHelper()

	currency := str.TrimWhitespace(s.Currency)
	if currency == "" {
		currency = str.TrimWhitespace(defaultCurrency)
	}

	if currency == "" {
		return nil, ErrMissingCurrency
	}

	availability, err := models.ParseAvailability(s.Availability)
	if err != nil {
		return nil, err
	}

	condition, err := models.ParseCondition(s.Condition)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(s.Price.Value, currency)
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	link, err := models.NewURL(str.TrimWhitespace(s.Link))
	if err != nil {
		return nil, fmt.Errorf("link: %w", err)
	}

	imageLink, err := models.NewURL(str.TrimWhitespace(s.ImageLink))
	if err != nil {
		return nil, fmt.Errorf("image_link: %w", err)
	}

	info := models.ProductInfo{
		ID:           str.TrimWhitespace(s.ID),
		Title:        str.NormalizeWhitespace(s.Title),
		Description:  str.TrimWhitespace(s.Description),
		Availability: availability,
		Condition:    condition,
		Price:        price,
		Link:         link,
		ImageLink:    imageLink,
		Brand:        str.TrimWhitespace(s.Brand),
	}

	opts, err := s.options(currency)
	if err != nil {
		return nil, err
	}

	return models.NewProduct(info, opts...)
}

func (s *ProductSpec) options(currency string) ([]models.ProductOption, error) {
	var opts []models.ProductOption

	if s.SalePrice.Kind != 0 && s.SalePrice.Tag != "!!null" {
		sale, err := parsePrice(s.SalePrice.Value, currency)
		if err != nil {
			return nil, fmt.Errorf("sale_price: %w", err)
		}

		opts = append(opts, models.WithSalePrice(sale))
	}

	if s.SalePriceEffectiveDate != nil {
		window, err := models.NewDateTimeRange(s.SalePriceEffectiveDate.From, s.SalePriceEffectiveDate.To)
		if err != nil {
			return nil, fmt.Errorf("sale_price_effective_date: %w", err)
		}

		opts = append(opts, models.WithSalePriceEffectiveDate(window))
	}

	if s.Inventory != nil {
		opts = append(opts, models.WithInventory(*s.Inventory))
	}

	google, err := models.ParseCategory(s.GoogleProductCategory)
	if err != nil {
		return nil, fmt.Errorf("google_product_category: %w", err)
	}

	facebook, err := models.ParseCategory(s.FacebookProductCategory)
	if err != nil {
		return nil, fmt.Errorf("facebook_product_category: %w", err)
	}

	opts = append(opts,
		models.WithGoogleProductCategory(google),
		models.WithFacebookProductCategory(facebook),
	)

	if s.InternalProductCategory != "" {
		opts = append(opts, models.WithInternalProductCategory(s.InternalProductCategory))
	}

	fields, err := customFields(&s.CustomFields)
	if err != nil {
		return nil, err
	}

	for _, f := range fields {
		opts = append(opts, models.WithCustomField(f.Name, f.Value))
	}

	return opts, nil
}

// customFields reads a mapping node pair by pair, in document order.
func customFields(node *yaml.Node) ([]models.CustomField, error) {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil, nil
	}

	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d", ErrInvalidCustomList, node.Line)
	}

	fields := make([]models.CustomField, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		if key.Kind != yaml.ScalarNode || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidCustomList, key.Line)
		}

		fields = append(fields, models.CustomField{Name: key.Value, Value: value.Value})
	}

	return fields, nil
}
