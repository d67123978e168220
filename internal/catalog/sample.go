package catalog

import (
	"fmt"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/models"
)

// Sample builds a feed of n placeholder products (product-1 .. product-n).
func Sample(n int) (*feed.Feed, error) {
	price, err := models.NewPrice("19.99", "USD")
	if err != nil {
		return nil, fmt.Errorf("sample price: %w", err)
	}

	products := make([]*models.Product, 0, max(n, 0))

	for i := 1; i <= n; i++ {
		p, err := sampleProduct(i, price)
		if err != nil {
			return nil, fmt.Errorf("sample product %d: %w", i, err)
		}

		products = append(products, p)
	}

	return feed.New(products...), nil
}

func sampleProduct(i int, price models.Price) (*models.Product, error) {
	link, err := models.NewURL(fmt.Sprintf("https://example.com/products/%d", i))
	if err != nil {
		return nil, err
	}

	image, err := models.NewURL(fmt.Sprintf("https://example.com/images/%d.jpg", i))
	if err != nil {
		return nil, err
	}

	return models.NewProduct(models.ProductInfo{
		ID:           fmt.Sprintf("product-%d", i),
		Title:        fmt.Sprintf("Product %d", i),
		Description:  fmt.Sprintf("This is a description for product %d", i),
		Availability: models.InStock,
		Condition:    models.New,
		Price:        price,
		Link:         link,
		ImageLink:    image,
		Brand:        "Sample Brand",
	})
}
