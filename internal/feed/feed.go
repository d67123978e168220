// Package feed holds the ordered product collection that formatters consume.
package feed

import (
	"iter"

	"feedbuilder/internal/models"
)

// Feed is an ordered list of products with a single forward cursor.
//
// A Feed is not safe for concurrent use: formatters rewind and advance the
// shared cursor, so callers must not interleave two passes over one Feed.
type Feed struct {
	products []*models.Product
	pos      int
}

// New returns a feed over products in the given order. Nil entries are kept
// as given; every formatter rejects them with normalizer.ErrNilProduct.
func New(products ...*models.Product) *Feed {
	return &Feed{products: products}
}

// Count returns the number of products.
func (f *Feed) Count() int {
	return len(f.products)
}

// Rewind moves the cursor back to the first product.
func (f *Feed) Rewind() {
	f.pos = 0
}

// Valid reports whether the cursor points at a product.
func (f *Feed) Valid() bool {
	return f.pos < len(f.products)
}

// Current returns the product under the cursor, or nil past the end.
func (f *Feed) Current() *models.Product {
	if !f.Valid() {
		return nil
	}

	return f.products[f.pos]
}

// Key returns the cursor position.
func (f *Feed) Key() int {
	return f.pos
}

// Next advances the cursor.
func (f *Feed) Next() {
	if f.Valid() {
		f.pos++
	}
}

// All rewinds the cursor and walks it to the end.
func (f *Feed) All() iter.Seq2[int, *models.Product] {
	return func(yield func(int, *models.Product) bool) {
		for f.Rewind(); f.Valid(); f.Next() {
			if !yield(f.Key(), f.Current()) {
				return
			}
		}
	}
}
