package formatter

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"feedbuilder/internal/encoder"
	"feedbuilder/internal/feed"
	"feedbuilder/internal/models"
	"feedbuilder/internal/normalizer"
)

// facebookColumns is the fixed column schema of the file export.
var facebookColumns = []string{
	"id",
	"title",
	"description",
	"availability",
	"condition",
	"price",
	"link",
	"image_link",
	"brand",
	"google_product_category",
	"fb_product_category",
	"inventory",
	"sale_price",
	"sale_price_effective_date",
}

// FacebookFeedFormatter writes a Facebook product CSV with a fixed column set
// straight to a file. It does not go through the normalizer/encoder pipeline
// and performs no length validation.
//
// See https://developers.facebook.com/docs/marketing-api/catalog/reference#feed-format
type FacebookFeedFormatter struct {
	path string
}

// NewFacebookFeedFormatter creates a formatter writing to path.
func NewFacebookFeedFormatter(path string) *FacebookFeedFormatter {
	return &FacebookFeedFormatter{path: path}
}

// Format truncates the destination and writes the header (when the feed has
// products) and one row per product. The file is closed on every exit path.
func (ff *FacebookFeedFormatter) Format(f *feed.Feed) (err error) {
	file, err := os.Create(ff.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrResource, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", ff.path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)

	if f.Count() > 0 {
		if err := writeLine(w, facebookColumns); err != nil {
			return err
		}
	}

	for i, p := range f.All() {
		if p == nil {
			return fmt.Errorf("product %d: %w", i, normalizer.ErrNilProduct)
		}

		if err := writeLine(w, facebookRow(p)); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", ff.path, err)
	}

	return nil
}

func writeLine(w *bufio.Writer, fields []string) error {
	if _, err := w.WriteString(encoder.EncodeRow(fields) + "\n"); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	return nil
}

func facebookRow(p *models.Product) []string {
	row := []string{
		p.ID(),
		p.Title(),
		p.Description(),
		p.Availability().String(),
		p.Condition().String(),
		p.Price().String(),
		p.Link().String(),
		p.ImageLink().String(),
		p.Brand(),
		p.GoogleProductCategory().String(),
		p.FacebookProductCategory().String(),
		"",
		"",
		"",
	}

	if inv := p.Inventory(); inv != nil {
		row[11] = strconv.Itoa(*inv)
	}

	if sale := p.SalePrice(); sale != nil {
		row[12] = sale.String()
	}

	if window := p.SalePriceEffectiveDate(); window != nil {
		row[13] = window.String()
	}

	return row
}
