package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"feedbuilder/internal/models"

	"github.com/shopspring/decimal"
)

// Price parsing errors.
var (
	ErrNegativePrice  = fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	ErrPricePrecision = fmt.Errorf("%w: price has more than two decimal places", models.ErrValidation)
)

var canonicalAmount = regexp.MustCompile(`^\d+(\.\d{2})?$`)

// NormalizeAmount turns a catalog amount such as "19.9", "20" or "1e2" into
// the feed form. Amounts already in feed form are returned unchanged.
func NormalizeAmount(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if canonicalAmount.MatchString(raw) {
		return raw, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrInvalidAmount, err)
	}

	if d.IsNegative() {
		return "", fmt.Errorf("%w: %s", ErrNegativePrice, raw)
	}

	if !d.Equal(d.Round(2)) {
		return "", fmt.Errorf("%w: %s", ErrPricePrecision, raw)
	}

	return d.StringFixed(2), nil
}

func parsePrice(raw, currency string) (models.Price, error) {
	amount, err := NormalizeAmount(raw)
	if err != nil {
		return models.Price{}, err
	}

	return models.NewPrice(amount, currency)
}
