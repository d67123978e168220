package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		wantErr  error
	}{
		{name: "with cents", amount: "19.99", currency: "USD"},
		{name: "integer amount", amount: "42", currency: "UAH"},
		{name: "comma separator", amount: "19,99", currency: "USD", wantErr: ErrInvalidAmount},
		{name: "single decimal", amount: "19.9", currency: "USD", wantErr: ErrInvalidAmount},
		{name: "negative", amount: "-1.00", currency: "USD", wantErr: ErrInvalidAmount},
		{name: "empty amount", amount: "", currency: "USD", wantErr: ErrInvalidAmount},
		{name: "lower case currency", amount: "1.00", currency: "usd", wantErr: ErrInvalidCurrency},
		{name: "long currency", amount: "1.00", currency: "USDT", wantErr: ErrInvalidCurrency},
		{name: "short currency", amount: "1.00", currency: "US", wantErr: ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrice(tt.amount, tt.currency)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.True(t, p.IsZero())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.amount, p.Amount())
			assert.Equal(t, tt.currency, p.Currency())
			assert.Equal(t, tt.amount+" "+tt.currency, p.String())
		})
	}
}

func TestNewURL(t *testing.T) {
	u, err := NewURL("https://example.com/product")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/product", u.String())

	for _, raw := range []string{
		"invalid-url",
		"",
		"/relative/path",
		"http://",
		"://missing-scheme",
		"https://example.com/a b",
		" https://example.com/product",
		"https://example.com/\tx",
	} {
		_, err := NewURL(raw)
		assert.ErrorIs(t, err, ErrValidation, raw)
	}
}

func TestNewDateTimeRange(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)

	r, err := NewDateTimeRange(from, to)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00-2024-01-31T23:59:59", r.String())

	_, err = NewDateTimeRange(to, from)
	require.ErrorIs(t, err, ErrInvalidDateTimeRange)

	_, err = NewDateTimeRange(from, from)
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseEnums(t *testing.T) {
	a, err := ParseAvailability("out_of_stock")
	require.NoError(t, err)
	assert.Equal(t, OutOfStock, a)
	assert.Equal(t, "out of stock", a.String())

	_, err = ParseAvailability("backorder")
	require.ErrorIs(t, err, ErrUnknownAvailability)

	c, err := ParseCondition("Refurbished")
	require.NoError(t, err)
	assert.Equal(t, "refurbished", c.String())

	_, err = ParseCondition("broken")
	require.ErrorIs(t, err, ErrUnknownCondition)

	assert.False(t, AvailabilityUnknown.IsValid())
	assert.False(t, ConditionUnknown.IsValid())
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(2271)
	require.NoError(t, err)
	assert.True(t, c.IsSet())
	assert.Equal(t, "2271", c.String())

	c, err = ParseCategory("Apparel & Accessories")
	require.NoError(t, err)
	assert.Equal(t, "Apparel & Accessories", c.String())

	c, err = ParseCategory(nil)
	require.NoError(t, err)
	assert.False(t, c.IsSet())

	_, err = ParseCategory(3.14)
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseCategory([]string{"a"})
	require.ErrorIs(t, err, ErrValidation)
}

func testInfo(t *testing.T) ProductInfo {
	t.Helper()

	price, err := NewPrice("19.99", "USD")
	require.NoError(t, err)

	link, err := NewURL("https://example.com/product")
	require.NoError(t, err)

	image, err := NewURL("https://example.com/product.jpg")
	require.NoError(t, err)

	return ProductInfo{
		ID:           "test-product-1",
		Title:        "Test Product",
		Description:  "This is a test product description",
		Availability: InStock,
		Condition:    New,
		Price:        price,
		Link:         link,
		ImageLink:    image,
		Brand:        "Test Brand",
	}
}

func TestNewProduct_Inventory(t *testing.T) {
	info := testInfo(t)

	p, err := NewProduct(info, WithInventory(10))
	require.NoError(t, err)
	require.NotNil(t, p.Inventory())
	assert.Equal(t, 10, *p.Inventory())

	for _, n := range []int{0, -1} {
		_, err := NewProduct(info, WithInventory(n))
		assert.ErrorIs(t, err, ErrInvalidInventory)
	}

	zero := 0
	err = p.SetInventory(&zero)
	require.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, 10, *p.Inventory(), "failed mutation must keep the previous value")

	require.NoError(t, p.SetInventory(nil))
	assert.Nil(t, p.Inventory())
}

func TestNewProduct_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ProductInfo)
		wantErr error
	}{
		{name: "unknown availability", mutate: func(i *ProductInfo) { i.Availability = AvailabilityUnknown }, wantErr: ErrUnknownAvailability},
		{name: "unknown condition", mutate: func(i *ProductInfo) { i.Condition = ConditionUnknown }, wantErr: ErrUnknownCondition},
		{name: "missing price", mutate: func(i *ProductInfo) { i.Price = Price{} }, wantErr: ErrMissingPrice},
		{name: "missing link", mutate: func(i *ProductInfo) { i.Link = URL{} }, wantErr: ErrMissingLink},
		{name: "missing image link", mutate: func(i *ProductInfo) { i.ImageLink = URL{} }, wantErr: ErrMissingImageLink},
		{name: "only id", mutate: func(i *ProductInfo) { *i = ProductInfo{ID: "x"} }, wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := testInfo(t)
			tt.mutate(&info)

			p, err := NewProduct(info)
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, p)
		})
	}
}

func TestNewProduct_Options(t *testing.T) {
	info := testInfo(t)
	sale, err := NewPrice("15.99", "USD")
	require.NoError(t, err)

	p, err := NewProduct(info,
		WithSalePrice(sale),
		WithGoogleProductCategory(CategoryFromInt(123)),
		WithFacebookProductCategory(CategoryFromString("Clothing")),
		WithInternalProductCategory("tees"),
		WithCustomField("color", "red"),
		WithCustomField("size", "M"),
	)
	require.NoError(t, err)

	assert.Equal(t, "test-product-1", p.ID())
	assert.Equal(t, "15.99 USD", p.SalePrice().String())
	assert.Equal(t, "123", p.GoogleProductCategory().String())
	assert.Equal(t, "Clothing", p.FacebookProductCategory().String())
	assert.Equal(t, "tees", p.InternalProductCategory())
	assert.Equal(t, []CustomField{{"color", "red"}, {"size", "M"}}, p.CustomFields())

	_, err = NewProduct(info, WithCustomField("", "x"))
	require.ErrorIs(t, err, ErrValidation)
}
