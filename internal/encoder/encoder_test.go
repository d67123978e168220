package encoder

import (
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"testing"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/models"
	"feedbuilder/internal/normalizer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, id, title string, opts ...models.ProductOption) *models.Product {
	t.Helper()

	price, err := models.NewPrice("42.42", "UAH")
	require.NoError(t, err)

	link, err := models.NewURL("https://example.com/item")
	require.NoError(t, err)

	image, err := models.NewURL("https://example.com/item.png")
	require.NoError(t, err)

	p, err := models.NewProduct(models.ProductInfo{
		ID:           id,
		Title:        title,
		Description:  "description",
		Availability: models.InStock,
		Condition:    models.New,
		Price:        price,
		Link:         link,
		ImageLink:    image,
		Brand:        "SomeBrand",
	}, opts...)
	require.NoError(t, err)

	return p
}

func collect(t *testing.T, e Encoder, f *feed.Feed, n normalizer.Normalizer) []string {
	t.Helper()

	var chunks []string

	for chunk, err := range e.Encode(f, n) {
		require.NoError(t, err)

		chunks = append(chunks, chunk)
	}

	return chunks
}

func TestCSVEncoder_Encode(t *testing.T) {
	f := feed.New(newProduct(t, "sku", "title"))

	got := collect(t, NewCSVEncoder(), f, normalizer.NewFacebookNormalizer())

	assert.Equal(t, []string{
		"id,title,description,availability,condition,price,link,image_link,brand",
		`sku,title,description,"in stock",new,"42.42 UAH",https://example.com/item,https://example.com/item.png,SomeBrand`,
	}, got)
}

func TestCSVEncoder_RoundTrip(t *testing.T) {
	titles := []string{`Tee, "Classic" fit`, "plain", "tab\tseparated", `back\slash`, "Футболка"}

	products := make([]*models.Product, len(titles))
	for i, title := range titles {
		products[i] = newProduct(t, fmt.Sprintf("sku-%d", i), title)
	}

	f := feed.New(products...)
	n := normalizer.NewFacebookNormalizer()

	lines := collect(t, NewCSVEncoder(), f, n)
	require.Len(t, lines, f.Count()+1)

	r := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, f.Count()+1)

	for i, p := range products {
		rec, err := n.Normalize(p)
		require.NoError(t, err)
		assert.Equal(t, rec.Strings(), rows[i+1])
	}
}

func TestCSVEncoder_RestartsCursor(t *testing.T) {
	f := feed.New(newProduct(t, "a", "A"), newProduct(t, "b", "B"))
	f.Next()
	f.Next()

	lines := collect(t, NewCSVEncoder(), f, normalizer.NewFacebookNormalizer())
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "a,"))
	assert.True(t, strings.HasPrefix(lines[2], "b,"))
}

func TestCSVEncoder_EmptyFeed(t *testing.T) {
	var errs []error

	for chunk, err := range NewCSVEncoder().Encode(feed.New(), normalizer.NewFacebookNormalizer()) {
		assert.Empty(t, chunk)
		errs = append(errs, err)
	}

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrEmptyFeed)
}

func TestCSVEncoder_NormalizationErrorStopsSequence(t *testing.T) {
	f := feed.New(newProduct(t, "a", "A"), newProduct(t, "b", ""), newProduct(t, "c", "C"))

	var (
		rows    int
		lastErr error
	)

	for _, err := range NewCSVEncoder().Encode(f, normalizer.NewFacebookNormalizer()) {
		if err != nil {
			lastErr = err
			continue
		}

		rows++
	}

	assert.Equal(t, 2, rows, "header and first product only")
	require.ErrorIs(t, lastErr, models.ErrValidation)
	assert.Contains(t, lastErr.Error(), "product 1")
}

func TestCSVEncoder_ConsumerStopsEarly(t *testing.T) {
	f := feed.New(newProduct(t, "a", "A"), newProduct(t, "b", "B"), newProduct(t, "c", "C"))

	pulled := 0

	for range NewCSVEncoder().Encode(f, normalizer.NewFacebookNormalizer()) {
		pulled++
		if pulled == 2 {
			break
		}
	}

	assert.Equal(t, 2, pulled)
	assert.Equal(t, 0, f.Key(), "no product past the one consumed was visited")
}

func TestCSVEncoder_IsSupported(t *testing.T) {
	e := NewCSVEncoder()

	assert.True(t, e.IsSupported("facebook", "csv"))
	assert.True(t, e.IsSupported("FACEBOOK", "CSV"))
	assert.False(t, e.IsSupported("facebook", "xml"))
	assert.False(t, e.IsSupported("google", "csv"))
}

func TestEncodeRow(t *testing.T) {
	tests := []struct {
		fields []string
		want   string
	}{
		{fields: []string{"a", "b"}, want: "a,b"},
		{fields: []string{"a b"}, want: `"a b"`},
		{fields: []string{"a,b"}, want: `"a,b"`},
		{fields: []string{`say "hi"`}, want: `"say ""hi"""`},
		{fields: []string{"line\nbreak"}, want: "\"line\nbreak\""},
		{fields: []string{"", "x"}, want: ",x"},
		{fields: nil, want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EncodeRow(tt.fields), "%q", tt.fields)
	}
}

type rssDoc struct {
	XMLName xml.Name `xml:"rss"`
	Channel struct {
		Items []struct {
			ID    string `xml:"http://base.google.com/ns/1.0 id"`
			Title string `xml:"title"`
		} `xml:"item"`
	} `xml:"channel"`
}

func TestXMLEncoder_Encode(t *testing.T) {
	f := feed.New(newProduct(t, "a", "Fish & Chips"), newProduct(t, "b", "B"), newProduct(t, "c", "C"))

	chunks := collect(t, NewXMLEncoder(), f, normalizer.NewGoogleNormalizer())
	require.Len(t, chunks, f.Count()+2)

	assert.True(t, strings.HasPrefix(chunks[0], `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.True(t, strings.HasPrefix(chunks[1], "    <item>"))
	assert.Contains(t, chunks[1], "<title>Fish &amp; Chips</title>")
	assert.Equal(t, "  </channel>\n</rss>", chunks[len(chunks)-1])

	var doc rssDoc
	require.NoError(t, xml.Unmarshal([]byte(strings.Join(chunks, "\n")), &doc))
	require.Len(t, doc.Channel.Items, 3)
	assert.Equal(t, "a", doc.Channel.Items[0].ID)
	assert.Equal(t, "Fish & Chips", doc.Channel.Items[0].Title)
	assert.Equal(t, "c", doc.Channel.Items[2].ID)
}

func TestXMLEncoder_EmptyFeed(t *testing.T) {
	chunks := collect(t, NewXMLEncoder(), feed.New(), normalizer.NewGoogleNormalizer())
	require.Len(t, chunks, 2)

	var doc rssDoc
	require.NoError(t, xml.Unmarshal([]byte(strings.Join(chunks, "\n")), &doc))
	assert.Empty(t, doc.Channel.Items)
}

func TestXMLEncoder_NormalizationError(t *testing.T) {
	f := feed.New(newProduct(t, "", "no id"))

	var lastErr error
	for _, err := range NewXMLEncoder().Encode(f, normalizer.NewGoogleNormalizer()) {
		if err != nil {
			lastErr = err
		}
	}

	require.Error(t, lastErr)
	assert.True(t, errors.Is(lastErr, normalizer.ErrMissingID))
}

func TestXMLEncoder_IsSupported(t *testing.T) {
	e := NewXMLEncoder()

	assert.True(t, e.IsSupported("google", "xml"))
	assert.False(t, e.IsSupported("google", "csv"))
	assert.False(t, e.IsSupported("facebook", "xml"))
}
