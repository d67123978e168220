package encoder

import (
	"fmt"
	"iter"
	"strings"
	"unicode"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/normalizer"
)

// CSVEncoder writes Facebook Commerce CSV: a header row taken from the first
// record's field names, then one row per product.
type CSVEncoder struct {
	platform string
}

// NewCSVEncoder creates the Facebook CSV encoder.
func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{platform: normalizer.PlatformFacebook}
}

// Encode yields the header row and then one row per product, without line terminators.
func (e *CSVEncoder) Encode(f *feed.Feed, n normalizer.Normalizer) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		f.Rewind()

		if !f.Valid() {
			yield("", ErrEmptyFeed)
			return
		}

		first, err := n.Normalize(f.Current())
		if err != nil {
			yield("", fmt.Errorf("product %d: %w", f.Key(), err))
			return
		}

		if !yield(EncodeRow(first.Names()), nil) {
			return
		}

		for i, p := range f.All() {
			rec, err := n.Normalize(p)
			if err != nil {
				yield("", fmt.Errorf("product %d: %w", i, err))
				return
			}

			if !yield(EncodeRow(rec.Strings()), nil) {
				return
			}
		}
	}
}

// IsSupported reports whether (platform, format) is (facebook, csv).
func (e *CSVEncoder) IsSupported(platform, format string) bool {
	return matches(platform, e.platform) && matches(format, FormatCSV)
}

// EncodeRow joins fields with commas. A field containing a comma, a double
// quote, a backslash or any whitespace is enclosed in double quotes with inner
// quotes doubled.
func EncodeRow(fields []string) string {
	var sb strings.Builder

	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}

		if !needsQuotes(field) {
			sb.WriteString(field)
			continue
		}

		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}

	return sb.String()
}

func needsQuotes(field string) bool {
	return strings.ContainsAny(field, `,"\`) || strings.ContainsFunc(field, unicode.IsSpace)
}
