package encoder

import (
	"bytes"
	"fmt"
	"iter"
	"strings"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/normalizer"
	"feedbuilder/internal/writer"
)

// XMLEncoder writes Google Merchant RSS. Every record becomes one <item>
// whose children are the record fields in order.
type XMLEncoder struct {
	platform string
}

// NewXMLEncoder creates the Google XML encoder.
func NewXMLEncoder() *XMLEncoder {
	return &XMLEncoder{platform: normalizer.PlatformGoogle}
}

// Encode yields the document opening (declaration, rss, channel), one chunk
// per item and the closing tags. Chunks carry no leading or trailing newline.
func (e *XMLEncoder) Encode(f *feed.Feed, n normalizer.Normalizer) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		var buf bytes.Buffer

		w := writer.NewStreamWriter(&buf)
		if err := w.Flush(); err != nil {
			yield("", err)
			return
		}

		if !yield(drain(&buf), nil) {
			return
		}

		for i, p := range f.All() {
			rec, err := n.Normalize(p)
			if err != nil {
				yield("", fmt.Errorf("product %d: %w", i, err))
				return
			}

			w.StartElement("item")

			for _, field := range rec {
				w.WriteElement(field.Name, normalizer.FormatValue(field.Value))
			}

			w.EndElement()

			if err := w.Flush(); err != nil {
				yield("", fmt.Errorf("product %d: %w", i, err))
				return
			}

			if !yield(drain(&buf), nil) {
				return
			}
		}

		if _, err := w.Save(); err != nil {
			yield("", err)
			return
		}

		yield(drain(&buf), nil)
	}
}

// IsSupported reports whether (platform, format) is (google, xml).
func (e *XMLEncoder) IsSupported(platform, format string) bool {
	return matches(platform, e.platform) && matches(format, FormatXML)
}

func drain(buf *bytes.Buffer) string {
	chunk := strings.Trim(buf.String(), "\n")
	buf.Reset()

	return chunk
}
