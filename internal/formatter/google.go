package formatter

import (
	"fmt"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/normalizer"
	"feedbuilder/internal/writer"
)

// GoogleFeedFormatter writes a Google Merchant Center RSS feed through a Writer.
// Item fields and their order come from normalizer.GoogleNormalizer.
//
// See https://support.google.com/merchants/answer/7052112
type GoogleFeedFormatter struct {
	writer     writer.Writer
	normalizer *normalizer.GoogleNormalizer
}

// NewGoogleFeedFormatter creates a formatter over w. A nil w selects an in-memory writer.
func NewGoogleFeedFormatter(w writer.Writer) *GoogleFeedFormatter {
	if w == nil {
		w = writer.NewMemoryWriter()
	}

	return &GoogleFeedFormatter{writer: w, normalizer: normalizer.NewGoogleNormalizer()}
}

// Format writes every product and saves the document. It returns the document
// for in-memory writers and "" for streaming writers. The first product that
// cannot be normalized aborts the document.
func (g *GoogleFeedFormatter) Format(f *feed.Feed) (string, error) {
	for i, p := range f.All() {
		rec, err := g.normalizer.Normalize(p)
		if err != nil {
			return "", fmt.Errorf("product %d: %w", i, err)
		}

		g.append(rec)
	}

	return g.writer.Save()
}

func (g *GoogleFeedFormatter) append(rec normalizer.Record) {
	w := g.writer

	w.StartElement("item")

	for _, field := range rec {
		w.WriteElement(field.Name, normalizer.FormatValue(field.Value))
	}

	w.EndElement()
}
