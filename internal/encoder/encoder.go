// Package encoder serializes normalized feed records into wire formats as
// lazy, pull-based chunk sequences.
package encoder

import (
	"errors"
	"iter"
	"strings"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/normalizer"
)

// Supported formats.
const (
	FormatCSV = "csv"
	FormatXML = "xml"
)

// ErrEmptyFeed is yielded when a header must be derived from a feed with no products.
var ErrEmptyFeed = errors.New("feed is empty: no product to derive the header from")

// Encoder turns a feed into a finite sequence of output chunks.
//
// Each chunk is produced only when the consumer pulls it. An error ends the
// sequence. A sequence is single-use: call Encode again to regenerate it.
type Encoder interface {
	Encode(f *feed.Feed, n normalizer.Normalizer) iter.Seq2[string, error]
	IsSupported(platform, format string) bool
}

func matches(got, want string) bool {
	return strings.EqualFold(strings.TrimSpace(got), want)
}
