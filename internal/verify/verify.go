// Package verify reads a generated Google Merchant feed back and checks that
// it is a parseable RSS 2.0 document with one identified item per product.
package verify

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/gofeed"
)

// Verification errors.
var (
	ErrNotAFeed    = errors.New("document is not a valid feed")
	ErrNotRSS      = errors.New("feed is not RSS 2.0")
	ErrMissingID   = errors.New("item has no g:id")
	ErrDuplicateID = errors.New("duplicate g:id")
	ErrItemCount   = errors.New("unexpected item count")
)

const googleExtPrefix = "g"

// Result summarizes a parsed feed.
type Result struct {
	FeedType    string
	FeedVersion string
	Items       int
	IDs         []string
	// SampleTitle is the first item's title, if any.
	SampleTitle string
}

// File verifies the feed stored at path.
func File(path string) (result *Result, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed: %w", err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	return Parse(f)
}

// Parse reads a feed from r.
func Parse(r io.Reader) (*Result, error) {
	parsed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAFeed, err)
	}

	if parsed.FeedType != "rss" || parsed.FeedVersion != "2.0" {
		return nil, fmt.Errorf("%w: got %s %s", ErrNotRSS, parsed.FeedType, parsed.FeedVersion)
	}

	result := &Result{
		FeedType:    parsed.FeedType,
		FeedVersion: parsed.FeedVersion,
		Items:       len(parsed.Items),
		IDs:         make([]string, 0, len(parsed.Items)),
	}

	if len(parsed.Items) > 0 {
		result.SampleTitle = parsed.Items[0].Title
	}

	seen := make(map[string]int, len(parsed.Items))

	for i, item := range parsed.Items {
		id := googleValue(item, "id")
		if id == "" {
			return nil, fmt.Errorf("%w: item %d", ErrMissingID, i)
		}

		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %q at items %d and %d", ErrDuplicateID, id, prev, i)
		}

		seen[id] = i
		result.IDs = append(result.IDs, id)
	}

	return result, nil
}

// Expect fails unless the feed holds exactly n items.
func (r *Result) Expect(n int) error {
	if r.Items != n {
		return fmt.Errorf("%w: got %d, want %d", ErrItemCount, r.Items, n)
	}

	return nil
}

// googleValue returns the text of the first g:<name> element of item.
func googleValue(item *gofeed.Item, name string) string {
	values := item.Extensions[googleExtPrefix][name]
	if len(values) == 0 {
		return ""
	}

	return strings.TrimSpace(values[0].Value)
}
