// Package normalizer maps products into flat, platform-specific field records.
package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"feedbuilder/internal/models"
)

// Platform names understood by the built-in normalizers.
const (
	PlatformFacebook = "facebook"
	PlatformGoogle   = "google"
)

// Normalizer turns a product into an ordered record for one platform.
//
// Implementations must return the same field names in the same order for
// every product of a feed; CSV headers are derived from the first record.
type Normalizer interface {
	Normalize(p *models.Product) (Record, error)
	IsSupported(platform string) bool
}

// Field is one named value of a record. Value is a string or a number.
type Field struct {
	Name  string
	Value any
}

// Record is an ordered field mapping.
type Record []Field

// Names returns the field names in order.
func (r Record) Names() []string {
	names := make([]string, len(r))
	for i, f := range r {
		names[i] = f.Name
	}

	return names
}

// Strings returns the field values rendered as text, in order.
func (r Record) Strings() []string {
	values := make([]string, len(r))
	for i, f := range r {
		values[i] = FormatValue(f.Value)
	}

	return values
}

// Get returns the value stored under name.
func (r Record) Get(name string) (any, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}

	return nil, false
}

// FormatValue renders a record value as text.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func matchesPlatform(platform, want string) bool {
	return strings.EqualFold(strings.TrimSpace(platform), want)
}
