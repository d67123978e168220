package models

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// ErrInvalidURL is returned for values that are not absolute URLs.
var ErrInvalidURL = fmt.Errorf("%w: invalid URL", ErrValidation)

// URL is a validated absolute URL.
type URL struct {
	value string
}

// NewURL parses raw and rejects anything without a scheme and a host, or
// containing unescaped whitespace.
func NewURL(raw string) (URL, error) {
	if strings.ContainsFunc(raw, unicode.IsSpace) {
		return URL{}, fmt.Errorf("%w: %q contains whitespace", ErrInvalidURL, raw)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return URL{}, fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}

	if u.Scheme == "" || u.Host == "" {
		return URL{}, fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}

	return URL{value: raw}, nil
}

// IsZero reports whether the URL was never constructed.
func (u URL) IsZero() bool {
	return u.value == ""
}

func (u URL) String() string {
	return u.value
}
