package models

import (
	"fmt"
	"time"
)

// ErrInvalidDateTimeRange is returned when the range does not start before it ends.
var ErrInvalidDateTimeRange = fmt.Errorf("%w: range start must be before its end", ErrValidation)

// dateTimeLayout is ISO 8601 without a UTC offset.
const dateTimeLayout = "2006-01-02T15:04:05"

// DateTimeRange is a half-open period such as a sale window.
type DateTimeRange struct {
	from time.Time
	to   time.Time
}

// NewDateTimeRange returns the range [from, to). from must be strictly before to.
func NewDateTimeRange(from, to time.Time) (DateTimeRange, error) {
	if !from.Before(to) {
		return DateTimeRange{}, fmt.Errorf("%w: %s >= %s",
			ErrInvalidDateTimeRange, from.Format(dateTimeLayout), to.Format(dateTimeLayout))
	}

	return DateTimeRange{from: from, to: to}, nil
}

// From returns the start of the range.
func (r DateTimeRange) From() time.Time {
	return r.from
}

// To returns the end of the range.
func (r DateTimeRange) To() time.Time {
	return r.to
}

// String renders "2024-01-01T00:00:00-2024-01-31T23:59:59" using each time's own location.
func (r DateTimeRange) String() string {
	return r.from.Format(dateTimeLayout) + "-" + r.to.Format(dateTimeLayout)
}
