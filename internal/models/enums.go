package models

import (
	"fmt"
	"strings"
)

// Enum parsing errors.
var (
	ErrUnknownAvailability = fmt.Errorf("%w: unknown availability", ErrValidation)
	ErrUnknownCondition    = fmt.Errorf("%w: unknown condition", ErrValidation)
)

// Availability is the stock status of an item. The zero value is unknown.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	InStock
	OutOfStock
)

// String returns the canonical marketplace value.
func (a Availability) String() string {
	switch a {
	case InStock:
		return "in stock"
	case OutOfStock:
		return "out of stock"
	default:
		return ""
	}
}

// IsValid reports whether a is one of the known values.
func (a Availability) IsValid() bool {
	return a == InStock || a == OutOfStock
}

// ParseAvailability accepts the canonical value ("in stock") or its snake_case form.
func ParseAvailability(s string) (Availability, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", " ") {
	case "in stock":
		return InStock, nil
	case "out of stock":
		return OutOfStock, nil
	default:
		return AvailabilityUnknown, fmt.Errorf("%w: %q", ErrUnknownAvailability, s)
	}
}

// Condition is the state of an item. The zero value is unknown.
type Condition int

const (
	ConditionUnknown Condition = iota
	New
	Refurbished
	Used
)

// String returns the canonical marketplace value.
func (c Condition) String() string {
	switch c {
	case New:
		return "new"
	case Refurbished:
		return "refurbished"
	case Used:
		return "used"
	default:
		return ""
	}
}

// IsValid reports whether c is one of the known values.
func (c Condition) IsValid() bool {
	return c >= New && c <= Used
}

// ParseCondition parses the canonical lower-case value.
func ParseCondition(s string) (Condition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new":
		return New, nil
	case "refurbished":
		return Refurbished, nil
	case "used":
		return Used, nil
	default:
		return ConditionUnknown, fmt.Errorf("%w: %q", ErrUnknownCondition, s)
	}
}
