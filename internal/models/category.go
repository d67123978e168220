package models

import (
	"fmt"
	"strconv"
)

// ErrInvalidCategory is returned when a category is neither an integer nor a string.
var ErrInvalidCategory = fmt.Errorf("%w: category must be an integer id or a string path", ErrValidation)

// Category is a marketplace taxonomy reference: either a numeric id (e.g. 2271)
// or a path such as "Apparel & Accessories > Clothing". The zero value is unset.
type Category struct {
	value string
	set   bool
}

// CategoryFromInt returns a numeric category.
func CategoryFromInt(id int) Category {
	return Category{value: strconv.Itoa(id), set: true}
}

// CategoryFromString returns a category path. An empty string leaves it unset.
func CategoryFromString(path string) Category {
	if path == "" {
		return Category{}
	}

	return Category{value: path, set: true}
}

// ParseCategory accepts int, int64, string or nil and rejects every other type.
func ParseCategory(v any) (Category, error) {
	switch c := v.(type) {
	case nil:
		return Category{}, nil
	case int:
		return CategoryFromInt(c), nil
	case int64:
		return Category{value: strconv.FormatInt(c, 10), set: true}, nil
	case string:
		return CategoryFromString(c), nil
	default:
		return Category{}, fmt.Errorf("%w: got %T", ErrInvalidCategory, v)
	}
}

// IsSet reports whether the category holds a value.
func (c Category) IsSet() bool {
	return c.set
}

func (c Category) String() string {
	return c.value
}
