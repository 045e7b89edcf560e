package models

import "strings"

// Category is one of the fixed spending classifications.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryOther         Category = "Other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	return c.Rank() < len(Categories)
}

// Rank returns the display position of c, or len(Categories) for names
// outside the fixed set.
func (c Category) Rank() int {
	for i, known := range Categories {
		if c == known {
			return i
		}
	}
	return len(Categories)
}

// NormalizeCategory trims c and substitutes Other when it is empty.
func NormalizeCategory(c Category) Category {
	c = Category(strings.TrimSpace(string(c)))
	if c == "" {
		return CategoryOther
	}
	return c
}
