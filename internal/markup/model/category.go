package model

import (
	"fmt"
	"strings"
)

// Category is the kind of job being priced. The set is closed.
type Category int

const (
	Pharma Category = iota
	Electronics
	Food
	Other

	categoryCount
)

// Categories lists every category in declaration order.
var Categories = [categoryCount]Category{Pharma, Electronics, Food, Other}

var categoryNames = [categoryCount]string{
	Pharma:      "PHARMA",
	Electronics: "ELECTRONICS",
	Food:        "FOOD",
	Other:       "OTHER",
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= 0 && c < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a name such as "food" or "PHARMA" to its Category.
func ParseCategory(name string) (Category, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, c := range Categories {
		if categoryNames[c] == n {
			return c, nil
		}
	}
	return Other, fmt.Errorf("unknown category %q", name)
}
