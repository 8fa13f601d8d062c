package metadata

import (
	"fmt"
	"strings"
)

// Category is the beer style of a stock item, stored and sent as its code.
type Category string

const (
	CategoryPilsen    Category = "PILSEN"
	CategoryBock      Category = "BOCK"
	CategoryWitbier   Category = "WITBIER"
	CategoryWeissbier Category = "WEISSBIER"
	CategoryIPA       Category = "IPA"
	CategoryStout     Category = "STOUT"
)

var categoryDescriptions = map[Category]string{
	CategoryPilsen:    "Pilsen",
	CategoryBock:      "Bock",
	CategoryWitbier:   "Witbier",
	CategoryWeissbier: "Weissbier",
	CategoryIPA:       "IPA",
	CategoryStout:     "Stout",
}

// Categories lists every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryPilsen,
		CategoryBock,
		CategoryWitbier,
		CategoryWeissbier,
		CategoryIPA,
		CategoryStout,
	}
}

func (c Category) IsValid() bool {
	_, ok := categoryDescriptions[c]
	return ok
}

// NewCategory normalizes value (trimmed, case-insensitive) and validates it.
func NewCategory(value string) (Category, error) {
	category := Category(strings.ToUpper(strings.TrimSpace(value)))
	if !category.IsValid() {
		return category, fmt.Errorf(
			"value not valid, only valid values are: %s, %s, %s, %s, %s, %s",
			CategoryPilsen, CategoryBock, CategoryWitbier, CategoryWeissbier, CategoryIPA, CategoryStout,
		)
	}

	return category, nil
}

func (c Category) Description() string {
	return categoryDescriptions[c]
}

func (c Category) String() string {
	return string(c)
}
