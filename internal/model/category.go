package model

import "fmt"

// Category groups food items into the broad sections of the fridge.
type Category string

const (
	// CategoryDairyEggs covers milk, cheese, eggs, and similar items.
	CategoryDairyEggs Category = "dairy-eggs"
	// CategoryFruitsVegetables covers fresh produce.
	CategoryFruitsVegetables Category = "fruits-vegetables"
	// CategoryProteins covers meat, fish, tofu, and legumes.
	CategoryProteins Category = "proteins"
	// CategoryOther covers everything else.
	CategoryOther Category = "other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryDairyEggs,
		CategoryFruitsVegetables,
		CategoryProteins,
		CategoryOther,
	}
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDairyEggs, CategoryFruitsVegetables, CategoryProteins, CategoryOther:
		return true
	}
	return false
}

// ParseCategory converts a user-supplied string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(NormalizeName(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (valid: dairy-eggs, fruits-vegetables, proteins, other)", s)
	}
	return c, nil
}
