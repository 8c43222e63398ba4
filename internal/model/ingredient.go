package model

// IngredientLine names a quantity of some substance. It serves double duty as
// a recipe requirement and as a shopping-list entry; in both cases the
// normalized name is its identity within the owning collection.
type IngredientLine struct {
	Name           string
	NormalizedName string
	Unit           string
	Amount         float64
}

// NewIngredientLine creates a line and derives the normalized name.
func NewIngredientLine(name string, amount float64, unit string) *IngredientLine {
	return &IngredientLine{
		Name:           name,
		NormalizedName: NormalizeName(name),
		Amount:         amount,
		Unit:           unit,
	}
}
