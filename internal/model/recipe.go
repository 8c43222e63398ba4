package model

import (
	"math"
	"time"
)

// NoUrgency is the sentinel returned by EarliestExpirationDays when no
// ingredient of the recipe has matching stock. Callers must treat it as "no
// urgency signal", never as a real day count.
const NoUrgency = math.MaxInt32

// Stock is the slice of fridge behavior a recipe needs to evaluate itself.
// The fridge aggregate implements it; tests implement it with a plain map.
type Stock interface {
	// FoodItem returns the item stored under the normalized form of name,
	// or nil when there is none.
	FoodItem(name string) *FoodItem
	// RemoveFood subtracts amount from the named item, deleting it when it
	// reaches exactly zero. It reports whether the removal happened.
	RemoveFood(name string, amount float64) bool
}

// Recipe is an ordered list of steps plus the ingredient lines it requires.
// It holds no fridge state of its own; every decision is computed fresh
// against the Stock it is handed.
type Recipe struct {
	Name        string
	ImagePath   string
	Steps       []string
	Ingredients []*IngredientLine
}

// NewRecipe creates a recipe. Step and ingredient order is preserved.
func NewRecipe(name string, steps []string, ingredients []*IngredientLine, imagePath string) *Recipe {
	return &Recipe{
		Name:        name,
		Steps:       steps,
		Ingredients: ingredients,
		ImagePath:   imagePath,
	}
}

// NormalizedName returns the recipe's identity key for lookups.
func (r *Recipe) NormalizedName() string {
	return NormalizeName(r.Name)
}

// CanCook reports whether every ingredient line is matched by stock with at
// least the required amount. Matching is by normalized name only; unit labels
// are not compared or converted, a known limitation carried over deliberately.
func (r *Recipe) CanCook(stock Stock) bool {
	for _, line := range r.Ingredients {
		item := stock.FoodItem(line.NormalizedName)
		if item == nil || item.Quantity < line.Amount {
			return false
		}
	}
	return true
}

// MissingQuantity sums the shortfall across all ingredient lines: the full
// required amount when the ingredient is absent, the positive difference when
// stock is insufficient, zero otherwise. The result is a "distance to
// cookable" metric; it is zero exactly when CanCook is true.
func (r *Recipe) MissingQuantity(stock Stock) float64 {
	var missing float64
	for _, line := range r.Ingredients {
		item := stock.FoodItem(line.NormalizedName)
		switch {
		case item == nil:
			missing += line.Amount
		case item.Quantity < line.Amount:
			missing += line.Amount - item.Quantity
		}
	}
	return missing
}

// EarliestExpirationDays returns the smallest days-until-expiration among the
// ingredient lines that currently have matching stock. Lines without stock
// are skipped; when none match it returns NoUrgency.
func (r *Recipe) EarliestExpirationDays(stock Stock, ref time.Time) int {
	earliest := NoUrgency
	for _, line := range r.Ingredients {
		item := stock.FoodItem(line.NormalizedName)
		if item == nil {
			continue
		}
		if days := item.DaysUntilExpiration(ref); days < earliest {
			earliest = days
		}
	}
	return earliest
}

// Cook consumes the recipe's ingredients from the stock. The CanCook check
// runs first; on failure nothing is touched. The subtraction loop assumes no
// interleaved mutation between check and apply, which holds because the
// fridge runs Cook inside a single critical section.
func (r *Recipe) Cook(stock Stock) bool {
	if !r.CanCook(stock) {
		return false
	}
	for _, line := range r.Ingredients {
		stock.RemoveFood(line.NormalizedName, line.Amount)
	}
	return true
}
