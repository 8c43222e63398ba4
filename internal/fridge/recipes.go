package fridge

import (
	"sort"

	"github.com/mealcraft/mealcraft/internal/model"
)

// AddRecipe appends a recipe to the book. Nil recipes are ignored.
func (f *Fridge) AddRecipe(recipe *model.Recipe) {
	if recipe == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes = append(f.recipes, recipe)
}

// Recipes returns the recipe book in insertion order.
func (f *Fridge) Recipes() []*model.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*model.Recipe(nil), f.recipes...)
}

// Recipe looks up a recipe by name, case-insensitively. Nil when absent.
func (f *Fridge) Recipe(name string) *model.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := model.NormalizeName(name)
	for _, r := range f.recipes {
		if r.NormalizedName() == key {
			return r
		}
	}
	return nil
}

// CookableRecipes returns the recipes whose every ingredient is matched by
// sufficient stock, in insertion order.
func (f *Fridge) CookableRecipes() []*model.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := stockView{f}
	var cookable []*model.Recipe
	for _, r := range f.recipes {
		if r.CanCook(view) {
			cookable = append(cookable, r)
		}
	}
	return cookable
}

// RecipesByShortage returns all recipes ordered by their missing-quantity
// metric, smallest first, so cookable recipes (shortage zero) lead and the
// rest follow by distance to cookable. Ties keep insertion order.
func (f *Fridge) RecipesByShortage() []*model.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := stockView{f}
	ranked := append([]*model.Recipe(nil), f.recipes...)
	shortage := make(map[*model.Recipe]float64, len(ranked))
	for _, r := range ranked {
		shortage[r] = r.MissingQuantity(view)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return shortage[ranked[i]] < shortage[ranked[j]]
	})
	return ranked
}

// SuggestRecipe returns the almost-cookable recipe with the smallest positive
// shortage, or nil when the book is empty or everything is already cookable.
func (f *Fridge) SuggestRecipe() *model.Recipe {
	f.mu.Lock()
	defer f.mu.Unlock()

	view := stockView{f}
	var best *model.Recipe
	var bestShortage float64
	for _, r := range f.recipes {
		s := r.MissingQuantity(view)
		if s <= 0 {
			continue
		}
		if best == nil || s < bestShortage {
			best, bestShortage = r, s
		}
	}
	return best
}

// Cook consumes the named recipe's ingredients from the inventory. The whole
// check-then-subtract sequence runs under the fridge lock, keeping the
// all-or-nothing contract even when the fridge is embedded in a concurrent
// host. False when the recipe is unknown or not cookable.
func (f *Fridge) Cook(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := model.NormalizeName(name)
	for _, r := range f.recipes {
		if r.NormalizedName() == key {
			return r.Cook(stockView{f})
		}
	}
	return false
}

// stockView exposes the fridge to recipe evaluation without re-acquiring the
// lock; it must only be used while the fridge mutex is held.
type stockView struct {
	f *Fridge
}

func (v stockView) FoodItem(name string) *model.FoodItem {
	return v.f.inventory[model.NormalizeName(name)]
}

func (v stockView) RemoveFood(name string, amount float64) bool {
	return v.f.removeFood(name, amount)
}
