package fridge

import (
	"time"

	"github.com/mealcraft/mealcraft/internal/model"
)

// LoadStarterData seeds a handful of staples so a fresh fridge has something
// to show: a carton of milk, a dozen eggs, and some apples.
func LoadStarterData(f *Fridge) {
	now := time.Now()
	f.AddFood(model.NewFoodItem("Milk", 1, "carton", model.CategoryDairyEggs, now.AddDate(0, 0, 5), "milk.png"))
	f.AddFood(model.NewFoodItem("Eggs", 12, "count", model.CategoryDairyEggs, now.AddDate(0, 0, 10), "eggs.png"))
	f.AddFood(model.NewFoodItem("Apple", 6, "count", model.CategoryFruitsVegetables, now.AddDate(0, 0, 7), "apple.png"))
}
