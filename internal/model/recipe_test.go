package model

import (
	"testing"
	"time"
)

// mapStock is a minimal Stock backed by a map, enough to evaluate recipes
// without the full fridge aggregate.
type mapStock map[string]*FoodItem

func (m mapStock) FoodItem(name string) *FoodItem {
	return m[NormalizeName(name)]
}

func (m mapStock) RemoveFood(name string, amount float64) bool {
	key := NormalizeName(name)
	item, ok := m[key]
	if !ok || amount > item.Quantity {
		return false
	}
	if !item.SubtractQuantity(amount) {
		return false
	}
	if item.Quantity == 0 {
		delete(m, key)
	}
	return true
}

func stockWith(items ...*FoodItem) mapStock {
	m := make(mapStock, len(items))
	for _, item := range items {
		m[item.NormalizedName] = item
	}
	return m
}

func omelette() *Recipe {
	return NewRecipe("Omelette",
		[]string{"Crack the eggs", "Whisk with milk", "Fry"},
		[]*IngredientLine{
			NewIngredientLine("Eggs", 3, "count"),
			NewIngredientLine("Milk", 0.25, "carton"),
		},
		"omelette.png")
}

func TestRecipe_CanCook(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		stock mapStock
		want  bool
	}{
		{
			name: "everything in stock",
			stock: stockWith(
				NewFoodItem("Eggs", 6, "count", CategoryDairyEggs, now, ""),
				NewFoodItem("Milk", 1, "carton", CategoryDairyEggs, now, ""),
			),
			want: true,
		},
		{
			name: "exact amounts suffice",
			stock: stockWith(
				NewFoodItem("Eggs", 3, "count", CategoryDairyEggs, now, ""),
				NewFoodItem("Milk", 0.25, "carton", CategoryDairyEggs, now, ""),
			),
			want: true,
		},
		{
			name: "ingredient missing entirely",
			stock: stockWith(
				NewFoodItem("Eggs", 6, "count", CategoryDairyEggs, now, ""),
			),
			want: false,
		},
		{
			name: "ingredient short",
			stock: stockWith(
				NewFoodItem("Eggs", 2, "count", CategoryDairyEggs, now, ""),
				NewFoodItem("Milk", 1, "carton", CategoryDairyEggs, now, ""),
			),
			want: false,
		},
		{
			name: "unit labels are not compared",
			stock: stockWith(
				NewFoodItem("Eggs", 3, "dozen", CategoryDairyEggs, now, ""),
				NewFoodItem("Milk", 1, "gallon", CategoryDairyEggs, now, ""),
			),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := omelette().CanCook(tt.stock); got != tt.want {
				t.Errorf("CanCook() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecipe_MissingQuantity(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		stock mapStock
		want  float64
	}{
		{
			name: "zero when cookable",
			stock: stockWith(
				NewFoodItem("Eggs", 3, "count", CategoryDairyEggs, now, ""),
				NewFoodItem("Milk", 0.25, "carton", CategoryDairyEggs, now, ""),
			),
			want: 0,
		},
		{
			name:  "full amounts when fridge is empty",
			stock: stockWith(),
			want:  3.25,
		},
		{
			name: "partial shortfall",
			stock: stockWith(
				NewFoodItem("Eggs", 1, "count", CategoryDairyEggs, now, ""),
				NewFoodItem("Milk", 1, "carton", CategoryDairyEggs, now, ""),
			),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe := omelette()
			got := recipe.MissingQuantity(tt.stock)
			if got != tt.want {
				t.Errorf("MissingQuantity() = %v, want %v", got, tt.want)
			}
			if (got == 0) != recipe.CanCook(tt.stock) {
				t.Errorf("MissingQuantity() == 0 must coincide with CanCook()")
			}
		})
	}
}

func TestRecipe_EarliestExpirationDays(t *testing.T) {
	ref := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	day := func(offset int) time.Time { return ref.AddDate(0, 0, offset) }

	t.Run("minimum across matched ingredients", func(t *testing.T) {
		stock := stockWith(
			NewFoodItem("Eggs", 6, "count", CategoryDairyEggs, day(7), ""),
			NewFoodItem("Milk", 1, "carton", CategoryDairyEggs, day(2), ""),
		)
		if got := omelette().EarliestExpirationDays(stock, ref); got != 2 {
			t.Errorf("EarliestExpirationDays() = %d, want 2", got)
		}
	})

	t.Run("unmatched ingredients are skipped", func(t *testing.T) {
		stock := stockWith(
			NewFoodItem("Eggs", 6, "count", CategoryDairyEggs, day(7), ""),
		)
		if got := omelette().EarliestExpirationDays(stock, ref); got != 7 {
			t.Errorf("EarliestExpirationDays() = %d, want 7", got)
		}
	})

	t.Run("sentinel when nothing matches", func(t *testing.T) {
		if got := omelette().EarliestExpirationDays(stockWith(), ref); got != NoUrgency {
			t.Errorf("EarliestExpirationDays() = %d, want NoUrgency", got)
		}
	})
}

func TestRecipe_Cook(t *testing.T) {
	now := time.Now()

	t.Run("consumes each required amount", func(t *testing.T) {
		stock := stockWith(
			NewFoodItem("Eggs", 6, "count", CategoryDairyEggs, now, ""),
			NewFoodItem("Milk", 1, "carton", CategoryDairyEggs, now, ""),
		)
		if !omelette().Cook(stock) {
			t.Fatal("Cook() = false, want true")
		}
		if got := stock.FoodItem("eggs").Quantity; got != 3 {
			t.Errorf("eggs left = %v, want 3", got)
		}
		if got := stock.FoodItem("milk").Quantity; got != 0.75 {
			t.Errorf("milk left = %v, want 0.75", got)
		}
	})

	t.Run("item used up exactly is removed", func(t *testing.T) {
		stock := stockWith(
			NewFoodItem("Eggs", 3, "count", CategoryDairyEggs, now, ""),
			NewFoodItem("Milk", 0.25, "carton", CategoryDairyEggs, now, ""),
		)
		if !omelette().Cook(stock) {
			t.Fatal("Cook() = false, want true")
		}
		if stock.FoodItem("eggs") != nil {
			t.Error("eggs should be removed once used up")
		}
	})

	t.Run("all or nothing when short", func(t *testing.T) {
		stock := stockWith(
			NewFoodItem("Eggs", 6, "count", CategoryDairyEggs, now, ""),
			NewFoodItem("Milk", 0.1, "carton", CategoryDairyEggs, now, ""),
		)
		if omelette().Cook(stock) {
			t.Fatal("Cook() = true, want false")
		}
		if got := stock.FoodItem("eggs").Quantity; got != 6 {
			t.Errorf("eggs = %v, want 6 (untouched)", got)
		}
		if got := stock.FoodItem("milk").Quantity; got != 0.1 {
			t.Errorf("milk = %v, want 0.1 (untouched)", got)
		}
	})

	t.Run("missing ingredient scenario", func(t *testing.T) {
		recipe := NewRecipe("Roast Chicken", []string{"Roast it"},
			[]*IngredientLine{NewIngredientLine("Chicken", 1, "count")}, "")
		stock := stockWith()

		if recipe.CanCook(stock) {
			t.Error("CanCook() = true, want false")
		}
		if got := recipe.MissingQuantity(stock); got != 1.0 {
			t.Errorf("MissingQuantity() = %v, want 1.0", got)
		}
		if recipe.Cook(stock) {
			t.Error("Cook() = true, want false")
		}
	})
}
