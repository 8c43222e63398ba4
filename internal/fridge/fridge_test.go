package fridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealcraft/mealcraft/internal/model"
)

func day(offset int) time.Time {
	return time.Now().AddDate(0, 0, offset)
}

func item(name string, qty float64, expires time.Time) *model.FoodItem {
	return model.NewFoodItem(name, qty, "count", model.CategoryOther, expires, "")
}

func TestFridge_AddFood(t *testing.T) {
	t.Run("additions under one name accumulate", func(t *testing.T) {
		f := New()
		f.AddFood(item("Milk", 1, day(5)))
		f.AddFood(item("milk", 2, day(9)))
		f.AddFood(item("  MILK ", 0.5, day(1)))

		got := f.FoodItem("Milk")
		require.NotNil(t, got)
		assert.Equal(t, 3.5, got.Quantity)
	})

	t.Run("merge keeps the first record's other fields", func(t *testing.T) {
		f := New()
		first := model.NewFoodItem("Milk", 1, "carton", model.CategoryDairyEggs, day(5), "milk.png")
		f.AddFood(first)
		f.AddFood(model.NewFoodItem("Milk", 2, "gallon", model.CategoryOther, day(20), "other.png"))

		got := f.FoodItem("milk")
		require.NotNil(t, got)
		assert.Equal(t, 3.0, got.Quantity)
		assert.Equal(t, "carton", got.Unit)
		assert.Equal(t, model.CategoryDairyEggs, got.Category)
		assert.Equal(t, first.ExpirationDate, got.ExpirationDate)
		assert.Equal(t, "milk.png", got.ImagePath)
	})

	t.Run("merge with a non-positive incoming quantity changes nothing", func(t *testing.T) {
		f := New()
		f.AddFood(item("Milk", 2, day(5)))
		f.AddFood(item("Milk", -1, day(5)))
		assert.Equal(t, 2.0, f.FoodItem("Milk").Quantity)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		f := New()
		f.AddFood(nil)
		assert.Empty(t, f.ItemsSortedByName())
	})
}

func TestFridge_RemoveFood(t *testing.T) {
	t.Run("missing item", func(t *testing.T) {
		f := New()
		assert.False(t, f.RemoveFood("milk", 1))
	})

	t.Run("overdraw refused without mutation", func(t *testing.T) {
		f := New()
		f.AddFood(item("Milk", 2, day(5)))
		assert.False(t, f.RemoveFood("Milk", 3))
		assert.Equal(t, 2.0, f.FoodItem("Milk").Quantity)
	})

	t.Run("non-positive amount refused", func(t *testing.T) {
		f := New()
		f.AddFood(item("Milk", 2, day(5)))
		assert.False(t, f.RemoveFood("Milk", 0))
		assert.False(t, f.RemoveFood("Milk", -1))
		assert.Equal(t, 2.0, f.FoodItem("Milk").Quantity)
	})

	t.Run("partial removal keeps the record", func(t *testing.T) {
		f := New()
		f.AddFood(item("Milk", 2, day(5)))
		assert.True(t, f.RemoveFood("milk", 0.5))
		assert.Equal(t, 1.5, f.FoodItem("Milk").Quantity)
	})

	t.Run("reaching exactly zero deletes the record", func(t *testing.T) {
		f := New()
		f.AddFood(item("Milk", 2, day(5)))
		assert.True(t, f.RemoveFood("Milk", 2))
		assert.Nil(t, f.FoodItem("Milk"))
	})
}

func TestFridge_Sorting(t *testing.T) {
	f := New()
	f.AddFood(item("Yogurt", 1, day(2)))
	f.AddFood(item("apple", 1, day(2)))
	f.AddFood(item("Milk", 1, day(1)))

	t.Run("alphabetical", func(t *testing.T) {
		names := []string{}
		for _, it := range f.ItemsSortedByName() {
			names = append(names, it.NormalizedName)
		}
		assert.Equal(t, []string{"apple", "milk", "yogurt"}, names)
	})

	t.Run("by expiration with alphabetical ties", func(t *testing.T) {
		names := []string{}
		for _, it := range f.ItemsSortedByExpiration() {
			names = append(names, it.NormalizedName)
		}
		// milk expires first; apple and yogurt tie and stay A-Z
		assert.Equal(t, []string{"milk", "apple", "yogurt"}, names)
	})
}

func TestFridge_LowStockItems(t *testing.T) {
	f := New()
	f.AddFood(item("Potato", 1, day(10)))   // exactly at threshold
	f.AddFood(item("Milk", 0.5, day(5)))    // below
	f.AddFood(item("Eggs", 12, day(10)))    // plenty

	low := f.LowStockItems()
	names := []string{}
	for _, it := range low {
		names = append(names, it.NormalizedName)
	}
	assert.ElementsMatch(t, []string{"potato", "milk"}, names)
}

func TestFridge_ItemsExpiringWithin(t *testing.T) {
	f := New()
	f.AddFood(item("Old Cheese", 1, day(-2)))
	f.AddFood(item("Milk", 1, day(0)))
	f.AddFood(item("Yogurt", 1, day(3)))
	f.AddFood(item("Eggs", 1, day(4)))

	t.Run("includes day counts in the window, excludes expired", func(t *testing.T) {
		names := []string{}
		for _, it := range f.ItemsExpiringWithin(3) {
			names = append(names, it.NormalizedName)
		}
		assert.Equal(t, []string{"milk", "yogurt"}, names)
	})

	t.Run("negative window clamps to today", func(t *testing.T) {
		names := []string{}
		for _, it := range f.ItemsExpiringWithin(-5) {
			names = append(names, it.NormalizedName)
		}
		assert.Equal(t, []string{"milk"}, names)
	})
}

func TestFridge_ExpirationIndex(t *testing.T) {
	f := New()
	f.AddFood(item("Milk", 1, day(2)))
	f.AddFood(item("Yogurt", 1, day(2)))
	f.AddFood(item("Eggs", 6, day(6)))

	t.Run("items sharing a date share an index entry", func(t *testing.T) {
		assert.Len(t, f.ItemsExpiringOn(day(2)), 2)
		assert.Len(t, f.ItemsExpiringOn(day(6)), 1)
		assert.Empty(t, f.ItemsExpiringOn(day(4)))
	})

	t.Run("rebuild is idempotent", func(t *testing.T) {
		f.RebuildExpirationIndex()
		first := f.ItemsExpiringOn(day(2))
		f.RebuildExpirationIndex()
		second := f.ItemsExpiringOn(day(2))
		assert.ElementsMatch(t, first, second)
	})

	t.Run("index follows removals", func(t *testing.T) {
		require.True(t, f.RemoveFood("Milk", 1))
		assert.Len(t, f.ItemsExpiringOn(day(2)), 1)
	})

	t.Run("index follows expiration edits", func(t *testing.T) {
		require.True(t, f.SetExpiration("Yogurt", day(6)))
		assert.Empty(t, f.ItemsExpiringOn(day(2)))
		assert.Len(t, f.ItemsExpiringOn(day(6)), 2)
	})

	t.Run("editing an unknown item reports false", func(t *testing.T) {
		assert.False(t, f.SetExpiration("tofu", day(1)))
	})
}
