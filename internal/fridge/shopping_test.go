package fridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealcraft/mealcraft/internal/model"
)

func shoppingByName(f *Fridge) map[string]*model.IngredientLine {
	byName := make(map[string]*model.IngredientLine)
	for _, line := range f.ShoppingListItems() {
		byName[line.NormalizedName] = line
	}
	return byName
}

func TestFridge_GenerateShoppingList(t *testing.T) {
	t.Run("lists shortages of low-stock items", func(t *testing.T) {
		f := New()
		f.AddFood(model.NewFoodItem("Potato", 1, "count", model.CategoryFruitsVegetables, day(10), ""))
		f.AddFood(model.NewFoodItem("Milk", 0.5, "carton", model.CategoryDairyEggs, day(5), ""))
		f.AddFood(model.NewFoodItem("Eggs", 12, "count", model.CategoryDairyEggs, day(10), ""))

		f.GenerateShoppingList()

		byName := shoppingByName(f)
		// potato sits exactly at the threshold: shortage 0, no entry
		assert.NotContains(t, byName, "potato")
		assert.NotContains(t, byName, "eggs")
		require.Contains(t, byName, "milk")
		assert.Equal(t, 0.5, byName["milk"].Amount)
		assert.Equal(t, "carton", byName["milk"].Unit)
	})

	t.Run("regeneration discards manual entries", func(t *testing.T) {
		f := New()
		require.True(t, f.AddShoppingListItem("Bread", 2, "loaf"))

		f.GenerateShoppingList()

		assert.Empty(t, f.ShoppingListItems())
	})
}

func TestFridge_AddShoppingListItem(t *testing.T) {
	t.Run("first-seen unit and display name win", func(t *testing.T) {
		f := New()
		require.True(t, f.AddShoppingListItem("Milk", 2, "cup"))
		require.True(t, f.AddShoppingListItem("milk", 1, "gallon"))

		items := f.ShoppingListItems()
		require.Len(t, items, 1)
		assert.Equal(t, "Milk", items[0].Name)
		assert.Equal(t, 3.0, items[0].Amount)
		assert.Equal(t, "cup", items[0].Unit)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		f := New()
		assert.False(t, f.AddShoppingListItem("   ", 1, "count"))
		assert.Empty(t, f.ShoppingListItems())
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		f := New()
		assert.False(t, f.AddShoppingListItem("Milk", 0, "cup"))
		assert.False(t, f.AddShoppingListItem("Milk", -2, "cup"))
		assert.Empty(t, f.ShoppingListItems())
	})
}

func TestFridge_RemoveShoppingListItem(t *testing.T) {
	t.Run("partial removal keeps a reduced entry", func(t *testing.T) {
		f := New()
		require.True(t, f.AddShoppingListItem("Milk", 3, "cup"))
		f.RemoveShoppingListItem("MILK", 1)

		byName := shoppingByName(f)
		require.Contains(t, byName, "milk")
		assert.Equal(t, 2.0, byName["milk"].Amount)
	})

	t.Run("removing everything deletes the entry", func(t *testing.T) {
		f := New()
		require.True(t, f.AddShoppingListItem("Milk", 3, "cup"))
		f.RemoveShoppingListItem("milk", 5)
		assert.Empty(t, f.ShoppingListItems())
	})

	t.Run("unknown entry is a no-op", func(t *testing.T) {
		f := New()
		f.RemoveShoppingListItem("bread", 1)
		assert.Empty(t, f.ShoppingListItems())
	})
}
