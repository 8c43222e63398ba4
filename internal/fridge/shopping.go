package fridge

import (
	"strings"

	"github.com/mealcraft/mealcraft/internal/model"
)

// GenerateShoppingList discards the current list and regenerates it from the
// low-stock rule alone: every low-stock item contributes its shortage
// (threshold minus quantity) when that is positive. Manually added entries do
// not survive regeneration; callers who want them must re-add them after.
func (f *Fridge) GenerateShoppingList() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.shopping = make(map[string]*model.IngredientLine)
	for _, item := range f.lowStockItems() {
		shortage := lowStockThreshold - item.Quantity
		if shortage > 0 {
			f.shopping[item.NormalizedName] = model.NewIngredientLine(item.Name, shortage, item.Unit)
		}
	}
}

// AddShoppingListItem puts amount of the named ingredient on the list. Blank
// names and non-positive amounts are rejected. When an entry already exists
// the amounts are added and the entry keeps its original display name and
// unit; the first-seen unit wins over a differing later one.
func (f *Fridge) AddShoppingListItem(name string, amount float64, unit string) bool {
	if strings.TrimSpace(name) == "" || amount <= 0 {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	key := model.NormalizeName(name)
	if existing, ok := f.shopping[key]; ok {
		existing.Amount += amount
	} else {
		f.shopping[key] = model.NewIngredientLine(name, amount, unit)
	}
	return true
}

// RemoveShoppingListItem subtracts amount from the named entry, deleting it
// when nothing positive remains. Missing entries are a no-op.
func (f *Fridge) RemoveShoppingListItem(name string, amount float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := model.NormalizeName(name)
	line, ok := f.shopping[key]
	if !ok {
		return
	}
	remaining := line.Amount - amount
	if remaining <= 0 {
		delete(f.shopping, key)
		return
	}
	line.Amount = remaining
}

// ShoppingListItems returns a snapshot of the current list in storage order.
// Callers impose whatever ordering they need for display.
func (f *Fridge) ShoppingListItems() []*model.IngredientLine {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]*model.IngredientLine, 0, len(f.shopping))
	for _, line := range f.shopping {
		items = append(items, line)
	}
	return items
}
