// Package fridge implements the aggregate root of the domain: it owns every
// food item, the expiration index derived from them, the recipe book, and the
// shopping list. All cross-entity rules (low stock, expiring soon,
// cookability, shortage) are enforced here; callers never mutate the owned
// records directly.
package fridge

import (
	"sort"
	"sync"
	"time"

	"github.com/mealcraft/mealcraft/internal/model"
)

// lowStockThreshold is the fixed quantity at or below which an item is
// considered low stock. It is a policy constant, not per-item configuration.
const lowStockThreshold = 1.0

// Fridge holds the household inventory. The inventory map, the expiration
// index, and the shopping list form one unit of mutual exclusion: every
// exported operation takes the mutex, so a concurrent host cannot interleave
// a check with an apply and break the non-negative quantity or
// one-entry-per-name invariants.
type Fridge struct {
	inventory       map[string]*model.FoodItem
	expirationIndex map[time.Time][]*model.FoodItem
	shopping        map[string]*model.IngredientLine
	recipes         []*model.Recipe
	mu              sync.Mutex
}

// New creates an empty fridge.
func New() *Fridge {
	return &Fridge{
		inventory:       make(map[string]*model.FoodItem),
		expirationIndex: make(map[time.Time][]*model.FoodItem),
		shopping:        make(map[string]*model.IngredientLine),
	}
}

// AddFood inserts the item, or merges it into an existing record with the
// same normalized name by adding quantities. A merge keeps the existing
// record's unit, category, expiration, and image: the first write wins for
// everything but quantity. The expiration index is rebuilt afterwards.
func (f *Fridge) AddFood(item *model.FoodItem) {
	if item == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if existing, ok := f.inventory[item.NormalizedName]; ok {
		existing.AddQuantity(item.Quantity)
	} else {
		f.inventory[item.NormalizedName] = item
	}
	f.rebuildExpirationIndex()
}

// RemoveFood subtracts amount from the named item. It reports false without
// mutating when the item is missing, the amount is non-positive, or the
// amount exceeds what is stored. An item whose quantity reaches exactly zero
// is deleted from the inventory.
func (f *Fridge) RemoveFood(name string, amount float64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.removeFood(name, amount)
}

func (f *Fridge) removeFood(name string, amount float64) bool {
	key := model.NormalizeName(name)
	item, ok := f.inventory[key]
	if !ok || amount > item.Quantity {
		return false
	}
	if !item.SubtractQuantity(amount) {
		return false
	}
	if item.Quantity == 0 {
		delete(f.inventory, key)
	}
	f.rebuildExpirationIndex()
	return true
}

// FoodItem returns the item stored under the normalized form of name, or nil.
func (f *Fridge) FoodItem(name string) *model.FoodItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inventory[model.NormalizeName(name)]
}

// ItemsSortedByName returns all items ordered by normalized name, A to Z.
func (f *Fridge) ItemsSortedByName() []*model.FoodItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.itemsSortedByName()
}

func (f *Fridge) itemsSortedByName() []*model.FoodItem {
	items := make([]*model.FoodItem, 0, len(f.inventory))
	for _, item := range f.inventory {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].NormalizedName < items[j].NormalizedName
	})
	return items
}

// ItemsSortedByExpiration returns all items ordered by expiration date,
// soonest first. Ties keep the A-Z order because the secondary sort is
// stable over the already name-sorted slice.
func (f *Fridge) ItemsSortedByExpiration() []*model.FoodItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.itemsSortedByName()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ExpirationDate.Before(items[j].ExpirationDate)
	})
	return items
}

// LowStockItems returns the items whose quantity is at or below the low
// stock threshold.
func (f *Fridge) LowStockItems() []*model.FoodItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lowStockItems()
}

func (f *Fridge) lowStockItems() []*model.FoodItem {
	var low []*model.FoodItem
	for _, item := range f.inventory {
		if item.Quantity <= lowStockThreshold {
			low = append(low, item)
		}
	}
	return low
}

// ItemsExpiringWithin returns the items whose days-until-expiration falls in
// [0, days], ordered by expiration date ascending. Already expired items are
// excluded; a negative window is treated as zero (today only).
func (f *Fridge) ItemsExpiringWithin(days int) []*model.FoodItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	if days < 0 {
		days = 0
	}
	today := time.Now()
	var soon []*model.FoodItem
	for _, item := range f.inventory {
		diff := item.DaysUntilExpiration(today)
		if diff >= 0 && diff <= days {
			soon = append(soon, item)
		}
	}
	sort.SliceStable(soon, func(i, j int) bool {
		return soon[i].ExpirationDate.Before(soon[j].ExpirationDate)
	})
	return soon
}

// ItemsExpiringOn returns the index entry for the given calendar date.
func (f *Fridge) ItemsExpiringOn(date time.Time) []*model.FoodItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	y, m, d := date.Date()
	key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return append([]*model.FoodItem(nil), f.expirationIndex[key]...)
}

// SetExpiration changes an item's expiration date and rebuilds the index,
// which is the required follow-up for any external date edit. It reports
// false when the item does not exist.
func (f *Fridge) SetExpiration(name string, date time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.inventory[model.NormalizeName(name)]
	if !ok {
		return false
	}
	item.ExpirationDate = date
	f.rebuildExpirationIndex()
	return true
}

// RebuildExpirationIndex reconstructs the date index from the inventory in
// one O(n) pass. Small inventories make full rebuilds cheaper to reason
// about than incremental updates, so every mutation path calls this.
func (f *Fridge) RebuildExpirationIndex() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rebuildExpirationIndex()
}

func (f *Fridge) rebuildExpirationIndex() {
	f.expirationIndex = make(map[time.Time][]*model.FoodItem, len(f.inventory))
	for _, item := range f.inventory {
		y, m, d := item.ExpirationDate.Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		f.expirationIndex[key] = append(f.expirationIndex[key], item)
	}
}
