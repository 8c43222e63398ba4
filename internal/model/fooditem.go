// Package model defines the core domain types for the fridge: food items,
// ingredient lines, recipes, and the categories that group them. The package
// depends on nothing outside the standard library; all cross-entity
// orchestration lives in the fridge aggregate.
package model

import (
	"strings"
	"time"
)

// NormalizeName derives the identity key for a display name: lowercase and
// whitespace-trimmed. Every map lookup in the system goes through this.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FoodItem is a single inventory record. Quantity only changes through
// AddQuantity/SubtractQuantity/SetQuantity so it can never go negative.
type FoodItem struct {
	ExpirationDate time.Time
	Name           string
	NormalizedName string
	Unit           string
	ImagePath      string
	Category       Category
	Quantity       float64
}

// NewFoodItem creates a food item and derives its normalized name.
func NewFoodItem(name string, quantity float64, unit string, category Category, expires time.Time, imagePath string) *FoodItem {
	return &FoodItem{
		Name:           name,
		NormalizedName: NormalizeName(name),
		Quantity:       quantity,
		Unit:           unit,
		Category:       category,
		ExpirationDate: expires,
		ImagePath:      imagePath,
	}
}

// Rename updates the display name and re-derives the normalized name so the
// two never diverge.
func (f *FoodItem) Rename(name string) {
	f.Name = name
	f.NormalizedName = NormalizeName(name)
}

// AddQuantity increases the quantity. Non-positive amounts are ignored; the
// permissive no-op is deliberate, callers treat bad input as "nothing to add".
func (f *FoodItem) AddQuantity(amount float64) {
	if amount <= 0 {
		return
	}
	f.Quantity += amount
}

// SubtractQuantity decreases the quantity. It reports false and leaves the
// item untouched when amount is non-positive or exceeds what is available.
func (f *FoodItem) SubtractQuantity(amount float64) bool {
	if amount <= 0 || amount > f.Quantity {
		return false
	}
	f.Quantity -= amount
	return true
}

// SetQuantity moves the quantity to target by routing the delta through
// AddQuantity or SubtractQuantity, so the usual guards apply. Negative
// targets are ignored.
func (f *FoodItem) SetQuantity(target float64) {
	if target < 0 {
		return
	}
	switch {
	case target > f.Quantity:
		f.AddQuantity(target - f.Quantity)
	case target < f.Quantity:
		f.SubtractQuantity(f.Quantity - target)
	}
}

// DaysUntilExpiration returns the signed whole-day count from ref to the
// expiration date. Negative means already expired. Both endpoints are
// truncated to calendar dates, so time of day never affects the count.
func (f *FoodItem) DaysUntilExpiration(ref time.Time) int {
	return int(truncateToDate(f.ExpirationDate).Sub(truncateToDate(ref)).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
