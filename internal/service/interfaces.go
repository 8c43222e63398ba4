// Package service defines the interfaces between the domain core and its
// collaborators.
package service

import (
	"context"

	"github.com/mealcraft/mealcraft/internal/fridge"
)

// Storage defines the contract for the persistence layer. It snapshots a
// whole fridge and restores one; the core stays in-memory and knows nothing
// about the format behind this interface.
type Storage interface {
	// LoadFridge restores the persisted fridge, or an empty one when the
	// database holds nothing yet.
	LoadFridge(ctx context.Context) (*fridge.Fridge, error)
	// SaveFridge replaces the persisted snapshot with the fridge's current
	// inventory, recipe book, and shopping list.
	SaveFridge(ctx context.Context, f *fridge.Fridge) error
	// Migrate brings the schema up to the expected version.
	Migrate(ctx context.Context) error
	Close() error
}
