// Package export serializes shopping-list snapshots to plain text. The core
// only supplies the snapshot; ordering is whatever the caller imposed.
package export

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mealcraft/mealcraft/internal/model"
)

// WriteShoppingList writes one tab-separated line per entry: name, amount,
// unit. Amounts print without trailing zeros so "2" stays "2".
func WriteShoppingList(w io.Writer, items []*model.IngredientLine) error {
	for _, line := range items {
		amount := strconv.FormatFloat(line.Amount, 'f', -1, 64)
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", line.Name, amount, line.Unit); err != nil {
			return fmt.Errorf("failed to write shopping list entry %q: %w", line.Name, err)
		}
	}
	return nil
}

// ExportFile writes the snapshot to a new file at path.
func ExportFile(path string, items []*model.IngredientLine) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := WriteShoppingList(file, items); err != nil {
		return err
	}
	return nil
}
