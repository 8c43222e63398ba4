package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/mealcraft/mealcraft/internal/model"
)

// SaveFridge replaces the persisted snapshot with the fridge's current
// state. The whole write runs in one transaction so a crash can never leave
// half a snapshot behind.
func (s *SQLiteStorage) SaveFridge(ctx context.Context, f *fridge.Fridge) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if f == nil {
		return fmt.Errorf("%w: fridge", ErrNilParameter)
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"food_items", "recipe_ingredients", "recipe_steps", "recipes", "shopping_list"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := saveItemsTx(ctx, tx, f.ItemsSortedByName()); err != nil {
		return err
	}
	if err := saveRecipesTx(ctx, tx, f.Recipes()); err != nil {
		return err
	}
	if err := saveShoppingTx(ctx, tx, f.ShoppingListItems()); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func saveItemsTx(ctx context.Context, tx *sql.Tx, items []*model.FoodItem) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO food_items (normalized_name, name, quantity, unit, category, expiration_date, image_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare food_items insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, item := range items {
		_, err := stmt.ExecContext(ctx,
			item.NormalizedName, item.Name, item.Quantity, item.Unit,
			string(item.Category), item.ExpirationDate, item.ImagePath)
		if err != nil {
			return fmt.Errorf("failed to save food item %q: %w", item.Name, err)
		}
	}
	return nil
}

func saveRecipesTx(ctx context.Context, tx *sql.Tx, recipes []*model.Recipe) error {
	for pos, recipe := range recipes {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO recipes (name, image_path, position) VALUES (?, ?, ?)",
			recipe.Name, recipe.ImagePath, pos)
		if err != nil {
			return fmt.Errorf("failed to save recipe %q: %w", recipe.Name, err)
		}
		recipeID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get recipe id: %w", err)
		}

		for i, step := range recipe.Steps {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO recipe_steps (recipe_id, position, instruction) VALUES (?, ?, ?)",
				recipeID, i, step); err != nil {
				return fmt.Errorf("failed to save step %d of %q: %w", i+1, recipe.Name, err)
			}
		}
		for i, line := range recipe.Ingredients {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO recipe_ingredients (recipe_id, position, name, amount, unit) VALUES (?, ?, ?, ?, ?)",
				recipeID, i, line.Name, line.Amount, line.Unit); err != nil {
				return fmt.Errorf("failed to save ingredient %q of %q: %w", line.Name, recipe.Name, err)
			}
		}
	}
	return nil
}

func saveShoppingTx(ctx context.Context, tx *sql.Tx, items []*model.IngredientLine) error {
	for _, line := range items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO shopping_list (normalized_name, name, amount, unit) VALUES (?, ?, ?, ?)",
			line.NormalizedName, line.Name, line.Amount, line.Unit); err != nil {
			return fmt.Errorf("failed to save shopping entry %q: %w", line.Name, err)
		}
	}
	return nil
}

// LoadFridge restores the persisted snapshot. The fridge is rebuilt entirely
// through its own operations (AddFood, AddRecipe, AddShoppingListItem), so a
// snapshot can never introduce a state the domain rules would refuse.
func (s *SQLiteStorage) LoadFridge(ctx context.Context) (*fridge.Fridge, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	f := fridge.New()
	if err := s.loadItems(ctx, f); err != nil {
		return nil, err
	}
	if err := s.loadRecipes(ctx, f); err != nil {
		return nil, err
	}
	if err := s.loadShopping(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *SQLiteStorage) loadItems(ctx context.Context, f *fridge.Fridge) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, quantity, unit, category, expiration_date, image_path
		FROM food_items`)
	if err != nil {
		return fmt.Errorf("failed to query food items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			name, unit, category, imagePath string
			quantity                        float64
			expires                         time.Time
		)
		if err := rows.Scan(&name, &quantity, &unit, &category, &expires, &imagePath); err != nil {
			return fmt.Errorf("failed to scan food item: %w", err)
		}
		f.AddFood(model.NewFoodItem(name, quantity, unit, model.Category(category), expires, imagePath))
	}
	return rows.Err()
}

func (s *SQLiteStorage) loadRecipes(ctx context.Context, f *fridge.Fridge) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, image_path FROM recipes ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to query recipes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type recipeRow struct {
		name      string
		imagePath string
		id        int64
	}
	var recipeRows []recipeRow
	for rows.Next() {
		var r recipeRow
		if err := rows.Scan(&r.id, &r.name, &r.imagePath); err != nil {
			return fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipeRows = append(recipeRows, r)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, r := range recipeRows {
		steps, err := s.loadSteps(ctx, r.id)
		if err != nil {
			return err
		}
		ingredients, err := s.loadIngredients(ctx, r.id)
		if err != nil {
			return err
		}
		f.AddRecipe(model.NewRecipe(r.name, steps, ingredients, r.imagePath))
	}
	return nil
}

func (s *SQLiteStorage) loadSteps(ctx context.Context, recipeID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT instruction FROM recipe_steps WHERE recipe_id = ? ORDER BY position", recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe steps: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var steps []string
	for rows.Next() {
		var step string
		if err := rows.Scan(&step); err != nil {
			return nil, fmt.Errorf("failed to scan recipe step: %w", err)
		}
		steps = append(steps, step)
	}
	return steps, rows.Err()
}

func (s *SQLiteStorage) loadIngredients(ctx context.Context, recipeID int64) ([]*model.IngredientLine, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, amount, unit FROM recipe_ingredients WHERE recipe_id = ? ORDER BY position", recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe ingredients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ingredients []*model.IngredientLine
	for rows.Next() {
		var (
			name, unit string
			amount     float64
		)
		if err := rows.Scan(&name, &amount, &unit); err != nil {
			return nil, fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		ingredients = append(ingredients, model.NewIngredientLine(name, amount, unit))
	}
	return ingredients, rows.Err()
}

func (s *SQLiteStorage) loadShopping(ctx context.Context, f *fridge.Fridge) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, amount, unit FROM shopping_list")
	if err != nil {
		return fmt.Errorf("failed to query shopping list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			name, unit string
			amount     float64
		)
		if err := rows.Scan(&name, &amount, &unit); err != nil {
			return fmt.Errorf("failed to scan shopping entry: %w", err)
		}
		f.AddShoppingListItem(name, amount, unit)
	}
	return rows.Err()
}
