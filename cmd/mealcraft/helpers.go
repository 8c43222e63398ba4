package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mealcraft/mealcraft/internal/config"
	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/mealcraft/mealcraft/internal/model"
	"github.com/mealcraft/mealcraft/internal/service"
	"github.com/mealcraft/mealcraft/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/mealcraft/fridge.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// withFridge loads the persisted fridge, runs fn against it, and saves the
// snapshot back when save is true and fn succeeded.
func withFridge(ctx context.Context, save bool, fn func(f *fridge.Fridge) error) error {
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	f, err := store.LoadFridge(ctx)
	if err != nil {
		return fmt.Errorf("failed to load fridge: %w", err)
	}

	if err := fn(f); err != nil {
		return err
	}

	if save {
		if err := store.SaveFridge(ctx, f); err != nil {
			return fmt.Errorf("failed to save fridge: %w", err)
		}
	}
	return nil
}

// parseExpirationDate accepts either an absolute YYYY-MM-DD date or a
// relative "+N" day offset from today.
func parseExpirationDate(s string) (time.Time, error) {
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		days, err := strconv.Atoi(rest)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day offset %q: %w", s, err)
		}
		return time.Now().AddDate(0, 0, days), nil
	}
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid expiration date %q (expected YYYY-MM-DD or +N): %w", s, err)
	}
	return date, nil
}

// formatQuantity prints a quantity without trailing zeros.
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// formatDays renders a days-until-expiration count, including the NoUrgency
// sentinel.
func formatDays(days int) string {
	switch {
	case days == model.NoUrgency:
		return "—"
	case days < 0:
		return fmt.Sprintf("expired %dd ago", -days)
	case days == 0:
		return "today"
	default:
		return fmt.Sprintf("%dd", days)
	}
}
