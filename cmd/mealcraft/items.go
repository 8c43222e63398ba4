package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mealcraft/mealcraft/internal/cli"
	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/mealcraft/mealcraft/internal/model"
	"github.com/spf13/cobra"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Manage fridge inventory",
		Long:  `Add, remove, and inspect the food items stored in the fridge.`,
	}

	cmd.AddCommand(addItemCmd())
	cmd.AddCommand(removeItemCmd())
	cmd.AddCommand(listItemsCmd())
	cmd.AddCommand(showItemCmd())
	cmd.AddCommand(setExpirationCmd())

	return cmd
}

// addItemInput is the parsed add-item dialog. It is validated here, before
// the core ever sees it; the fridge itself only receives clean values.
type addItemInput struct {
	Name     string  `validate:"required"`
	Unit     string  `validate:"required"`
	Category string  `validate:"required"`
	Expires  string  `validate:"required"`
	Quantity float64 `validate:"gt=0"`
}

func addItemCmd() *cobra.Command {
	var input addItemInput
	var imagePath string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a food item",
		Long: `Add a food item to the fridge. Adding a name that already exists merges
the quantities; the existing item keeps its category, expiration, and image.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validator.New().Struct(input); err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			category, err := model.ParseCategory(input.Category)
			if err != nil {
				return err
			}
			expires, err := parseExpirationDate(input.Expires)
			if err != nil {
				return err
			}

			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				f.AddFood(model.NewFoodItem(input.Name, input.Quantity, input.Unit, category, expires, imagePath))
				item := f.FoodItem(input.Name)
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s: %s %s in the fridge",
					item.Name, formatQuantity(item.Quantity), item.Unit)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&input.Name, "name", "", "item name (required)")
	cmd.Flags().Float64Var(&input.Quantity, "quantity", 0, "quantity to add (required)")
	cmd.Flags().StringVar(&input.Unit, "unit", "", "unit label, e.g. carton, count (required)")
	cmd.Flags().StringVar(&input.Category, "category", "", "category: dairy-eggs, fruits-vegetables, proteins, other (required)")
	cmd.Flags().StringVar(&input.Expires, "expires", "", "expiration date (YYYY-MM-DD or +N days, required)")
	cmd.Flags().StringVar(&imagePath, "image", "", "image file reference")

	return cmd
}

func removeItemCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove some amount of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				if !f.RemoveFood(name, amount) {
					fmt.Println(cli.FormatError(fmt.Sprintf("could not remove %s of %q: not in the fridge, or not enough of it",
						formatQuantity(amount), name)))
					return nil
				}
				if item := f.FoodItem(name); item != nil {
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s: %s %s left",
						item.Name, formatQuantity(item.Quantity), item.Unit)))
				} else {
					fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q used up and removed", name)))
				}
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to remove (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listItemsCmd() *cobra.Command {
	var (
		byExpiration bool
		lowStock     bool
		expiringDays int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fridge contents",
		Long:  `List all food items, alphabetically or by expiration date, optionally filtered to low-stock or soon-expiring items.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				var items []*model.FoodItem
				switch {
				case cmd.Flags().Changed("expiring"):
					items = f.ItemsExpiringWithin(expiringDays)
				case lowStock:
					items = f.LowStockItems()
				case byExpiration:
					items = f.ItemsSortedByExpiration()
				default:
					items = f.ItemsSortedByName()
				}

				if len(items) == 0 {
					fmt.Println(cli.FormatInfo("The fridge is empty. Use 'mealcraft items add' to stock it."))
					return nil
				}
				printItemTable(items)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&byExpiration, "by-expiration", false, "sort by expiration date (soonest first)")
	cmd.Flags().BoolVar(&lowStock, "low-stock", false, "only items at or below the low-stock threshold")
	cmd.Flags().IntVar(&expiringDays, "expiring", 0, "only items expiring within N days (expired items excluded)")

	return cmd
}

func printItemTable(items []*model.FoodItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	today := time.Now()
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Name"),
		cli.HeaderStyle.Render("Quantity"),
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Expires"),
		cli.HeaderStyle.Render("In"))

	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			item.Name,
			formatQuantity(item.Quantity), item.Unit,
			item.Category,
			item.ExpirationDate.Format("2006-01-02"),
			formatDays(item.DaysUntilExpiration(today)))
	}
}

func showItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one item in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				item := f.FoodItem(args[0])
				if item == nil {
					fmt.Println(cli.FormatInfo(fmt.Sprintf("No item named %q in the fridge.", args[0])))
					return nil
				}

				fmt.Println(cli.FormatTitle(item.Name))
				fmt.Printf("  Quantity: %s %s\n", formatQuantity(item.Quantity), item.Unit)
				fmt.Printf("  Category: %s\n", item.Category)
				fmt.Printf("  Expires:  %s (%s)\n",
					item.ExpirationDate.Format("2006-01-02"),
					formatDays(item.DaysUntilExpiration(time.Now())))
				if item.ImagePath != "" {
					fmt.Printf("  Image:    %s\n", item.ImagePath)
				}
				return nil
			})
		},
	}
}

func setExpirationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-expiration <name> <date>",
		Short: "Change an item's expiration date",
		Long:  `Change an item's expiration date (YYYY-MM-DD or +N days). The expiration index is rebuilt afterwards.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseExpirationDate(args[1])
			if err != nil {
				return err
			}
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				if !f.SetExpiration(args[0], date) {
					fmt.Println(cli.FormatError(fmt.Sprintf("no item named %q in the fridge", args[0])))
					return nil
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s now expires %s", args[0], date.Format("2006-01-02"))))
				return nil
			})
		},
	}
}
