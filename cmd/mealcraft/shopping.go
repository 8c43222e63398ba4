package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/mealcraft/mealcraft/internal/cli"
	"github.com/mealcraft/mealcraft/internal/export"
	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/mealcraft/mealcraft/internal/model"
	"github.com/spf13/cobra"
)

func shoppingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopping",
		Short: "Manage the shopping list",
		Long:  `Generate the shopping list from low-stock items, adjust it by hand, and export it.`,
	}

	cmd.AddCommand(generateShoppingCmd())
	cmd.AddCommand(addShoppingCmd())
	cmd.AddCommand(removeShoppingCmd())
	cmd.AddCommand(listShoppingCmd())
	cmd.AddCommand(exportShoppingCmd())

	return cmd
}

func generateShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the list from low-stock items",
		Long: `Discard the current shopping list and rebuild it from the low-stock rule.
Manually added entries do not survive; re-add them afterwards if needed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				f.GenerateShoppingList()
				items := f.ShoppingListItems()
				if len(items) == 0 {
					fmt.Println(cli.FormatInfo("Nothing is low on stock; the shopping list is empty."))
					return nil
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Shopping list regenerated with %d entries", len(items))))
				printShoppingTable(items)
				return nil
			})
		},
	}
}

func addShoppingCmd() *cobra.Command {
	var (
		amount float64
		unit   string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an amount of an ingredient to the list",
		Long: `Add an amount of an ingredient to the shopping list. Amounts for an existing
entry accumulate; the entry keeps the unit it was first added with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				if !f.AddShoppingListItem(args[0], amount, unit) {
					fmt.Println(cli.FormatError("nothing added: name must not be blank and amount must be positive"))
					return nil
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s %s of %q on the list", formatQuantity(amount), unit, args[0])))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to add (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "unit label (kept from the first add)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func removeShoppingCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an amount of an ingredient from the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				f.RemoveShoppingListItem(args[0], amount)
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("removed %s of %q from the list", formatQuantity(amount), args[0])))
				return nil
			})
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to remove (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func listShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the shopping list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				items := f.ShoppingListItems()
				if len(items) == 0 {
					fmt.Println(cli.FormatInfo("The shopping list is empty. Use 'mealcraft shopping generate' or 'add'."))
					return nil
				}
				printShoppingTable(items)
				return nil
			})
		},
	}
}

func exportShoppingCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the shopping list as plain text",
		Long:  `Write the shopping list to a text file (or stdout), one name/amount/unit line per entry.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				items := sortedShopping(f.ShoppingListItems())
				if output == "" {
					return export.WriteShoppingList(os.Stdout, items)
				}
				if err := export.ExportFile(output, items); err != nil {
					return err
				}
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d entries to %s", len(items), output)))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// sortedShopping imposes the display order; the core hands the snapshot out
// unordered.
func sortedShopping(items []*model.IngredientLine) []*model.IngredientLine {
	sort.Slice(items, func(i, j int) bool {
		return items[i].NormalizedName < items[j].NormalizedName
	})
	return items
}

func printShoppingTable(items []*model.IngredientLine) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Name"),
		cli.HeaderStyle.Render("Amount"),
		cli.HeaderStyle.Render("Unit"))

	for _, line := range sortedShopping(items) {
		fmt.Fprintf(w, "%s\t%s\t%s\n", line.Name, formatQuantity(line.Amount), line.Unit)
	}
}
