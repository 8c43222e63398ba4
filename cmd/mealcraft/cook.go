package main

import (
	"fmt"

	"github.com/mealcraft/mealcraft/internal/cli"
	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/spf13/cobra"
)

func cookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cook <recipe>",
		Short: "Cook a recipe and consume its ingredients",
		Long: `Cook the named recipe. The required amounts are checked first; when anything
is short, nothing is consumed and the missing quantity is reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				name := args[0]
				recipe := f.Recipe(name)
				if recipe == nil {
					fmt.Println(cli.FormatError(fmt.Sprintf("no recipe named %q in the book", name)))
					return nil
				}
				if !f.Cook(name) {
					fmt.Println(cli.FormatError(fmt.Sprintf("cannot cook %s: short by %s across its ingredients",
						recipe.Name, formatQuantity(recipe.MissingQuantity(f)))))
					return nil
				}
				fmt.Println(cli.FormatSuccess(cli.CookIcon + " Cooked " + recipe.Name))
				return nil
			})
		},
	}
}
