package main

import (
	"fmt"

	"github.com/mealcraft/mealcraft/internal/cli"
	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var starter bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the fridge database",
		Long:  `Create the fridge database and optionally seed it with a few staples.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), true, func(f *fridge.Fridge) error {
				if starter {
					fridge.LoadStarterData(f)
					fmt.Println(cli.FormatSuccess("Fridge initialized with starter items (milk, eggs, apples)"))
					return nil
				}
				fmt.Println(cli.FormatSuccess("Fridge initialized"))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&starter, "starter", false, "seed a few staple items")

	return cmd
}
