package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mealcraft/mealcraft/internal/cli"
	"github.com/mealcraft/mealcraft/internal/common"
	"github.com/mealcraft/mealcraft/internal/fridge"
	"github.com/mealcraft/mealcraft/internal/model"
	"github.com/mealcraft/mealcraft/internal/recipetext"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "Manage the recipe book",
		Long:  `Import recipe text files and inspect which recipes the current fridge can cook.`,
	}

	cmd.AddCommand(importRecipesCmd())
	cmd.AddCommand(listRecipesCmd())
	cmd.AddCommand(showRecipeCmd())
	cmd.AddCommand(suggestRecipeCmd())

	return cmd
}

func importRecipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file|directory>...",
		Short: "Import recipe text files",
		Long: `Import recipes from text files. A recipe file holds an optional title line,
a "Steps:" section of numbered lines, and an "Ingredients:" section of lines
like "Eggs <3 count>". Directories are scanned for *.txt files.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectRecipeFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return common.ErrNoRecipes
			}

			parser := recipetext.NewParser()
			ctx := cmd.Context()

			bar := progressbar.NewOptions(len(files),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing recipes..."))

			var imported int
			err = withFridge(ctx, true, func(f *fridge.Fridge) error {
				for _, path := range files {
					recipe, parseErr := parseRecipeFile(ctx, parser, path)
					_ = bar.Add(1)
					if parseErr != nil {
						slog.Error("Failed to parse recipe file",
							"file", filepath.Base(path),
							"error", parseErr)
						continue
					}
					f.AddRecipe(recipe)
					imported++
				}
				return nil
			})
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d of %d recipe files", imported, len(files))))
			return nil
		},
	}

	return cmd
}

// collectRecipeFiles expands the arguments into a flat list of text files.
func collectRecipeFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.txt"))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for %s: %w", arg, err)
		}
		if len(matches) == 0 {
			slog.Warn("No recipe files found in directory", "dir", arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func parseRecipeFile(ctx context.Context, parser *recipetext.Parser, path string) (*model.Recipe, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe file: %w", err)
	}
	defer func() { _ = file.Close() }()

	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return parser.ParseNamed(ctx, fallback, file)
}

func listRecipesCmd() *cobra.Command {
	var cookableOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Long:  `List the recipe book with cookability, total shortage, and ingredient urgency per recipe.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				recipes := f.Recipes()
				if cookableOnly {
					recipes = f.CookableRecipes()
				}
				if len(recipes) == 0 {
					fmt.Println(cli.FormatInfo("No recipes to show. Use 'mealcraft recipes import' to add some."))
					return nil
				}

				now := time.Now()
				for _, r := range recipes {
					mark := cli.FormatError("missing " + formatQuantity(r.MissingQuantity(f)))
					if r.CanCook(f) {
						mark = cli.FormatSuccess("cookable")
					}
					fmt.Printf("%s  %s  %s\n",
						r.Name, mark,
						cli.SubtleStyle.Render("first ingredient expires in "+formatDays(r.EarliestExpirationDays(f, now))))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&cookableOnly, "cookable", false, "only recipes the fridge can cook right now")

	return cmd
}

func showRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a recipe with per-ingredient availability",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				recipe := f.Recipe(args[0])
				if recipe == nil {
					fmt.Println(cli.FormatInfo(fmt.Sprintf("No recipe named %q in the book.", args[0])))
					return nil
				}

				fmt.Println(cli.FormatTitle(recipe.Name))
				fmt.Println(cli.HeaderStyle.Render("Ingredients"))
				for _, line := range recipe.Ingredients {
					mark := cli.ErrorIcon
					item := f.FoodItem(line.NormalizedName)
					if item != nil && item.Quantity >= line.Amount {
						mark = cli.SuccessIcon
					}
					fmt.Printf("  %s %s %s %s\n", mark, formatQuantity(line.Amount), line.Unit, line.Name)
				}
				fmt.Println(cli.HeaderStyle.Render("Steps"))
				for i, step := range recipe.Steps {
					fmt.Printf("  %d. %s\n", i+1, step)
				}
				return nil
			})
		},
	}
}

func suggestRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest what to cook",
		Long:  `Show cookable recipes first, then the closest-to-cookable recipe and what it is missing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withFridge(cmd.Context(), false, func(f *fridge.Fridge) error {
				cookable := f.CookableRecipes()
				for _, r := range cookable {
					fmt.Println(cli.FormatSuccess("You can cook " + r.Name))
				}

				if next := f.SuggestRecipe(); next != nil {
					fmt.Println(cli.FormatInfo(fmt.Sprintf("Almost there: %s (short by %s)",
						next.Name, formatQuantity(next.MissingQuantity(f)))))
				} else if len(cookable) == 0 {
					fmt.Println(cli.FormatInfo("The recipe book is empty."))
				}
				return nil
			})
		},
	}
}
