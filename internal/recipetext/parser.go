// Package recipetext reads the plain-text recipe format: an optional title
// line, a "Steps:" section of numbered lines, and an "Ingredients:" section
// of lines shaped like `Name <amount unit>`. The core never touches files;
// callers open a reader and hand it to the parser.
package recipetext

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/mealcraft/mealcraft/internal/model"
)

var (
	stepNumberRe = regexp.MustCompile(`^\d+[.)]\s*`)
	// `Name <amount unit>` with the unit optional, e.g. `Eggs <3 count>`
	// or `Salt <0.5>`.
	ingredientRe = regexp.MustCompile(`^(.+?)\s*<\s*([0-9]+(?:\.[0-9]+)?)\s*([^<>]*?)\s*>$`)
)

// Parser implements recipe text file parsing.
type Parser struct{}

// NewParser creates a new recipe text parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses one recipe from reader. The recipe name comes from the
// title line when present and is otherwise empty; use ParseNamed to supply a
// fallback (the CLI passes the file name).
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) (*model.Recipe, error) {
	const (
		sectionNone = iota
		sectionSteps
		sectionIngredients
	)

	var (
		name        string
		imagePath   string
		steps       []string
		ingredients []*model.IngredientLine
		section     = sectionNone
		lineNo      int
	)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.EqualFold(line, "Steps:"):
			section = sectionSteps
			continue
		case strings.EqualFold(line, "Ingredients:"):
			section = sectionIngredients
			continue
		}

		if img, ok := strings.CutPrefix(line, "Image:"); ok {
			imagePath = strings.TrimSpace(img)
			continue
		}

		switch section {
		case sectionNone:
			if name != "" {
				return nil, fmt.Errorf("line %d: unexpected text %q before Steps: section", lineNo, line)
			}
			name = line
		case sectionSteps:
			steps = append(steps, stepNumberRe.ReplaceAllString(line, ""))
		case sectionIngredients:
			ing, err := parseIngredientLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ingredients = append(ingredients, ing)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipe text: %w", err)
	}

	if len(ingredients) == 0 {
		return nil, fmt.Errorf("recipe has no Ingredients: section")
	}

	slog.Debug("Parsed recipe text",
		"name", name,
		"steps", len(steps),
		"ingredients", len(ingredients))

	return model.NewRecipe(name, steps, ingredients, imagePath), nil
}

// ParseNamed parses a recipe and fills in fallbackName when the text carries
// no title line of its own.
func (p *Parser) ParseNamed(ctx context.Context, fallbackName string, reader io.Reader) (*model.Recipe, error) {
	recipe, err := p.ParseFile(ctx, reader)
	if err != nil {
		return nil, err
	}
	if recipe.Name == "" {
		recipe.Name = fallbackName
	}
	return recipe, nil
}

func parseIngredientLine(line string) (*model.IngredientLine, error) {
	m := ingredientRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("malformed ingredient line %q (expected `Name <amount unit>`)", line)
	}
	amount, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid amount in ingredient line %q: %w", line, err)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("ingredient line %q has non-positive amount", line)
	}
	return model.NewIngredientLine(m[1], amount, m[3]), nil
}
