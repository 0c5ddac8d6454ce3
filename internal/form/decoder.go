package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/recipeshare/backend/internal/models"
)

var (
	ErrMissingRequired = errors.New("title and category are required")
	ErrInvalidCategory = errors.New("invalid category selected")
)

// DecodeRecipe turns a flat submission bag into an unpersisted recipe.
//
// Variable-length lists arrive as indexed fields: ingredientCount and
// stepCount announce how many slots were rendered, and each slot i submits
// ingredient_{i}_name / ingredient_{i}_amount / ingredient_{i}_unit and
// step_{i}. A malformed or absent count means zero slots, not an error.
// Incomplete slots are skipped without re-indexing the survivors, so a
// retained step keeps the number of the slot it was typed into.
//
// The caller supplies the owner id; DecodeRecipe never touches the store.
func DecodeRecipe(values url.Values) (*models.Recipe, error) {
	title := values.Get("title")
	category := values.Get("category")

	if title == "" || category == "" {
		return nil, ErrMissingRequired
	}
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	ingredients := models.IngredientList{}
	for i := 0; i < count(values, "ingredientCount"); i++ {
		name := values.Get(fmt.Sprintf("ingredient_%d_name", i))
		amount := values.Get(fmt.Sprintf("ingredient_%d_amount", i))
		unit := values.Get(fmt.Sprintf("ingredient_%d_unit", i))

		if name != "" && amount != "" {
			ingredients = append(ingredients, models.Ingredient{
				Name:   name,
				Amount: amount,
				Unit:   unit,
			})
		}
	}

	steps := models.StepList{}
	for i := 0; i < count(values, "stepCount"); i++ {
		instruction := values.Get(fmt.Sprintf("step_%d", i))

		if instruction != "" {
			steps = append(steps, models.RecipeStep{
				StepNumber:  i + 1,
				Instruction: instruction,
			})
		}
	}

	return &models.Recipe{
		Title:       title,
		Description: values.Get("description"),
		Category:    category,
		Ingredients: ingredients,
		Steps:       steps,
		ImageURL:    values.Get("imageUrl"),
		PrepTime:    optionalInt(values, "prepTime"),
		CookTime:    optionalInt(values, "cookTime"),
		Servings:    optionalInt(values, "servings"),
		Difficulty:  values.Get("difficulty"),
	}, nil
}

// count reads a slot-count field, failing open to 0. Only the integer
// prefix of the value counts ("3abc" is three slots); a missing,
// negative, or non-numeric value means zero slots, never an error.
func count(values url.Values, key string) int {
	n, ok := leadingInt(values.Get(key))
	if !ok || n < 0 {
		return 0
	}
	return n
}

// optionalInt reads an optional numeric field; anything without an
// integer prefix is treated as unset rather than rejected.
func optionalInt(values url.Values, key string) *int {
	raw := values.Get(key)
	if raw == "" {
		return nil
	}
	n, ok := leadingInt(raw)
	if !ok {
		return nil
	}
	return &n
}

// leadingInt parses the integer prefix of raw, ignoring anything after
// the digits.
func leadingInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
