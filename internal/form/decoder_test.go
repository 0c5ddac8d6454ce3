package form

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/backend/internal/models"
)

func TestDecodeRecipeMinimal(t *testing.T) {
	recipe, err := DecodeRecipe(url.Values{
		"title":    {"Tea"},
		"category": {"beverages"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tea", recipe.Title)
	assert.Equal(t, models.CategoryBeverages, recipe.Category)
	assert.Empty(t, recipe.Ingredients)
	assert.Empty(t, recipe.Steps)
	assert.Nil(t, recipe.PrepTime)
	assert.Nil(t, recipe.CookTime)
	assert.Nil(t, recipe.Servings)
}

func TestDecodeRecipeMissingRequired(t *testing.T) {
	cases := map[string]url.Values{
		"no title":    {"category": {"desserts"}},
		"no category": {"title": {"Cake"}},
		"empty bag":   {},
	}

	for name, values := range cases {
		t.Run(name, func(t *testing.T) {
			recipe, err := DecodeRecipe(values)
			assert.ErrorIs(t, err, ErrMissingRequired)
			assert.Nil(t, recipe)
		})
	}
}

func TestDecodeRecipeInvalidCategory(t *testing.T) {
	recipe, err := DecodeRecipe(url.Values{
		"title":    {"Mystery Dish"},
		"category": {"midnight-snacks"},
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Nil(t, recipe)
}

func TestDecodeRecipeIngredientFiltering(t *testing.T) {
	// Slot 1 has no amount; it is dropped while 0 and 2 keep their order.
	recipe, err := DecodeRecipe(url.Values{
		"title":               {"Salad"},
		"category":            {"salads"},
		"ingredientCount":     {"3"},
		"ingredient_0_name":   {"Lettuce"},
		"ingredient_0_amount": {"1"},
		"ingredient_0_unit":   {"head"},
		"ingredient_1_name":   {"Tomato"},
		"ingredient_2_name":   {"Olive oil"},
		"ingredient_2_amount": {"2"},
		"ingredient_2_unit":   {"tbsp"},
	})
	require.NoError(t, err)

	require.Len(t, recipe.Ingredients, 2)
	assert.Equal(t, models.Ingredient{Name: "Lettuce", Amount: "1", Unit: "head"}, recipe.Ingredients[0])
	assert.Equal(t, models.Ingredient{Name: "Olive oil", Amount: "2", Unit: "tbsp"}, recipe.Ingredients[1])
}

func TestDecodeRecipeEmptyUnitKept(t *testing.T) {
	recipe, err := DecodeRecipe(url.Values{
		"title":               {"Toast"},
		"category":            {"breakfast"},
		"ingredientCount":     {"1"},
		"ingredient_0_name":   {"Bread"},
		"ingredient_0_amount": {"2"},
	})
	require.NoError(t, err)

	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, "", recipe.Ingredients[0].Unit)
}

func TestDecodeRecipeStepNumbering(t *testing.T) {
	// The retained step submitted in slot 2 keeps step number 3; numbers
	// are never re-densified after a skipped slot.
	recipe, err := DecodeRecipe(url.Values{
		"title":     {"Soup"},
		"category":  {"soups"},
		"stepCount": {"3"},
		"step_0":    {"Chop the vegetables"},
		"step_1":    {""},
		"step_2":    {"Simmer for an hour"},
	})
	require.NoError(t, err)

	require.Len(t, recipe.Steps, 2)
	assert.Equal(t, models.RecipeStep{StepNumber: 1, Instruction: "Chop the vegetables"}, recipe.Steps[0])
	assert.Equal(t, models.RecipeStep{StepNumber: 3, Instruction: "Simmer for an hour"}, recipe.Steps[1])
}

func TestDecodeRecipeCountFailsOpen(t *testing.T) {
	cases := map[string]string{
		"garbage":  "banana",
		"negative": "-2",
		"empty":    "",
	}

	for name, count := range cases {
		t.Run(name, func(t *testing.T) {
			recipe, err := DecodeRecipe(url.Values{
				"title":               {"Snack"},
				"category":            {"snacks"},
				"ingredientCount":     {count},
				"stepCount":           {count},
				"ingredient_0_name":   {"Peanuts"},
				"ingredient_0_amount": {"1"},
				"step_0":              {"Open the jar"},
			})
			require.NoError(t, err)
			assert.Empty(t, recipe.Ingredients)
			assert.Empty(t, recipe.Steps)
		})
	}
}

func TestDecodeRecipeCountPrefixParsed(t *testing.T) {
	// Counts with trailing junk keep their integer prefix: "2abc" still
	// announces two slots.
	recipe, err := DecodeRecipe(url.Values{
		"title":               {"Snack"},
		"category":            {"snacks"},
		"ingredientCount":     {"2abc"},
		"ingredient_0_name":   {"Peanuts"},
		"ingredient_0_amount": {"1"},
		"ingredient_1_name":   {"Raisins"},
		"ingredient_1_amount": {"1"},
		"stepCount":           {"1 step"},
		"step_0":              {"Mix"},
	})
	require.NoError(t, err)

	assert.Len(t, recipe.Ingredients, 2)
	assert.Len(t, recipe.Steps, 1)
}

func TestDecodeRecipeOptionalNumbers(t *testing.T) {
	recipe, err := DecodeRecipe(url.Values{
		"title":    {"Stew"},
		"category": {"main-courses"},
		"prepTime": {"15"},
		"cookTime": {"ninety"},
		"servings": {"4 people"},
	})
	require.NoError(t, err)

	require.NotNil(t, recipe.PrepTime)
	assert.Equal(t, 15, *recipe.PrepTime)
	assert.Nil(t, recipe.CookTime)
	require.NotNil(t, recipe.Servings)
	assert.Equal(t, 4, *recipe.Servings)
}

func TestDecodeRecipeExampleSubmission(t *testing.T) {
	recipe, err := DecodeRecipe(url.Values{
		"title":               {"Tea"},
		"category":            {"beverages"},
		"ingredientCount":     {"2"},
		"ingredient_0_name":   {"Water"},
		"ingredient_0_amount": {"1"},
		"ingredient_0_unit":   {"cup"},
		"ingredient_1_name":   {""},
		"ingredient_1_amount": {"1"},
		"stepCount":           {"1"},
		"step_0":              {"Boil water"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.IngredientList{
		{Name: "Water", Amount: "1", Unit: "cup"},
	}, recipe.Ingredients)
	assert.Equal(t, models.StepList{
		{StepNumber: 1, Instruction: "Boil water"},
	}, recipe.Steps)
}

func TestDecodeRecipePassthroughFields(t *testing.T) {
	recipe, err := DecodeRecipe(url.Values{
		"title":       {"Brownies"},
		"category":    {"desserts"},
		"description": {"Very fudgy."},
		"imageUrl":    {"https://example.com/brownies.jpg"},
		"difficulty":  {"medium"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Very fudgy.", recipe.Description)
	assert.Equal(t, "https://example.com/brownies.jpg", recipe.ImageURL)
	assert.Equal(t, "medium", recipe.Difficulty)
}
