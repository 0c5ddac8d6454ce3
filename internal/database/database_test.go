package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeshare/backend/internal/models"
	"github.com/recipeshare/backend/internal/testhelpers"
)

// Exercises the jsonb columns and soft delete against real PostgreSQL,
// which the in-memory sqlite used by unit tests cannot cover.
func TestPostgresRecipeRoundTrip(t *testing.T) {
	testhelpers.SkipUnlessIntegration(t)
	db := testhelpers.SetupPostgres(t)

	user := models.User{Name: "Test User", Email: "test@example.com", PasswordHash: "hashed"}
	require.NoError(t, db.Create(&user).Error)

	recipe := models.Recipe{
		UserID:   user.ID,
		Title:    "Tea",
		Category: models.CategoryBeverages,
		Ingredients: models.IngredientList{
			{Name: "Water", Amount: "1", Unit: "cup"},
		},
		Steps: models.StepList{
			{StepNumber: 1, Instruction: "Boil water"},
		},
	}
	require.NoError(t, db.Create(&recipe).Error)

	var got models.Recipe
	require.NoError(t, db.First(&got, "id = ?", recipe.ID).Error)
	assert.Equal(t, recipe.Ingredients, got.Ingredients)
	assert.Equal(t, recipe.Steps, got.Steps)

	require.NoError(t, db.Delete(&got).Error)
	err := db.First(&models.Recipe{}, "id = ?", recipe.ID).Error
	assert.Error(t, err)
}
