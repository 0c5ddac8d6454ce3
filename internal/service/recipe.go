package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/recipeshare/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNotRecipeOwner = errors.New("you can only delete your own recipes")
)

// RecipeWithAuthor pairs a recipe with its author's profile for read paths.
// Author is nil when the owner has no profile row.
type RecipeWithAuthor struct {
	models.Recipe
	Author *models.Profile `json:"author"`
}

// RecipeService mediates all reads and writes against the recipes table.
// The store has no cross-table join, so author enrichment is two fetches
// and an in-memory merge.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create persists a draft in a single attempt and returns the stored row.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// ListAll returns every recipe, newest first, with authors attached.
func (s *RecipeService) ListAll(ctx context.Context) ([]RecipeWithAuthor, error) {
	return s.listEnriched(ctx, s.db.WithContext(ctx))
}

// ListByCategory returns recipes in one category, newest first, with
// authors attached.
func (s *RecipeService) ListByCategory(ctx context.Context, category string) ([]RecipeWithAuthor, error) {
	return s.listEnriched(ctx, s.db.WithContext(ctx).Where("category = ?", category))
}

func (s *RecipeService) listEnriched(ctx context.Context, query *gorm.DB) ([]RecipeWithAuthor, error) {
	var recipes []models.Recipe
	if err := query.Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}

	// Nothing to enrich; skip the profile round trip.
	if len(recipes) == 0 {
		return []RecipeWithAuthor{}, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(recipes))
	userIDs := make([]uuid.UUID, 0, len(recipes))
	for _, r := range recipes {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		userIDs = append(userIDs, r.UserID)
	}

	var profiles []models.Profile
	if err := s.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}

	return JoinAuthors(recipes, profiles), nil
}

// JoinAuthors performs the left join of recipes onto already-fetched
// profiles. Recipes whose owner has no profile keep a nil Author.
func JoinAuthors(recipes []models.Recipe, profiles []models.Profile) []RecipeWithAuthor {
	byUser := make(map[uuid.UUID]*models.Profile, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}

	result := make([]RecipeWithAuthor, len(recipes))
	for i, r := range recipes {
		result[i] = RecipeWithAuthor{Recipe: r, Author: byUser[r.UserID]}
	}
	return result
}

// GetByID fetches one recipe with its author. A missing recipe is
// ErrRecipeNotFound; a missing author profile is not an error.
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*RecipeWithAuthor, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	var profile models.Profile
	err := s.db.WithContext(ctx).Where("user_id = ?", recipe.UserID).First(&profile).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return &RecipeWithAuthor{Recipe: recipe}, nil
	}

	return &RecipeWithAuthor{Recipe: recipe, Author: &profile}, nil
}

// ListByOwner returns one user's recipes, newest first. No author join;
// the caller already knows whose recipes these are.
func (s *RecipeService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// CountByOwner returns how many recipes a user has.
func (s *RecipeService) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a recipe after checking ownership. The store cannot
// condition the delete on the owner, so this is two round trips: fetch the
// owner, then delete. A racing ownership change is an accepted risk.
func (s *RecipeService) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Select("id", "user_id").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID != requesterID {
		return ErrNotRecipeOwner
	}

	return s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id).Error
}

// SetImageURL records the stored location of a recipe's photo, owner only.
func (s *RecipeService) SetImageURL(ctx context.Context, id, requesterID uuid.UUID, imageURL string) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Select("id", "user_id").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID != requesterID {
		return ErrNotRecipeOwner
	}

	return s.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}
