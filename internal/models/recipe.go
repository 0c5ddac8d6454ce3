package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The eight categories a recipe can belong to. Submissions with any other
// value are rejected before reaching the store.
const (
	CategoryAppetizers  = "appetizers"
	CategoryMainCourses = "main-courses"
	CategoryDesserts    = "desserts"
	CategoryBeverages   = "beverages"
	CategorySalads      = "salads"
	CategorySoups       = "soups"
	CategoryBreakfast   = "breakfast"
	CategorySnacks      = "snacks"
)

// Categories lists every valid recipe category.
var Categories = []string{
	CategoryAppetizers,
	CategoryMainCourses,
	CategoryDesserts,
	CategoryBeverages,
	CategorySalads,
	CategorySoups,
	CategoryBreakfast,
	CategorySnacks,
}

// ValidCategory reports whether category is one of the fixed set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Ingredient keeps amount and unit as free text so fractions and ranges
// ("1/2", "2-3") survive round trips.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// RecipeStep carries the 1-based number of the slot it was submitted in.
type RecipeStep struct {
	StepNumber  int    `json:"step_number"`
	Instruction string `json:"instruction"`
}

// IngredientList is a custom type for storing ingredients as JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// StepList is a custom type for storing steps as JSONB
type StepList []RecipeStep

// Value implements the driver.Valuer interface
func (l StepList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StepList) Scan(value interface{}) error {
	if value == nil {
		*l = StepList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Category    string         `gorm:"size:50;not null" json:"category"`
	Ingredients IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       StepList       `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	PrepTime    *int           `json:"prep_time"`
	CookTime    *int           `json:"cook_time"`
	Servings    *int           `json:"servings"`
	Difficulty  string         `gorm:"size:20" json:"difficulty"`
}

// BeforeCreate assigns an ID so the schema works on databases without a
// server-side uuid generator (the SQLite test databases).
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
