package types

// RegisterRequest represents the request body for account signup
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest represents the request body for a password change
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

// UpdateProfileRequest represents the request body for profile updates.
// Nil pointers leave the field untouched.
type UpdateProfileRequest struct {
	Username  string  `json:"username"`
	FullName  *string `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
}

// CreateRecipeRequest represents the JSON request body for creating a
// recipe. Clients still posting the indexed form-field convention use the
// /recipes/form endpoint instead.
type CreateRecipeRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Category    string              `json:"category" binding:"required"`
	Ingredients []IngredientPayload `json:"ingredients"`
	Steps       []string            `json:"steps"`
	ImageURL    string              `json:"image_url"`
	PrepTime    *int                `json:"prep_time"`
	CookTime    *int                `json:"cook_time"`
	Servings    *int                `json:"servings"`
	Difficulty  string              `json:"difficulty"`
}

// IngredientPayload is one ingredient line in a JSON submission
type IngredientPayload struct {
	Name   string `json:"name" binding:"required"`
	Amount string `json:"amount" binding:"required"`
	Unit   string `json:"unit"`
}
