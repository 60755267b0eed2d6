// Package dto defines Data Transfer Objects for HTTP request and response
// handling, decoupling the HTTP layer from the domain model.
package dto

import (
	"strconv"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidHeadcount is returned when headcount is outside 1-10000.
	ErrInvalidHeadcount = &ValidationError{
		Field:   "headcount",
		Message: "must be between 1 and 10000",
	}
	// ErrInvalidWeek is returned when the week number is outside 1-4.
	ErrInvalidWeek = &ValidationError{
		Field:   "week",
		Message: "must be between 1 and 4",
	}
	// ErrMissingRecipeName is returned when a recipe is created without a name.
	ErrMissingRecipeName = &ValidationError{
		Field:   "name",
		Message: "must not be empty",
	}
)

// SetHeadcountRequest is the body of POST /api/menu/headcount.
type SetHeadcountRequest struct {
	// Headcount is the number of people to scale menu quantities for.
	Headcount int `json:"headcount" binding:"required"`
}

// Validate performs custom validation on the request.
func (r *SetHeadcountRequest) Validate() error {
	if r.Headcount < 1 || r.Headcount > 10000 {
		return ErrInvalidHeadcount
	}
	return nil
}

// CreateRecipeRequest is the body of POST /api/menu/recipes.
type CreateRecipeRequest struct {
	ID           string              `json:"id,omitempty"`
	Name         string              `json:"name" binding:"required"`
	Cuisine      string              `json:"cuisine,omitempty"`
	Allergens    []string            `json:"allergens,omitempty"`
	BasePortions []model.BasePortion `json:"base_portions"`
	Notes        string              `json:"notes,omitempty"`
}

// Validate performs custom validation on the request.
func (r *CreateRecipeRequest) Validate() error {
	if r.Name == "" {
		return ErrMissingRecipeName
	}
	return nil
}

// ToModel converts the request to a domain recipe.
func (r *CreateRecipeRequest) ToModel() model.Recipe {
	return model.Recipe{
		ID:           r.ID,
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Allergens:    r.Allergens,
		BasePortions: r.BasePortions,
		Notes:        r.Notes,
	}
}

// UpdateRecipeRequest is the body of PUT /api/menu/recipes/:id. Absent fields
// are left untouched.
type UpdateRecipeRequest struct {
	Name         *string              `json:"name,omitempty"`
	Cuisine      *string              `json:"cuisine,omitempty"`
	Allergens    *[]string            `json:"allergens,omitempty"`
	BasePortions *[]model.BasePortion `json:"base_portions,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
}

// ToModel converts the request to a domain recipe update.
func (r *UpdateRecipeRequest) ToModel() model.RecipeUpdate {
	return model.RecipeUpdate{
		Name:         r.Name,
		Cuisine:      r.Cuisine,
		Allergens:    r.Allergens,
		BasePortions: r.BasePortions,
		Notes:        r.Notes,
	}
}

// SetDayRecipesRequest is the body of POST /api/menu/day/:date/recipes.
// Recipe ids are stored as given; unresolvable ids are dropped at lookup.
type SetDayRecipesRequest struct {
	RecipeIDs []string `json:"recipe_ids" binding:"required"`
}

// ParseWeek parses and validates a week number query parameter.
func ParseWeek(raw string) (int, error) {
	week, err := strconv.Atoi(raw)
	if err != nil || week < 1 || week > 4 {
		return 0, ErrInvalidWeek
	}
	return week, nil
}
