// Package repository provides the data access layer for the menu service.
package repository

import (
	"context"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// RecipeRepository abstracts recipe catalog storage. The scaling and
// aggregation logic never touches storage directly; it operates on plain
// Recipe values returned from here.
//
// Absence is not an error: GetRecipe returns (nil, nil) for an unknown id and
// Delete returns (false, nil).
type RecipeRepository interface {
	GetRecipe(ctx context.Context, id string) (*model.Recipe, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
	Upsert(ctx context.Context, recipe model.Recipe) error
	Delete(ctx context.Context, id string) (bool, error)
}

// CountRepository abstracts count-session storage for report generation.
type CountRepository interface {
	GetSession(ctx context.Context, id string) (*model.CountSession, error)
	ListLines(ctx context.Context, sessionID string) ([]model.CountLine, error)
	ListInvoices(ctx context.Context, sessionID string) ([]model.Invoice, error)
	ListExceptions(ctx context.Context, sessionID string) ([]model.MappingException, error)
}
