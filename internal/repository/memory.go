package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// MemoryRecipeRepository is the default, in-process recipe store. It is safe
// for concurrent use.
type MemoryRecipeRepository struct {
	mu      sync.RWMutex
	recipes map[string]model.Recipe
}

// NewMemoryRecipeRepository creates an empty in-memory recipe repository.
func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{
		recipes: make(map[string]model.Recipe),
	}
}

// GetRecipe returns the recipe with the given id, or (nil, nil) if absent.
func (r *MemoryRecipeRepository) GetRecipe(_ context.Context, id string) (*model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.recipes[id]
	if !ok {
		return nil, nil
	}
	return &recipe, nil
}

// ListRecipes returns all recipes ordered by id.
func (r *MemoryRecipeRepository) ListRecipes(_ context.Context) ([]model.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.recipes))
	for id := range r.recipes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	recipes := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		recipes = append(recipes, r.recipes[id])
	}
	return recipes, nil
}

// Upsert stores the recipe, replacing any existing entry with the same id.
func (r *MemoryRecipeRepository) Upsert(_ context.Context, recipe model.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.recipes[recipe.ID] = recipe
	return nil
}

// Delete removes the recipe with the given id and reports whether it existed.
func (r *MemoryRecipeRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return false, nil
	}
	delete(r.recipes, id)
	return true, nil
}
