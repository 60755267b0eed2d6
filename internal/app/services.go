// Package app provides service initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/guttosm/menu-service/internal/service"
)

// ServiceComponents holds business logic services.
type ServiceComponents struct {
	Quantizer    service.Quantizer
	Planner      service.Planner
	Menu         *service.MenuService
	ShoppingList *service.ShoppingListService
	CountReports *service.CountReportService
}

// InitializeServices wires the planning services over the configured
// repositories and seeds an empty catalog.
func InitializeServices(cfg config.MenuConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var plannerOpts []service.PlannerOption
	if cfg.CycleAnchor != "" {
		if anchor, err := time.Parse("2006-01-02", cfg.CycleAnchor); err == nil {
			plannerOpts = append(plannerOpts, service.WithAnchor(anchor))
		} else {
			log.Warn().Str("cycle_anchor", cfg.CycleAnchor).Msg("Invalid cycle anchor, using default")
		}
	}

	quantizer := service.NewQuantizerService()
	planner := service.NewPlannerService(plannerOpts...)

	var recipeRepo repository.RecipeRepository
	if dbComponents != nil {
		recipeRepo = dbComponents.RecipeRepo
	} else {
		recipeRepo = repository.NewMemoryRecipeRepository()
	}

	menu := service.NewMenuService(recipeRepo, quantizer, planner,
		service.WithDefaultHeadcount(cfg.DefaultHeadcount))

	ctx := context.Background()
	if err := seedDefaultRecipes(ctx, recipeRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed default recipes")
	}
	if cfg.AutoPopulate {
		if err := menu.AutoPopulateCycle(ctx, time.Now()); err != nil {
			log.Warn().Err(err).Msg("Failed to auto-populate cycle")
		}
	}

	return &ServiceComponents{
		Quantizer:    quantizer,
		Planner:      planner,
		Menu:         menu,
		ShoppingList: service.NewShoppingListService(menu, planner),
		CountReports: service.NewCountReportService(repository.NewMemoryCountRepository()),
	}
}

// seedDefaultRecipes loads the starter catalog when the repository is empty.
func seedDefaultRecipes(ctx context.Context, repo repository.RecipeRepository) error {
	existing, err := repo.ListRecipes(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, recipe := range service.DefaultRecipes {
		recipe.CreatedAt = now
		recipe.UpdatedAt = now
		if err := repo.Upsert(ctx, recipe); err != nil {
			return err
		}
	}
	log.Info().Int("recipes", len(service.DefaultRecipes)).Msg("Seeded default recipe catalog")
	return nil
}
