// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB         *repository.MongoDB
	RecipeRepo repository.RecipeRepository
}

// Check implements the health checker used by the readiness probe.
func (d *DatabaseComponents) Check() error {
	return d.DB.HealthCheck(context.Background())
}

// InitializeDatabase initializes the MongoDB connection and the Mongo-backed
// recipe repository. Returns nil when the database is disabled or the
// connection fails; the caller then falls back to in-memory storage.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with in-memory catalog")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	return &DatabaseComponents{
		DB:         db,
		RecipeRepo: repository.NewMongoRecipeRepository(db),
	}
}
