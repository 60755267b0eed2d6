// Package main is the entry point for the menu-service application.
//
// The service plans a rotating 4-week institutional menu: it keeps a recipe
// catalog, assigns recipes to calendar days, scales portion quantities to a
// configurable headcount, and aggregates weekly shopping lists with pack
// counts. A secondary endpoint renders physical-count reports grouped by
// finance code.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
