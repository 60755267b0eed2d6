// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/http"
)

// InitializeApp creates and wires all application dependencies and returns
// the configured router.
func InitializeApp(cfg config.Config) *gin.Engine {
	InitializeLogger()

	dbComponents := InitializeDatabase(cfg.Database)
	serviceComponents := InitializeServices(cfg.Menu, dbComponents)

	menuHandler := http.NewMenuHandler(
		serviceComponents.Menu,
		serviceComponents.ShoppingList,
		serviceComponents.Planner,
	)
	reportHandler := http.NewReportHandler(serviceComponents.CountReports)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", dbComponents)
	}

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
	}

	return http.NewRouter(menuHandler, reportHandler, healthHandler, routerCfg)
}
