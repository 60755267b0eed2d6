package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/middleware"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the gin router for the menu service.
func NewRouter(menuHandler *MenuHandler, reportHandler *ReportHandler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler)

	api := router.Group("/api")
	registerMenuRoutes(api, menuHandler)
	registerReportRoutes(api, reportHandler)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health and metrics routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerMenuRoutes registers the menu planning routes.
func registerMenuRoutes(api *gin.RouterGroup, h *MenuHandler) {
	menu := api.Group("/menu")
	menu.GET("/weeks", h.Weeks)
	menu.GET("/week/:n", h.Week)
	menu.GET("/recipes", h.ListRecipes)
	menu.POST("/recipes", h.CreateRecipe)
	menu.GET("/recipes/:id", h.GetRecipe)
	menu.PUT("/recipes/:id", h.UpdateRecipe)
	menu.DELETE("/recipes/:id", h.DeleteRecipe)
	menu.GET("/recipe/:id", h.ScaledRecipe)
	menu.POST("/headcount", h.SetHeadcount)
	menu.POST("/day/:date/recipes", h.SetDayRecipes)
	menu.GET("/shopping-list", h.ShoppingList)
	menu.GET("/policy", h.GetPolicy)
	menu.PATCH("/policy", h.UpdatePolicy)
}

// registerReportRoutes registers the count reporting routes.
func registerReportRoutes(api *gin.RouterGroup, h *ReportHandler) {
	reports := api.Group("/reports")
	reports.GET("/count/:id", h.CountReport)
}
