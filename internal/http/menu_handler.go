// Package http provides the gin route handlers for the menu service.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/menu-service/internal/domain/dto"
	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/service"
)

// MenuHandler provides HTTP handlers for the menu planning routes.
type MenuHandler struct {
	menu     *service.MenuService
	shopping *service.ShoppingListService
	planner  service.Planner
	now      func() time.Time
}

// MenuHandlerOption configures a MenuHandler.
type MenuHandlerOption func(*MenuHandler)

// WithClock overrides the handler's notion of "now", used in tests to pin
// the cycle position.
func WithClock(now func() time.Time) MenuHandlerOption {
	return func(h *MenuHandler) {
		h.now = now
	}
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menu *service.MenuService, shopping *service.ShoppingListService, planner service.Planner, opts ...MenuHandlerOption) *MenuHandler {
	h := &MenuHandler{
		menu:     menu,
		shopping: shopping,
		planner:  planner,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Weeks handles GET /api/menu/weeks: headcount plus the current cycle position.
func (h *MenuHandler) Weeks(c *gin.Context) {
	builder := NewResponseBuilder(c)

	ref := h.now()
	cycleStart := h.planner.CycleStartDate(ref)
	cycleEnd := cycleStart.AddDate(0, 0, 27)

	builder.SuccessOK(dto.WeeksResponse{
		Headcount:   h.menu.Headcount(),
		CurrentWeek: h.planner.CurrentWeekNumber(ref),
		CycleStart:  cycleStart.Format("2006-01-02"),
		CycleEnd:    cycleEnd.Format("2006-01-02"),
	})
}

// Week handles GET /api/menu/week/:n: the week structure with each day's
// lineup resolved to recipes.
func (h *MenuHandler) Week(c *gin.Context) {
	builder := NewResponseBuilder(c)

	week, err := dto.ParseWeek(c.Param("n"))
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	structure, err := h.menu.WeekStructure(c.Request.Context(), h.now(), week)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to build week structure", err)
		return
	}

	builder.SuccessOK(structure)
}

// ListRecipes handles GET /api/menu/recipes.
func (h *MenuHandler) ListRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	recipes, err := h.menu.ListRecipes(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to list recipes", err)
		return
	}
	builder.SuccessOK(recipes)
}

// GetRecipe handles GET /api/menu/recipes/:id.
func (h *MenuHandler) GetRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	recipe, err := h.menu.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to fetch recipe", err)
		return
	}
	if recipe == nil {
		builder.Error(http.StatusNotFound, "Recipe not found", nil)
		return
	}
	builder.SuccessOK(recipe)
}

// CreateRecipe handles POST /api/menu/recipes.
func (h *MenuHandler) CreateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	recipe, err := h.menu.CreateRecipe(c.Request.Context(), req.ToModel())
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to create recipe", err)
		return
	}
	builder.SuccessCreated(recipe)
}

// UpdateRecipe handles PUT /api/menu/recipes/:id.
func (h *MenuHandler) UpdateRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	recipe, err := h.menu.UpdateRecipe(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to update recipe", err)
		return
	}
	if recipe == nil {
		builder.Error(http.StatusNotFound, "Recipe not found", nil)
		return
	}
	builder.SuccessOK(recipe)
}

// DeleteRecipe handles DELETE /api/menu/recipes/:id.
func (h *MenuHandler) DeleteRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	deleted, err := h.menu.DeleteRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to delete recipe", err)
		return
	}
	if !deleted {
		builder.Error(http.StatusNotFound, "Recipe not found", nil)
		return
	}
	builder.SuccessOK(gin.H{"deleted": true})
}

// ScaledRecipe handles GET /api/menu/recipe/:id: the recipe scaled to the
// current headcount, with its calculated lines.
func (h *MenuHandler) ScaledRecipe(c *gin.Context) {
	builder := NewResponseBuilder(c)

	scaled, err := h.menu.ScaleRecipeForHeadcount(c.Request.Context(), c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to scale recipe", err)
		return
	}
	if scaled == nil {
		builder.Error(http.StatusNotFound, "Recipe not found", nil)
		return
	}
	builder.SuccessOK(scaled)
}

// SetHeadcount handles POST /api/menu/headcount.
func (h *MenuHandler) SetHeadcount(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetHeadcountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.menu.SetHeadcount(req.Headcount); err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}
	builder.SuccessOK(gin.H{"headcount": h.menu.Headcount()})
}

// SetDayRecipes handles POST /api/menu/day/:date/recipes.
func (h *MenuHandler) SetDayRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetDayRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD", err)
		return
	}

	h.menu.SetDayRecipes(date, req.RecipeIDs)
	builder.SuccessOK(gin.H{"date": date, "recipe_ids": req.RecipeIDs})
}

// ShoppingList handles GET /api/menu/shopping-list?week=n: the aggregated
// purchase list for one week plus its CSV rendering.
func (h *MenuHandler) ShoppingList(c *gin.Context) {
	builder := NewResponseBuilder(c)

	week, err := dto.ParseWeek(c.Query("week"))
	if err != nil {
		builder.Error(http.StatusBadRequest, err.Error(), err)
		return
	}

	items, err := h.shopping.GenerateWeekly(c.Request.Context(), h.now(), week)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to generate shopping list", err)
		return
	}

	csvText, err := h.shopping.ExportCSV(items, week)
	if err != nil {
		builder.Error(http.StatusInternalServerError, "Failed to export shopping list", err)
		return
	}

	builder.SuccessOK(dto.ShoppingListResponse{
		Week:  week,
		Items: items,
		CSV:   csvText,
	})
}

// GetPolicy handles GET /api/menu/policy.
func (h *MenuHandler) GetPolicy(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.menu.Policy())
}

// UpdatePolicy handles PATCH /api/menu/policy with merge semantics.
func (h *MenuHandler) UpdatePolicy(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req model.Policy
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	builder.SuccessOK(h.menu.UpdatePolicy(req))
}
