package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/repository"
	"github.com/guttosm/menu-service/internal/service"
)

// fixedNow pins the handlers inside the cycle starting 2025-01-01.
func fixedNow() time.Time {
	return time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
}

func newTestRouter(t *testing.T) (*gin.Engine, *service.MenuService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRecipeRepository()
	quantizer := service.NewQuantizerService()
	planner := service.NewPlannerService()
	menu := service.NewMenuService(repo, quantizer, planner)
	shopping := service.NewShoppingListService(menu, planner)

	handler := NewMenuHandler(menu, shopping, planner, WithClock(fixedNow))

	router := gin.New()
	api := router.Group("/api/menu")
	{
		api.GET("/weeks", handler.Weeks)
		api.GET("/week/:n", handler.Week)
		api.GET("/recipes", handler.ListRecipes)
		api.POST("/recipes", handler.CreateRecipe)
		api.GET("/recipes/:id", handler.GetRecipe)
		api.PUT("/recipes/:id", handler.UpdateRecipe)
		api.DELETE("/recipes/:id", handler.DeleteRecipe)
		api.GET("/recipe/:id", handler.ScaledRecipe)
		api.POST("/headcount", handler.SetHeadcount)
		api.POST("/day/:date/recipes", handler.SetDayRecipes)
		api.GET("/shopping-list", handler.ShoppingList)
		api.GET("/policy", handler.GetPolicy)
		api.PATCH("/policy", handler.UpdatePolicy)
	}
	return router, menu
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func seedRecipe(t *testing.T, menu *service.MenuService, id string) {
	t.Helper()

	_, err := menu.CreateRecipe(context.Background(), model.Recipe{
		ID:   id,
		Name: id,
		BasePortions: []model.BasePortion{
			{ItemCode: "RICE-01", Description: "Long grain rice", Unit: "g", BasePerPerson: 120,
				PackSize: &model.PackSize{Qty: 25000, Unit: "g"}},
		},
	})
	require.NoError(t, err)
}

func TestMenuHandler_Weeks(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/menu/weeks", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Headcount   int    `json:"headcount"`
		CurrentWeek int    `json:"current_week"`
		CycleStart  string `json:"cycle_start"`
		CycleEnd    string `json:"cycle_end"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, service.DefaultHeadcount, data.Headcount)
	assert.Equal(t, 2, data.CurrentWeek)
	assert.Equal(t, "2025-01-01", data.CycleStart)
	assert.Equal(t, "2025-01-28", data.CycleEnd)
}

func TestMenuHandler_Week(t *testing.T) {
	router, menu := newTestRouter(t)
	seedRecipe(t, menu, "beef-stew")
	menu.SetDayRecipes("2025-01-08", []string{"beef-stew"})

	t.Run("returns resolved week structure", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/week/2", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var week model.Week
		decodeData(t, w, &week)
		assert.Equal(t, 2, week.Number)
		require.Len(t, week.Days, 7)
		require.Len(t, week.Days[0].Recipes, 1)
		assert.Equal(t, "beef-stew", week.Days[0].Recipes[0].ID)
	})

	t.Run("rejects invalid week numbers", func(t *testing.T) {
		for _, n := range []string{"0", "5", "abc"} {
			w := doJSON(t, router, http.MethodGet, "/api/menu/week/"+n, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, "week %s", n)
		}
	})
}

func TestMenuHandler_RecipeCRUD(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("create", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/menu/recipes", gin.H{
			"id":   "veg-lasagne",
			"name": "Veg lasagne",
			"base_portions": []gin.H{
				{"item_code": "PASTA-01", "unit": "g", "base_per_person": 90},
			},
		})

		require.Equal(t, http.StatusCreated, w.Code)

		var recipe model.Recipe
		decodeData(t, w, &recipe)
		assert.Equal(t, "veg-lasagne", recipe.ID)
		assert.False(t, recipe.CreatedAt.IsZero())
	})

	t.Run("create without name fails", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/menu/recipes", gin.H{"id": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/recipes/veg-lasagne", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var recipe model.Recipe
		decodeData(t, w, &recipe)
		assert.Equal(t, "Veg lasagne", recipe.Name)
	})

	t.Run("get unknown returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/recipes/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/menu/recipes/veg-lasagne", gin.H{
			"name": "Vegetable lasagne",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var recipe model.Recipe
		decodeData(t, w, &recipe)
		assert.Equal(t, "Vegetable lasagne", recipe.Name)
		require.Len(t, recipe.BasePortions, 1)
	})

	t.Run("update unknown returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/menu/recipes/nope", gin.H{"name": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/menu/recipes/veg-lasagne", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/menu/recipes/veg-lasagne", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMenuHandler_ScaledRecipe(t *testing.T) {
	router, menu := newTestRouter(t)
	seedRecipe(t, menu, "chicken-curry")
	require.NoError(t, menu.SetHeadcount(100))

	t.Run("scales to the current headcount", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/recipe/chicken-curry", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var scaled model.ScaledRecipe
		decodeData(t, w, &scaled)
		assert.Equal(t, 100, scaled.Headcount)
		require.Len(t, scaled.CalculatedLines, 1)
		assert.Equal(t, "kg", scaled.CalculatedLines[0].IssueUnit)
		assert.InDelta(t, 12.0, scaled.CalculatedLines[0].IssueQty, 1e-9)
	})

	t.Run("unknown recipe returns 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/recipe/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMenuHandler_SetHeadcount(t *testing.T) {
	router, menu := newTestRouter(t)

	t.Run("valid headcount is applied", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/menu/headcount", gin.H{"headcount": 350})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 350, menu.Headcount())
	})

	t.Run("out of range headcount is rejected", func(t *testing.T) {
		for _, n := range []int{-1, 10001} {
			w := doJSON(t, router, http.MethodPost, "/api/menu/headcount", gin.H{"headcount": n})
			assert.Equal(t, http.StatusBadRequest, w.Code, "headcount %d", n)
		}
		assert.Equal(t, 350, menu.Headcount())
	})

	t.Run("missing headcount is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/menu/headcount", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMenuHandler_SetDayRecipes(t *testing.T) {
	router, menu := newTestRouter(t)
	seedRecipe(t, menu, "dahl-rice")

	t.Run("stores the lineup", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/menu/day/2025-01-02/recipes", gin.H{
			"recipe_ids": []string{"dahl-rice", "ghost"},
		})

		require.Equal(t, http.StatusOK, w.Code)

		// The stale id is dropped on read, not on write.
		recipes, err := menu.GetDayRecipes(context.Background(), "2025-01-02")
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "dahl-rice", recipes[0].ID)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/menu/day/02-01-2025/recipes", gin.H{
			"recipe_ids": []string{"dahl-rice"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMenuHandler_ShoppingList(t *testing.T) {
	router, menu := newTestRouter(t)
	seedRecipe(t, menu, "chicken-curry")
	require.NoError(t, menu.SetHeadcount(100))
	menu.SetDayRecipes("2025-01-01", []string{"chicken-curry"})

	t.Run("returns items and csv for the week", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/shopping-list?week=1", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Week  int                    `json:"week"`
			Items []model.AggregatedLine `json:"items"`
			CSV   string                 `json:"csv"`
		}
		decodeData(t, w, &data)
		assert.Equal(t, 1, data.Week)
		require.Len(t, data.Items, 1)
		assert.Equal(t, "RICE-01", data.Items[0].ItemCode)
		assert.Contains(t, data.CSV, "itemCode,description,unit,totalIssueQty,totalPacks,packSize")
		assert.Contains(t, data.CSV, "RICE-01")
	})

	t.Run("missing week parameter is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/menu/shopping-list", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMenuHandler_Policy(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/api/menu/policy", gin.H{
		"population":        375,
		"takeout_lock_time": "09:30",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/menu/policy", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var policy model.Policy
	decodeData(t, w, &policy)
	assert.Equal(t, 375, policy.Population)
	assert.Equal(t, "09:30", policy.TakeoutLockTime)
}
