package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/logger"
	"github.com/guttosm/menu-service/internal/metrics"
)

// ShoppingListService turns one week of day lineups into a single aggregated
// purchase list. The current headcount applies uniformly across the whole
// week; there is no per-day override.
type ShoppingListService struct {
	menu    *MenuService
	planner Planner
}

// NewShoppingListService creates a shopping list service.
func NewShoppingListService(menu *MenuService, planner Planner) *ShoppingListService {
	return &ShoppingListService{
		menu:    menu,
		planner: planner,
	}
}

// GenerateWeekly walks the 7 days of the given week of the cycle containing
// ref, scales every assigned recipe at the current headcount, flattens the
// calculated lines and aggregates them per item code. Lines come back ordered
// by first appearance, not sorted.
func (s *ShoppingListService) GenerateWeekly(ctx context.Context, ref time.Time, weekNumber int) ([]model.AggregatedLine, error) {
	start := time.Now()

	cycleStart := s.planner.CycleStartDate(ref)
	weekStart, err := s.planner.WeekStartDate(weekNumber, cycleStart)
	if err != nil {
		return nil, err
	}

	var flattened []model.CalculatedLine
	for _, date := range s.planner.WeekDays(weekStart) {
		recipes, err := s.menu.GetDayRecipes(ctx, date)
		if err != nil {
			return nil, err
		}
		for _, recipe := range recipes {
			scaled, err := s.menu.ScaleRecipeForHeadcount(ctx, recipe.ID)
			if err != nil {
				return nil, err
			}
			if scaled == nil {
				continue
			}
			flattened = append(flattened, scaled.CalculatedLines...)
		}
	}

	list := s.menu.quantizer.AggregateQuantities(flattened)
	metrics.RecordShoppingList(time.Since(start))
	return list, nil
}

// ExportCSV renders a shopping list as CSV with a header row. Fields
// containing commas, quotes or newlines are quoted per RFC 4180.
func (s *ShoppingListService) ExportCSV(list []model.AggregatedLine, weekNumber int) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"itemCode", "description", "unit", "totalIssueQty", "totalPacks", "packSize"}); err != nil {
		return "", err
	}

	for _, line := range list {
		packs := ""
		if line.TotalPacks != nil {
			packs = strconv.Itoa(*line.TotalPacks)
		}
		packSize := ""
		if line.PackSize != nil {
			packSize = fmt.Sprintf("%s %s", formatQty(line.PackSize.Qty), line.PackSize.Unit)
		}
		record := []string{
			line.ItemCode,
			line.Description,
			line.Unit,
			formatQty(line.TotalIssueQty),
			packs,
			packSize,
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	logger.Logger().Debug().
		Int("week", weekNumber).
		Int("lines", len(list)).
		Msg("Exported shopping list CSV")

	return sb.String(), nil
}

// formatQty renders a quantity without trailing zero noise.
func formatQty(qty float64) string {
	return strconv.FormatFloat(qty, 'f', -1, 64)
}
