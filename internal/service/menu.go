package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/menu-service/internal/domain/model"
	"github.com/guttosm/menu-service/internal/metrics"
	"github.com/guttosm/menu-service/internal/repository"
)

const (
	// MinHeadcount and MaxHeadcount bound the number of people a menu can be
	// scaled for.
	MinHeadcount = 1
	MaxHeadcount = 10000

	// DefaultHeadcount is used until a headcount is set explicitly.
	DefaultHeadcount = 100
)

// ErrHeadcountOutOfRange is returned when a headcount falls outside 1-10000.
var ErrHeadcountOutOfRange = errors.New("headcount must be between 1 and 10000")

// MenuService owns the recipe catalog, the per-day lineups, the current
// headcount and the planning policy. Catalog storage sits behind
// repository.RecipeRepository; lineups, headcount and policy are in-process
// state guarded by a mutex so concurrent requests cannot interfere.
type MenuService struct {
	repo      repository.RecipeRepository
	quantizer Quantizer
	planner   Planner

	mu        sync.RWMutex
	headcount int
	lineups   map[string][]string
	policy    model.Policy
}

// MenuOption configures a MenuService.
type MenuOption func(*MenuService)

// WithDefaultHeadcount sets the initial headcount. Out-of-range values are
// ignored and the default is kept.
func WithDefaultHeadcount(n int) MenuOption {
	return func(s *MenuService) {
		if n >= MinHeadcount && n <= MaxHeadcount {
			s.headcount = n
		}
	}
}

// NewMenuService creates a menu service over the given catalog repository.
func NewMenuService(repo repository.RecipeRepository, quantizer Quantizer, planner Planner, opts ...MenuOption) *MenuService {
	s := &MenuService{
		repo:      repo,
		quantizer: quantizer,
		planner:   planner,
		headcount: DefaultHeadcount,
		lineups:   make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListRecipes returns the full catalog.
func (s *MenuService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	return s.repo.ListRecipes(ctx)
}

// GetRecipe returns the recipe with the given id, or (nil, nil) if absent.
// Absence is the caller's decision to treat as an error or not.
func (s *MenuService) GetRecipe(ctx context.Context, id string) (*model.Recipe, error) {
	return s.repo.GetRecipe(ctx, id)
}

// CreateRecipe stores a new recipe. A missing id is generated; creation and
// update timestamps are stamped here.
func (s *MenuService) CreateRecipe(ctx context.Context, recipe model.Recipe) (*model.Recipe, error) {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	if err := s.repo.Upsert(ctx, recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe merges the update into an existing recipe, preserving id and
// creation timestamp and bumping the update timestamp. Returns (nil, nil)
// when the id is unknown.
func (s *MenuService) UpdateRecipe(ctx context.Context, id string, update model.RecipeUpdate) (*model.Recipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}

	update.Apply(recipe)
	if err := s.repo.Upsert(ctx, *recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// DeleteRecipe removes a recipe and reports whether it existed. Day lineups
// referencing the deleted id are left in place; lookups drop stale ids.
func (s *MenuService) DeleteRecipe(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// SetDayRecipes stores the raw recipe id list for an ISO date. Ids are not
// validated here; resolution happens at lookup time.
func (s *MenuService) SetDayRecipes(isoDate string, recipeIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineups[isoDate] = append([]string(nil), recipeIDs...)
}

// GetDayRecipes resolves the lineup for an ISO date to recipe objects. Ids
// that no longer resolve are silently dropped: a stale reference to a deleted
// recipe must not break the weekly menu view, so the returned list may be
// shorter than the stored lineup.
func (s *MenuService) GetDayRecipes(ctx context.Context, isoDate string) ([]model.Recipe, error) {
	s.mu.RLock()
	ids := append([]string(nil), s.lineups[isoDate]...)
	s.mu.RUnlock()

	recipes := make([]model.Recipe, 0, len(ids))
	for _, id := range ids {
		recipe, err := s.repo.GetRecipe(ctx, id)
		if err != nil {
			return nil, err
		}
		if recipe == nil {
			continue
		}
		recipes = append(recipes, *recipe)
	}
	return recipes, nil
}

// Headcount returns the current headcount.
func (s *MenuService) Headcount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.headcount
}

// SetHeadcount updates the headcount, enforcing the 1-10000 bounds.
func (s *MenuService) SetHeadcount(n int) error {
	if n < MinHeadcount || n > MaxHeadcount {
		return ErrHeadcountOutOfRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.headcount = n
	return nil
}

// ScaleRecipeForHeadcount scales a recipe's base portions to the current
// headcount. The headcount used is echoed in the result so callers can
// snapshot which headcount produced a given calculation. Returns (nil, nil)
// when the id is unknown.
func (s *MenuService) ScaleRecipeForHeadcount(ctx context.Context, id string) (*model.ScaledRecipe, error) {
	recipe, err := s.repo.GetRecipe(ctx, id)
	if err != nil {
		metrics.RecordScaleCalculation("error")
		return nil, err
	}
	if recipe == nil {
		metrics.RecordScaleCalculation("not_found")
		return nil, nil
	}

	headcount := s.Headcount()
	lines := s.quantizer.ScaleRecipe(*recipe, headcount)
	metrics.RecordScaleCalculation("success")

	return &model.ScaledRecipe{
		Recipe:          *recipe,
		CalculatedLines: lines,
		Headcount:       headcount,
	}, nil
}

// AutoPopulateCycle assigns recipes to every day of the 28-day cycle
// containing ref. The rotation is a pure function of the sorted recipe list
// and the day index: day i receives recipes[(2i) mod n] and, when the catalog
// has more than one recipe, recipes[(2i+1) mod n]. Every day gets at least
// one recipe and the assignment is reproducible.
func (s *MenuService) AutoPopulateCycle(ctx context.Context, ref time.Time) error {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		return nil
	}

	cycleStart := s.planner.CycleStartDate(ref)
	n := len(recipes)

	for i := 0; i < cycleDays; i++ {
		date := cycleStart.AddDate(0, 0, i).Format(isoDate)
		ids := []string{recipes[(2*i)%n].ID}
		if n > 1 {
			ids = append(ids, recipes[(2*i+1)%n].ID)
		}
		s.SetDayRecipes(date, ids)
	}
	return nil
}

// WeekStructure builds the calendar for one week of the current cycle with
// each day's lineup resolved to recipe objects.
func (s *MenuService) WeekStructure(ctx context.Context, ref time.Time, weekNumber int) (*model.Week, error) {
	cycleStart := s.planner.CycleStartDate(ref)
	weekStart, err := s.planner.WeekStartDate(weekNumber, cycleStart)
	if err != nil {
		return nil, err
	}

	dates := s.planner.WeekDays(weekStart)
	days := make([]model.Day, 0, len(dates))
	for _, date := range dates {
		recipes, err := s.GetDayRecipes(ctx, date)
		if err != nil {
			return nil, err
		}
		days = append(days, model.Day{
			Date:    date,
			Weekday: s.planner.DayName(date),
			Recipes: recipes,
		})
	}

	return &model.Week{
		Number:    weekNumber,
		StartDate: dates[0],
		EndDate:   dates[len(dates)-1],
		Days:      days,
	}, nil
}

// Policy returns a copy of the current planning policy.
func (s *MenuService) Policy() model.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.policy
}

// UpdatePolicy merges non-zero fields of the update into the stored policy
// and returns the result. The policy is a configuration blob; no validation
// beyond merge semantics applies.
func (s *MenuService) UpdatePolicy(update model.Policy) model.Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policy.Merge(update)
	return s.policy
}
