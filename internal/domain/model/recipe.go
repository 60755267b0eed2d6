// Package model defines the core domain entities for the menu service.
package model

import "time"

// PackSize describes how an ingredient is purchased, e.g. a 20000 g bag.
type PackSize struct {
	// Qty is the amount of product in one pack, in Unit.
	Qty float64 `json:"qty" bson:"qty"`
	// Unit is the unit of measure the pack is sold in.
	Unit string `json:"unit" bson:"unit"`
}

// BasePortion is the per-person quantity of one ingredient within a recipe,
// before headcount scaling.
type BasePortion struct {
	// ItemCode is the external inventory key for the ingredient.
	ItemCode string `json:"item_code" bson:"item_code"`
	// Description is the human-readable ingredient name.
	Description string `json:"description" bson:"description"`
	// Unit is the unit of measure: mass (g, kg), volume (ml, L) or count (each).
	Unit string `json:"unit" bson:"unit"`
	// BasePerPerson is the quantity of this ingredient per person.
	BasePerPerson float64 `json:"base_per_person" bson:"base_per_person"`
	// PackSize describes how the item is purchased, if known.
	PackSize *PackSize `json:"pack_size,omitempty" bson:"pack_size,omitempty"`
}

// Recipe is a catalog entry with its per-person base portions.
type Recipe struct {
	ID           string        `json:"id" bson:"_id"`
	Name         string        `json:"name" bson:"name"`
	Cuisine      string        `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	Allergens    []string      `json:"allergens,omitempty" bson:"allergens,omitempty"`
	BasePortions []BasePortion `json:"base_portions" bson:"base_portions"`
	Notes        string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}

// RecipeUpdate carries the fields of a partial recipe update.
// Nil fields are left untouched; ID and CreatedAt are never modified.
type RecipeUpdate struct {
	Name         *string        `json:"name,omitempty"`
	Cuisine      *string        `json:"cuisine,omitempty"`
	Allergens    *[]string      `json:"allergens,omitempty"`
	BasePortions *[]BasePortion `json:"base_portions,omitempty"`
	Notes        *string        `json:"notes,omitempty"`
}

// Apply merges the update into the recipe and bumps UpdatedAt.
func (u RecipeUpdate) Apply(r *Recipe) {
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Cuisine != nil {
		r.Cuisine = *u.Cuisine
	}
	if u.Allergens != nil {
		r.Allergens = *u.Allergens
	}
	if u.BasePortions != nil {
		r.BasePortions = *u.BasePortions
	}
	if u.Notes != nil {
		r.Notes = *u.Notes
	}
	r.UpdatedAt = time.Now().UTC()
}

// ScaledRecipe is a recipe together with the calculated lines produced for a
// specific headcount. Callers can snapshot which headcount produced a given
// calculation.
type ScaledRecipe struct {
	Recipe
	CalculatedLines []CalculatedLine `json:"calculated_lines"`
	Headcount       int              `json:"headcount"`
}

// Policy is the site-wide planning configuration blob. It is stored and
// merged as-is; it is not part of the scaling engine's correctness surface.
type Policy struct {
	Population      int    `json:"population,omitempty" bson:"population,omitempty"`
	TakeoutLockTime string `json:"takeout_lock_time,omitempty" bson:"takeout_lock_time,omitempty"`
	CurrentWeek     int    `json:"current_week,omitempty" bson:"current_week,omitempty"`
	CurrentDay      string `json:"current_day,omitempty" bson:"current_day,omitempty"`
	CycleAnchor     string `json:"cycle_anchor,omitempty" bson:"cycle_anchor,omitempty"`
}

// Merge applies non-zero fields of other onto p.
func (p *Policy) Merge(other Policy) {
	if other.Population != 0 {
		p.Population = other.Population
	}
	if other.TakeoutLockTime != "" {
		p.TakeoutLockTime = other.TakeoutLockTime
	}
	if other.CurrentWeek != 0 {
		p.CurrentWeek = other.CurrentWeek
	}
	if other.CurrentDay != "" {
		p.CurrentDay = other.CurrentDay
	}
	if other.CycleAnchor != "" {
		p.CycleAnchor = other.CycleAnchor
	}
}
