package service

import "github.com/guttosm/menu-service/internal/domain/model"

// DefaultRecipes is the starter catalog used when the repository is empty,
// so a fresh deployment has a populated cycle without manual curation.
var DefaultRecipes = []model.Recipe{
	{
		ID:      "beef-stew",
		Name:    "Beef Stew",
		Cuisine: "western",
		BasePortions: []model.BasePortion{
			{ItemCode: "BEEF-01", Description: "Stewing beef", Unit: "g", BasePerPerson: 180, PackSize: &model.PackSize{Qty: 10000, Unit: "g"}},
			{ItemCode: "POT-01", Description: "Potatoes", Unit: "g", BasePerPerson: 200, PackSize: &model.PackSize{Qty: 20000, Unit: "g"}},
			{ItemCode: "STOCK-01", Description: "Beef stock", Unit: "ml", BasePerPerson: 150, PackSize: &model.PackSize{Qty: 10, Unit: "L"}},
		},
	},
	{
		ID:      "chicken-curry",
		Name:    "Chicken Curry",
		Cuisine: "indian",
		BasePortions: []model.BasePortion{
			{ItemCode: "CHKN-01", Description: "Chicken thigh", Unit: "g", BasePerPerson: 160, PackSize: &model.PackSize{Qty: 20000, Unit: "g"}},
			{ItemCode: "RICE-01", Description: "Long grain rice", Unit: "g", BasePerPerson: 120, PackSize: &model.PackSize{Qty: 20000, Unit: "g"}},
			{ItemCode: "COCO-01", Description: "Coconut milk", Unit: "ml", BasePerPerson: 80, PackSize: &model.PackSize{Qty: 1, Unit: "L"}},
		},
	},
	{
		ID:        "veg-lasagne",
		Name:      "Vegetable Lasagne",
		Cuisine:   "italian",
		Allergens: []string{"gluten", "dairy"},
		BasePortions: []model.BasePortion{
			{ItemCode: "PASTA-02", Description: "Lasagne sheets", Unit: "g", BasePerPerson: 100, PackSize: &model.PackSize{Qty: 5000, Unit: "g"}},
			{ItemCode: "TOM-01", Description: "Crushed tomatoes", Unit: "ml", BasePerPerson: 120, PackSize: &model.PackSize{Qty: 2.5, Unit: "L"}},
			{ItemCode: "CHSE-01", Description: "Mozzarella", Unit: "g", BasePerPerson: 60, PackSize: &model.PackSize{Qty: 2000, Unit: "g"}},
		},
	},
	{
		ID:        "fish-chips",
		Name:      "Fish and Chips",
		Cuisine:   "british",
		Allergens: []string{"fish", "gluten"},
		BasePortions: []model.BasePortion{
			{ItemCode: "FISH-01", Description: "Battered cod portion", Unit: "each", BasePerPerson: 1, PackSize: &model.PackSize{Qty: 24, Unit: "each"}},
			{ItemCode: "POT-02", Description: "Frozen chips", Unit: "g", BasePerPerson: 220, PackSize: &model.PackSize{Qty: 10000, Unit: "g"}},
		},
	},
	{
		ID:      "dahl-rice",
		Name:    "Red Lentil Dahl with Rice",
		Cuisine: "indian",
		BasePortions: []model.BasePortion{
			{ItemCode: "LENT-01", Description: "Red lentils", Unit: "g", BasePerPerson: 90, PackSize: &model.PackSize{Qty: 10000, Unit: "g"}},
			{ItemCode: "RICE-01", Description: "Long grain rice", Unit: "g", BasePerPerson: 120, PackSize: &model.PackSize{Qty: 20000, Unit: "g"}},
		},
	},
	{
		ID:      "minestrone",
		Name:    "Minestrone Soup",
		Cuisine: "italian",
		BasePortions: []model.BasePortion{
			{ItemCode: "STOCK-02", Description: "Vegetable stock", Unit: "ml", BasePerPerson: 250, PackSize: &model.PackSize{Qty: 10, Unit: "L"}},
			{ItemCode: "PASTA-01", Description: "Ditalini pasta", Unit: "g", BasePerPerson: 50, PackSize: &model.PackSize{Qty: 5000, Unit: "g"}},
			{ItemCode: "BEAN-01", Description: "Cannellini beans", Unit: "g", BasePerPerson: 70, PackSize: &model.PackSize{Qty: 2500, Unit: "g"}},
		},
	},
}
