package model

// Day is one calendar day of the cycle with the recipes assigned to it.
type Day struct {
	// Date is the ISO date (YYYY-MM-DD).
	Date string `json:"date"`
	// Weekday is the 3-letter weekday abbreviation, e.g. "Wed".
	Weekday string `json:"weekday"`
	// Recipes are the recipes assigned to this day, in lineup order.
	Recipes []Recipe `json:"recipes"`
}

// Week is one 7-day week of the 4-week cycle.
type Week struct {
	Number    int    `json:"number"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Days      []Day  `json:"days"`
}

// Cycle is the full 4-week calendar skeleton. It is derived from the fixed
// anchor date and rebuilt on each request, never mutated in place.
type Cycle struct {
	Weeks []Week `json:"weeks"`
}
