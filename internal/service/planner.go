package service

import (
	"fmt"
	"time"

	"github.com/guttosm/menu-service/internal/domain/model"
)

const (
	// cycleWeeks is the number of weeks in one rotation of the menu.
	cycleWeeks = 4
	// cycleDays is the length of one full rotation in days.
	cycleDays = cycleWeeks * 7
	// isoDate is the date layout used throughout the planner.
	isoDate = "2006-01-02"
)

// DefaultCycleAnchor is the fixed start of the rotation, a Wednesday at UTC
// midnight. Every cycle start derived from it lands on a Wednesday because
// the cycle length is a multiple of 7.
var DefaultCycleAnchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrInvalidWeekNumber is returned for week numbers outside 1-4.
var ErrInvalidWeekNumber = fmt.Errorf("week number must be between 1 and %d", cycleWeeks)

// Planner performs the date arithmetic for the rotating 4-week cycle.
type Planner interface {
	CycleStartDate(ref time.Time) time.Time
	WeekStartDate(weekNumber int, cycleStart time.Time) (time.Time, error)
	WeekDays(weekStart time.Time) []string
	DayName(iso string) string
	CurrentWeekNumber(ref time.Time) int
	BuildWeeksStructure(ref time.Time) model.Cycle
}

// PlannerOption configures a PlannerService.
type PlannerOption func(*PlannerService)

// PlannerService implements Planner. All methods are pure functions of their
// arguments and the fixed anchor.
type PlannerService struct {
	anchor time.Time
}

// NewPlannerService creates a planner anchored to DefaultCycleAnchor unless
// overridden.
func NewPlannerService(opts ...PlannerOption) *PlannerService {
	p := &PlannerService{anchor: DefaultCycleAnchor}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithAnchor overrides the cycle anchor. The anchor must be a Wednesday;
// other weekdays are ignored and the default is kept.
func WithAnchor(anchor time.Time) PlannerOption {
	return func(p *PlannerService) {
		if anchor.Weekday() == time.Wednesday {
			p.anchor = truncateToUTCDate(anchor)
		}
	}
}

// truncateToUTCDate drops the time-of-day component, keeping the UTC date.
func truncateToUTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CycleStartDate returns the start of the 4-week cycle containing ref,
// truncated to UTC midnight. The result is always a Wednesday.
func (p *PlannerService) CycleStartDate(ref time.Time) time.Time {
	day := truncateToUTCDate(ref)
	daysSinceAnchor := int(day.Sub(p.anchor).Hours() / 24)
	cycleDay := ((daysSinceAnchor % cycleDays) + cycleDays) % cycleDays
	return day.AddDate(0, 0, -cycleDay)
}

// WeekStartDate returns the start date of the given week (1-4) of the cycle.
func (p *PlannerService) WeekStartDate(weekNumber int, cycleStart time.Time) (time.Time, error) {
	if weekNumber < 1 || weekNumber > cycleWeeks {
		return time.Time{}, ErrInvalidWeekNumber
	}
	return cycleStart.AddDate(0, 0, (weekNumber-1)*7), nil
}

// WeekDays returns the 7 consecutive ISO dates starting at weekStart.
func (p *PlannerService) WeekDays(weekStart time.Time) []string {
	days := make([]string, 7)
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i).Format(isoDate)
	}
	return days
}

// DayName returns the 3-letter weekday abbreviation for an ISO date, or ""
// when the date does not parse.
func (p *PlannerService) DayName(iso string) string {
	t, err := time.Parse(isoDate, iso)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}

// CurrentWeekNumber returns which week (1-4) of the cycle ref falls in.
func (p *PlannerService) CurrentWeekNumber(ref time.Time) int {
	cycleStart := p.CycleStartDate(ref)
	daysSinceCycleStart := int(truncateToUTCDate(ref).Sub(cycleStart).Hours() / 24)
	return daysSinceCycleStart/7 + 1
}

// BuildWeeksStructure assembles the full 4x7 calendar skeleton for the cycle
// containing ref. Day recipe lists are empty; the menu service populates them.
func (p *PlannerService) BuildWeeksStructure(ref time.Time) model.Cycle {
	cycleStart := p.CycleStartDate(ref)

	weeks := make([]model.Week, 0, cycleWeeks)
	for n := 1; n <= cycleWeeks; n++ {
		weekStart, _ := p.WeekStartDate(n, cycleStart)
		dates := p.WeekDays(weekStart)

		days := make([]model.Day, 0, len(dates))
		for _, date := range dates {
			days = append(days, model.Day{
				Date:    date,
				Weekday: p.DayName(date),
				Recipes: []model.Recipe{},
			})
		}

		weeks = append(weeks, model.Week{
			Number:    n,
			StartDate: dates[0],
			EndDate:   dates[len(dates)-1],
			Days:      days,
		})
	}

	return model.Cycle{Weeks: weeks}
}
