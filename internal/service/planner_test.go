package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPlannerService_CycleStartDate(t *testing.T) {
	p := NewPlannerService()

	tests := []struct {
		name     string
		ref      time.Time
		expected time.Time
	}{
		{name: "anchor day starts its own cycle", ref: date(2025, time.January, 1), expected: date(2025, time.January, 1)},
		{name: "last day of first cycle", ref: date(2025, time.January, 28), expected: date(2025, time.January, 1)},
		{name: "first day of second cycle", ref: date(2025, time.January, 29), expected: date(2025, time.January, 29)},
		{name: "date before the anchor", ref: date(2024, time.December, 31), expected: date(2024, time.December, 4)},
		{name: "time of day is ignored", ref: time.Date(2025, time.January, 15, 23, 59, 0, 0, time.UTC), expected: date(2025, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, p.CycleStartDate(tt.ref))
		})
	}
}

func TestPlannerService_CycleStartDate_AlwaysWednesday(t *testing.T) {
	p := NewPlannerService()

	ref := date(2025, time.March, 3)
	for i := 0; i < 60; i++ {
		start := p.CycleStartDate(ref.AddDate(0, 0, i))
		assert.Equal(t, time.Wednesday, start.Weekday())
	}
}

// Shifting the reference by a full cycle must not change the relative position.
func TestPlannerService_WeekNumberStableAcrossCycles(t *testing.T) {
	p := NewPlannerService()

	for i := 0; i < 28; i++ {
		ref := date(2025, time.June, 1).AddDate(0, 0, i)
		later := ref.AddDate(0, 0, 28)

		assert.Equal(t, p.CurrentWeekNumber(ref), p.CurrentWeekNumber(later))
		assert.Equal(t, p.CycleStartDate(ref).AddDate(0, 0, 28), p.CycleStartDate(later))
	}
}

func TestPlannerService_WeekStartDate(t *testing.T) {
	p := NewPlannerService()
	cycleStart := date(2025, time.January, 1)

	t.Run("valid weeks", func(t *testing.T) {
		for week, expected := range map[int]time.Time{
			1: date(2025, time.January, 1),
			2: date(2025, time.January, 8),
			3: date(2025, time.January, 15),
			4: date(2025, time.January, 22),
		} {
			start, err := p.WeekStartDate(week, cycleStart)
			require.NoError(t, err)
			assert.Equal(t, expected, start)
		}
	})

	t.Run("out of range weeks", func(t *testing.T) {
		for _, week := range []int{0, 5, -1, 100} {
			_, err := p.WeekStartDate(week, cycleStart)
			assert.ErrorIs(t, err, ErrInvalidWeekNumber)
		}
	})
}

func TestPlannerService_WeekDays(t *testing.T) {
	p := NewPlannerService()

	days := p.WeekDays(date(2025, time.January, 1))

	require.Len(t, days, 7)
	assert.Equal(t, "2025-01-01", days[0])
	assert.Equal(t, "2025-01-07", days[6])
}

func TestPlannerService_DayName(t *testing.T) {
	p := NewPlannerService()

	assert.Equal(t, "Wed", p.DayName("2025-01-01"))
	assert.Equal(t, "Tue", p.DayName("2025-01-07"))
	assert.Equal(t, "", p.DayName("not-a-date"))
}

func TestPlannerService_CurrentWeekNumber(t *testing.T) {
	p := NewPlannerService()

	tests := []struct {
		ref      time.Time
		expected int
	}{
		{ref: date(2025, time.January, 1), expected: 1},
		{ref: date(2025, time.January, 7), expected: 1},
		{ref: date(2025, time.January, 8), expected: 2},
		{ref: date(2025, time.January, 15), expected: 3},
		{ref: date(2025, time.January, 28), expected: 4},
		{ref: date(2025, time.January, 29), expected: 1},
	}

	for _, tt := range tests {
		week := p.CurrentWeekNumber(tt.ref)
		assert.Equal(t, tt.expected, week, "ref %s", tt.ref.Format("2006-01-02"))
		assert.GreaterOrEqual(t, week, 1)
		assert.LessOrEqual(t, week, 4)
	}
}

func TestPlannerService_BuildWeeksStructure(t *testing.T) {
	p := NewPlannerService()

	cycle := p.BuildWeeksStructure(date(2025, time.January, 10))

	require.Len(t, cycle.Weeks, 4)

	seen := make(map[string]bool)
	for i, week := range cycle.Weeks {
		assert.Equal(t, i+1, week.Number)
		require.Len(t, week.Days, 7)
		assert.Equal(t, week.Days[0].Date, week.StartDate)
		assert.Equal(t, week.Days[6].Date, week.EndDate)
		for _, day := range week.Days {
			assert.False(t, seen[day.Date], "duplicate date %s", day.Date)
			seen[day.Date] = true
			assert.NotEmpty(t, day.Weekday)
			assert.NotNil(t, day.Recipes)
			assert.Empty(t, day.Recipes)
		}
	}
	assert.Len(t, seen, 28)
}

func TestWithAnchor(t *testing.T) {
	t.Run("wednesday anchor is applied", func(t *testing.T) {
		anchor := date(2025, time.March, 5)
		require.Equal(t, time.Wednesday, anchor.Weekday())

		p := NewPlannerService(WithAnchor(anchor))

		assert.Equal(t, anchor, p.CycleStartDate(anchor))
		assert.Equal(t, anchor, p.CycleStartDate(anchor.AddDate(0, 0, 27)))
	})

	t.Run("non-wednesday anchor is ignored", func(t *testing.T) {
		p := NewPlannerService(WithAnchor(date(2025, time.March, 6)))

		assert.Equal(t, DefaultCycleAnchor, p.CycleStartDate(DefaultCycleAnchor))
	})
}
