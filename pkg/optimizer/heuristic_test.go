package optimizer

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/arnavshah/shift-optimizer-go/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// countByDate groups the flat shift list back per date for assertions.
func countByDate(shifts []models.Shift) map[string][]string {
	byDate := make(map[string][]string)
	for _, s := range shifts {
		byDate[s.Date] = append(byDate[s.Date], s.StaffID)
	}
	return byDate
}

func TestOptimize_BasicScenario(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "s1", PreferredDates: []string{"d1", "d2"}},
			{ID: "s2", UnavailableDates: []string{"d1"}},
			{ID: "s3"},
			{ID: "s4"},
		},
		Dates: []string{"d1", "d2", "d3", "d4", "d5"},
		Constraints: models.Constraints{
			MinStaffPerDay: intPtr(2),
			MaxStaffPerDay: intPtr(3),
		},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)
	assert.Empty(t, result.Warnings)

	byDate := countByDate(result.Shifts)

	// s2 is unavailable on d1
	assert.NotContains(t, byDate["d1"], "s2")

	// Every date is staffed within the configured bounds
	for _, date := range req.Dates {
		assert.GreaterOrEqual(t, len(byDate[date]), 2, "date %s under minimum", date)
		assert.LessOrEqual(t, len(byDate[date]), 3, "date %s over maximum", date)
	}

	// s1 prefers d1 and is as idle as everyone else, so the bonus wins
	assert.Contains(t, byDate["d1"], "s1")
}

func TestOptimize_ShiftTimesAreFixed(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{{ID: "s1"}, {ID: "s2"}},
		Dates: []string{"2024-01-15"},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)
	require.NotEmpty(t, result.Shifts)
	for _, s := range result.Shifts {
		assert.Equal(t, "09:00", s.StartTime)
		assert.Equal(t, "17:00", s.EndTime)
	}
}

func TestOptimize_AssignmentCountsBalance(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "a", PreferredDates: []string{"d2"}},
			{ID: "b"},
			{ID: "c", UnavailableDates: []string{"d3"}},
		},
		Dates: []string{"d1", "d2", "d3", "d4"},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)

	// sum of per-staff counts equals sum of per-date counts equals total
	perStaffSum := 0
	for _, c := range result.Statistics.StaffWorkCounts {
		perStaffSum += c
	}
	assert.Equal(t, len(result.Shifts), perStaffSum)
	assert.Equal(t, result.Statistics.TotalShifts, perStaffSum)
}

func TestOptimize_NoStaff(t *testing.T) {
	req := &models.ScheduleRequest{Dates: []string{"d1"}}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no staff registered")
	assert.Empty(t, result.Shifts)
}

func TestOptimize_NoDates(t *testing.T) {
	req := &models.ScheduleRequest{Staff: []models.StaffMember{{ID: "s1"}, {ID: "s2"}}}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "no dates specified")
}

func TestOptimize_StaffBelowMinimum(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff:       []models.StaffMember{{ID: "s1"}, {ID: "s2"}},
		Dates:       []string{"d1"},
		Constraints: models.Constraints{MinStaffPerDay: intPtr(3)},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "2")
	assert.Contains(t, result.Error, "3")
	assert.Empty(t, result.Shifts)
}

func TestOptimize_AllUnavailableDate_Lenient(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "s1", UnavailableDates: []string{"d1"}},
			{ID: "s2", UnavailableDates: []string{"d1"}},
		},
		Dates: []string{"d1", "d2"},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)
	assert.Equal(t, StatusFeasible, result.Status)

	byDate := countByDate(result.Shifts)
	assert.Empty(t, byDate["d1"])
	assert.Len(t, byDate["d2"], 2)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "d1")
	assert.Equal(t, 1, result.Statistics.ShortfallDays)
}

func TestOptimize_AllUnavailableDate_Strict(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "s1", UnavailableDates: []string{"d1"}},
			{ID: "s2", UnavailableDates: []string{"d1"}},
		},
		Dates:  []string{"d1", "d2"},
		Strict: true,
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.False(t, result.Success)
	assert.Contains(t, result.Error, "d1")
	assert.Empty(t, result.Shifts)
}

func TestOptimize_MaxDaysCap(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "capped", MaxDays: intPtr(1)},
			{ID: "s2"},
			{ID: "s3"},
		},
		Dates:       []string{"d1", "d2", "d3"},
		Constraints: models.Constraints{MinStaffPerDay: intPtr(2), MaxStaffPerDay: intPtr(2)},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)
	assert.LessOrEqual(t, result.Statistics.StaffWorkCounts["capped"], 1)
}

func TestOptimize_UnavailableNeverAssigned(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "s1", UnavailableDates: []string{"d1", "d3"}},
			{ID: "s2", UnavailableDates: []string{"d2"}},
			{ID: "s3"},
		},
		Dates:       []string{"d1", "d2", "d3"},
		Constraints: models.Constraints{MinStaffPerDay: intPtr(1)},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)

	unavailable := map[string]map[string]bool{
		"s1": {"d1": true, "d3": true},
		"s2": {"d2": true},
	}
	for _, shift := range result.Shifts {
		assert.False(t, unavailable[shift.StaffID][shift.Date],
			"staff %s assigned to unavailable date %s", shift.StaffID, shift.Date)
	}
}

func TestOptimize_PreferenceAbsorbsCapacity(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{
			{ID: "s1", PreferredDates: []string{"d1"}},
			{ID: "s2", PreferredDates: []string{"d1"}},
			{ID: "s3", PreferredDates: []string{"d1"}},
			{ID: "s4", PreferredDates: []string{"d1"}},
		},
		Dates:       []string{"d1"},
		Constraints: models.Constraints{MinStaffPerDay: intPtr(1), MaxStaffPerDay: intPtr(3)},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)

	// Four preferring staff bias the target up, clamped at the maximum
	assert.Len(t, result.Shifts, 3)
}

func TestOptimize_Deterministic(t *testing.T) {
	makeReq := func() *models.ScheduleRequest {
		return &models.ScheduleRequest{
			Staff: []models.StaffMember{
				{ID: "s1", PreferredDates: []string{"d2", "d4"}},
				{ID: "s2", UnavailableDates: []string{"d1", "d5"}},
				{ID: "s3", MaxDays: intPtr(3)},
				{ID: "s4"},
			},
			Dates: []string{"d1", "d2", "d3", "d4", "d5", "d6"},
		}
	}

	h := NewHeuristic(DefaultOptions())

	first, err := json.Marshal(h.Optimize(makeReq()))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(h.Optimize(makeReq()))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestOptimize_Statistics(t *testing.T) {
	req := &models.ScheduleRequest{
		Staff: []models.StaffMember{{ID: "s1"}, {ID: "s2"}, {ID: "s3"}},
		Dates: []string{"d1", "d2"},
		Constraints: models.Constraints{
			MinStaffPerDay: intPtr(2),
			MaxStaffPerDay: intPtr(2),
		},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)

	stats := result.Statistics
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.TotalShifts)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 3, stats.TotalStaff)
	assert.InDelta(t, 1.33, stats.AvgShiftsPerStaff, 0.001)
	assert.Equal(t, 0, stats.ShortfallDays)
	assert.Greater(t, stats.FairnessScore, 0.0)
}

func TestFairnessScore(t *testing.T) {
	assert.Equal(t, 100.0, fairnessScore(map[string]int{}))
	assert.Equal(t, 100.0, fairnessScore(map[string]int{"a": 0, "b": 0}))
	assert.Equal(t, 100.0, fairnessScore(map[string]int{"a": 3, "b": 3, "c": 3}))

	uneven := fairnessScore(map[string]int{"a": 6, "b": 0})
	assert.Less(t, uneven, 100.0)
}

func TestOptimize_LoadBalancing(t *testing.T) {
	// With no preferences and ample capacity, accumulated work counts keep
	// the distribution within one shift of each other.
	var staff []models.StaffMember
	for i := 1; i <= 4; i++ {
		staff = append(staff, models.StaffMember{ID: fmt.Sprintf("s%d", i)})
	}
	req := &models.ScheduleRequest{
		Staff:       staff,
		Dates:       []string{"d1", "d2", "d3", "d4", "d5", "d6"},
		Constraints: models.Constraints{MinStaffPerDay: intPtr(2), MaxStaffPerDay: intPtr(2)},
	}

	result := NewHeuristic(DefaultOptions()).Optimize(req)
	require.True(t, result.Success)

	minCount, maxCount := len(req.Dates), 0
	for _, c := range result.Statistics.StaffWorkCounts {
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	assert.LessOrEqual(t, maxCount-minCount, 1)
}
