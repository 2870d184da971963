// Package optimizer contains the shift assignment core: a deterministic greedy
// heuristic and an exact integer-program formulation behind one Assigner
// contract. All state is local to a single Optimize call, so concurrent
// requests need no coordination.
package optimizer

import (
	"fmt"
	"math"

	"github.com/arnavshah/shift-optimizer-go/pkg/models"
)

// Fixed shift window attached to every assignment. The core supports no
// per-staff or per-date time customization.
const (
	ShiftStartTime = "09:00"
	ShiftEndTime   = "17:00"
)

// Engine names accepted in ScheduleRequest.Engine.
const (
	EngineHeuristic = "heuristic"
	EngineExact     = "exact"
)

// Result status strings.
const (
	StatusOptimal  = "Optimal"
	StatusFeasible = "Feasible"
)

// Assigner produces a schedule for a request. Implementations must be safe for
// concurrent use; they hold configuration only, never per-run state.
type Assigner interface {
	Optimize(req *models.ScheduleRequest) *models.OptimizeResult
}

// Options are the documented staffing defaults, applied when a request's
// constraints leave a bound unset.
type Options struct {
	MinStaffPerDay int
	MaxStaffPerDay int
}

// DefaultOptions returns the production defaults (2 to 5 staff per day).
func DefaultOptions() Options {
	return Options{
		MinStaffPerDay: 2,
		MaxStaffPerDay: 5,
	}
}

// resolveBounds applies the request constraints over the option defaults.
func (o Options) resolveBounds(c models.Constraints) (minStaff, maxStaff int) {
	minStaff, maxStaff = o.MinStaffPerDay, o.MaxStaffPerDay
	if c.MinStaffPerDay != nil {
		minStaff = *c.MinStaffPerDay
	}
	if c.MaxStaffPerDay != nil {
		maxStaff = *c.MaxStaffPerDay
	}
	return minStaff, maxStaff
}

// failure builds an unsuccessful result with a human-readable reason.
func failure(format string, args ...any) *models.OptimizeResult {
	return &models.OptimizeResult{
		Success: false,
		Error:   fmt.Sprintf(format, args...),
	}
}

// validateRequest performs the fail-fast checks shared by both assigners.
// The staff-count check is deliberately coarse: it ignores per-day
// unavailability, so it can both under- and over-reject relative to true
// feasibility.
func validateRequest(req *models.ScheduleRequest, minStaff int) *models.OptimizeResult {
	if len(req.Staff) == 0 {
		return failure("no staff registered")
	}
	if len(req.Dates) == 0 {
		return failure("no dates specified")
	}
	if len(req.Staff) < minStaff {
		return failure("staff count (%d) is below the minimum required per day (%d)",
			len(req.Staff), minStaff)
	}
	return nil
}

// buildShifts flattens per-date assignments into the canonical shift list,
// preserving date order and the per-date assignment order.
func buildShifts(dates []string, assignments map[string][]string) []models.Shift {
	shifts := make([]models.Shift, 0)
	for _, date := range dates {
		for _, staffID := range assignments[date] {
			shifts = append(shifts, models.Shift{
				StaffID:   staffID,
				Date:      date,
				StartTime: ShiftStartTime,
				EndTime:   ShiftEndTime,
			})
		}
	}
	return shifts
}

// buildStatistics computes the aggregate summary over the final work counts.
func buildStatistics(staffIDs []string, dates []string, assignments map[string][]string, workCount map[string]int, minStaff int) *models.Statistics {
	totalShifts := 0
	for _, count := range workCount {
		totalShifts += count
	}

	shortfall := 0
	for _, date := range dates {
		if len(assignments[date]) < minStaff {
			shortfall++
		}
	}

	avg := 0.0
	if len(staffIDs) > 0 {
		avg = math.Round(float64(totalShifts)/float64(len(staffIDs))*100) / 100
	}

	return &models.Statistics{
		TotalShifts:       totalShifts,
		TotalDays:         len(dates),
		TotalStaff:        len(staffIDs),
		AvgShiftsPerStaff: avg,
		StaffWorkCounts:   workCount,
		ShortfallDays:     shortfall,
		FairnessScore:     fairnessScore(workCount),
	}
}

// fairnessScore returns a percentage (0-100) representing how evenly shifts
// are distributed. 100% is perfectly fair (standard deviation = 0).
func fairnessScore(workCount map[string]int) float64 {
	if len(workCount) == 0 {
		return 100.0
	}

	var sum float64
	for _, c := range workCount {
		sum += float64(c)
	}
	if sum == 0 {
		return 100.0
	}

	mean := sum / float64(len(workCount))
	var varianceSum float64
	for _, c := range workCount {
		diff := float64(c) - mean
		varianceSum += diff * diff
	}
	stdDev := math.Sqrt(varianceSum / float64(len(workCount)))

	score := (1.0 - (stdDev / mean)) * 100.0
	if score < 0 {
		return 0.0
	}
	return score
}
