package optimizer

import (
	"fmt"
	"sort"

	"github.com/arnavshah/shift-optimizer-go/pkg/logging"
	"github.com/arnavshah/shift-optimizer-go/pkg/models"
	"github.com/rs/zerolog"
)

// preferenceBonus is subtracted from a staff member's priority score on dates
// they asked for. It is smaller than one accumulated work day, so a preference
// breaks ties between equally-loaded staff but does not outrank a full extra
// day of accumulated work.
const preferenceBonus = 0.5

// Heuristic is the greedy day-by-day assigner. It processes dates in request
// order, always picking the least-loaded eligible staff first, with a
// preference bonus and a stable tie-break on input order. Fast and
// deterministic, with no optimality guarantee.
type Heuristic struct {
	opts   Options
	logger zerolog.Logger
}

// NewHeuristic creates a heuristic assigner with the given defaults.
func NewHeuristic(opts Options) *Heuristic {
	return &Heuristic{
		opts:   opts,
		logger: logging.GetLogger("optimizer.heuristic"),
	}
}

// Optimize generates a schedule for the request. With Strict unset, dates that
// cannot reach the per-day minimum are recorded as warnings and the run
// continues best-effort; with Strict set, the first such date aborts the run.
func (h *Heuristic) Optimize(req *models.ScheduleRequest) *models.OptimizeResult {
	minStaff, maxStaff := h.opts.resolveBounds(req.Constraints)

	if res := validateRequest(req, minStaff); res != nil {
		return res
	}

	staffIDs := make([]string, len(req.Staff))
	preferred := make(map[string]map[string]bool, len(req.Staff))
	unavailable := make(map[string]map[string]bool, len(req.Staff))
	maxDays := make(map[string]int, len(req.Staff))
	workCount := make(map[string]int, len(req.Staff))

	for i, s := range req.Staff {
		staffIDs[i] = s.ID
		preferred[s.ID] = toSet(s.PreferredDates)
		unavailable[s.ID] = toSet(s.UnavailableDates)
		if s.MaxDays != nil {
			maxDays[s.ID] = *s.MaxDays
		}
		workCount[s.ID] = 0
	}

	assignments := make(map[string][]string, len(req.Dates))
	var warnings []string

	for _, date := range req.Dates {
		// Eligible staff: not unavailable on this date and not already at
		// their personal day cap.
		eligible := make([]string, 0, len(staffIDs))
		preferringCount := 0
		for _, id := range staffIDs {
			if unavailable[id][date] {
				continue
			}
			if dayCap, ok := maxDays[id]; ok && workCount[id] >= dayCap {
				continue
			}
			eligible = append(eligible, id)
			if preferred[id][date] {
				preferringCount++
			}
		}

		if len(eligible) < minStaff {
			if req.Strict {
				return failure("only %d staff available on %s, below the minimum required per day (%d)",
					len(eligible), date, minStaff)
			}
			warnings = append(warnings, fmt.Sprintf(
				"only %d of %d required staff available on %s", len(eligible), minStaff, date))
		}

		// Lower score wins: accumulated work days, minus a bonus on preferred
		// dates. Stable sort keeps the input order on exact ties.
		score := func(id string) float64 {
			s := float64(workCount[id])
			if preferred[id][date] {
				s -= preferenceBonus
			}
			return s
		}
		sort.SliceStable(eligible, func(i, j int) bool {
			return score(eligible[i]) < score(eligible[j])
		})

		// Fill to the minimum, absorbing extra preferring staff up to the
		// per-day maximum.
		target := minStaff
		if preferringCount > target {
			target = preferringCount
		}
		if target > maxStaff {
			target = maxStaff
		}
		if target > len(eligible) {
			target = len(eligible)
		}

		assigned := eligible[:target]
		assignments[date] = assigned
		for _, id := range assigned {
			workCount[id]++
		}
	}

	status := StatusOptimal
	if len(warnings) > 0 {
		status = StatusFeasible
	}

	stats := buildStatistics(staffIDs, req.Dates, assignments, workCount, minStaff)
	h.logger.Debug().
		Int("total_shifts", stats.TotalShifts).
		Int("shortfall_days", stats.ShortfallDays).
		Msg("heuristic run complete")

	return &models.OptimizeResult{
		Success:    true,
		Status:     status,
		Shifts:     buildShifts(req.Dates, assignments),
		Statistics: stats,
		Warnings:   warnings,
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
