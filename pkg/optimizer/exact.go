package optimizer

import (
	"fmt"

	"github.com/arnavshah/shift-optimizer-go/pkg/logging"
	"github.com/arnavshah/shift-optimizer-go/pkg/models"
	"github.com/arnavshah/shift-optimizer-go/pkg/solver"
	"github.com/rs/zerolog"
)

// preferredObjectiveWeight is the extra objective reward for assigning a staff
// member to a date they asked for, on top of the base reward of 1 per pair.
const preferredObjectiveWeight = 0.5

// Exact formulates the assignment problem as a 0/1 integer program and
// delegates the search to an injected solver. One binary variable exists per
// available (staff, date) pair; constraints enforce the per-day headcount
// bounds and any per-staff day limits.
type Exact struct {
	opts   Options
	solver solver.Solver
	logger zerolog.Logger
}

// NewExact creates an exact assigner backed by the given solver.
func NewExact(s solver.Solver, opts Options) *Exact {
	return &Exact{
		opts:   opts,
		solver: s,
		logger: logging.GetLogger("optimizer.exact"),
	}
}

// Optimize builds the integer program, runs the solver and translates its
// answer back into the shared result shape. A missing solver or a non-optimal
// solver status is reported as a failure.
func (e *Exact) Optimize(req *models.ScheduleRequest) *models.OptimizeResult {
	minStaff, maxStaff := e.opts.resolveBounds(req.Constraints)

	if res := validateRequest(req, minStaff); res != nil {
		return res
	}
	if e.solver == nil {
		return failure("no solver configured for the exact engine")
	}

	problem, pairVars := e.buildProblem(req, minStaff, maxStaff)

	solution, err := e.solver.Solve(problem)
	if err != nil {
		return failure("solver error: %v", err)
	}
	if solution.Status != solver.StatusOptimal {
		e.logger.Warn().Str("status", solution.Status).Msg("solver returned non-optimal status")
		return &models.OptimizeResult{
			Success: false,
			Status:  solution.Status,
			Error:   fmt.Sprintf("solver returned non-optimal status: %s", solution.Status),
		}
	}

	staffIDs := make([]string, len(req.Staff))
	workCount := make(map[string]int, len(req.Staff))
	for i, s := range req.Staff {
		staffIDs[i] = s.ID
		workCount[s.ID] = 0
	}

	assignments := make(map[string][]string, len(req.Dates))
	for j, date := range req.Dates {
		for i := range req.Staff {
			name, ok := pairVars[pairKey(i, j)]
			if !ok {
				continue
			}
			if solution.Values[name] {
				assignments[date] = append(assignments[date], req.Staff[i].ID)
				workCount[req.Staff[i].ID]++
			}
		}
	}

	return &models.OptimizeResult{
		Success:    true,
		Status:     solver.StatusOptimal,
		Shifts:     buildShifts(req.Dates, assignments),
		Statistics: buildStatistics(staffIDs, req.Dates, assignments, workCount, minStaff),
	}
}

// buildProblem creates one binary variable per (staff, date) pair where the
// staff member is available, headcount constraints per date, and total-day
// constraints per staff member where caps are set. The objective rewards every
// assigned pair, preferred pairs slightly more.
func (e *Exact) buildProblem(req *models.ScheduleRequest, minStaff, maxStaff int) (*solver.Problem, map[string]string) {
	p := &solver.Problem{}
	pairVars := make(map[string]string)

	for i, s := range req.Staff {
		unavail := toSet(s.UnavailableDates)
		pref := toSet(s.PreferredDates)

		for j, date := range req.Dates {
			if unavail[date] {
				continue
			}
			name := fmt.Sprintf("x[%d][%d]", i, j)
			obj := 1.0
			if pref[date] {
				obj += preferredObjectiveWeight
			}
			p.Variables = append(p.Variables, solver.Variable{Name: name, Objective: obj})
			pairVars[pairKey(i, j)] = name
		}
	}

	for j, date := range req.Dates {
		var terms []solver.Term
		for i := range req.Staff {
			if name, ok := pairVars[pairKey(i, j)]; ok {
				terms = append(terms, solver.Term{Var: name, Coeff: 1})
			}
		}
		p.Constraints = append(p.Constraints,
			solver.Constraint{
				Name:  fmt.Sprintf("min_staff[%s]", date),
				Terms: terms,
				Sense: solver.SenseGE,
				Bound: float64(minStaff),
			},
			solver.Constraint{
				Name:  fmt.Sprintf("max_staff[%s]", date),
				Terms: terms,
				Sense: solver.SenseLE,
				Bound: float64(maxStaff),
			},
		)
	}

	for i, s := range req.Staff {
		if s.MaxDays == nil && s.MinDays == nil {
			continue
		}
		var terms []solver.Term
		for j := range req.Dates {
			if name, ok := pairVars[pairKey(i, j)]; ok {
				terms = append(terms, solver.Term{Var: name, Coeff: 1})
			}
		}
		if s.MaxDays != nil {
			p.Constraints = append(p.Constraints, solver.Constraint{
				Name:  fmt.Sprintf("max_days[%s]", s.ID),
				Terms: terms,
				Sense: solver.SenseLE,
				Bound: float64(*s.MaxDays),
			})
		}
		if s.MinDays != nil {
			p.Constraints = append(p.Constraints, solver.Constraint{
				Name:  fmt.Sprintf("min_days[%s]", s.ID),
				Terms: terms,
				Sense: solver.SenseGE,
				Bound: float64(*s.MinDays),
			})
		}
	}

	return p, pairVars
}

func pairKey(staffIdx, dateIdx int) string {
	return fmt.Sprintf("%d:%d", staffIdx, dateIdx)
}
