// Package solver defines the narrow interface the exact optimizer uses to hand
// a 0/1 integer program to an external combinatorial solver. The solving
// algorithm itself is never implemented in this repository; callers inject an
// implementation (a cgo binding, a remote solver service, or a test fake).
package solver

// Status reported by a solver run.
const (
	StatusOptimal    = "Optimal"
	StatusInfeasible = "Infeasible"
	StatusUnbounded  = "Unbounded"
	StatusUnknown    = "Unknown"
)

// Sense of a linear constraint.
type Sense int

const (
	SenseLE Sense = iota // sum <= Bound
	SenseGE              // sum >= Bound
	SenseEQ              // sum == Bound
)

// Variable is a named binary decision variable with an objective coefficient.
type Variable struct {
	Name      string
	Objective float64
}

// Term is one coefficient-variable pair inside a constraint.
type Term struct {
	Var   string
	Coeff float64
}

// Constraint is a linear constraint over binary variables.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	Bound float64
}

// Problem is a 0/1 integer program: binary variables, linear constraints and a
// linear objective to maximize.
type Problem struct {
	Variables   []Variable
	Constraints []Constraint
}

// Solution is the solver's answer. Values holds the variables set to 1; a
// variable absent from the map is 0.
type Solution struct {
	Status string
	Values map[string]bool
}

// Solver is the injected capability that searches for an assignment.
type Solver interface {
	Solve(p *Problem) (*Solution, error)
}
