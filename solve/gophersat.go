package solve

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/MJebran/Reduction-From-SAT-to-ILP/ilp"
)

// Gophersat decides feasibility with the gophersat pseudo-boolean
// solver, in process. The zero value is ready to use.
type Gophersat struct {
	// Verbose makes the underlying solver print progress information on
	// stdout while searching.
	Verbose bool
}

// Feasible implements Engine.
func (g Gophersat) Feasible(p *ilp.Program) ([]bool, bool, error) {
	pb := solver.ParsePBConstrs(pbConstrs(p))
	s := solver.New(pb)
	s.Verbose = g.Verbose
	switch status := s.Solve(); status {
	case solver.Sat:
		return s.Model(), true, nil
	case solver.Unsat:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("solver stopped with status %v", status)
	}
}

// pbConstrs renders every program constraint in the solver's input form,
// a weighted sum of literals bounded from below. Program variable v maps
// to solver literal v+1; the constructors normalize relations and signs
// themselves. Fresh slices are built for each constraint because the
// constructors take ownership of their arguments.
func pbConstrs(p *ilp.Program) []solver.PBConstr {
	constrs := make([]solver.PBConstr, 0, len(p.Constraints))
	for _, c := range p.Constraints {
		lits := make([]int, len(c.Terms))
		weights := make([]int, len(c.Terms))
		for i, t := range c.Terms {
			lits[i] = int(t.Var) + 1
			weights[i] = t.Coef
		}
		switch c.Rel {
		case ilp.GE:
			constrs = append(constrs, solver.GtEq(lits, weights, c.Bound))
		case ilp.LE:
			constrs = append(constrs, solver.LtEq(lits, weights, c.Bound))
		case ilp.EQ:
			constrs = append(constrs, solver.Eq(lits, weights, c.Bound)...)
		}
	}
	return constrs
}
