package solve

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MJebran/Reduction-From-SAT-to-ILP/ilp"
	"github.com/MJebran/Reduction-From-SAT-to-ILP/logic"
)

// ErrUnsatisfiable reports that a formula admits no satisfying
// assignment. It is the expected negative answer to a well-posed query,
// not a failure.
var ErrUnsatisfiable = errors.New("formula is unsatisfiable")

// An EngineError reports that the feasibility engine could not reach a
// verdict. An infeasible program is an answer and is reported as
// ErrUnsatisfiable instead; an engine failure says nothing about the
// formula.
type EngineError struct {
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("feasibility engine failed: %v", e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// An Engine decides feasibility of 0/1 programs. Implementations wrap an
// external solver; the rest of the package does not care which one.
//
// Feasible returns the value of every program variable, indexed by
// ilp.Var, when the program admits a solution. It returns ok=false when
// the program was proven infeasible and a non-nil error when no verdict
// could be reached. An error never means "infeasible".
type Engine interface {
	Feasible(p *ilp.Program) (values []bool, ok bool, err error)
}

// A Solver answers satisfiability queries. It is stateless between
// queries and can be reused.
type Solver struct {
	engine Engine
	log    logrus.FieldLogger
}

// An Option configures a Solver.
type Option func(s *Solver)

// WithEngine makes the solver delegate feasibility to e instead of the
// default gophersat engine.
func WithEngine(e Engine) Option {
	return func(s *Solver) { s.engine = e }
}

// WithLogger makes the solver describe its work on the given logger at
// debug level. By default nothing is logged.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Solver) { s.log = log }
}

// New returns a Solver ready to answer queries.
func New(opts ...Option) *Solver {
	s := &Solver{}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = Gophersat{}
	}
	if s.log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		s.log = logger
	}
	return s
}

// Solve reports a satisfying assignment for f, binding every literal of
// the formula. It returns the error logic.Validate reports for a
// malformed formula, ErrUnsatisfiable when no assignment exists and an
// *EngineError when the engine failed to reach a verdict.
func (s *Solver) Solve(f logic.Formula) (map[string]bool, error) {
	p, err := ilp.Encode(f)
	if err != nil {
		return nil, err
	}
	p.RequireRoot()
	s.log.WithFields(logrus.Fields{
		"variables":   p.NumVars(),
		"constraints": len(p.Constraints),
	}).Debug("invoking feasibility engine")
	start := time.Now()
	values, ok, err := s.engine.Feasible(p)
	elapsed := time.Since(start)
	if err != nil {
		s.log.WithError(err).WithField("elapsed", elapsed).Debug("engine failed")
		return nil, &EngineError{Err: err}
	}
	if !ok {
		s.log.WithField("elapsed", elapsed).Debug("program proven infeasible")
		return nil, ErrUnsatisfiable
	}
	if len(values) < p.NumVars() {
		return nil, &EngineError{Err: fmt.Errorf("engine bound %d of %d variables", len(values), p.NumVars())}
	}
	model := make(map[string]bool)
	for _, name := range p.Literals() {
		v, _ := p.LitVar(name)
		model[name] = values[v]
	}
	s.log.WithFields(logrus.Fields{
		"elapsed":  elapsed,
		"literals": len(model),
	}).Debug("found feasible assignment")
	return model, nil
}

// Solve answers a single query with a default Solver.
func Solve(f logic.Formula) (map[string]bool, error) {
	return New().Solve(f)
}
