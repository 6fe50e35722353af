// Package solve answers satisfiability queries over propositional
// formulas by reduction to 0/1 integer programming.
//
// A query goes through three steps: the formula is validated, encoded
// into a feasibility program (see the ilp package), and handed to an
// Engine that decides whether the program admits a solution. The default
// engine is the gophersat pseudo-boolean solver; any solver able to
// decide linear constraints over binary variables can be plugged in
// through the Engine interface.
//
// The simplest use is the package-level function:
//
//	model, err := solve.Solve(f)
//
// model binds every literal of f when f is satisfiable. Three kinds of
// failure are told apart: a malformed formula (logic.ArityError and
// friends), a formula with no satisfying assignment (ErrUnsatisfiable)
// and an engine that could not reach a verdict (*EngineError). Only the
// second one says anything about the formula; engine failures must never
// be read as "unsatisfiable".
//
// Solve blocks until the engine reaches a verdict. Callers wanting
// bounded latency should wrap the call and treat expiry as an engine
// failure.
package solve
