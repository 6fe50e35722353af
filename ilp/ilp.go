package ilp

import (
	"fmt"
	"strings"
)

// A Var identifies a binary variable of a Program. Variables are numbered
// from 0 in creation order.
type Var int32

// A Term is one coefficient-variable product of a linear expression.
type Term struct {
	Var  Var
	Coef int
}

// A Relation compares a linear expression with a constant bound.
type Relation byte

const (
	// LE constrains the expression to be at most the bound.
	LE Relation = iota
	// GE constrains the expression to be at least the bound.
	GE
	// EQ constrains the expression to equal the bound.
	EQ
)

func (rel Relation) String() string {
	switch rel {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// A Constraint relates a linear combination of variables to an integer
// bound. Terms keep the order they were emitted in, so a constraint
// always renders and translates the same way.
type Constraint struct {
	Terms []Term
	Rel   Relation
	Bound int
}

// String renders the constraint with the variable names of the given
// program, e.g. "x_a - aux_0 <= 0".
func (c Constraint) String(p *Program) string {
	var sb strings.Builder
	appendExpr(&sb, p, c.Terms)
	fmt.Fprintf(&sb, " %s %d", c.Rel, c.Bound)
	return sb.String()
}

type varKind byte

const (
	litKind varKind = iota
	auxKind
)

type varInfo struct {
	name string // solver-facing name: "x_<literal>" or "aux_<n>"
	kind varKind
	lit  string // literal name, for litVar entries
}

// A Program is a feasibility problem over binary variables: a set of
// linear constraints, a variable registry and a designated root variable
// carrying the truth value of the encoded formula.
//
// Encode builds the program without constraining the root, so that
// callers can inspect or export the bare encoding; a feasible assignment
// witnesses satisfiability only once RequireRoot has pinned the root
// to 1.
type Program struct {
	Constraints []Constraint
	Root        Var

	vars       []varInfo
	litIndex   map[string]Var
	nbAux      int
	rootForced bool
}

// NumVars returns the number of variables of the program.
func (p *Program) NumVars() int {
	return len(p.vars)
}

// Name returns the solver-facing name of v: "x_<literal>" for literal
// variables, "aux_<n>" for gate variables.
func (p *Program) Name(v Var) string {
	return p.vars[v].name
}

// IsAux indicates whether v is an auxiliary gate variable rather than a
// literal variable.
func (p *Program) IsAux(v Var) bool {
	return p.vars[v].kind == auxKind
}

// Literals returns the literal names of the program, in the order their
// variables were created.
func (p *Program) Literals() []string {
	names := make([]string, 0, len(p.litIndex))
	for _, info := range p.vars {
		if info.kind == litKind {
			names = append(names, info.lit)
		}
	}
	return names
}

// LitVar returns the variable of the given literal name.
func (p *Program) LitVar(name string) (Var, bool) {
	v, ok := p.litIndex[name]
	return v, ok
}

// litVar returns the variable of the given literal, creating it on first
// occurrence. Repeated literals share their variable.
func (p *Program) litVar(name string) Var {
	if v, ok := p.litIndex[name]; ok {
		return v
	}
	v := Var(len(p.vars))
	p.vars = append(p.vars, varInfo{name: "x_" + name, kind: litKind, lit: name})
	p.litIndex[name] = v
	return v
}

// auxVar returns a fresh auxiliary variable. Every gate occurrence gets
// its own, even when two gates are structurally identical.
func (p *Program) auxVar() Var {
	v := Var(len(p.vars))
	p.vars = append(p.vars, varInfo{name: fmt.Sprintf("aux_%d", p.nbAux), kind: auxKind})
	p.nbAux++
	return v
}
