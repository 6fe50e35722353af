package logic

import (
	"errors"
	"fmt"
	"strings"
)

// An Operator is the connective of a gate: conjunction, disjunction or
// negation.
type Operator byte

const (
	// OpAnd is the conjunction connective.
	OpAnd Operator = iota
	// OpOr is the disjunction connective.
	OpOr
	// OpNot is the negation connective.
	OpNot
)

func (op Operator) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	default:
		return fmt.Sprintf("operator(%d)", byte(op))
	}
}

// A Formula is a propositional formula over named literals: either a Lit
// or a *Gate. Formulas are values; they are never modified once built.
type Formula interface {
	fmt.Stringer
	formula()
}

// A Lit is a single named literal.
type Lit string

func (l Lit) formula() {}

func (l Lit) String() string { return string(l) }

// A Gate applies an Operator to an ordered list of operands.
// Operand order is preserved everywhere: evaluation, encoding and
// rendering all visit operands in this order.
type Gate struct {
	Op   Operator
	Subs []Formula
}

func (g *Gate) formula() {}

func (g *Gate) String() string {
	strs := make([]string, len(g.Subs))
	for i, sub := range g.Subs {
		strs[i] = sub.String()
	}
	return g.Op.String() + "(" + strings.Join(strs, ", ") + ")"
}

// Var generates the formula made of the single literal with the given name.
func Var(name string) Formula {
	return Lit(name)
}

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return &Gate{Op: OpAnd, Subs: subs}
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return &Gate{Op: OpOr, Subs: subs}
}

// Not generates a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return &Gate{Op: OpNot, Subs: []Formula{f}}
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return Or(Not(f1), f2)
}

// Eq indicates a subformula is equivalent to another one.
func Eq(f1, f2 Formula) Formula {
	return And(Or(Not(f1), f2), Or(f1, Not(f2)))
}

// Xor indicates exactly one of the two given subformulas is true.
func Xor(f1, f2 Formula) Formula {
	return And(Or(Not(f1), Not(f2)), Or(f1, f2))
}

// Unique indicates exactly one of the given literals is true.
// The pairwise encoding is quadratic in the number of literals, so it is
// meant for small sets.
func Unique(names ...string) Formula {
	res := make([]Formula, 1, 1+(len(names)*(len(names)-1))/2)
	lits := make([]Formula, len(names))
	for i, name := range names {
		lits[i] = Lit(name)
	}
	res[0] = Or(lits...)
	for i := 0; i < len(names)-1; i++ {
		for j := i + 1; j < len(names); j++ {
			res = append(res, Or(Not(lits[i]), Not(lits[j])))
		}
	}
	return And(res...)
}

// An ArityError reports a gate whose operand count its operator does not
// allow.
type ArityError struct {
	Op Operator
	N  int
}

func (e ArityError) Error() string {
	if e.Op == OpNot {
		return fmt.Sprintf("not gate wants exactly one operand, got %d", e.N)
	}
	return fmt.Sprintf("%s gate wants at least one operand, got %d", e.Op, e.N)
}

// Validate checks the structure of f: a "not" gate takes exactly one
// operand, "and" and "or" gates at least one. Formulas built by the
// package constructors can still be invalid, e.g. And() with no operand.
// Processing entry points validate their input first, so that a malformed
// tree is reported instead of being walked.
func Validate(f Formula) error {
	switch f := f.(type) {
	case nil:
		return errors.New("nil formula")
	case Lit:
		return nil
	case *Gate:
		if f == nil {
			return errors.New("nil formula")
		}
		switch f.Op {
		case OpNot:
			if len(f.Subs) != 1 {
				return ArityError{Op: OpNot, N: len(f.Subs)}
			}
		case OpAnd, OpOr:
			if len(f.Subs) == 0 {
				return ArityError{Op: f.Op, N: 0}
			}
		default:
			return fmt.Errorf("unknown operator %s", f.Op)
		}
		for _, sub := range f.Subs {
			if err := Validate(sub); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown formula type %T", f)
	}
}
