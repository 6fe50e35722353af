package ilp

import (
	"github.com/MJebran/Reduction-From-SAT-to-ILP/logic"
)

// Encode translates f into a 0/1 program whose root variable carries the
// truth value of f. The formula is validated first; the error returned
// for a malformed tree is the one logic.Validate reports.
//
// Every occurrence of a literal maps to a single variable; every gate
// occurrence gets a fresh auxiliary variable, structurally identical
// gates included. The returned program does not yet force the root to
// be true, see RequireRoot.
func Encode(f logic.Formula) (*Program, error) {
	if err := logic.Validate(f); err != nil {
		return nil, err
	}
	p := &Program{litIndex: make(map[string]Var)}
	p.Root = p.encode(f)
	return p, nil
}

// encode returns the variable carrying the truth value of f, emitting the
// constraints that bind it. The walk is iterative, so nesting depth is
// bounded by available memory, not by the goroutine stack. Gates close in
// post-order: a gate's auxiliary variable is allocated after those of all
// its operands.
func (p *Program) encode(f logic.Formula) Var {
	type frame struct {
		gate *logic.Gate
		vs   []Var
	}
	var stack []frame
	var v Var
	cur := f
	for {
		// Descend to the leftmost unvisited leaf.
		for {
			if lit, ok := cur.(logic.Lit); ok {
				v = p.litVar(string(lit))
				break
			}
			gate := cur.(*logic.Gate)
			stack = append(stack, frame{gate: gate, vs: make([]Var, 0, len(gate.Subs))})
			cur = gate.Subs[0]
		}
		// Ascend, closing every gate whose operands are all encoded.
		for {
			if len(stack) == 0 {
				return v
			}
			top := &stack[len(stack)-1]
			top.vs = append(top.vs, v)
			if len(top.vs) < len(top.gate.Subs) {
				cur = top.gate.Subs[len(top.vs)]
				break
			}
			v = p.gateVar(top.gate.Op, top.vs)
			stack = stack[:len(stack)-1]
		}
	}
}

// gateVar allocates the auxiliary variable of one gate occurrence and
// emits the constraints tying it to the operand variables vs. Over binary
// variables the constraints leave a single possible value for the
// auxiliary variable: the truth value of the gate.
func (p *Program) gateVar(op logic.Operator, vs []Var) Var {
	a := p.auxVar()
	switch op {
	case logic.OpAnd:
		// a <= v for each operand; a >= sum(v) - n + 1.
		sum := make([]Term, 0, len(vs)+1)
		sum = append(sum, Term{Var: a, Coef: 1})
		for _, v := range vs {
			p.Constraints = append(p.Constraints, Constraint{
				Terms: []Term{{Var: a, Coef: 1}, {Var: v, Coef: -1}},
				Rel:   LE,
				Bound: 0,
			})
			sum = append(sum, Term{Var: v, Coef: -1})
		}
		p.Constraints = append(p.Constraints, Constraint{Terms: sum, Rel: GE, Bound: 1 - len(vs)})
	case logic.OpOr:
		// a >= v for each operand; a <= sum(v).
		sum := make([]Term, 0, len(vs)+1)
		sum = append(sum, Term{Var: a, Coef: 1})
		for _, v := range vs {
			p.Constraints = append(p.Constraints, Constraint{
				Terms: []Term{{Var: a, Coef: 1}, {Var: v, Coef: -1}},
				Rel:   GE,
				Bound: 0,
			})
			sum = append(sum, Term{Var: v, Coef: -1})
		}
		p.Constraints = append(p.Constraints, Constraint{Terms: sum, Rel: LE, Bound: 0})
	case logic.OpNot:
		// a = 1 - v.
		p.Constraints = append(p.Constraints, Constraint{
			Terms: []Term{{Var: a, Coef: 1}, {Var: vs[0], Coef: 1}},
			Rel:   EQ,
			Bound: 1,
		})
	}
	return a
}

// RequireRoot appends the constraint pinning the root variable to 1.
// A feasible assignment witnesses satisfiability of the encoded formula
// only under this constraint; a program that merely prefers a true root
// can be feasible with the root false. Calling RequireRoot again has no
// further effect.
func (p *Program) RequireRoot() {
	if p.rootForced {
		return
	}
	p.rootForced = true
	p.Constraints = append(p.Constraints, Constraint{
		Terms: []Term{{Var: p.Root, Coef: 1}},
		Rel:   EQ,
		Bound: 1,
	})
}
