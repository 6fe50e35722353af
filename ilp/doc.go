// Package ilp translates propositional formulas into 0/1 integer linear
// programs.
//
// Feasibility engines expect linear constraints over numeric variables,
// not logical gates. The translation therefore introduces one binary
// variable per literal and one auxiliary binary variable per gate
// occurrence, tied to the gate's operands by linear constraints:
//
//	not: a + v = 1
//	and: a <= v for each operand, a >= sum(v) - n + 1
//	or:  a >= v for each operand, a <= sum(v)
//
// Over binary variables these constraints force each auxiliary variable
// to carry exactly the truth value of its gate, so the program extended
// with "root = 1" is feasible exactly when the formula is satisfiable.
// The translation is linear in the size of the formula; no normal form
// conversion takes place.
//
// Encoding is deterministic: variables are numbered in first-occurrence
// order, gates in post-order, and constraints keep their emission order.
// Encoding the same formula twice yields identical programs.
//
// The resulting program can be handed to the solve package or written in
// the LP file format with WriteLP, to be fed to any integer programming
// solver.
package ilp
